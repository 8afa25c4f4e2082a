package store

import "github.com/Steve-p-Dev/Plaza-Bernal-App/internal/domain"

// The stall's standing menu. Salsas ride along free with tacos and the two
// promo placeholders back the automatic Thursday/Friday free lines.
var defaults = []domain.Product{
	{Name: "Pack 3 Tacos", Price: 550, Category: "Packs"},

	{Name: "Chicharrón", Price: 150, Category: "Tacos"},
	{Name: "Tacubayo", Price: 150, Category: "Tacos"},
	{Name: "Chorizo", Price: 150, Category: "Tacos"},
	{Name: "Coshiloco", Price: 150, Category: "Tacos"},
	{Name: "Pastor", Price: 150, Category: "Tacos"},
	{Name: "Asada", Price: 150, Category: "Tacos"},
	{Name: "Suadero", Price: 150, Category: "Tacos"},

	{Name: "Esquites", Price: 250, Category: "Antojitos"},
	{Name: "Burrito", Price: 500, Category: "Antojitos"},
	{Name: "Totopos Dorados", Price: 400, Category: "Antojitos"},
	{Name: "Chilaquiles Malverde", Price: 500, Category: "Antojitos"},
	{Name: "Porción extra de tortillas (3u)", Price: 150, Category: "Antojitos"},

	{Name: "Pan de Elote", Price: 250, Category: "Postres"},

	{Name: "Agua de Jamaica", Price: 100, Category: "Bebidas"},
	{Name: "Tepache de Piña", Price: 100, Category: "Bebidas"},
	{Name: "Refresco de Cola", Price: 100, Category: "Bebidas"},
	{Name: "Cerveza Mexicana", Price: 350, Category: "Bebidas"},
	{Name: "Cerveza Nacional", Price: 250, Category: "Bebidas"},
	{Name: "Micheladas", Price: 600, Category: "Bebidas"},
	{Name: "Cocteles", Price: 800, Category: "Bebidas"},
	{Name: "PinshiGallo", Price: 250, Category: "Bebidas"},

	{Name: "Salsa Borracha", Category: "Salsas", IsFree: true},
	{Name: "Salsa Quesos", Category: "Salsas", IsFree: true},
	{Name: "Salsa Picosa", Category: "Salsas", IsFree: true},
	{Name: "Salsa No Picosa", Category: "Salsas", IsFree: true},
	{Name: "Salsa pa gño chille", Category: "Salsas", IsFree: true},
	{Name: "Salsa Verde", Category: "Salsas", IsFree: true},
	{Name: "Salsa Roja", Category: "Salsas", IsFree: true},
	{Name: "Salsa Chipotle", Category: "Salsas", IsFree: true},

	{Name: "Sopa Azteca", Price: 500, Category: "Sopas"},
	{Name: "Torta de Jamón", Price: 300, Category: "Tortas"},

	{Name: "Esquites (Promoción)", Category: "Promociones", IsFree: true},
	{Name: "Totopos (Promoción)", Category: "Promociones", IsFree: true},
}

// SeedDefaults loads the standing menu. Idempotent by product name, so a
// reconfigured catalog is never duplicated or overwritten.
func (s *Store) SeedDefaults() {
	s.mu.Lock()
	existing := make(map[string]struct{}, len(s.products))
	for _, p := range s.products {
		existing[p.Name] = struct{}{}
	}
	added := 0
	for _, p := range defaults {
		if _, ok := existing[p.Name]; ok {
			continue
		}
		p.ID = s.nextID("PRD")
		s.products = append(s.products, p)
		added++
	}
	s.mu.Unlock()

	if added > 0 {
		s.notify()
	}
}
