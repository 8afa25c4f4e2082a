// Package promo holds the stall's standing day-of-week promotions and the
// rule that appends free lines to an order before it is submitted.
package promo

import (
	"time"

	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/domain"
)

// Day names in the menu's locale; index matches time.Weekday.
var dayNames = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

const (
	freeEsquitesName = "Esquites (Promoción)"
	freeTotoposName  = "Totopos (Promoción)"

	freeEsquitesID = "promo-esquites"
	freeTotoposID  = "promo-totopos"

	// Pack counts required per free item.
	esquitesPerPacks = 2
	totoposPerPacks  = 4
)

// ForDay returns the promotion in effect on the given date. Only Thursday,
// Friday and Saturday carry one; the Saturday bundle is informational and
// never auto-applied.
func ForDay(now time.Time) domain.Promotion {
	day := dayNames[now.Weekday()]
	switch now.Weekday() {
	case time.Thursday:
		return domain.Promotion{
			Day:       day,
			FreeItems: []string{"Esquites"},
			Condition: "Por 2 órdenes de tacos incluye esquite gratis",
		}
	case time.Friday:
		return domain.Promotion{
			Day:       day,
			FreeItems: []string{"Totopos"},
			Condition: "Por 4 órdenes de tacos incluye totopos gratis",
		}
	case time.Saturday:
		return domain.Promotion{
			Day:       day,
			FreeItems: []string{"Cerveza Nacional"},
			Condition: "4 Cervezas nacionales + totopos por $12",
		}
	}
	return domain.Promotion{Day: day, Condition: "No hay promoción especial hoy"}
}

// Apply appends the free lines the current day's promotion earns. Packs are
// counted as order lines whose name carries the taco-pack label; one free
// line is added with quantity floor(packs/required). The input slice is
// never modified.
func Apply(items []domain.OrderItem, now time.Time) []domain.OrderItem {
	packs := 0
	for _, it := range items {
		if domain.IsTacoPack(it.ProductName) {
			packs++
		}
	}

	out := append([]domain.OrderItem(nil), items...)
	switch now.Weekday() {
	case time.Thursday:
		if n := packs / esquitesPerPacks; n > 0 {
			out = append(out, freeLine(freeEsquitesID, freeEsquitesName, n))
		}
	case time.Friday:
		if n := packs / totoposPerPacks; n > 0 {
			out = append(out, freeLine(freeTotoposID, freeTotoposName, n))
		}
	}
	return out
}

func freeLine(id, name string, qty int) domain.OrderItem {
	return domain.OrderItem{
		ProductID:   id,
		ProductName: name,
		Price:       0,
		Quantity:    qty,
		IsFree:      true,
	}
}
