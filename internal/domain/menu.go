package domain

import "strings"

// TacoPackLabel marks order lines sold as the three-taco bundle. Pack lines
// carry the chosen fillings in the name ("Pack 3 Tacos: Pastor, Asada, ...").
const TacoPackLabel = "Pack 3 Tacos"

// TacoPackBucket is the single bucket the daily breakdown folds all taco
// sales into, packs and individual tacos alike.
const TacoPackBucket = "Pack de 3 Tacos"

// tacoVariants are the seven fillings sold as individual tacos.
var tacoVariants = map[string]struct{}{
	"Chicharrón": {},
	"Tacubayo":   {},
	"Chorizo":    {},
	"Coshiloco":  {},
	"Pastor":     {},
	"Asada":      {},
	"Suadero":    {},
}

// SalesLabel normalizes a sold item's name for the per-product breakdown.
// Taco packs and individual tacos collapse into TacoPackBucket; everything
// else keeps its own name.
func SalesLabel(productName string) string {
	if _, ok := tacoVariants[productName]; ok {
		return TacoPackBucket
	}
	if strings.Contains(productName, TacoPackLabel) {
		return TacoPackBucket
	}
	return productName
}

// IsTacoPack reports whether an order line counts toward the taco-pack
// promotions.
func IsTacoPack(productName string) bool {
	return strings.Contains(productName, TacoPackLabel)
}
