package mixing

import "math"

// CalculateFinalPrice returns the sell price of a product carrying the given
// effects: base price scaled by one plus the sum of the effect multipliers,
// rounded to the nearest whole unit.
func CalculateFinalPrice(catalog *Catalog, product *ProductVariety, effects []string) float64 {
	multiplier := 1.0
	for _, e := range effects {
		multiplier += catalog.Multiplier(e)
	}
	return math.Round(product.BasePrice * multiplier)
}

// CalculateFinalCost returns the total unit cost of the substances in a mix.
// Unknown substance names contribute nothing; enumeration only produces names
// from the catalog, so this is reachable only with hand-built mixes.
func CalculateFinalCost(catalog *Catalog, mix Mix) float64 {
	cost := 0.0
	for _, name := range mix {
		if s, err := catalog.Substance(name); err == nil {
			cost += s.Cost
		}
	}
	return cost
}

// Profit returns sell price minus mix cost for the product and effect set
// produced by the mix.
func Profit(catalog *Catalog, product *ProductVariety, mix Mix) (float64, error) {
	effects, err := EvaluateMix(catalog, product, mix)
	if err != nil {
		return 0, err
	}
	return CalculateFinalPrice(catalog, product, effects) - CalculateFinalCost(catalog, mix), nil
}
