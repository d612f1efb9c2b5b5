package mixing

// ProductVariety is a base product that substances are mixed into. The
// initial effect (possibly empty) is active before any substance is applied.
type ProductVariety struct {
	Name          string
	BasePrice     float64
	InitialEffect string
}
