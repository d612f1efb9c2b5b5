package mixing

// MaxEffects is the maximum number of distinct effects a mix can carry.
// Substances applied past this cap still fire their transformation rules,
// but their base effect is not appended.
const MaxEffects = 8

// Effect is a named attribute a mixed product can carry. Each active effect
// contributes its multiplier to the product's final sell price.
type Effect struct {
	Name       string
	Multiplier float64
}
