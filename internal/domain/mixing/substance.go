package mixing

// Rule is a single effect transformation contributed by a substance.
// When every effect in IfPresent is active and none in IfAbsent is, the
// effects in Removes are dropped and Adds takes the position of the first
// removed effect. Rules are applied in the order the substance lists them.
type Rule struct {
	IfPresent []string
	IfAbsent  []string
	Removes   []string
	Adds      string
}

// Substance is an ingredient that can be mixed into a product. Applying a
// substance first fires its transformation rules against the active effect
// list, then appends its base effect when absent and under the effect cap.
// Substances are immutable once loaded.
type Substance struct {
	Name       string
	Cost       float64
	BaseEffect string
	Rules      []Rule
}

// Mix is an ordered sequence of substance names applied to a product.
type Mix []string

// Clone returns an independent copy of the mix.
func (m Mix) Clone() Mix {
	if m == nil {
		return nil
	}
	c := make(Mix, len(m))
	copy(c, m)
	return c
}
