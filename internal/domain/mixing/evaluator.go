package mixing

// ApplySubstanceRules fires a substance's transformation rules against the
// active effect list and then contributes the substance's base effect.
// The input slice is not modified; the returned slice preserves order.
//
// A rule fires when all IfPresent effects are active and no IfAbsent effect
// is. Removed effects are dropped in place and the added effect takes the
// position of the first removal, so repeated application stays deterministic.
func ApplySubstanceRules(effects []string, s *Substance) []string {
	out := make([]string, len(effects), len(effects)+1)
	copy(out, effects)

	for ri := range s.Rules {
		rule := &s.Rules[ri]
		if !allPresent(out, rule.IfPresent) || anyPresent(out, rule.IfAbsent) {
			continue
		}
		out = applyRule(out, rule)
	}

	if s.BaseEffect != "" && !contains(out, s.BaseEffect) && len(out) < MaxEffects {
		out = append(out, s.BaseEffect)
	}
	return out
}

// EvaluateMix returns the final ordered effect list after applying each
// substance of the mix, in sequence order, to the product's initial effect.
func EvaluateMix(catalog *Catalog, product *ProductVariety, mix Mix) ([]string, error) {
	var effects []string
	if product.InitialEffect != "" {
		effects = []string{product.InitialEffect}
	}
	for _, name := range mix {
		s, err := catalog.Substance(name)
		if err != nil {
			return nil, err
		}
		effects = ApplySubstanceRules(effects, s)
	}
	return effects, nil
}

func applyRule(effects []string, rule *Rule) []string {
	if len(rule.Removes) == 0 {
		if rule.Adds != "" && !contains(effects, rule.Adds) && len(effects) < MaxEffects {
			effects = append(effects, rule.Adds)
		}
		return effects
	}

	added := rule.Adds == "" || contains(effects, rule.Adds)
	out := effects[:0]
	for _, e := range effects {
		if !contains(rule.Removes, e) {
			out = append(out, e)
			continue
		}
		if !added {
			out = append(out, rule.Adds)
			added = true
		}
	}
	return out
}

func contains(list []string, name string) bool {
	for _, e := range list {
		if e == name {
			return true
		}
	}
	return false
}

func allPresent(effects, wanted []string) bool {
	for _, w := range wanted {
		if !contains(effects, w) {
			return false
		}
	}
	return true
}

func anyPresent(effects, unwanted []string) bool {
	for _, u := range unwanted {
		if contains(effects, u) {
			return true
		}
	}
	return false
}
