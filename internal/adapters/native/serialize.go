package native

import (
	"encoding/json"
	"fmt"

	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
)

// The native engine takes four serialized string arguments (product,
// substance table, effect multiplier table, rule table) plus the max depth.
// The tables are flat JSON in the engine's interchange shape.

type productPayload struct {
	Name          string  `json:"name"`
	BasePrice     float64 `json:"basePrice"`
	InitialEffect string  `json:"initialEffect"`
}

type substancePayload struct {
	Name       string  `json:"name"`
	Cost       float64 `json:"cost"`
	BaseEffect string  `json:"baseEffect"`
}

type rulePayload struct {
	IfPresent []string `json:"ifPresent,omitempty"`
	IfAbsent  []string `json:"ifAbsent,omitempty"`
	Removes   []string `json:"removes,omitempty"`
	Adds      string   `json:"adds,omitempty"`
}

// serializeInputs renders the four interchange arguments in catalog order.
func serializeInputs(catalog *mixing.Catalog, product *mixing.ProductVariety) (productArg, substanceArg, effectArg, ruleArg string, err error) {
	productJSON, err := json.Marshal(productPayload{
		Name:          product.Name,
		BasePrice:     product.BasePrice,
		InitialEffect: product.InitialEffect,
	})
	if err != nil {
		return "", "", "", "", fmt.Errorf("failed to serialize product: %w", err)
	}

	substances := catalog.Substances()
	substanceRows := make([]substancePayload, 0, len(substances))
	rules := make(map[string][]rulePayload, len(substances))
	for _, s := range substances {
		substanceRows = append(substanceRows, substancePayload{
			Name:       s.Name,
			Cost:       s.Cost,
			BaseEffect: s.BaseEffect,
		})
		rows := make([]rulePayload, 0, len(s.Rules))
		for _, r := range s.Rules {
			rows = append(rows, rulePayload{
				IfPresent: r.IfPresent,
				IfAbsent:  r.IfAbsent,
				Removes:   r.Removes,
				Adds:      r.Adds,
			})
		}
		rules[s.Name] = rows
	}

	substanceJSON, err := json.Marshal(substanceRows)
	if err != nil {
		return "", "", "", "", fmt.Errorf("failed to serialize substances: %w", err)
	}

	multipliers := make(map[string]float64, len(catalog.Effects()))
	for name, effect := range catalog.Effects() {
		multipliers[name] = effect.Multiplier
	}
	effectJSON, err := json.Marshal(multipliers)
	if err != nil {
		return "", "", "", "", fmt.Errorf("failed to serialize effects: %w", err)
	}

	ruleJSON, err := json.Marshal(rules)
	if err != nil {
		return "", "", "", "", fmt.Errorf("failed to serialize rules: %w", err)
	}

	return string(productJSON), string(substanceJSON), string(effectJSON), string(ruleJSON), nil
}
