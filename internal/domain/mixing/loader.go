package mixing

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// LoadCatalogFile reads a catalog from a JSON data file. The file carries the
// same three tables as the built-in data:
//
//	{
//	  "substances": [{"name", "cost", "baseEffect", "rules": [{"ifPresent", "ifAbsent", "removes", "adds"}]}],
//	  "effects":    [{"name", "multiplier"}],
//	  "products":   [{"name", "basePrice", "initialEffect"}]
//	}
func LoadCatalogFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(string(raw))
}

// ParseCatalog parses a JSON catalog document.
func ParseCatalog(dataJSON string) (*Catalog, error) {
	if !gjson.Valid(dataJSON) {
		return nil, fmt.Errorf("catalog data is not valid JSON")
	}

	var substances []Substance
	gjson.Get(dataJSON, "substances").ForEach(func(_, v gjson.Result) bool {
		s := Substance{
			Name:       v.Get("name").String(),
			Cost:       v.Get("cost").Float(),
			BaseEffect: v.Get("baseEffect").String(),
		}
		v.Get("rules").ForEach(func(_, r gjson.Result) bool {
			s.Rules = append(s.Rules, Rule{
				IfPresent: readStringSlice(r.Get("ifPresent")),
				IfAbsent:  readStringSlice(r.Get("ifAbsent")),
				Removes:   readStringSlice(r.Get("removes")),
				Adds:      r.Get("adds").String(),
			})
			return true
		})
		substances = append(substances, s)
		return true
	})

	var effects []Effect
	gjson.Get(dataJSON, "effects").ForEach(func(_, v gjson.Result) bool {
		effects = append(effects, Effect{
			Name:       v.Get("name").String(),
			Multiplier: v.Get("multiplier").Float(),
		})
		return true
	})

	var products []ProductVariety
	gjson.Get(dataJSON, "products").ForEach(func(_, v gjson.Result) bool {
		products = append(products, ProductVariety{
			Name:          v.Get("name").String(),
			BasePrice:     v.Get("basePrice").Float(),
			InitialEffect: v.Get("initialEffect").String(),
		})
		return true
	})

	if len(substances) == 0 {
		return nil, fmt.Errorf("catalog data contains no substances")
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog data contains no products")
	}

	return NewCatalog(substances, effects, products), nil
}

func readStringSlice(v gjson.Result) []string {
	var out []string
	v.ForEach(func(_, item gjson.Result) bool {
		out = append(out, item.String())
		return true
	})
	return out
}
