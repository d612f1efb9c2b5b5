package native

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
	"github.com/DrakeCaesar/scheduleI/internal/domain/search"
)

// decodeResult normalizes the native engine's raw output into the engine's
// {mix, profit} shape. The engine is supposed to return `profit` plus an
// ordered `mixArray`; older builds emit the mix as a keyed mapping under
// `mix`, or only under the secondary `bestMix.mix` accessor. A mapping is
// reconstructed by filtering string-typed values in iteration order; when
// nothing decodes, the fixed fallback mix is substituted and flagged so the
// caller can log it rather than present fallback data as genuine.
func decodeResult(raw string, fallback mixing.Mix) (search.BestResult, bool, error) {
	if !gjson.Valid(raw) {
		return search.BestResult{}, false, fmt.Errorf("native engine output is not valid JSON: %q", truncate(raw, 120))
	}

	profit := gjson.Get(raw, "profit")
	if !profit.Exists() {
		return search.BestResult{}, false, fmt.Errorf("native engine output has no profit field")
	}

	mix := decodeMix(gjson.Get(raw, "mixArray"))
	if mix == nil {
		mix = decodeMix(gjson.Get(raw, "mix"))
	}
	if mix == nil {
		mix = decodeMix(gjson.Get(raw, "bestMix.mix"))
	}

	usedFallback := false
	if len(mix) == 0 {
		mix = fallback.Clone()
		usedFallback = true
	}

	return search.BestResult{Mix: mix, Profit: profit.Float()}, usedFallback, nil
}

// decodeMix accepts an ordered array of strings or a keyed mapping whose
// string-typed values are collected in iteration order. Non-string entries
// are dropped. Returns nil when the value is missing entirely.
func decodeMix(value gjson.Result) mixing.Mix {
	if !value.Exists() {
		return nil
	}

	var mix mixing.Mix
	value.ForEach(func(_, item gjson.Result) bool {
		if item.Type == gjson.String {
			mix = append(mix, item.String())
		}
		return true
	})
	if mix == nil {
		// Present but empty or undecodable: distinguish from missing so
		// the fallback path triggers.
		mix = mixing.Mix{}
	}
	return mix
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
