package search

import (
	"math"

	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
)

// BestResult is the best-profit mix found so far by an engine. The zero
// result carries a -Inf profit sentinel meaning "no valid result yet".
type BestResult struct {
	Mix    mixing.Mix
	Profit float64
}

// SentinelBest returns the initial no-result-yet value.
func SentinelBest() BestResult {
	return BestResult{Profit: math.Inf(-1)}
}

// IsSentinel reports whether no result has been recorded yet.
func (b BestResult) IsSentinel() bool {
	return math.IsInf(b.Profit, -1)
}

// Merge replaces the receiver with the candidate iff its profit is strictly
// greater. Ties keep the earlier result (first writer wins), which makes the
// merge idempotent and commutative over equal-profit interleavings.
// Returns true when the receiver was replaced.
func (b *BestResult) Merge(candidate BestResult) bool {
	if candidate.Profit <= b.Profit {
		return false
	}
	b.Mix = candidate.Mix.Clone()
	b.Profit = candidate.Profit
	return true
}
