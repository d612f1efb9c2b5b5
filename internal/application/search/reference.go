package search

import (
	"context"

	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
	"github.com/DrakeCaesar/scheduleI/internal/domain/search"
)

// referenceStride is the number of sequences between cancellation checks and
// progress reports in the sequential walk.
const referenceStride = 1 << 12

// ReferenceSearch is the sequential brute force over the identical sequence
// space the parallel engine explores: every mix of length 1..maxDepth over
// the full alphabet, in catalog order. It is the correctness oracle for the
// parallel engine and backs the `reference` engine choice on the CLI.
func ReferenceSearch(catalog *mixing.Catalog, product *mixing.ProductVariety, maxDepth int) (search.BestResult, uint64) {
	best, visited, _ := referenceWalk(context.Background(), catalog, product, maxDepth, nil)
	return best, visited
}

// referenceWalk is the cancellable core of the sequential search. Every
// referenceStride sequences it checks ctx and, when report is non-nil, hands
// it the running visit count. Returns ctx's error when cancelled mid-walk.
func referenceWalk(ctx context.Context, catalog *mixing.Catalog, product *mixing.ProductVariety, maxDepth int, report func(visited uint64)) (search.BestResult, uint64, error) {
	best := search.SentinelBest()
	var visited uint64
	var walkErr error

	var rootEffects []string
	if product.InitialEffect != "" {
		rootEffects = []string{product.InitialEffect}
	}

	substances := catalog.Substances()
	var walk func(effects []string, cost float64, depth int, mix mixing.Mix)
	walk = func(effects []string, cost float64, depth int, mix mixing.Mix) {
		for i := range substances {
			if walkErr != nil {
				return
			}
			if visited%referenceStride == 0 && visited > 0 {
				if err := ctx.Err(); err != nil {
					walkErr = err
					return
				}
				if report != nil {
					report(visited)
				}
			}

			s := &substances[i]
			next := mixing.ApplySubstanceRules(effects, s)
			nextCost := cost + s.Cost
			seq := append(mix, s.Name)

			visited++
			profit := mixing.CalculateFinalPrice(catalog, product, next) - nextCost
			best.Merge(search.BestResult{Mix: seq, Profit: profit})

			if depth < maxDepth {
				walk(next, nextCost, depth+1, seq)
			}
		}
	}
	walk(rootEffects, 0, 1, make(mixing.Mix, 0, maxDepth))

	return best, visited, walkErr
}
