package search

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
	"github.com/DrakeCaesar/scheduleI/internal/domain/search"
	"github.com/DrakeCaesar/scheduleI/internal/domain/shared"
	"github.com/DrakeCaesar/scheduleI/pkg/utils"
)

// workerConfig is the start payload for one search worker: the assigned
// first substance, the depth bound, the session epoch and the channels it
// reports on. Workers share no mutable state; the catalog is read-only.
type workerConfig struct {
	catalog   *mixing.Catalog
	product   mixing.ProductVariety
	substance string
	maxDepth  int
	epoch     uuid.UUID
	initial   search.BestResult
	out       chan<- workerMessage
	control   <-chan controlSignal
	interval  time.Duration
	clock     shared.Clock
}

// worker enumerates every substance sequence of length 1..maxDepth whose
// first element is its assigned substance, remaining positions drawn with
// repetition from the full alphabet in catalog order. Enumeration is by
// increasing length with a lexicographic odometer per level, so visitation
// order is deterministic and each level's work count is exactly S^(depth-1).
type worker struct {
	cfg      workerConfig
	alphabet []mixing.Substance
	best     search.BestResult

	depth          int
	processed      uint64
	totalAtDepth   uint64
	totalProcessed uint64
	grandTotal     uint64
	startedAt      time.Time
	limiter        *rate.Limiter
}

// runWorker is the goroutine body. It always attempts a terminal done
// message; on cancellation the coordinator discards it by epoch anyway.
func runWorker(ctx context.Context, cfg workerConfig) {
	w := &worker{
		cfg:      cfg,
		alphabet: cfg.catalog.Substances(),
		best:     cfg.initial,
	}
	if cfg.interval > 0 {
		w.limiter = rate.NewLimiter(rate.Every(cfg.interval), 1)
	}
	w.grandTotal = search.SequenceSpace(len(w.alphabet), cfg.maxDepth)
	w.startedAt = cfg.clock.Now()

	w.enumerate(ctx)
	w.emit(ctx, workerMessage{epoch: cfg.epoch, substance: cfg.substance, kind: messageDone})
}

func (w *worker) enumerate(ctx context.Context) {
	first, err := w.cfg.catalog.Substance(w.cfg.substance)
	if err != nil {
		return
	}

	var rootEffects []string
	if w.cfg.product.InitialEffect != "" {
		rootEffects = []string{w.cfg.product.InitialEffect}
	}
	firstEffects := mixing.ApplySubstanceRules(rootEffects, first)

	size := len(w.alphabet)
	for depth := 1; depth <= w.cfg.maxDepth; depth++ {
		w.depth = depth
		w.processed = 0
		w.totalAtDepth = utils.PowUint64(uint64(size), depth-1)

		if depth == 1 {
			if err := w.checkpoint(ctx); err != nil {
				return
			}
			w.evaluate(ctx, nil, firstEffects, first.Cost)
		} else if err := w.enumerateLevel(ctx, depth, firstEffects, first.Cost); err != nil {
			return
		}

		// Unconditional end-of-level report keeps percentages exact even
		// when the rate limiter swallowed the last mid-level ticks.
		w.reportProgress(ctx)
	}
}

// enumerateLevel walks every sequence of exactly the given depth. Effect and
// cost prefixes are kept on a stack so stepping the odometer re-evaluates
// only the suffix that changed.
func (w *worker) enumerateLevel(ctx context.Context, depth int, firstEffects []string, firstCost float64) error {
	size := len(w.alphabet)
	tail := depth - 1

	idxs := make([]int, tail)
	effects := make([][]string, tail+1)
	costs := make([]float64, tail+1)
	effects[0] = firstEffects
	costs[0] = firstCost

	rebuild := func(from int) {
		for i := from; i < tail; i++ {
			s := &w.alphabet[idxs[i]]
			effects[i+1] = mixing.ApplySubstanceRules(effects[i], s)
			costs[i+1] = costs[i] + s.Cost
		}
	}
	rebuild(0)

	for {
		if err := w.checkpoint(ctx); err != nil {
			return err
		}
		w.evaluate(ctx, idxs, effects[tail], costs[tail])

		if w.limiter != nil && w.limiter.Allow() {
			w.reportProgress(ctx)
		}

		// Advance the odometer, last position fastest.
		pos := tail - 1
		for pos >= 0 {
			idxs[pos]++
			if idxs[pos] < size {
				break
			}
			idxs[pos] = 0
			pos--
		}
		if pos < 0 {
			return nil
		}
		rebuild(pos)
	}
}

// evaluate scores one complete sequence and reports a strictly improved
// local best. Never suspends: pause checks happen only between sequences.
func (w *worker) evaluate(ctx context.Context, idxs []int, effects []string, cost float64) {
	w.processed++
	w.totalProcessed++

	profit := mixing.CalculateFinalPrice(w.cfg.catalog, &w.cfg.product, effects) - cost
	if profit <= w.best.Profit {
		return
	}

	mix := make(mixing.Mix, 0, len(idxs)+1)
	mix = append(mix, w.cfg.substance)
	for _, i := range idxs {
		mix = append(mix, w.alphabet[i].Name)
	}
	w.best = search.BestResult{Mix: mix, Profit: profit}

	w.emit(ctx, workerMessage{
		epoch:     w.cfg.epoch,
		substance: w.cfg.substance,
		kind:      messageUpdate,
		best:      w.best,
	})
}

// checkpoint honors pause/resume/cancel between sequence evaluations. Pause
// blocks here until a resume arrives, so resumption continues from exactly
// the next unvisited sequence.
func (w *worker) checkpoint(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case sig := <-w.cfg.control:
		if sig != controlPause {
			return nil
		}
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case sig := <-w.cfg.control:
				if sig == controlResume {
					return nil
				}
			}
		}
	default:
		return nil
	}
}

func (w *worker) reportProgress(ctx context.Context) {
	w.emit(ctx, workerMessage{
		epoch:     w.cfg.epoch,
		substance: w.cfg.substance,
		kind:      messageProgress,
		progress: search.WorkerProgress{
			Substance:      w.cfg.substance,
			Depth:          w.depth,
			Processed:      w.processed,
			Total:          w.totalAtDepth,
			TotalProcessed: w.totalProcessed,
			GrandTotal:     w.grandTotal,
			ExecutionTime:  w.cfg.clock.Now().Sub(w.startedAt),
		},
	})
}

func (w *worker) emit(ctx context.Context, msg workerMessage) {
	select {
	case w.cfg.out <- msg:
	case <-ctx.Done():
	}
}
