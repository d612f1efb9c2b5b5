package search

import (
	"context"
	"sync"

	"github.com/DrakeCaesar/scheduleI/internal/application/common"
	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
	"github.com/DrakeCaesar/scheduleI/internal/domain/search"
	"github.com/DrakeCaesar/scheduleI/internal/domain/shared"
)

// EngineReference names the sequential oracle engine in run records.
const EngineReference = "reference"

// ReferenceEngine exposes the sequential brute force behind the Engine
// interface as a single-worker session. It exists so results can be checked
// against the parallel engine from the CLI, not for throughput.
type ReferenceEngine struct {
	catalog   *mixing.Catalog
	clock     shared.Clock
	recorders []RunRecorder

	mu      sync.RWMutex
	session *search.SearchSession
	cancel  context.CancelFunc
	done    chan struct{}
}

var _ Engine = (*ReferenceEngine)(nil)

// NewReferenceEngine creates a sequential engine over the given catalog.
func NewReferenceEngine(catalog *mixing.Catalog, clock shared.Clock, recorders ...RunRecorder) *ReferenceEngine {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &ReferenceEngine{
		catalog:   catalog,
		clock:     clock,
		recorders: recorders,
	}
}

// Start launches the sequential walk in a background goroutine. Fails when a
// session is already active.
func (e *ReferenceEngine) Start(ctx context.Context, productName string, maxDepth int) error {
	logger := common.LoggerFromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != nil && e.session.IsActive() {
		return shared.NewSessionActiveError(e.session.Epoch().String())
	}
	if maxDepth < 1 {
		return shared.NewValidationError("maxDepth", "must be at least 1")
	}

	product, err := e.catalog.Product(productName)
	if err != nil {
		return err
	}

	if e.cancel != nil {
		e.cancel()
	}

	session := search.NewSearchSession(*product, maxDepth, 1, e.clock)
	if err := session.Start(); err != nil {
		return err
	}

	walkCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	e.session = session
	e.cancel = cancel
	e.done = done

	logger.Log("INFO", "reference search started", map[string]interface{}{
		"epoch":   session.Epoch().String(),
		"product": productName,
		"depth":   maxDepth,
	})

	go e.run(walkCtx, session, done, product, maxDepth, logger)
	return nil
}

// run performs one sequential walk. The deferred block guarantees the
// session ends in a clean stopped state on every exit path.
func (e *ReferenceEngine) run(ctx context.Context, session *search.SearchSession, done chan struct{}, product *mixing.ProductVariety, maxDepth int, logger common.SearchLogger) {
	defer func() {
		e.mu.Lock()
		if session.IsActive() {
			_ = session.Stop()
		}
		e.mu.Unlock()
		close(done)
	}()

	total := e.totalSpace(maxDepth)
	best, visited, err := referenceWalk(ctx, e.catalog, product, maxDepth, func(visited uint64) {
		e.mu.Lock()
		if e.session == session {
			session.RecordProgress(search.WorkerProgress{
				Substance:      EngineReference,
				Depth:          maxDepth,
				Processed:      visited,
				Total:          total,
				TotalProcessed: visited,
				GrandTotal:     total,
				ExecutionTime:  session.Runtime(),
			})
		}
		e.mu.Unlock()
	})
	if err != nil {
		return
	}

	e.mu.Lock()
	session.MergeBest(best)
	session.RecordProgress(search.WorkerProgress{
		Substance:      EngineReference,
		Depth:          maxDepth,
		Processed:      visited,
		Total:          total,
		TotalProcessed: visited,
		GrandTotal:     total,
		ExecutionTime:  session.Runtime(),
	})
	session.WorkerDone(EngineReference)
	record := RunRecord{
		Engine:     EngineReference,
		Product:    session.Product().Name,
		MaxDepth:   maxDepth,
		Best:       session.Best(),
		Sequences:  visited,
		Duration:   session.Runtime(),
		FinishedAt: e.clock.Now(),
	}
	e.mu.Unlock()

	for _, r := range e.recorders {
		r.RecordRun(ctx, record)
	}
	logger.Log("INFO", "reference search completed", map[string]interface{}{
		"product":   record.Product,
		"profit":    record.Best.Profit,
		"sequences": record.Sequences,
	})
}

func (e *ReferenceEngine) totalSpace(maxDepth int) uint64 {
	size := len(e.catalog.Substances())
	return uint64(size) * search.SequenceSpace(size, maxDepth)
}

// Toggle is unsupported: the walk is one recursion with no suspension points.
func (e *ReferenceEngine) Toggle(context.Context) error {
	return shared.NewSessionNotRunningError("reference engine does not support pause/resume")
}

// Stop cancels the in-flight walk.
func (e *ReferenceEngine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil || !e.session.IsActive() {
		return shared.NewSessionNotRunningError("no active reference search session")
	}
	e.cancel()
	return e.session.Stop()
}

// BestResult returns the best mix found so far; the sentinel before any run.
func (e *ReferenceEngine) BestResult() search.BestResult {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.session == nil {
		return search.SentinelBest()
	}
	return e.session.Best()
}

// Progress returns a display-safe snapshot of the current session.
func (e *ReferenceEngine) Progress() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.session == nil {
		return Snapshot{Status: shared.LifecycleStatusPending}
	}
	return Snapshot{
		Status:  e.session.Status(),
		Product: e.session.Product().Name,
		Depth:   e.session.MaxDepth(),
		Workers: e.session.Progress(),
		Summary: e.session.Summary(),
	}
}

// Wait blocks until the walk finishes (or ctx is done) and returns the final
// best result.
func (e *ReferenceEngine) Wait(ctx context.Context) (search.BestResult, error) {
	e.mu.RLock()
	done := e.done
	e.mu.RUnlock()

	if done == nil {
		return search.SentinelBest(), shared.NewSessionNotRunningError("no active reference search session")
	}
	select {
	case <-ctx.Done():
		return e.BestResult(), ctx.Err()
	case <-done:
		return e.BestResult(), nil
	}
}
