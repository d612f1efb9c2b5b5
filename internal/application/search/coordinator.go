package search

import (
	"context"
	"sync"
	"time"

	"github.com/DrakeCaesar/scheduleI/internal/application/common"
	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
	"github.com/DrakeCaesar/scheduleI/internal/domain/search"
	"github.com/DrakeCaesar/scheduleI/internal/domain/shared"
)

// EngineParallel names the primary parallel-worker engine in run records.
const EngineParallel = "parallel"

// messageBuffer sizes the shared worker→coordinator channel. Workers block
// (not drop) when it fills, so FIFO per worker is preserved.
const messageBuffer = 256

// controlBuffer sizes each worker's control channel. Control traffic is
// human-cadence toggles; the buffer absorbs a pause/resume burst without
// blocking the caller.
const controlBuffer = 8

// Coordinator is the primary search engine: it owns one worker goroutine per
// substance, merges their best-result reports, aggregates progress and
// exposes pause/resume/stop. All session state is mutated inside the single
// receive loop or under the coordinator lock; workers communicate by value
// over channels only.
type Coordinator struct {
	catalog   *mixing.Catalog
	clock     shared.Clock
	interval  time.Duration
	recorders []RunRecorder

	mu       sync.RWMutex
	session  *search.SearchSession
	cancel   context.CancelFunc
	controls []chan controlSignal
	done     chan struct{}

	lastProduct string
	lastDepth   int
}

var _ Engine = (*Coordinator)(nil)

// NewCoordinator creates a coordinator over the given catalog.
// progressInterval bounds the cadence of mid-level progress reports from each
// worker; recorders receive a RunRecord when a session completes.
func NewCoordinator(catalog *mixing.Catalog, clock shared.Clock, progressInterval time.Duration, recorders ...RunRecorder) *Coordinator {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Coordinator{
		catalog:   catalog,
		clock:     clock,
		interval:  progressInterval,
		recorders: recorders,
	}
}

// Start spawns one worker per substance, each seeded with that substance as
// the mandatory first element. Fails when a session is already active; a
// finished previous session is torn down and its stragglers are ignored by
// epoch.
func (c *Coordinator) Start(ctx context.Context, productName string, maxDepth int) error {
	logger := common.LoggerFromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil && c.session.IsActive() {
		return shared.NewSessionActiveError(c.session.Epoch().String())
	}
	if maxDepth < 1 {
		return shared.NewValidationError("maxDepth", "must be at least 1")
	}

	product, err := c.catalog.Product(productName)
	if err != nil {
		return err
	}

	// Terminate leftovers from the previous session before a new epoch
	// begins. Their late messages carry the old epoch and are dropped.
	if c.cancel != nil {
		c.cancel()
	}

	substances := c.catalog.Substances()
	session := search.NewSearchSession(*product, maxDepth, len(substances), c.clock)
	if err := session.Start(); err != nil {
		return err
	}

	workCtx, cancel := context.WithCancel(context.Background())
	messages := make(chan workerMessage, messageBuffer)
	controls := make([]chan controlSignal, len(substances))

	for i := range substances {
		control := make(chan controlSignal, controlBuffer)
		controls[i] = control
		go runWorker(workCtx, workerConfig{
			catalog:   c.catalog,
			product:   *product,
			substance: substances[i].Name,
			maxDepth:  maxDepth,
			epoch:     session.Epoch(),
			initial:   session.Best(),
			out:       messages,
			control:   control,
			interval:  c.interval,
			clock:     c.clock,
		})
	}

	done := make(chan struct{})
	c.session = session
	c.cancel = cancel
	c.controls = controls
	c.done = done
	c.lastProduct = productName
	c.lastDepth = maxDepth

	logger.Log("INFO", "search session started", map[string]interface{}{
		"epoch":   session.Epoch().String(),
		"product": productName,
		"depth":   maxDepth,
		"workers": len(substances),
	})

	go c.receiveLoop(workCtx, session, messages, done, logger)
	return nil
}

// Toggle pauses a running session, resumes a paused one, or restarts the
// previous search when nothing is active.
func (c *Coordinator) Toggle(ctx context.Context) error {
	c.mu.Lock()

	if c.session == nil || !c.session.IsActive() {
		product, depth := c.lastProduct, c.lastDepth
		c.mu.Unlock()
		if product == "" {
			return shared.NewSessionNotRunningError("no search to toggle: start one first")
		}
		return c.Start(ctx, product, depth)
	}
	defer c.mu.Unlock()

	if c.session.IsPaused() {
		if err := c.session.Resume(); err != nil {
			return err
		}
		c.broadcast(controlResume)
		return nil
	}

	if err := c.session.Pause(); err != nil {
		return err
	}
	c.broadcast(controlPause)
	return nil
}

// Stop terminates the active session. Workers are cancelled, not paused.
func (c *Coordinator) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil || !c.session.IsActive() {
		return shared.NewSessionNotRunningError("no active search session")
	}
	c.cancel()
	return c.session.Stop()
}

// BestResult returns the session-wide best found so far; the sentinel when
// no session ever ran.
func (c *Coordinator) BestResult() search.BestResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.session == nil {
		return search.SentinelBest()
	}
	return c.session.Best()
}

// Progress returns a display-safe snapshot of the current session.
func (c *Coordinator) Progress() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.session == nil {
		return Snapshot{Status: shared.LifecycleStatusPending}
	}
	return Snapshot{
		Status:  c.session.Status(),
		Product: c.session.Product().Name,
		Depth:   c.session.MaxDepth(),
		Workers: c.session.Progress(),
		Summary: c.session.Summary(),
	}
}

// Wait blocks until the current session's receive loop ends, then returns
// the final best result.
func (c *Coordinator) Wait(ctx context.Context) (search.BestResult, error) {
	c.mu.RLock()
	done := c.done
	c.mu.RUnlock()

	if done == nil {
		return search.SentinelBest(), shared.NewSessionNotRunningError("no active search session")
	}
	select {
	case <-ctx.Done():
		return c.BestResult(), ctx.Err()
	case <-done:
		return c.BestResult(), nil
	}
}

// broadcast fans a control signal out to every worker. Sends never block:
// a worker that already finished stops draining its channel, and the buffer
// absorbs normal toggle traffic.
func (c *Coordinator) broadcast(sig controlSignal) {
	for _, control := range c.controls {
		select {
		case control <- sig:
		default:
		}
	}
}

// receiveLoop is the coordinator's single thread of control: it merges
// update/progress/done messages until every worker reported done or the
// session is cancelled. Merge and aggregation are commutative and idempotent
// across worker interleavings; per-worker FIFO is given by the channel.
func (c *Coordinator) receiveLoop(ctx context.Context, session *search.SearchSession, messages <-chan workerMessage, done chan struct{}, logger common.SearchLogger) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			c.mu.Lock()
			if session.IsActive() {
				_ = session.Stop()
			}
			c.mu.Unlock()
			return
		case msg := <-messages:
			if c.apply(session, msg, logger) {
				record := c.buildRecord(session)
				for _, r := range c.recorders {
					r.RecordRun(ctx, record)
				}
				logger.Log("INFO", "search session completed", map[string]interface{}{
					"epoch":     session.Epoch().String(),
					"profit":    record.Best.Profit,
					"sequences": record.Sequences,
					"duration":  record.Duration.String(),
				})
				return
			}
		}
	}
}

// apply merges one worker message into the session, returning true when the
// session just completed.
func (c *Coordinator) apply(session *search.SearchSession, msg workerMessage, logger common.SearchLogger) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Stale epoch: a terminated worker from an older session.
	if msg.epoch != session.Epoch() {
		return false
	}

	switch msg.kind {
	case messageUpdate:
		if session.MergeBest(msg.best) {
			logger.Log("DEBUG", "new best mix", map[string]interface{}{
				"substance": msg.substance,
				"profit":    msg.best.Profit,
			})
		}
	case messageProgress:
		session.RecordProgress(msg.progress)
	case messageDone:
		return session.WorkerDone(msg.substance)
	}
	return false
}

func (c *Coordinator) buildRecord(session *search.SearchSession) RunRecord {
	summary := session.Summary()
	return RunRecord{
		Engine:     EngineParallel,
		Product:    session.Product().Name,
		MaxDepth:   session.MaxDepth(),
		Best:       session.Best(),
		Sequences:  summary.Processed,
		Duration:   session.Runtime(),
		FinishedAt: c.clock.Now(),
	}
}
