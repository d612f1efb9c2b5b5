package native

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/DrakeCaesar/scheduleI/internal/application/common"
	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
	"github.com/DrakeCaesar/scheduleI/internal/domain/search"
	"github.com/DrakeCaesar/scheduleI/internal/domain/shared"
)

// EngineNative names the alternate engine in run records.
const EngineNative = "native"

// fakeTickInterval drives the simulated progress counter while the native
// call is in flight.
const fakeTickInterval = 250 * time.Millisecond

// Adapter runs the separately compiled implementation of the same search as
// an external process and exposes it behind the Engine interface. The native
// engine is a single blocking computation with no incremental callbacks, so
// progress is simulated: a counter ticks asymptotically toward (never
// reaching) 100% until the call returns, then jumps to 100%.
type Adapter struct {
	catalog   *mixing.Catalog
	binary    string
	timeout   time.Duration
	fallback  mixing.Mix
	clock     shared.Clock
	recorders []appsearch.RunRecorder

	mu           sync.RWMutex
	session      *search.SearchSession
	best         search.BestResult
	fakeProgress float64
	cancel       context.CancelFunc
	done         chan struct{}
}

var _ appsearch.Engine = (*Adapter)(nil)

// Config carries the adapter's settings from the engine config section.
type Config struct {
	// Binary is the native engine executable (name on PATH or full path).
	Binary string
	// Timeout bounds one native call; zero means no bound.
	Timeout time.Duration
	// Fallback is substituted when the engine's mix cannot be decoded.
	Fallback mixing.Mix
}

// NewAdapter creates an adapter over the given catalog.
func NewAdapter(catalog *mixing.Catalog, cfg Config, clock shared.Clock, recorders ...appsearch.RunRecorder) *Adapter {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Adapter{
		catalog:   catalog,
		binary:    cfg.Binary,
		timeout:   cfg.Timeout,
		fallback:  cfg.Fallback.Clone(),
		clock:     clock,
		recorders: recorders,
		best:      search.SentinelBest(),
	}
}

// Start serializes the inputs, launches the native process and begins the
// simulated progress ticker. A missing binary is a configuration error fatal
// to this engine's session only; nothing is left running on any error path.
func (a *Adapter) Start(ctx context.Context, productName string, maxDepth int) error {
	logger := common.LoggerFromContext(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session != nil && a.session.IsActive() {
		return shared.NewSessionActiveError(a.session.Epoch().String())
	}
	if maxDepth < 1 {
		return shared.NewValidationError("maxDepth", "must be at least 1")
	}

	product, err := a.catalog.Product(productName)
	if err != nil {
		return err
	}

	path, err := exec.LookPath(a.binary)
	if err != nil {
		return shared.NewEngineUnavailableError(EngineNative, fmt.Sprintf("entry point %q not found", a.binary))
	}

	productArg, substanceArg, effectArg, ruleArg, err := serializeInputs(a.catalog, product)
	if err != nil {
		return err
	}

	if a.cancel != nil {
		a.cancel()
	}

	session := search.NewSearchSession(*product, maxDepth, 1, a.clock)
	if err := session.Start(); err != nil {
		return err
	}

	var runCtx context.Context
	var cancel context.CancelFunc
	if a.timeout > 0 {
		runCtx, cancel = context.WithTimeout(context.Background(), a.timeout)
	} else {
		runCtx, cancel = context.WithCancel(context.Background())
	}
	done := make(chan struct{})

	a.session = session
	a.best = search.SentinelBest()
	a.fakeProgress = 0
	a.cancel = cancel
	a.done = done

	go a.run(runCtx, session, done, path, []string{productArg, substanceArg, effectArg, ruleArg, strconv.Itoa(maxDepth)}, logger)
	return nil
}

// run executes one native call. The deferred block guarantees the session
// flags and the progress ticker end in a clean stopped state regardless of
// where the call failed.
func (a *Adapter) run(ctx context.Context, session *search.SearchSession, done chan struct{}, path string, args []string, logger common.SearchLogger) {
	tickerCtx, stopTicker := context.WithCancel(ctx)
	defer func() {
		stopTicker()
		a.mu.Lock()
		if session.IsActive() {
			_ = session.Stop()
		}
		a.mu.Unlock()
		close(done)
	}()

	go a.fakeTicker(tickerCtx, session)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		a.fail(session, fmt.Errorf("native engine call failed: %w (stderr: %s)", err, truncate(stderr.String(), 200)), logger)
		return
	}

	best, usedFallback, err := decodeResult(stdout.String(), a.fallback)
	if err != nil {
		a.fail(session, err, logger)
		return
	}
	if usedFallback {
		logger.Log("WARN", "native engine mix could not be decoded, substituted fallback", map[string]interface{}{
			"fallback": fmt.Sprintf("%v", a.fallback),
		})
	}

	a.mu.Lock()
	a.best.Merge(best)
	a.fakeProgress = 1
	session.RecordProgress(search.WorkerProgress{
		Substance:      EngineNative,
		Depth:          session.MaxDepth(),
		TotalProcessed: a.totalSpace(session),
		GrandTotal:     a.totalSpace(session),
		ExecutionTime:  session.Runtime(),
	})
	session.WorkerDone(EngineNative)
	record := appsearch.RunRecord{
		Engine:     EngineNative,
		Product:    session.Product().Name,
		MaxDepth:   session.MaxDepth(),
		Best:       a.best,
		Sequences:  a.totalSpace(session),
		Duration:   session.Runtime(),
		FinishedAt: a.clock.Now(),
	}
	a.mu.Unlock()

	for _, r := range a.recorders {
		r.RecordRun(ctx, record)
	}
	logger.Log("INFO", "native engine run completed", map[string]interface{}{
		"product": record.Product,
		"profit":  record.Best.Profit,
	})
}

func (a *Adapter) fail(session *search.SearchSession, err error, logger common.SearchLogger) {
	a.mu.Lock()
	if session.IsActive() {
		_ = session.Fail(err)
	}
	a.mu.Unlock()
	logger.Log("ERROR", "native engine session failed", map[string]interface{}{
		"error": err.Error(),
	})
}

// fakeTicker advances the simulated percentage while the call is in flight.
// Each tick closes a fixed fraction of the remaining distance, so the value
// increases monotonically but never reaches 100% on its own.
func (a *Adapter) fakeTicker(ctx context.Context, session *search.SearchSession) {
	ticker := time.NewTicker(fakeTickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.mu.Lock()
			if a.session == session && a.fakeProgress < 1 {
				a.fakeProgress += (0.99 - a.fakeProgress) * 0.05
				total := a.totalSpace(session)
				session.RecordProgress(search.WorkerProgress{
					Substance:      EngineNative,
					Depth:          session.MaxDepth(),
					TotalProcessed: uint64(a.fakeProgress * float64(total)),
					GrandTotal:     total,
					ExecutionTime:  session.Runtime(),
				})
			}
			a.mu.Unlock()
		}
	}
}

func (a *Adapter) totalSpace(session *search.SearchSession) uint64 {
	return uint64(len(a.catalog.Substances())) * search.SequenceSpace(len(a.catalog.Substances()), session.MaxDepth())
}

// Toggle is unsupported: the native call is a single blocking computation
// with no suspension points.
func (a *Adapter) Toggle(context.Context) error {
	return shared.NewSessionNotRunningError("native engine does not support pause/resume")
}

// Stop terminates the in-flight native call.
func (a *Adapter) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil || !a.session.IsActive() {
		return shared.NewSessionNotRunningError("no active native engine session")
	}
	a.cancel()
	return a.session.Stop()
}

// BestResult returns the normalized result of the last completed call.
func (a *Adapter) BestResult() search.BestResult {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return search.BestResult{Mix: a.best.Mix.Clone(), Profit: a.best.Profit}
}

// Progress returns the simulated (or final) progress snapshot.
func (a *Adapter) Progress() appsearch.Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.session == nil {
		return appsearch.Snapshot{Status: shared.LifecycleStatusPending}
	}
	return appsearch.Snapshot{
		Status:  a.session.Status(),
		Product: a.session.Product().Name,
		Depth:   a.session.MaxDepth(),
		Workers: a.session.Progress(),
		Summary: a.session.Summary(),
	}
}

// Wait blocks until the in-flight call finishes and surfaces its failure,
// if any.
func (a *Adapter) Wait(ctx context.Context) (search.BestResult, error) {
	a.mu.RLock()
	done := a.done
	session := a.session
	a.mu.RUnlock()

	if done == nil {
		return search.SentinelBest(), shared.NewSessionNotRunningError("no active native engine session")
	}
	select {
	case <-ctx.Done():
		return a.BestResult(), ctx.Err()
	case <-done:
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if err := session.LastError(); err != nil {
		return search.BestResult{Mix: a.best.Mix.Clone(), Profit: a.best.Profit}, err
	}
	return search.BestResult{Mix: a.best.Mix.Clone(), Profit: a.best.Profit}, nil
}
