package search

import (
	"time"

	"github.com/google/uuid"

	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
	"github.com/DrakeCaesar/scheduleI/internal/domain/shared"
)

// SearchSession is the state of one engine's search run: the product and
// depth under search, the lifecycle flags, the per-worker progress registry
// and the session-wide best result. The owning coordinator is the only
// mutator; workers report by value and are correlated back to a session by
// epoch, never by a running flag, so a stale message from a terminated
// worker can never corrupt a newer session.
type SearchSession struct {
	epoch    uuid.UUID
	product  mixing.ProductVariety
	maxDepth int

	lifecycle *shared.LifecycleStateMachine
	clock     shared.Clock

	activeWorkers int
	spawned       int
	best          BestResult
	progress      map[string]WorkerProgress
}

// NewSearchSession creates a session in PENDING state with a fresh epoch and
// the sentinel best result.
func NewSearchSession(product mixing.ProductVariety, maxDepth, workers int, clock shared.Clock) *SearchSession {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &SearchSession{
		epoch:         uuid.New(),
		product:       product,
		maxDepth:      maxDepth,
		lifecycle:     shared.NewLifecycleStateMachine(clock),
		clock:         clock,
		activeWorkers: workers,
		spawned:       workers,
		best:          SentinelBest(),
		progress:      make(map[string]WorkerProgress, workers),
	}
}

// Epoch identifies this session; messages carrying another epoch are stale.
func (s *SearchSession) Epoch() uuid.UUID {
	return s.epoch
}

// Product returns the product variety under search.
func (s *SearchSession) Product() mixing.ProductVariety {
	return s.product
}

// MaxDepth returns the depth bound fixed for the session's lifetime.
func (s *SearchSession) MaxDepth() int {
	return s.maxDepth
}

// Status returns the lifecycle status.
func (s *SearchSession) Status() shared.LifecycleStatus {
	return s.lifecycle.Status()
}

// IsActive reports whether the session is running or paused.
func (s *SearchSession) IsActive() bool {
	return s.lifecycle.IsActive()
}

// IsPaused reports whether the session is paused.
func (s *SearchSession) IsPaused() bool {
	return s.lifecycle.IsPaused()
}

// Start transitions the session to RUNNING.
func (s *SearchSession) Start() error {
	return s.lifecycle.Start()
}

// Pause suspends the session.
func (s *SearchSession) Pause() error {
	return s.lifecycle.Pause()
}

// Resume continues a paused session.
func (s *SearchSession) Resume() error {
	return s.lifecycle.Resume()
}

// Stop terminates the session before completion.
func (s *SearchSession) Stop() error {
	return s.lifecycle.Stop()
}

// Fail marks the session failed.
func (s *SearchSession) Fail(err error) error {
	return s.lifecycle.Fail(err)
}

// LastError returns the failure recorded by Fail, if any.
func (s *SearchSession) LastError() error {
	return s.lifecycle.LastError()
}

// Runtime returns how long the session has been (or was) running.
func (s *SearchSession) Runtime() time.Duration {
	return s.lifecycle.RuntimeDuration()
}

// MergeBest applies the monotonic replace-if-strictly-greater rule and
// reports whether the session best changed.
func (s *SearchSession) MergeBest(candidate BestResult) bool {
	return s.best.Merge(candidate)
}

// Best returns a copy of the session-wide best result.
func (s *SearchSession) Best() BestResult {
	return BestResult{Mix: s.best.Mix.Clone(), Profit: s.best.Profit}
}

// RecordProgress stores or replaces a worker's progress record. Re-applying
// the same record is a no-op overwrite, never a double count.
func (s *SearchSession) RecordProgress(p WorkerProgress) {
	s.progress[p.Substance] = p
}

// WorkerDone freezes the worker's record at 100% and decrements the active
// count. The returned flag is true exactly when every spawned worker has
// reported done, regardless of message interleaving.
func (s *SearchSession) WorkerDone(substance string) (finished bool) {
	if r, ok := s.progress[substance]; ok {
		r.Freeze()
		s.progress[substance] = r
	}
	if s.activeWorkers > 0 {
		s.activeWorkers--
	}
	if s.activeWorkers == 0 && s.lifecycle.IsActive() {
		_ = s.lifecycle.Complete()
		return true
	}
	return false
}

// ActiveWorkers returns how many workers have not reported done yet.
func (s *SearchSession) ActiveWorkers() int {
	return s.activeWorkers
}

// Workers returns how many workers the session spawned.
func (s *SearchSession) Workers() int {
	return s.spawned
}

// Progress returns a copy of the per-worker progress registry.
func (s *SearchSession) Progress() map[string]WorkerProgress {
	out := make(map[string]WorkerProgress, len(s.progress))
	for k, v := range s.progress {
		out[k] = v
	}
	return out
}

// Summary aggregates the per-worker records into an overall estimate.
func (s *SearchSession) Summary() ProgressSummary {
	return Summarize(s.progress, s.lifecycle.RuntimeDuration())
}
