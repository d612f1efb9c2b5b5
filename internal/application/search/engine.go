package search

import (
	"context"
	"time"

	"github.com/DrakeCaesar/scheduleI/internal/domain/search"
	"github.com/DrakeCaesar/scheduleI/internal/domain/shared"
)

// Engine is the capability surface shared by every search implementation:
// the parallel-worker coordinator and the alternate native engine adapter.
// Callers poll BestResult and Progress while a session runs.
type Engine interface {
	// Start begins a new session. It fails when a session is already
	// active for this engine.
	Start(ctx context.Context, product string, maxDepth int) error

	// Toggle pauses a running session, resumes a paused one, and restarts
	// the previous search when no session is active.
	Toggle(ctx context.Context) error

	// Stop terminates the active session.
	Stop() error

	// BestResult returns the engine's current best mix and profit.
	BestResult() search.BestResult

	// Progress returns a point-in-time snapshot of the session.
	Progress() Snapshot

	// Wait blocks until the active session finishes (or ctx is done) and
	// returns the final best result.
	Wait(ctx context.Context) (search.BestResult, error)
}

// Snapshot is a point-in-time copy of an engine's session state, safe for
// display while the search continues.
type Snapshot struct {
	Status  shared.LifecycleStatus
	Product string
	Depth   int
	Workers map[string]search.WorkerProgress
	Summary search.ProgressSummary
}

// RunRecord describes a finished search run, handed to recorders for
// persistence and metrics.
type RunRecord struct {
	Engine     string
	Product    string
	MaxDepth   int
	Best       search.BestResult
	Sequences  uint64
	Duration   time.Duration
	FinishedAt time.Time
}

// RunRecorder receives completed run records. Implementations must tolerate
// being called from the coordinator's receive loop.
type RunRecorder interface {
	RecordRun(ctx context.Context, record RunRecord)
}
