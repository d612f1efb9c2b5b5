package search

import (
	"context"
	"time"

	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
)

// StoredRun is a completed search run as read back from storage.
type StoredRun struct {
	ID        string
	Engine    string
	Product   string
	MaxDepth  int
	Mix       mixing.Mix
	Profit    float64
	Sequences uint64
	Duration  time.Duration
	CreatedAt time.Time
}

// EngineResolver selects a registered engine by name. An empty name
// resolves to the default engine.
type EngineResolver interface {
	Engine(name string) (Engine, error)
}

// RunStore persists completed runs and serves the history queries.
type RunStore interface {
	RunRecorder
	Recent(ctx context.Context, limit int) ([]StoredRun, error)
	BestForProduct(ctx context.Context, product string) (*StoredRun, error)
}
