package commands

import (
	"context"
	"fmt"

	"github.com/DrakeCaesar/scheduleI/internal/application/common"
	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
	"github.com/DrakeCaesar/scheduleI/internal/domain/search"
)

// RunSearchCommand starts a session on the named engine and waits for it to
// finish. An empty Engine selects the default engine.
type RunSearchCommand struct {
	Product  string
	MaxDepth int
	Engine   string
}

// RunSearchResult carries the final best mix and the closing snapshot.
type RunSearchResult struct {
	Engine   string
	Best     search.BestResult
	Snapshot appsearch.Snapshot
}

// RunSearchHandler executes RunSearchCommand.
type RunSearchHandler struct {
	engines appsearch.EngineResolver
}

func NewRunSearchHandler(engines appsearch.EngineResolver) *RunSearchHandler {
	return &RunSearchHandler{engines: engines}
}

func (h *RunSearchHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(RunSearchCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type for RunSearchHandler: %T", request)
	}

	engine, err := h.engines.Engine(cmd.Engine)
	if err != nil {
		return nil, err
	}

	if err := engine.Start(ctx, cmd.Product, cmd.MaxDepth); err != nil {
		return nil, fmt.Errorf("failed to start search: %w", err)
	}

	best, err := engine.Wait(ctx)
	if err != nil {
		// The caller went away; stop the session rather than leaking it.
		_ = engine.Stop()
		return nil, fmt.Errorf("search interrupted: %w", err)
	}

	return RunSearchResult{Engine: cmd.Engine, Best: best, Snapshot: engine.Progress()}, nil
}
