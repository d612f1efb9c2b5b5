package commands

import (
	"context"
	"fmt"

	"github.com/DrakeCaesar/scheduleI/internal/application/common"
	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
)

// ToggleSearchCommand pauses a running session, resumes a paused one, or
// restarts the previous search.
type ToggleSearchCommand struct {
	Engine string
}

// StopSearchCommand terminates the active session.
type StopSearchCommand struct {
	Engine string
}

// ToggleSearchHandler executes ToggleSearchCommand.
type ToggleSearchHandler struct {
	engines appsearch.EngineResolver
}

func NewToggleSearchHandler(engines appsearch.EngineResolver) *ToggleSearchHandler {
	return &ToggleSearchHandler{engines: engines}
}

func (h *ToggleSearchHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(ToggleSearchCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type for ToggleSearchHandler: %T", request)
	}
	engine, err := h.engines.Engine(cmd.Engine)
	if err != nil {
		return nil, err
	}
	if err := engine.Toggle(ctx); err != nil {
		return nil, err
	}
	return engine.Progress(), nil
}

// StopSearchHandler executes StopSearchCommand.
type StopSearchHandler struct {
	engines appsearch.EngineResolver
}

func NewStopSearchHandler(engines appsearch.EngineResolver) *StopSearchHandler {
	return &StopSearchHandler{engines: engines}
}

func (h *StopSearchHandler) Handle(_ context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(StopSearchCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type for StopSearchHandler: %T", request)
	}
	engine, err := h.engines.Engine(cmd.Engine)
	if err != nil {
		return nil, err
	}
	if err := engine.Stop(); err != nil {
		return nil, err
	}
	return engine.Progress(), nil
}
