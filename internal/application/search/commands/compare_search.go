package commands

import (
	"context"
	"fmt"

	"github.com/DrakeCaesar/scheduleI/internal/application/common"
	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
)

// CompareSearchCommand runs the same search on two engines, one after the
// other, and reports whether they agree on the best profit.
type CompareSearchCommand struct {
	Product  string
	MaxDepth int
	Engines  []string
}

// CompareSearchResult holds the per-engine outcomes in run order.
type CompareSearchResult struct {
	Runs  []RunSearchResult
	Agree bool
}

// CompareSearchHandler executes CompareSearchCommand.
type CompareSearchHandler struct {
	engines appsearch.EngineResolver
}

func NewCompareSearchHandler(engines appsearch.EngineResolver) *CompareSearchHandler {
	return &CompareSearchHandler{engines: engines}
}

func (h *CompareSearchHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(CompareSearchCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type for CompareSearchHandler: %T", request)
	}
	if len(cmd.Engines) < 2 {
		return nil, fmt.Errorf("comparison needs at least two engines")
	}

	runner := NewRunSearchHandler(h.engines)
	result := CompareSearchResult{Agree: true}
	for _, name := range cmd.Engines {
		response, err := runner.Handle(ctx, RunSearchCommand{
			Product:  cmd.Product,
			MaxDepth: cmd.MaxDepth,
			Engine:   name,
		})
		if err != nil {
			return nil, fmt.Errorf("engine %q: %w", name, err)
		}
		run := response.(RunSearchResult)
		run.Engine = name
		if len(result.Runs) > 0 && run.Best.Profit != result.Runs[0].Best.Profit {
			result.Agree = false
		}
		result.Runs = append(result.Runs, run)
	}

	return result, nil
}
