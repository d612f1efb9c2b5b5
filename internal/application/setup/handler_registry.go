package setup

import (
	"fmt"

	"github.com/DrakeCaesar/scheduleI/internal/application/common"
	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
	"github.com/DrakeCaesar/scheduleI/internal/application/search/commands"
	"github.com/DrakeCaesar/scheduleI/internal/application/search/queries"
	"github.com/DrakeCaesar/scheduleI/internal/domain/shared"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	engines       map[string]appsearch.Engine
	defaultEngine string
	store         appsearch.RunStore
	clock         shared.Clock
}

var _ appsearch.EngineResolver = (*HandlerRegistry)(nil)

// NewHandlerRegistry creates a new handler registry. The store may be nil
// when run history is disabled.
func NewHandlerRegistry(store appsearch.RunStore, clock shared.Clock) *HandlerRegistry {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &HandlerRegistry{
		engines: make(map[string]appsearch.Engine),
		store:   store,
		clock:   clock,
	}
}

// AddEngine registers an engine under a name. The first engine added becomes
// the default.
func (r *HandlerRegistry) AddEngine(name string, engine appsearch.Engine) {
	if r.defaultEngine == "" {
		r.defaultEngine = name
	}
	r.engines[name] = engine
}

// Engine resolves an engine by name, or the default for an empty name.
func (r *HandlerRegistry) Engine(name string) (appsearch.Engine, error) {
	if name == "" {
		name = r.defaultEngine
	}
	engine, ok := r.engines[name]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q (registered: %v)", name, r.EngineNames())
	}
	return engine, nil
}

// EngineNames lists the registered engine names with the default first.
func (r *HandlerRegistry) EngineNames() []string {
	names := make([]string, 0, len(r.engines))
	if r.defaultEngine != "" {
		names = append(names, r.defaultEngine)
	}
	for name := range r.engines {
		if name != r.defaultEngine {
			names = append(names, name)
		}
	}
	return names
}

// RegisterSearchHandlers registers all search command and query handlers
// with the mediator
func (r *HandlerRegistry) RegisterSearchHandlers(m common.Mediator) error {
	if err := common.RegisterHandler[commands.RunSearchCommand](m, commands.NewRunSearchHandler(r)); err != nil {
		return err
	}
	if err := common.RegisterHandler[commands.ToggleSearchCommand](m, commands.NewToggleSearchHandler(r)); err != nil {
		return err
	}
	if err := common.RegisterHandler[commands.StopSearchCommand](m, commands.NewStopSearchHandler(r)); err != nil {
		return err
	}
	if err := common.RegisterHandler[commands.CompareSearchCommand](m, commands.NewCompareSearchHandler(r)); err != nil {
		return err
	}
	if err := common.RegisterHandler[queries.SearchStatusQuery](m, queries.NewSearchStatusHandler(r)); err != nil {
		return err
	}

	if r.store != nil {
		if err := common.RegisterHandler[queries.SearchHistoryQuery](m, queries.NewSearchHistoryHandler(r.store)); err != nil {
			return err
		}
		if err := common.RegisterHandler[queries.BestForProductQuery](m, queries.NewBestForProductHandler(r.store)); err != nil {
			return err
		}
	}

	return nil
}
