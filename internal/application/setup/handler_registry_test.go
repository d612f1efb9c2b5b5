package setup_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrakeCaesar/scheduleI/internal/adapters/persistence"
	"github.com/DrakeCaesar/scheduleI/internal/application/common"
	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
	"github.com/DrakeCaesar/scheduleI/internal/application/search/commands"
	"github.com/DrakeCaesar/scheduleI/internal/application/search/queries"
	"github.com/DrakeCaesar/scheduleI/internal/application/setup"
	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
	"github.com/DrakeCaesar/scheduleI/internal/domain/shared"
	"github.com/DrakeCaesar/scheduleI/test/helpers"
)

func newTestRegistry(t *testing.T) (*setup.HandlerRegistry, common.Mediator) {
	t.Helper()

	catalog := mixing.NewCatalog(
		[]mixing.Substance{
			{Name: "Cuke", Cost: 2, BaseEffect: "Energizing"},
			{Name: "Banana", Cost: 2, BaseEffect: "Gingeritis"},
		},
		[]mixing.Effect{
			{Name: "Energizing", Multiplier: 0.22},
			{Name: "Gingeritis", Multiplier: 0.20},
		},
		[]mixing.ProductVariety{
			{Name: "Test Batch", BasePrice: 35},
		},
	)

	store := persistence.NewGormSearchRunRepository(helpers.NewTestDB(t))
	clock := shared.NewRealClock()

	registry := setup.NewHandlerRegistry(store, clock)
	registry.AddEngine(appsearch.EngineParallel,
		appsearch.NewCoordinator(catalog, clock, 20*time.Millisecond, store))

	mediator := common.NewMediator()
	require.NoError(t, registry.RegisterSearchHandlers(mediator))

	return registry, mediator
}

func TestHandlerRegistry_RunSearchThroughMediator(t *testing.T) {
	_, mediator := newTestRegistry(t)

	response, err := mediator.Send(context.Background(), commands.RunSearchCommand{
		Product:  "Test Batch",
		MaxDepth: 2,
	})
	require.NoError(t, err)

	result := response.(commands.RunSearchResult)
	assert.Equal(t, mixing.Mix{"Cuke", "Banana"}, result.Best.Mix)
	assert.Equal(t, 46.0, result.Best.Profit)
	assert.Equal(t, shared.LifecycleStatusCompleted, result.Snapshot.Status)
}

func TestHandlerRegistry_RunIsRecordedInHistory(t *testing.T) {
	_, mediator := newTestRegistry(t)
	ctx := context.Background()

	_, err := mediator.Send(ctx, commands.RunSearchCommand{Product: "Test Batch", MaxDepth: 2})
	require.NoError(t, err)

	response, err := mediator.Send(ctx, queries.SearchHistoryQuery{Limit: 5})
	require.NoError(t, err)

	runs := response.([]appsearch.StoredRun)
	require.Len(t, runs, 1)
	assert.Equal(t, appsearch.EngineParallel, runs[0].Engine)
	assert.Equal(t, 46.0, runs[0].Profit)

	response, err = mediator.Send(ctx, queries.BestForProductQuery{Product: "Test Batch"})
	require.NoError(t, err)
	best := response.(*appsearch.StoredRun)
	require.NotNil(t, best)
	assert.Equal(t, mixing.Mix{"Cuke", "Banana"}, best.Mix)
}

func TestHandlerRegistry_UnknownEngine(t *testing.T) {
	_, mediator := newTestRegistry(t)

	_, err := mediator.Send(context.Background(), commands.RunSearchCommand{
		Product:  "Test Batch",
		MaxDepth: 2,
		Engine:   "quantum",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown engine")
}

func TestHandlerRegistry_DefaultEngineIsFirstAdded(t *testing.T) {
	registry, _ := newTestRegistry(t)

	engine, err := registry.Engine("")
	require.NoError(t, err)
	assert.NotNil(t, engine)
	assert.Equal(t, []string{appsearch.EngineParallel}, registry.EngineNames())
}
