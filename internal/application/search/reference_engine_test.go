package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
	"github.com/DrakeCaesar/scheduleI/internal/domain/shared"
)

func TestReferenceEngine_DepthTwoExample(t *testing.T) {
	catalog := twoSubstanceCatalog()
	engine := appsearch.NewReferenceEngine(catalog, nil)

	require.NoError(t, engine.Start(context.Background(), "Test Batch", 2))
	best := waitForBest(t, engine)

	assert.InDelta(t, 46.0, best.Profit, 1e-9)
	assert.Len(t, best.Mix, 2)

	snapshot := engine.Progress()
	assert.Equal(t, shared.LifecycleStatusCompleted, snapshot.Status)
	assert.Equal(t, uint64(6), snapshot.Summary.Processed)
	assert.Equal(t, uint64(6), snapshot.Summary.GrandTotal)
}

func TestReferenceEngine_MatchesParallelEngine(t *testing.T) {
	catalog := twoSubstanceCatalog()

	reference := appsearch.NewReferenceEngine(catalog, nil)
	require.NoError(t, reference.Start(context.Background(), "Test Batch", 3))
	fromReference := waitForBest(t, reference)

	coordinator := appsearch.NewCoordinator(catalog, nil, 0)
	require.NoError(t, coordinator.Start(context.Background(), "Test Batch", 3))
	fromParallel := waitForBest(t, coordinator)

	assert.InDelta(t, fromParallel.Profit, fromReference.Profit, 1e-9)
}

func TestReferenceEngine_StartWhileActiveFails(t *testing.T) {
	catalog := twoSubstanceCatalog()
	engine := appsearch.NewReferenceEngine(catalog, nil)

	require.NoError(t, engine.Start(context.Background(), "Test Batch", 25))
	defer func() { _ = engine.Stop() }()

	err := engine.Start(context.Background(), "Test Batch", 2)
	require.Error(t, err)
}

func TestReferenceEngine_StopCancelsWalk(t *testing.T) {
	catalog := twoSubstanceCatalog()
	engine := appsearch.NewReferenceEngine(catalog, nil)

	require.NoError(t, engine.Start(context.Background(), "Test Batch", 40))
	require.NoError(t, engine.Stop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := engine.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, shared.LifecycleStatusStopped, engine.Progress().Status)
}

func TestReferenceEngine_ToggleUnsupported(t *testing.T) {
	engine := appsearch.NewReferenceEngine(twoSubstanceCatalog(), nil)
	require.Error(t, engine.Toggle(context.Background()))
}

func TestReferenceEngine_UnknownProduct(t *testing.T) {
	engine := appsearch.NewReferenceEngine(twoSubstanceCatalog(), nil)
	require.Error(t, engine.Start(context.Background(), "Moon Dust", 2))
}
