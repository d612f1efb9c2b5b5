package search_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
	"github.com/DrakeCaesar/scheduleI/internal/domain/search"
	"github.com/DrakeCaesar/scheduleI/internal/domain/shared"
)

// twoSubstanceCatalog is the depth-2 example space: with S=2 there are
// exactly S*(1+S) = 6 sequences, [Cuke], [Cuke Cuke], [Cuke Banana],
// [Banana], [Banana Cuke], [Banana Banana].
func twoSubstanceCatalog() *mixing.Catalog {
	return mixing.NewCatalog(
		[]mixing.Substance{
			{Name: "Cuke", Cost: 2, BaseEffect: "Energizing"},
			{Name: "Banana", Cost: 2, BaseEffect: "Gingeritis"},
		},
		[]mixing.Effect{
			{Name: "Energizing", Multiplier: 0.22},
			{Name: "Gingeritis", Multiplier: 0.20},
		},
		[]mixing.ProductVariety{
			{Name: "Test Batch", BasePrice: 35, InitialEffect: ""},
		},
	)
}

func waitForBest(t *testing.T, engine appsearch.Engine) search.BestResult {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	best, err := engine.Wait(ctx)
	require.NoError(t, err)
	return best
}

func TestCoordinator_DepthTwoExample(t *testing.T) {
	catalog := twoSubstanceCatalog()
	coordinator := appsearch.NewCoordinator(catalog, nil, 0)

	require.NoError(t, coordinator.Start(context.Background(), "Test Batch", 2))
	best := waitForBest(t, coordinator)

	// Both effects stack for any two-substance mix:
	// round(35 * 1.42) = 50, cost 4, profit 46.
	assert.InDelta(t, 46.0, best.Profit, 1e-9)
	assert.Len(t, best.Mix, 2)

	snapshot := coordinator.Progress()
	assert.Equal(t, shared.LifecycleStatusCompleted, snapshot.Status)
	assert.Equal(t, uint64(6), snapshot.Summary.Processed)
	assert.Equal(t, uint64(6), snapshot.Summary.GrandTotal)
	assert.Equal(t, 1.0, snapshot.Summary.Ratio)
}

func TestCoordinator_CompletenessCounters(t *testing.T) {
	catalog := mixing.DefaultCatalog()
	coordinator := appsearch.NewCoordinator(catalog, nil, 0)

	require.NoError(t, coordinator.Start(context.Background(), "Green Crack", 3))
	waitForBest(t, coordinator)

	// S=16, D=3: S*(S^D-1)/(S-1) = 16 * 4095 / 15 = 4368 sequences total.
	snapshot := coordinator.Progress()
	var grand, processed uint64
	for _, record := range snapshot.Workers {
		grand += record.GrandTotal
		processed += record.TotalProcessed
	}
	assert.Equal(t, uint64(4368), grand)
	assert.Equal(t, uint64(4368), processed)
	assert.Len(t, snapshot.Workers, 16)
}

func TestCoordinator_RoundTripMatchesReference(t *testing.T) {
	catalog := mixing.DefaultCatalog()
	product, err := catalog.Product("OG Kush")
	require.NoError(t, err)

	expected, visited := appsearch.ReferenceSearch(catalog, product, 3)
	assert.Equal(t, uint64(4368), visited)

	coordinator := appsearch.NewCoordinator(catalog, nil, 0)
	require.NoError(t, coordinator.Start(context.Background(), "OG Kush", 3))
	best := waitForBest(t, coordinator)

	// Mixes may differ only in tie-break cases; the maximum profit may not.
	assert.InDelta(t, expected.Profit, best.Profit, 1e-9)
}

func TestCoordinator_StartWhileActiveFails(t *testing.T) {
	catalog := mixing.DefaultCatalog()
	coordinator := appsearch.NewCoordinator(catalog, nil, 0)

	require.NoError(t, coordinator.Start(context.Background(), "OG Kush", 5))
	defer func() { _ = coordinator.Stop() }()

	err := coordinator.Start(context.Background(), "Meth", 2)

	var active *shared.SessionActiveError
	require.ErrorAs(t, err, &active)
}

func TestCoordinator_UnknownProduct(t *testing.T) {
	coordinator := appsearch.NewCoordinator(mixing.DefaultCatalog(), nil, 0)

	err := coordinator.Start(context.Background(), "Oregano", 2)

	var unknown *shared.UnknownProductError
	require.ErrorAs(t, err, &unknown)
}

func TestCoordinator_PauseResumeVisitsEverySequenceOnce(t *testing.T) {
	catalog := mixing.DefaultCatalog()
	coordinator := appsearch.NewCoordinator(catalog, nil, 0)

	require.NoError(t, coordinator.Start(context.Background(), "Meth", 4))

	require.NoError(t, coordinator.Toggle(context.Background()))
	assert.Equal(t, shared.LifecycleStatusPaused, coordinator.Progress().Status)

	require.NoError(t, coordinator.Toggle(context.Background()))
	assert.Equal(t, shared.LifecycleStatusRunning, coordinator.Progress().Status)

	waitForBest(t, coordinator)

	// No sequence skipped, none revisited: counters land exactly on the
	// S=16, D=4 space size 16*(16^4-1)/15 = 69904.
	snapshot := coordinator.Progress()
	assert.Equal(t, uint64(69904), snapshot.Summary.Processed)
	assert.Equal(t, uint64(69904), snapshot.Summary.GrandTotal)
}

func TestCoordinator_StopTerminatesSession(t *testing.T) {
	catalog := mixing.DefaultCatalog()
	coordinator := appsearch.NewCoordinator(catalog, nil, 0)

	require.NoError(t, coordinator.Start(context.Background(), "Cocaine", 6))
	require.NoError(t, coordinator.Stop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := coordinator.Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, shared.LifecycleStatusStopped, coordinator.Progress().Status)
	assert.Error(t, coordinator.Stop())
}

func TestCoordinator_ToggleRestartsAfterCompletion(t *testing.T) {
	catalog := twoSubstanceCatalog()
	coordinator := appsearch.NewCoordinator(catalog, nil, 0)

	require.NoError(t, coordinator.Start(context.Background(), "Test Batch", 2))
	first := waitForBest(t, coordinator)

	// Toggle with no active session re-runs the previous search.
	require.NoError(t, coordinator.Toggle(context.Background()))
	second := waitForBest(t, coordinator)

	assert.Equal(t, first.Profit, second.Profit)
}

func TestCoordinator_ToggleWithNoHistoryFails(t *testing.T) {
	coordinator := appsearch.NewCoordinator(mixing.DefaultCatalog(), nil, 0)

	err := coordinator.Toggle(context.Background())

	var notRunning *shared.SessionNotRunningError
	require.ErrorAs(t, err, &notRunning)
}

// captureRecorder collects completed run records.
type captureRecorder struct {
	mu      sync.Mutex
	records []appsearch.RunRecord
}

func (r *captureRecorder) RecordRun(_ context.Context, record appsearch.RunRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
}

func (r *captureRecorder) all() []appsearch.RunRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]appsearch.RunRecord(nil), r.records...)
}

func TestCoordinator_RecordsCompletedRun(t *testing.T) {
	recorder := &captureRecorder{}
	coordinator := appsearch.NewCoordinator(twoSubstanceCatalog(), nil, 0, recorder)

	require.NoError(t, coordinator.Start(context.Background(), "Test Batch", 2))
	waitForBest(t, coordinator)

	records := recorder.all()
	require.Len(t, records, 1)
	assert.Equal(t, appsearch.EngineParallel, records[0].Engine)
	assert.Equal(t, "Test Batch", records[0].Product)
	assert.Equal(t, 2, records[0].MaxDepth)
	assert.Equal(t, uint64(6), records[0].Sequences)
	assert.InDelta(t, 46.0, records[0].Best.Profit, 1e-9)
}

func TestCoordinator_BestIsMonotonicDuringRun(t *testing.T) {
	catalog := mixing.DefaultCatalog()
	coordinator := appsearch.NewCoordinator(catalog, nil, 0)

	require.NoError(t, coordinator.Start(context.Background(), "Sour Diesel", 4))

	last := coordinator.BestResult().Profit
	deadline := time.After(30 * time.Second)
	for coordinator.Progress().Status == shared.LifecycleStatusRunning {
		current := coordinator.BestResult().Profit
		assert.GreaterOrEqual(t, current, last)
		last = current
		select {
		case <-deadline:
			t.Fatal("search did not finish in time")
		default:
		}
	}
	waitForBest(t, coordinator)
}
