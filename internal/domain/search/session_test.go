package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
	"github.com/DrakeCaesar/scheduleI/internal/domain/search"
	"github.com/DrakeCaesar/scheduleI/internal/domain/shared"
)

func newTestSession(t *testing.T, workers int) *search.SearchSession {
	t.Helper()
	product := mixing.ProductVariety{Name: "OG Kush", BasePrice: 38, InitialEffect: "Calming"}
	return search.NewSearchSession(product, 3, workers, shared.NewMockClock(time.Time{}))
}

func TestBestResult_MonotonicMerge(t *testing.T) {
	best := search.SentinelBest()
	assert.True(t, best.IsSentinel())

	// Strictly greater replaces
	assert.True(t, best.Merge(search.BestResult{Mix: mixing.Mix{"Cuke"}, Profit: 10}))
	assert.Equal(t, 10.0, best.Profit)

	// Equal keeps the earlier result (first writer wins)
	assert.False(t, best.Merge(search.BestResult{Mix: mixing.Mix{"Banana"}, Profit: 10}))
	assert.Equal(t, mixing.Mix{"Cuke"}, best.Mix)

	// Lesser never replaces
	assert.False(t, best.Merge(search.BestResult{Mix: mixing.Mix{"Banana"}, Profit: 5}))
	assert.Equal(t, 10.0, best.Profit)
}

func TestSession_EpochsAreUnique(t *testing.T) {
	a := newTestSession(t, 2)
	b := newTestSession(t, 2)

	assert.NotEqual(t, a.Epoch(), b.Epoch())
}

func TestSession_LifecycleTransitions(t *testing.T) {
	s := newTestSession(t, 2)
	assert.Equal(t, shared.LifecycleStatusPending, s.Status())

	require.NoError(t, s.Start())
	assert.True(t, s.IsActive())

	require.NoError(t, s.Pause())
	assert.True(t, s.IsPaused())

	require.NoError(t, s.Resume())
	assert.False(t, s.IsPaused())

	require.NoError(t, s.Stop())
	assert.False(t, s.IsActive())
	assert.Error(t, s.Start())
}

func TestSession_CompletesAfterAllWorkersDone(t *testing.T) {
	s := newTestSession(t, 3)
	require.NoError(t, s.Start())

	assert.False(t, s.WorkerDone("Cuke"))
	assert.False(t, s.WorkerDone("Banana"))
	assert.True(t, s.WorkerDone("Paracetamol"))
	assert.Equal(t, shared.LifecycleStatusCompleted, s.Status())
	assert.Equal(t, 0, s.ActiveWorkers())
}

func TestSession_DoneFreezesProgressRecord(t *testing.T) {
	s := newTestSession(t, 2)
	require.NoError(t, s.Start())

	s.RecordProgress(search.WorkerProgress{
		Substance: "Cuke", Depth: 2,
		Processed: 3, Total: 16,
		TotalProcessed: 7, GrandTotal: 21,
	})
	s.WorkerDone("Cuke")

	frozen := s.Progress()["Cuke"]
	assert.Equal(t, frozen.Total, frozen.Processed)
	assert.Equal(t, frozen.GrandTotal, frozen.TotalProcessed)
}

func TestSession_ProgressOverwriteIsIdempotent(t *testing.T) {
	s := newTestSession(t, 2)
	require.NoError(t, s.Start())

	record := search.WorkerProgress{Substance: "Cuke", TotalProcessed: 7, GrandTotal: 21}
	s.RecordProgress(record)
	s.RecordProgress(record)

	summary := s.Summary()
	assert.Equal(t, uint64(7), summary.Processed)
	assert.Equal(t, uint64(21), summary.GrandTotal)
}

func TestSummarize_UnderestimatesUntilAllReport(t *testing.T) {
	records := map[string]search.WorkerProgress{
		"Cuke": {Substance: "Cuke", TotalProcessed: 21, GrandTotal: 21},
	}

	// Second worker has not reported: ratio is against only the first
	// worker's grand total, an under-estimate of the true overall ratio.
	summary := search.Summarize(records, time.Second)
	assert.Equal(t, 1.0, summary.Ratio)
	assert.Equal(t, time.Duration(0), summary.Remaining)
}

func TestSummarize_RemainingEstimate(t *testing.T) {
	records := map[string]search.WorkerProgress{
		"Cuke": {Substance: "Cuke", TotalProcessed: 10, GrandTotal: 30},
	}

	summary := search.Summarize(records, 5*time.Second)
	assert.InDelta(t, 1.0/3.0, summary.Ratio, 1e-9)
	assert.Equal(t, 10*time.Second, summary.Remaining)
}

func TestSummarize_ZeroProcessed(t *testing.T) {
	summary := search.Summarize(map[string]search.WorkerProgress{}, time.Second)

	assert.Zero(t, summary.Ratio)
	assert.Zero(t, summary.Remaining)
}

func TestSequenceSpace(t *testing.T) {
	// S=2, D=2: one worker explores 1 + 2 = 3 sequences
	assert.Equal(t, uint64(3), search.SequenceSpace(2, 2))
	// S=16, D=3: 1 + 16 + 256
	assert.Equal(t, uint64(273), search.SequenceSpace(16, 3))
	assert.Equal(t, uint64(1), search.SequenceSpace(16, 1))
	assert.Equal(t, uint64(0), search.SequenceSpace(16, 0))
}
