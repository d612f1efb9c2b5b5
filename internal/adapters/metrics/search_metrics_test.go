package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
	"github.com/DrakeCaesar/scheduleI/internal/domain/search"
)

func TestSearchMetricsCollector_RecordRun(t *testing.T) {
	InitRegistry()
	t.Cleanup(func() { Registry = nil })

	collector := NewSearchMetricsCollector()
	require.NoError(t, collector.Register())

	collector.RecordRun(context.Background(), appsearch.RunRecord{
		Engine:    "parallel",
		Product:   "OG Kush",
		MaxDepth:  3,
		Best:      search.BestResult{Mix: mixing.Mix{"Cuke", "Banana"}, Profit: 67},
		Sequences: 4368,
		Duration:  2 * time.Second,
	})

	families, err := Registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["schedulei_search_runs_total"])
	assert.True(t, names["schedulei_search_run_duration_seconds"])
	assert.True(t, names["schedulei_search_sequences_processed_total"])
	assert.True(t, names["schedulei_search_best_profit"])
}

func TestSearchMetricsCollector_RegisterWithoutRegistry(t *testing.T) {
	Registry = nil
	collector := NewSearchMetricsCollector()
	assert.NoError(t, collector.Register())
}
