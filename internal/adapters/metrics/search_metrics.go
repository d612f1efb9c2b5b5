package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
)

// SearchMetricsCollector records completed search runs. It implements the
// run recorder interface so engines feed it the same records they hand to
// persistence.
type SearchMetricsCollector struct {
	runsTotal          *prometheus.CounterVec
	runDuration        *prometheus.HistogramVec
	sequencesProcessed *prometheus.CounterVec
	bestProfit         *prometheus.GaugeVec
}

var _ appsearch.RunRecorder = (*SearchMetricsCollector)(nil)

// NewSearchMetricsCollector creates a new search metrics collector
func NewSearchMetricsCollector() *SearchMetricsCollector {
	return &SearchMetricsCollector{
		// Completed runs by engine and product
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "runs_total",
				Help:      "Total number of completed search runs by engine and product",
			},
			[]string{"engine", "product"},
		),

		// Run duration histogram
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "run_duration_seconds",
				Help:      "Search run duration distribution",
				Buckets:   []float64{0.1, 0.5, 1.0, 5.0, 15.0, 60.0, 300.0, 900.0},
			},
			[]string{"engine"},
		),

		// Sequences evaluated counter
		sequencesProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "sequences_processed_total",
				Help:      "Total number of substance sequences evaluated",
			},
			[]string{"engine"},
		),

		// Best profit found per product
		bestProfit: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "best_profit",
				Help:      "Highest profit found for a product in the latest run",
			},
			[]string{"engine", "product"},
		),
	}
}

// Register registers all search metrics with the Prometheus registry
func (c *SearchMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	collectors := []prometheus.Collector{
		c.runsTotal,
		c.runDuration,
		c.sequencesProcessed,
		c.bestProfit,
	}

	for _, collector := range collectors {
		if err := Registry.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

// RecordRun records a completed search run
func (c *SearchMetricsCollector) RecordRun(_ context.Context, record appsearch.RunRecord) {
	c.runsTotal.WithLabelValues(record.Engine, record.Product).Inc()
	c.runDuration.WithLabelValues(record.Engine).Observe(record.Duration.Seconds())
	c.sequencesProcessed.WithLabelValues(record.Engine).Add(float64(record.Sequences))
	c.bestProfit.WithLabelValues(record.Engine, record.Product).Set(record.Best.Profit)
}
