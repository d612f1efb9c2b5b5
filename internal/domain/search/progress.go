package search

import "time"

// WorkerProgress is the per-worker progress record reported on every tick.
// Counters are cumulative across depth levels; a finished worker's record is
// frozen at 100%.
type WorkerProgress struct {
	Substance      string
	Depth          int
	Processed      uint64
	Total          uint64
	TotalProcessed uint64
	GrandTotal     uint64
	ExecutionTime  time.Duration
}

// Freeze pins the record at full completion, used when the worker reports done.
func (p *WorkerProgress) Freeze() {
	p.Processed = p.Total
	p.TotalProcessed = p.GrandTotal
}

// ProgressSummary is the aggregate view across all workers that have
// reported at least once. Workers that have not reported contribute zero to
// both numerator and denominator, so the ratio under-estimates until every
// worker has reported.
type ProgressSummary struct {
	Processed  uint64
	GrandTotal uint64
	Ratio      float64
	Elapsed    time.Duration
	Remaining  time.Duration
}

// Summarize aggregates per-worker records into an overall completion
// estimate. Remaining is elapsed * (grand - processed) / processed, zero
// while nothing has been processed.
func Summarize(records map[string]WorkerProgress, elapsed time.Duration) ProgressSummary {
	s := ProgressSummary{Elapsed: elapsed}
	for _, r := range records {
		s.Processed += r.TotalProcessed
		s.GrandTotal += r.GrandTotal
	}
	if s.GrandTotal > 0 {
		s.Ratio = float64(s.Processed) / float64(s.GrandTotal)
	}
	if s.Processed > 0 {
		s.Remaining = time.Duration(float64(elapsed) * float64(s.GrandTotal-s.Processed) / float64(s.Processed))
	}
	return s
}

// SequenceSpace returns the number of sequences a single worker explores for
// an alphabet of size s and maximum depth d: sum over lengths 1..d of
// s^(length-1), the first position being fixed to the worker's substance.
func SequenceSpace(s int, d int) uint64 {
	var total, level uint64 = 0, 1
	for i := 0; i < d; i++ {
		total += level
		level *= uint64(s)
	}
	return total
}
