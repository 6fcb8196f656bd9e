package batchtime

import "time"

type Aggregation struct {
	P50 time.Duration // P50 is the 50th percentile batch ns/iter.
	P75 time.Duration // P75 is the 75th percentile batch ns/iter.
	P95 time.Duration // P95 is the 95th percentile batch ns/iter.
}

// Collector records the raw per-batch ns/iter of a benchmark run before any
// winsorizing, so the spread the sampler discarded can still be inspected.
type Collector interface {
	Add(t time.Duration)     // Add records the ns/iter of one batch.
	Len() int                // Len gets the number of batches recorded.
	Aggregate() *Aggregation // Aggregate calculates percentiles over the recorded batches.
	Reset()                  // Reset resets the state of the collector for reuse.
}
