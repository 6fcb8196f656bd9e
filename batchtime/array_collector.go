package batchtime

import (
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
)

// arrayCollector keeps every batch timing. Storage and computation are both
// O(n), which is fine for a single benchmark run.
type arrayCollector struct {
	nsPerIter []float64
}

func NewArrayCollector() *arrayCollector {
	return &arrayCollector{
		nsPerIter: []float64{},
	}
}

func (c *arrayCollector) All() []float64 {
	times := make([]float64, len(c.nsPerIter))
	copy(times, c.nsPerIter)
	return times
}

func (c *arrayCollector) Add(t time.Duration) {
	c.nsPerIter = append(c.nsPerIter, float64(t))
}

func (c *arrayCollector) Len() int {
	return len(c.nsPerIter)
}

func (c *arrayCollector) Aggregate() *Aggregation {
	// The stats package requires input arrays to be non-empty.
	if len(c.nsPerIter) == 0 {
		return &Aggregation{
			P50: 0,
			P75: 0,
			P95: 0,
		}
	}

	p50, err := stats.Median(c.nsPerIter)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Aggregate() while calculating p50: %w", err))
	}
	p75, err := stats.Percentile(c.nsPerIter, 75)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Aggregate() while calculating p75: %w", err))
	}
	p95, err := stats.Percentile(c.nsPerIter, 95)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Aggregate() while calculating p95: %w", err))
	}

	return &Aggregation{
		P50: time.Duration(p50),
		P75: time.Duration(p75),
		P95: time.Duration(p95),
	}
}

func (c *arrayCollector) Reset() {
	c.nsPerIter = []float64{}
}
