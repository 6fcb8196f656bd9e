package report

import (
	"fmt"

	"github.com/kcz17/nsbench/bench"
)

// Format renders a result as "<median> ns/iter (+/- <max-min>)", followed by
// " = <throughput> MB/s" when the benchmarked function reported bytes.
func Format(result *bench.Result) string {
	summ := result.NsIterSummary
	if result.Throughput != 0 {
		return fmt.Sprintf("%9d ns/iter (+/- %d) = %d MB/s",
			int64(summ.Median), int64(summ.Max-summ.Min), uint64(result.Throughput))
	}
	return fmt.Sprintf("%9d ns/iter (+/- %d)", int64(summ.Median), int64(summ.Max-summ.Min))
}

// FormatBatches renders the raw batch percentiles, or an empty string when no
// collector was configured.
func FormatBatches(result *bench.Result) string {
	if result.Batches == nil {
		return ""
	}
	return fmt.Sprintf("raw batches: p50 %d ns/iter, p75 %d ns/iter, p95 %d ns/iter",
		result.Batches.P50.Nanoseconds(), result.Batches.P75.Nanoseconds(), result.Batches.P95.Nanoseconds())
}
