package stats

import (
	"fmt"
	"math"
	"sort"
)

// PercentileOfSorted returns the pct percentile of sorted using linear
// interpolation between the two nearest ranks. The caller must sort the input
// ascending; unsorted input yields a meaningless value.
func PercentileOfSorted(sorted []float64, pct float64) float64 {
	if len(sorted) == 0 {
		panic("PercentileOfSorted() expected non-empty samples; got len = 0")
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	if pct < 0 || pct > 100 {
		panic(fmt.Sprintf("PercentileOfSorted() expected pct between 0 and 100; got pct = %v", pct))
	}
	if pct == 100 {
		return sorted[len(sorted)-1]
	}

	rank := (pct / 100) * float64(len(sorted)-1)
	lrank := math.Floor(rank)
	d := rank - lrank
	n := int(lrank)
	lo := sorted[n]
	hi := sorted[n+1]
	return lo + (hi-lo)*d
}

// Winsorize replaces values above the 100-pct percentile and below the pct
// percentile with those percentiles. Unlike trimming, the number of samples
// is preserved. samples is left sorted ascending.
//
// See: http://en.wikipedia.org/wiki/Winsorising
func Winsorize(samples []float64, pct float64) {
	if pct < 0 || pct > 50 {
		panic(fmt.Sprintf("Winsorize() expected pct between 0 and 50; got pct = %v", pct))
	}

	sort.Float64s(samples)
	lo := PercentileOfSorted(samples, pct)
	hi := PercentileOfSorted(samples, 100-pct)
	for i, sample := range samples {
		if sample > hi {
			samples[i] = hi
		} else if sample < lo {
			samples[i] = lo
		}
	}
}
