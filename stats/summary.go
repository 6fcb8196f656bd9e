package stats

import (
	"math"
	"sort"
)

// madScale rescales the MAD so it estimates the standard deviation of a
// normally distributed sample.
const madScale = 1.4826

// Summary is a snapshot of a sample set. It is always derived from scratch by
// NewSummary and never updated.
type Summary struct {
	Max    float64
	Min    float64
	Median float64
	// MedianAbsDev is the scaled median absolute deviation.
	MedianAbsDev float64
	// MedianAbsDevPct is MedianAbsDev as a percentage of Median. A zero
	// median gives 0 when there is no deviation and +Inf otherwise.
	MedianAbsDevPct float64
}

// NewSummary summarises samples without modifying them. samples must be
// non-empty.
func NewSummary(samples []float64) Summary {
	if len(samples) == 0 {
		panic("NewSummary() expected non-empty samples; got len = 0")
	}

	min, max := samples[0], samples[0]
	for _, sample := range samples[1:] {
		if sample > max {
			max = sample
		}
		if sample < min {
			min = sample
		}
	}

	med := median(samples)
	absDevs := make([]float64, len(samples))
	for i, sample := range samples {
		absDevs[i] = math.Abs(med - sample)
	}
	mad := median(absDevs) * madScale

	return Summary{
		Max:             max,
		Min:             min,
		Median:          med,
		MedianAbsDev:    mad,
		MedianAbsDevPct: pctOf(mad, med),
	}
}

// median sorts a copy of samples so the caller's ordering is untouched.
func median(samples []float64) float64 {
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)
	return PercentileOfSorted(sorted, 50)
}

func pctOf(mad, median float64) float64 {
	if median == 0 {
		if mad == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return 100 * mad / median
}
