package bench

import (
	"testing"
	"time"

	"github.com/kcz17/nsbench/batchtime"
	"github.com/kcz17/nsbench/stats"
	"github.com/stretchr/testify/assert"
)

// recordingLogger captures every loop iteration reported by the sampler.
type recordingLogger struct {
	rounds  []uint64
	results int
}

func (l *recordingLogger) LogRound(n uint64, _ stats.Summary, _ stats.Summary, _ time.Duration) {
	l.rounds = append(l.rounds, n)
}

func (l *recordingLogger) LogResult(stats.Summary, float64, bool, bool) {
	l.results++
}

func (l *recordingLogger) Close() {}

func simulatedOptions(clock *simulatedClock) *Options {
	opts := DefaultOptions()
	opts.Clock = clock
	return opts
}

func TestSampler_EstimateIterations(t *testing.T) {
	tests := []struct {
		name string
		cost time.Duration
		want uint64
	}{
		{name: "Sizes batches to 1ms", cost: time.Microsecond, want: 1000},
		{name: "Clamps slow calls to one iteration", cost: 5 * time.Millisecond, want: 1},
		{name: "Falls back when the clock did not move", cost: 0, want: fallbackIterations},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newSimulatedClock()
			sampler, err := NewSampler(simulatedOptions(clock))
			assert.Nilf(t, err, "expected NewSampler() has no err; got %v", err)

			got := sampler.estimateIterations(constantCost(clock, tt.cost))
			assert.Equal(t, tt.want, got)
		})
	}
}

// An exactly constant cost never has a MAD large enough to accept, so the
// sampler must stop on its budget. Loop iterations take 300ms, 600ms, 1.2s
// and 2.4s of simulated time, crossing the 3s budget after the fourth.
func TestSampler_Run_ConstantCostEscapesOnBudget(t *testing.T) {
	clock := newSimulatedClock()
	logger := &recordingLogger{}
	opts := simulatedOptions(clock)
	opts.Logger = logger
	sampler, err := NewSampler(opts)
	assert.Nilf(t, err, "expected NewSampler() has no err; got %v", err)

	convergence := sampler.Run(constantCost(clock, time.Microsecond))

	assert.False(t, convergence.Converged)
	assert.Equal(t, 4, convergence.Rounds)
	assert.Equal(t, uint64(8000), convergence.N)
	assert.Equal(t, 4500*time.Millisecond, convergence.Elapsed)
	assert.Equal(t, []uint64{1000, 2000, 4000, 8000}, logger.rounds)
	assert.Equal(t, 1000.0, convergence.Summary5.Median)
	assert.Equal(t, 0.0, convergence.Summary5.MedianAbsDev)
	assert.Equal(t, 0.0, convergence.Summary.MedianAbsDevPct)
	assert.Len(t, convergence.Samples5, 50)
}

func TestSampler_Run_NearConstantCostConverges(t *testing.T) {
	clock := newSimulatedClock()
	cost := stats.NewTruncatedNormal(980, 1020, 1000, 5, 42)
	sampler, err := NewSampler(simulatedOptions(clock))
	assert.Nilf(t, err, "expected NewSampler() has no err; got %v", err)

	convergence := sampler.Run(func(*Bencher) {
		clock.advance(time.Duration(cost.Rand()))
	})

	assert.LessOrEqual(t, convergence.Rounds, 4)
	assert.Lessf(t, convergence.Summary5.MedianAbsDevPct, 1.0, "expected converged MAD below 1%%; got %.3f%%", convergence.Summary5.MedianAbsDevPct)
	assert.Less(t, convergence.Summary.MedianAbsDevPct, 1.0)
	assert.InDelta(t, 1000, convergence.Summary5.Median, 5)
}

func TestSampler_Run_FeedsCollectorEveryBatch(t *testing.T) {
	clock := newSimulatedClock()
	collector := batchtime.NewArrayCollector()
	opts := simulatedOptions(clock)
	opts.Collector = collector
	sampler, err := NewSampler(opts)
	assert.Nilf(t, err, "expected NewSampler() has no err; got %v", err)

	convergence := sampler.Run(constantCost(clock, time.Microsecond))

	assert.Equal(t, 2*50*convergence.Rounds, collector.Len())
	assert.Equal(t, time.Microsecond, collector.Aggregate().P50)
}

func TestNewSampler_RejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{name: "Winsorize above 50", modify: func(o *Options) { o.WinsorizePct = 60 }},
		{name: "No samples", modify: func(o *Options) { o.SamplesPerRound = 0 }},
		{name: "Zero multiplier", modify: func(o *Options) { o.Multiplier = 0 }},
		{name: "Zero budget", modify: func(o *Options) { o.Budget = 0 }},
		{name: "Nil logger", modify: func(o *Options) { o.Logger = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(opts)
			_, err := NewSampler(opts)
			assert.Error(t, err)
		})
	}
	_, err := NewSampler(nil)
	assert.Error(t, err)
}
