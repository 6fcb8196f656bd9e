package bench

import (
	"fmt"
	"math"
	"time"

	"github.com/kcz17/nsbench/stats"
)

// fallbackIterations is used when the calibration batch was too fast for
// the clock to register.
const fallbackIterations = 1000000

// Convergence is the outcome of a Sampler run.
type Convergence struct {
	// Summary5 is the summary at the larger multiplier of the last loop
	// iteration and is the benchmark's estimate.
	Summary5 stats.Summary
	// Summary is the summary at n of the last loop iteration.
	Summary stats.Summary
	// Samples and Samples5 are the winsorized sample sets behind Summary and
	// Summary5.
	Samples  []float64
	Samples5 []float64
	// N is the multiplier used by the last loop iteration.
	N uint64
	// Rounds is the number of loop iterations run.
	Rounds int
	// Converged is false if the loop stopped because it ran out of budget.
	Converged bool
	// Elapsed is the cumulative wall time of the loop.
	Elapsed time.Duration
}

// Sampler drives a Bencher until consecutive rounds at n and 5n agree. The
// comparison exposes fixed per-call overhead, and doubling n after every
// disagreement amortises it.
type Sampler struct {
	bencher *Bencher
	opts    Options
}

func NewSampler(opts *Options) (*Sampler, error) {
	if opts == nil {
		return nil, fmt.Errorf("NewSampler() expected options; got nil")
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("NewSampler() got invalid options: %w", err)
	}

	return &Sampler{
		bencher: NewBencher(opts.Clock),
		opts:    *opts,
	}, nil
}

func (s *Sampler) Bencher() *Bencher {
	return s.bencher
}

// Run benchmarks f until the estimate converges or the budget is spent.
func (s *Sampler) Run(f func(*Bencher)) *Convergence {
	n := s.estimateIterations(f)

	samples := make([]float64, s.opts.SamplesPerRound)
	samples5 := make([]float64, s.opts.SamplesPerRound)
	var total time.Duration
	for rounds := 1; ; rounds++ {
		loopStart := s.opts.Clock.Now()
		summ := s.collect(n, samples, f)
		summ5 := s.collect(n*s.opts.Multiplier, samples5, f)
		loop := s.opts.Clock.Now().Sub(loopStart)
		total += loop
		s.opts.Logger.LogRound(n, summ, summ5, loop)

		converged := loop > s.opts.MinLoopTime &&
			summ.MedianAbsDevPct < s.opts.MaxMADPct &&
			math.Abs(summ.Median-summ5.Median) < summ5.MedianAbsDev
		if converged || total > s.opts.Budget {
			return &Convergence{
				Summary5:  summ5,
				Summary:   summ,
				Samples:   samples,
				Samples5:  samples5,
				N:         n,
				Rounds:    rounds,
				Converged: converged,
				Elapsed:   total,
			}
		}

		n *= 2
	}
}

// estimateIterations times a single call and sizes batches to take roughly
// TargetRound. A call slower than TargetRound still gets one iteration per
// batch; the statistics absorb the extra noise.
func (s *Sampler) estimateIterations(f func(*Bencher)) uint64 {
	s.bencher.BenchN(1, f)
	if s.bencher.Elapsed() == 0 {
		return fallbackIterations
	}

	n := uint64(float64(s.opts.TargetRound) / math.Max(s.bencher.NsPerIter(), 1))
	if n == 0 {
		n = 1
	}
	return n
}

// collect fills samples with one ns/iter measurement per batch of n calls,
// then winsorizes and summarises them.
func (s *Sampler) collect(n uint64, samples []float64, f func(*Bencher)) stats.Summary {
	for i := range samples {
		s.bencher.BenchN(n, f)
		samples[i] = s.bencher.NsPerIter()
		if s.opts.Collector != nil {
			s.opts.Collector.Add(time.Duration(samples[i]))
		}
	}

	stats.Winsorize(samples, s.opts.WinsorizePct)
	return stats.NewSummary(samples)
}
