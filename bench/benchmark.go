package bench

import (
	"fmt"
	"math"
	"time"

	"github.com/kcz17/nsbench/batchtime"
	"github.com/kcz17/nsbench/stats"
)

// Result is the outcome of one benchmark run. It is built once by Benchmark
// and not modified afterwards.
type Result struct {
	// NsIterSummary summarises the converged ns/iter samples.
	NsIterSummary stats.Summary
	// Throughput is in MB/s (1e6 bytes). It is zero when the benchmarked
	// function never reported a byte count.
	Throughput   float64
	BytesPerIter uint64
	Converged    bool
	Rounds       int
	// Iterations is the multiplier n of the final loop iteration; the
	// summary was taken at Multiplier times this value.
	Iterations uint64
	Elapsed    time.Duration
	// RoundsDiffer is true when a Kolmogorov-Smirnov test tells the final n
	// and 5n sample sets apart, which hints at fixed per-call overhead.
	RoundsDiffer bool
	// Samples is the winsorized sample set behind NsIterSummary.
	Samples []float64
	// Batches aggregates every raw batch timing. It is nil without a
	// collector.
	Batches *batchtime.Aggregation
}

// Run benchmarks f with DefaultOptions.
func Run(f func(*Bencher)) *Result {
	result, err := Benchmark(f, DefaultOptions())
	if err != nil {
		panic(fmt.Errorf("unexpected err in Run() with default options: %w", err))
	}
	return result
}

// Benchmark samples f until its ns/iter converges and derives the
// throughput from the byte count f reported.
func Benchmark(f func(*Bencher), opts *Options) (*Result, error) {
	sampler, err := NewSampler(opts)
	if err != nil {
		return nil, fmt.Errorf("Benchmark() got err when calling NewSampler(): %w", err)
	}

	convergence := sampler.Run(f)
	bytes := sampler.Bencher().Bytes()
	result := &Result{
		NsIterSummary: convergence.Summary5,
		Throughput:    Throughput(convergence.Summary5, bytes),
		BytesPerIter:  bytes,
		Converged:     convergence.Converged,
		Rounds:        convergence.Rounds,
		Iterations:    convergence.N,
		Elapsed:       convergence.Elapsed,
		RoundsDiffer:  stats.KolmogorovSmirnovTestRejection(convergence.Samples, convergence.Samples5, stats.C95),
		Samples:       append([]float64(nil), convergence.Samples5...),
	}
	if opts.Collector != nil {
		result.Batches = opts.Collector.Aggregate()
	}

	opts.Logger.LogResult(result.NsIterSummary, result.Throughput, result.Converged, result.RoundsDiffer)
	return result, nil
}

// Throughput converts bytes processed per call into MB/s given the ns/iter
// summary. Medians below 1ns are treated as 1ns.
func Throughput(summ stats.Summary, bytesPerIter uint64) float64 {
	nsIter := math.Max(summ.Median, 1)
	itersPerSec := 1e9 / nsIter
	return float64(bytesPerIter) * itersPerSec / 1e6
}
