package bench

import "time"

// Bencher times batches of calls and carries the byte count a benchmarked
// function reports. A Bencher is owned by a single benchmark run and must not
// be shared between goroutines.
type Bencher struct {
	clock      Clock         // Used to read the current time in a testable manner.
	iterations uint64        // Number of calls made in the last batch.
	duration   time.Duration // Elapsed time of the last batch.
	bytes      uint64        // Bytes processed per call, set by the benchmarked function.
}

func NewBencher(clock Clock) *Bencher {
	return &Bencher{clock: clock}
}

// SetBytes records the number of bytes processed by a single call. Only the
// last value written before the benchmark finishes is used.
func (b *Bencher) SetBytes(n uint64) {
	b.bytes = n
}

func (b *Bencher) Bytes() uint64 {
	return b.bytes
}

// BenchN calls f exactly iterations times, timing the whole batch rather than
// each call. The byte count survives across batches.
func (b *Bencher) BenchN(iterations uint64, f func(*Bencher)) {
	b.iterations = iterations
	b.duration = 0

	start := b.clock.Now()
	for i := uint64(0); i < iterations; i++ {
		f(b)
	}
	b.duration = b.clock.Now().Sub(start)
}

// NsPerIter returns the mean nanoseconds per call of the last batch, or 0 if
// the batch made no calls.
func (b *Bencher) NsPerIter() float64 {
	if b.iterations == 0 {
		return 0
	}
	return float64(b.duration) / float64(b.iterations)
}

func (b *Bencher) Elapsed() time.Duration {
	return b.duration
}
