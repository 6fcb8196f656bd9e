package bench

import "time"

// simulatedClock provides us control over the exact time and nanoseconds to
// advance by, so the sampler's timing decisions become deterministic.
type simulatedClock struct {
	t time.Time
}

func newSimulatedClock() *simulatedClock {
	return &simulatedClock{t: time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *simulatedClock) Now() time.Time { return c.t }

func (c *simulatedClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// constantCost returns a benchmarked function whose every call costs exactly
// cost on the simulated clock.
func constantCost(clock *simulatedClock, cost time.Duration) func(*Bencher) {
	return func(*Bencher) {
		clock.advance(cost)
	}
}
