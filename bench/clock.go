package bench

import "time"

// Clock reads the current time. time.Time carries a monotonic reading, so
// differences between two Now calls are immune to wall clock adjustments.
type Clock interface {
	Now() time.Time
}

type MonotonicClock struct{}

func NewMonotonicClock() MonotonicClock {
	return MonotonicClock{}
}

func (MonotonicClock) Now() time.Time { return time.Now() }
