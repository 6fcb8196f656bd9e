package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/kcz17/nsbench/batchtime"
	"github.com/kcz17/nsbench/logging"
)

type Options struct {
	Clock  Clock
	Logger logging.Logger
	// Collector receives the raw ns/iter of every batch. It may be nil.
	Collector batchtime.Collector
	// SamplesPerRound is the number of batches timed at each multiplier.
	SamplesPerRound int
	// WinsorizePct is the percentile each round is winsorized at, between 0
	// and 50.
	WinsorizePct float64
	// Multiplier scales n for the second round of every loop iteration.
	Multiplier uint64
	// TargetRound is the duration a single batch is sized to take.
	TargetRound time.Duration
	// MinLoopTime is the wall time a loop iteration must exceed before its
	// result may be accepted.
	MinLoopTime time.Duration
	// Budget bounds the cumulative wall time of the sampling loop.
	Budget time.Duration
	// MaxMADPct is the largest MAD, as a percentage of the median, accepted
	// as converged.
	MaxMADPct float64
}

func DefaultOptions() *Options {
	return &Options{
		Clock:           NewMonotonicClock(),
		Logger:          logging.NewNoopLogger(),
		Collector:       nil,
		SamplesPerRound: 50,
		WinsorizePct:    5,
		Multiplier:      5,
		TargetRound:     time.Millisecond,
		MinLoopTime:     100 * time.Millisecond,
		Budget:          3 * time.Second,
		MaxMADPct:       1,
	}
}

func (o *Options) validate() error {
	if o.Clock == nil {
		return errors.New("expected Clock to be set; got nil")
	}
	if o.Logger == nil {
		return errors.New("expected Logger to be set; got nil")
	}
	if o.SamplesPerRound < 1 {
		return fmt.Errorf("expected SamplesPerRound >= 1; got %d", o.SamplesPerRound)
	}
	if o.WinsorizePct < 0 || o.WinsorizePct > 50 {
		return fmt.Errorf("expected WinsorizePct between 0 and 50; got %v", o.WinsorizePct)
	}
	if o.Multiplier < 1 {
		return fmt.Errorf("expected Multiplier >= 1; got %d", o.Multiplier)
	}
	if o.TargetRound <= 0 || o.Budget <= 0 || o.MinLoopTime < 0 {
		return fmt.Errorf("expected positive durations; got TargetRound = %s, MinLoopTime = %s, Budget = %s", o.TargetRound, o.MinLoopTime, o.Budget)
	}
	return nil
}
