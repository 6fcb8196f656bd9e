package logging

import (
	"time"

	"github.com/kcz17/nsbench/stats"
)

type Logger interface {
	// LogRound is called after every iteration of the sampling loop with the
	// summaries at multipliers n and 5n.
	LogRound(n uint64, summ stats.Summary, summ5 stats.Summary, loop time.Duration)
	// LogResult is called once per benchmark with the converged summary and
	// throughput in MB/s.
	LogResult(summ stats.Summary, throughput float64, converged bool, roundsDiffer bool)
	Close()
}

// noopLogger does not perform any logging.
type noopLogger struct{}

func NewNoopLogger() *noopLogger {
	return &noopLogger{}
}

func (*noopLogger) LogRound(uint64, stats.Summary, stats.Summary, time.Duration) {
	return
}

func (*noopLogger) LogResult(stats.Summary, float64, bool, bool) {
	return
}

func (*noopLogger) Close() {
	return
}
