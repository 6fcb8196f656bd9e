package logging

import (
	"log"
	"time"

	"github.com/kcz17/nsbench/stats"
)

// stdoutLogger logs the output to standard output.
type stdoutLogger struct{}

func NewStdoutLogger() *stdoutLogger {
	return &stdoutLogger{}
}

func (*stdoutLogger) LogRound(n uint64, summ stats.Summary, summ5 stats.Summary, loop time.Duration) {
	log.Printf("n: %d, median: %.3f ns, median(5n): %.3f ns, mad(5n): %.3f ns, mad%%: %.3f, loop: %s\n",
		n, summ.Median, summ5.Median, summ5.MedianAbsDev, summ.MedianAbsDevPct, loop)
}

func (*stdoutLogger) LogResult(summ stats.Summary, throughput float64, converged bool, roundsDiffer bool) {
	log.Printf("median: %.3f ns, range: %.3f ns, throughput: %.3f MB/s, converged: %t, rounds differ: %t\n",
		summ.Median, summ.Max-summ.Min, throughput, converged, roundsDiffer)
}

func (*stdoutLogger) Close() {
	return
}
