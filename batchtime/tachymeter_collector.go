package batchtime

import (
	"time"

	"github.com/jamiealquiza/tachymeter"
)

// tachymeterCollector uses the jamiealquiza/tachymeter library to keep a
// fixed-size window of the most recent batch timings.
type tachymeterCollector struct {
	tach *tachymeter.Tachymeter
}

func NewTachymeterCollector(window int) *tachymeterCollector {
	return &tachymeterCollector{tach: tachymeter.New(&tachymeter.Config{
		Size: window,
	})}
}

func (c *tachymeterCollector) Add(t time.Duration) {
	c.tach.AddTime(t)
}

func (c *tachymeterCollector) Len() int {
	return int(c.tach.Calc().Count)
}

func (c *tachymeterCollector) Aggregate() *Aggregation {
	aggregation := c.tach.Calc()
	return &Aggregation{
		P50: aggregation.Time.P50,
		P75: aggregation.Time.P75,
		P95: aggregation.Time.P95,
	}
}

func (c *tachymeterCollector) Reset() {
	c.tach.Reset()
}
