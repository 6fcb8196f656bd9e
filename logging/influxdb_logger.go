package logging

import (
	"log"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/kcz17/nsbench/stats"
)

// influxDBLogger logs the output to an external InfluxDB instance.
type influxDBLogger struct {
	client      influxdb2.Client
	asyncWriter api.WriteAPI
}

func NewInfluxDBLogger(baseURL, authToken, org, bucket string) *influxDBLogger {
	options := influxdb2.DefaultOptions()
	options.WriteOptions().SetBatchSize(100)
	options.WriteOptions().SetFlushInterval(250)

	client := influxdb2.NewClientWithOptions(baseURL, authToken, options)
	writeAPI := client.WriteAPI(org, bucket)

	// Create a goroutine for reading and logging async write errors.
	errorsCh := writeAPI.Errors()
	go func() {
		for err := range errorsCh {
			log.Printf("influxdb2 logging async write error: %v\n", err)
		}
	}()

	return &influxDBLogger{
		client:      client,
		asyncWriter: writeAPI,
	}
}

func (l *influxDBLogger) LogRound(n uint64, summ stats.Summary, summ5 stats.Summary, loop time.Duration) {
	p := influxdb2.NewPointWithMeasurement("nsbench_round").
		AddField("n", n).
		AddField("median", summ.Median).
		AddField("mad_pct", summ.MedianAbsDevPct).
		AddField("median_5n", summ5.Median).
		AddField("mad_5n", summ5.MedianAbsDev).
		AddField("loop_seconds", loop.Seconds()).
		SetTime(time.Now())
	l.asyncWriter.WritePoint(p)
}

func (l *influxDBLogger) LogResult(summ stats.Summary, throughput float64, converged bool, roundsDiffer bool) {
	p := influxdb2.NewPointWithMeasurement("nsbench_result").
		AddField("median", summ.Median).
		AddField("min", summ.Min).
		AddField("max", summ.Max).
		AddField("mad", summ.MedianAbsDev).
		AddField("throughput", throughput).
		AddField("converged", converged).
		AddField("rounds_differ", roundsDiffer).
		SetTime(time.Now())
	l.asyncWriter.WritePoint(p)
}

// Close flushes pending points before closing the client.
func (l *influxDBLogger) Close() {
	l.asyncWriter.Flush()
	l.client.Close()
}
