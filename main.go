package main

import (
	"fmt"
	"log"
	"time"

	"github.com/kcz17/nsbench/batchtime"
	"github.com/kcz17/nsbench/bench"
	"github.com/kcz17/nsbench/config"
	"github.com/kcz17/nsbench/logging"
	"github.com/kcz17/nsbench/report"
)

// sink keeps the example workload from being optimised away.
var sink uint64

func factorial(n uint64) uint64 {
	if n > 0 {
		return factorial(n-1) * n
	}
	return 1
}

func simpleBench(*bench.Bencher) {
	sink = factorial(100)
}

func main() {
	conf := config.ReadConfig()

	logger := newLogger(&conf.Logging)
	defer logger.Close()

	opts := benchOptions(&conf.Sampler)
	opts.Logger = logger
	opts.Collector = newCollector(&conf.Collector)

	result, err := bench.Benchmark(simpleBench, opts)
	if err != nil {
		log.Fatalf("expected bench.Benchmark() returns nil err; got err = %v", err)
	}

	fmt.Println(report.Format(result))
	if batches := report.FormatBatches(result); batches != "" {
		fmt.Println(batches)
	}
	if !result.Converged {
		log.Printf("benchmark stopped on its %s budget before converging", opts.Budget)
	}

	if path := *conf.Output.PlotPath; path != "" {
		if err := report.SaveHistogram(result.Samples, path); err != nil {
			log.Printf("could not save histogram: err = %v", err)
		}
	}
}

func newLogger(conf *config.Logging) logging.Logger {
	switch *conf.Driver {
	case "stdout":
		return logging.NewStdoutLogger()
	case "influxdb":
		return logging.NewInfluxDBLogger(
			*conf.InfluxDB.Host,
			*conf.InfluxDB.Token,
			*conf.InfluxDB.Org,
			*conf.InfluxDB.Bucket,
		)
	default:
		return logging.NewNoopLogger()
	}
}

func newCollector(conf *config.Collector) batchtime.Collector {
	switch *conf.Driver {
	case "array":
		return batchtime.NewArrayCollector()
	case "tachymeter":
		return batchtime.NewTachymeterCollector(*conf.Window)
	default:
		return nil
	}
}

func benchOptions(conf *config.Sampler) *bench.Options {
	opts := bench.DefaultOptions()
	opts.SamplesPerRound = *conf.SamplesPerRound
	opts.WinsorizePct = *conf.WinsorizePct
	opts.Multiplier = uint64(*conf.Multiplier)
	opts.TargetRound = seconds(*conf.TargetRoundSeconds)
	opts.MinLoopTime = seconds(*conf.MinLoopSeconds)
	opts.Budget = seconds(*conf.BudgetSeconds)
	opts.MaxMADPct = *conf.MaxMedianAbsDevPct
	return opts
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
