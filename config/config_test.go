package config

import (
	"bytes"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func loadYAML(t *testing.T, yaml string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	err := v.ReadConfig(bytes.NewBufferString(yaml))
	assert.Nilf(t, err, "expected viper.ReadConfig() has no err; got %v", err)
	return Load(v)
}

func TestLoad_Defaults(t *testing.T) {
	config, err := Load(viper.New())
	assert.Nilf(t, err, "expected Load() has no err; got %v", err)

	assert.Equal(t, 50, *config.Sampler.SamplesPerRound)
	assert.Equal(t, 5.0, *config.Sampler.WinsorizePct)
	assert.Equal(t, 5, *config.Sampler.Multiplier)
	assert.Equal(t, 0.001, *config.Sampler.TargetRoundSeconds)
	assert.Equal(t, 0.1, *config.Sampler.MinLoopSeconds)
	assert.Equal(t, 3.0, *config.Sampler.BudgetSeconds)
	assert.Equal(t, 1.0, *config.Sampler.MaxMedianAbsDevPct)
	assert.Equal(t, "noop", *config.Logging.Driver)
	assert.Equal(t, "none", *config.Collector.Driver)
	assert.Equal(t, "", *config.Output.PlotPath)
}

func TestLoad_OverridesFromFile(t *testing.T) {
	config, err := loadYAML(t, `
sampler:
  winsorizePct: 10
  budgetSeconds: 1.5
logging:
  driver: stdout
collector:
  driver: tachymeter
  window: 500
output:
  plotPath: out/hist.png
`)
	assert.Nilf(t, err, "expected Load() has no err; got %v", err)

	assert.Equal(t, 10.0, *config.Sampler.WinsorizePct)
	assert.Equal(t, 1.5, *config.Sampler.BudgetSeconds)
	assert.Equal(t, 50, *config.Sampler.SamplesPerRound)
	assert.Equal(t, "stdout", *config.Logging.Driver)
	assert.Equal(t, "tachymeter", *config.Collector.Driver)
	assert.Equal(t, 500, *config.Collector.Window)
	assert.Equal(t, "out/hist.png", *config.Output.PlotPath)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "Winsorize above 50", yaml: "sampler:\n  winsorizePct: 60\n"},
		{name: "Zero samples", yaml: "sampler:\n  samplesPerRound: 0\n"},
		{name: "Unknown logging driver", yaml: "logging:\n  driver: syslog\n"},
		{name: "Unknown collector driver", yaml: "collector:\n  driver: hdr\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadYAML(t, tt.yaml)
			assert.Error(t, err)
			_, ok := err.(validator.ValidationErrors)
			assert.Truef(t, ok, "expected validator.ValidationErrors; got %T", err)
		})
	}
}

func TestLoad_InfluxDBRequiresConnection(t *testing.T) {
	_, err := loadYAML(t, "logging:\n  driver: influxdb\n  influxdb:\n    host: http://localhost:8086\n")
	assert.Error(t, err)

	config, err := loadYAML(t, `
logging:
  driver: influxdb
  influxdb:
    host: http://localhost:8086
    token: token
    org: org
    bucket: nsbench
`)
	assert.Nilf(t, err, "expected Load() has no err; got %v", err)
	assert.Equal(t, "nsbench", *config.Logging.InfluxDB.Bucket)
}
