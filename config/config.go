package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Sampler   Sampler   `mapstructure:"sampler" validate:"required"`
	Logging   Logging   `mapstructure:"logging" validate:"required"`
	Collector Collector `mapstructure:"collector" validate:"required"`
	Output    Output    `mapstructure:"output"`
}

type Sampler struct {
	SamplesPerRound    *int     `mapstructure:"samplesPerRound" validate:"required,min=1"`
	WinsorizePct       *float64 `mapstructure:"winsorizePct" validate:"required,min=0,max=50"`
	Multiplier         *int     `mapstructure:"multiplier" validate:"required,min=1"`
	TargetRoundSeconds *float64 `mapstructure:"targetRoundSeconds" validate:"required,gt=0"`
	MinLoopSeconds     *float64 `mapstructure:"minLoopSeconds" validate:"required,min=0"`
	BudgetSeconds      *float64 `mapstructure:"budgetSeconds" validate:"required,gt=0"`
	MaxMedianAbsDevPct *float64 `mapstructure:"maxMedianAbsDevPct" validate:"required,gt=0"`
}

type Logging struct {
	Driver   *string  `mapstructure:"driver" validate:"oneof=noop stdout influxdb"`
	InfluxDB InfluxDB `mapstructure:"influxdb"`
}

// InfluxDB fields are only required when Logging.Driver is influxdb, which
// validateInfluxDB checks.
type InfluxDB struct {
	Host   *string `mapstructure:"host"`
	Token  *string `mapstructure:"token"`
	Org    *string `mapstructure:"org"`
	Bucket *string `mapstructure:"bucket"`
}

type Collector struct {
	Driver *string `mapstructure:"driver" validate:"oneof=none array tachymeter"`
	Window *int    `mapstructure:"window" validate:"required,min=1"`
}

type Output struct {
	// PlotPath is where a histogram of the final samples is written. No plot
	// is written if it is empty.
	PlotPath *string `mapstructure:"plotPath"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("Sampler.SamplesPerRound", 50)
	v.SetDefault("Sampler.WinsorizePct", 5)
	v.SetDefault("Sampler.Multiplier", 5)
	v.SetDefault("Sampler.TargetRoundSeconds", 0.001)
	v.SetDefault("Sampler.MinLoopSeconds", 0.1)
	v.SetDefault("Sampler.BudgetSeconds", 3)
	v.SetDefault("Sampler.MaxMedianAbsDevPct", 1)

	v.SetDefault("Logging.Driver", "noop")

	v.SetDefault("Collector.Driver", "none")
	v.SetDefault("Collector.Window", 10000)

	v.SetDefault("Output.PlotPath", "")
}

// ReadConfig reads config.yaml from the working directory or /app, falling
// back to defaults when no file exists. Invalid configuration is fatal.
func ReadConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetConfigType("yaml")
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("config.yaml not found, using defaults")
		} else {
			log.Fatalf("error when reading config file: err = %s", err)
		}
	}

	config, err := Load(v)
	if err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			log.Printf("encountered validation errors:\n")
			for _, err := range validationErrs {
				fmt.Printf("\t%s\n", err.Error())
			}
			fmt.Println("Check your configuration file and try again.")
			os.Exit(1)
		}
		log.Fatalf("error occured while reading configuration: err = %s", err)
	}

	return config
}

// Load applies defaults to v, then decodes and validates it. Validation
// failures are returned unwrapped as validator.ValidationErrors.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&config); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return nil, fmt.Errorf("unable to validate config: %w", err)
		}
		return nil, err
	}
	if err := validateInfluxDB(&config.Logging); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateInfluxDB(logging *Logging) error {
	if *logging.Driver != "influxdb" {
		return nil
	}

	influx := logging.InfluxDB
	for name, field := range map[string]*string{
		"host":   influx.Host,
		"token":  influx.Token,
		"org":    influx.Org,
		"bucket": influx.Bucket,
	} {
		if field == nil || *field == "" {
			return fmt.Errorf("expected logging.influxdb.%s to be set when logging.driver is influxdb", name)
		}
	}
	return nil
}
