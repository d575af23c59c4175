package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type RedisConfig struct {
	URL     string `mapstructure:"url"`
	PlanKey string `mapstructure:"plan_key"`
	// CatalogKey holds a customized catalog, replacing the built-in one.
	CatalogKey string `mapstructure:"catalog_key"`
}

type Config struct {
	Seed        int64  `mapstructure:"seed"` // 0 seeds from the clock
	DailyTarget int    `mapstructure:"daily_target"`
	Weeks       int    `mapstructure:"weeks"`
	CatalogFile string `mapstructure:"catalog_file"`

	OutputFormat      string             `mapstructure:"output_format"` // console, json, csv or parquet
	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	OutputDestination string             `mapstructure:"output_destination"` // local or cloud
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`

	KafkaEnabled     bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList  string `mapstructure:"kafka_broker_list"`
	SessionTimeoutMs int    `mapstructure:"session_timeout_ms"`

	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`

	ListenAddr      string        `mapstructure:"listen_addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("daily_target", DefaultDailyCalorieTarget)
	v.SetDefault("weeks", 1)
	v.SetDefault("output_format", "console")
	v.SetDefault("output_folder", "nutriplan")
	v.SetDefault("output_destination", "local")
	v.SetDefault("cloud_storage.provider", "s3")
	v.SetDefault("cloud_storage.region", "us-east-1")
	v.SetDefault("kafka_broker_list", "localhost:9092")
	v.SetDefault("redis.plan_key", "nutriplan_data")
	v.SetDefault("redis.catalog_key", "nutriplan_catalog")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("shutdown_timeout", "10s")
}

// LoadConfig reads the configuration from v. A missing config file is not an
// error unless cfgFile names one explicitly.
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := v.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (cfg *Config) Validate() error {
	if cfg.DailyTarget <= 0 {
		return fmt.Errorf("daily_target must be positive, got %d", cfg.DailyTarget)
	}
	if cfg.Weeks <= 0 {
		return fmt.Errorf("weeks must be positive, got %d", cfg.Weeks)
	}
	switch cfg.OutputFormat {
	case "console", "json", "csv", "parquet":
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
	return nil
}
