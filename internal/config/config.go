package config

import (
	"errors"
	"fmt"

	"geohash-api/internal/geohash"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress     string `mapstructure:"SERVER_ADDRESS"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	GinMode           string `mapstructure:"GIN_MODE"`
	PrecisionRequired bool   `mapstructure:"PRECISION_REQUIRED"`
	DefaultPrecision  int    `mapstructure:"DEFAULT_PRECISION"`
}

// LoadConfig reads app.env from path, letting environment variables override it.
// A missing file is not an error, the defaults apply instead.
func LoadConfig(path string) (Config, error) {
	var config Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("PRECISION_REQUIRED", true)
	v.SetDefault("DEFAULT_PRECISION", 9)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

// Validate checks values that viper cannot check by type alone.
func (c Config) Validate() error {
	if c.DefaultPrecision < geohash.MinPrecision || c.DefaultPrecision > geohash.MaxPrecision {
		return fmt.Errorf("config: DEFAULT_PRECISION must be between %d and %d, got %d",
			geohash.MinPrecision, geohash.MaxPrecision, c.DefaultPrecision)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid LOG_LEVEL: %w", err)
	}
	return nil
}

// Level returns the configured log level.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
