package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/billingsdk/billingsdk-go/internal/types"
	"github.com/billingsdk/billingsdk-go/internal/validator"
	"github.com/spf13/viper"
)

type Configuration struct {
	Logging    LoggingConfig    `validate:"required"`
	Provider   ProviderConfig   // zero latency is a valid setting
	Formatting FormattingConfig `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// ProviderConfig controls the mock billing provider.
type ProviderConfig struct {
	// MockLatency is the artificial delay applied by the mock provider to
	// emulate a remote billing backend. The value has no semantic meaning.
	MockLatency time.Duration `mapstructure:"mock_latency"`
}

// FormattingConfig controls currency rendering defaults.
type FormattingConfig struct {
	// DefaultLocale is the BCP 47 tag used when the caller does not supply one.
	DefaultLocale string `mapstructure:"default_locale" validate:"required"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/billingsdk")

	v.SetEnvPrefix("BILLINGSDK")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("provider.mock_latency", 150*time.Millisecond)
	v.SetDefault("formatting.default_locale", "en-US")
}

func (c Configuration) Validate() error {
	return validator.GetValidator().Struct(c)
}

// GetDefaultConfig returns a default configuration for local development.
// This is useful for running scripts or tests without a config file.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Provider:   ProviderConfig{MockLatency: 0},
		Formatting: FormattingConfig{DefaultLocale: "en-US"},
	}
}
