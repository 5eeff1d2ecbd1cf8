package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/featurekit/featurekit/internal/types"
)

type Configuration struct {
	Logging   LoggingConfig   `validate:"required"`
	Invoicing InvoicingConfig `validate:"required"`
	Features  FeaturesConfig
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// InvoicingConfig controls invoice assembly defaults.
type InvoicingConfig struct {
	// DefaultDrawer is the registered drawer name used when DrawInvoice is
	// called without one. Empty means a drawer must always be named.
	DefaultDrawer string
	// DefaultSection is the section PopulateInvoice writes to.
	DefaultSection string `validate:"required"`
}

// FeaturesConfig controls feature refresh behaviour.
type FeaturesConfig struct {
	// CumulateOnRefresh rolls unused quantity from the previous cycle into
	// the refreshed one instead of discarding it.
	CumulateOnRefresh bool
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/featurekit")

	v.SetEnvPrefix("FEATUREKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("invoicing.defaultsection", "_default")

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for tests and scripts.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Logging: LoggingConfig{Level: types.LogLevelDebug},
		Invoicing: InvoicingConfig{
			DefaultSection: "_default",
		},
		Features: FeaturesConfig{
			CumulateOnRefresh: true,
		},
	}
}
