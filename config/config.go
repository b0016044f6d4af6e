package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const (
	DefaultQueryTimeout = "1m"
)

// Config configures a jflux.Client
type Config struct {
	// Timeout sets the connect/read timeout of the default HTTP transport.
	// It is ignored when a custom transport or HTTP client is injected.
	Timeout time.Duration `default:"1m"`
	// Verbose indicates whether to output more logs or not
	Verbose bool `default:"false"`
}

func NewConfig() Config {
	timeout, _ := time.ParseDuration(DefaultQueryTimeout)
	cfg := Config{
		Timeout: timeout,
	}
	return cfg
}

// NewConfigFromEnv builds a Config from JFLUX_* environment variables,
// falling back to the same defaults as NewConfig.
func NewConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("jflux", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "fail to process env config")
	}
	return cfg, nil
}
