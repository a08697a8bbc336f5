// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config aggregates the settings shared by the services and the CLI.
type Config struct {
	// Addr is the listen address of an HTTP service. Empty means the
	// service's own default.
	Addr      string `env:"ADDR"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	// DataFile is the YAML or JSON data set the records are read from.
	DataFile string `env:"DATA_FILE" envDefault:"testdata/sample.yaml"`
}

// Prefix is prepended to every variable name.
const Prefix = "ORDERDESK_"

// Load reads configuration from ORDERDESK_-prefixed environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
