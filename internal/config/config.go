// Package config reads CLI defaults from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"

	"isofields/isoformat"
)

// Config holds defaults that command-line flags may override.
type Config struct {
	// Basic selects the basic format. ENV: ISOFMT_BASIC
	Basic bool `env:"ISOFMT_BASIC,default=false"`
	// Lenient accepts layouts outside strict ISO 8601. ENV: ISOFMT_LENIENT
	Lenient bool `env:"ISOFMT_LENIENT,default=false"`
	// Verbose enables debug logging. ENV: ISOFMT_VERBOSE
	Verbose bool `env:"ISOFMT_VERBOSE,default=false"`
	// Workers bounds batch concurrency, 0 means GOMAXPROCS. ENV: ISOFMT_WORKERS
	Workers int `env:"ISOFMT_WORKERS,default=0"`
	// Debounce is how long batch --watch waits for writes to settle.
	// ENV: ISOFMT_WATCH_DEBOUNCE
	Debounce time.Duration `env:"ISOFMT_WATCH_DEBOUNCE,default=200ms"`
}

// Load decodes Config from the environment. A set variable that does not
// parse is an error.
func Load() (Config, error) {
	var cfg Config

	if err := envdecode.StrictDecode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.Workers < 0 {
		return Config{}, fmt.Errorf("ISOFMT_WORKERS must not be negative, got %d", cfg.Workers)
	}

	return cfg, nil
}

// Options converts the format settings to resolution options.
func (c Config) Options() isoformat.Options {
	return isoformat.Options{
		Extended:  !c.Basic,
		StrictISO: !c.Lenient,
	}
}
