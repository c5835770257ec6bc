// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

package config

import (
	"fmt"
	"os"

	"github.com/tomtom215/peerrank/internal/logging"
	"github.com/tomtom215/peerrank/internal/recommend"
	"github.com/tomtom215/peerrank/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	Recommend recommend.Config `koanf:"recommend"`
	Logging   LoggingConfig    `koanf:"logging"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level.
	// Default: info
	Level string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// ToLogging converts to the logging package configuration.
func (c LoggingConfig) ToLogging() logging.Config {
	return logging.Config{
		Level:     c.Level,
		Format:    c.Format,
		Caller:    c.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// NewEngine installs the configured global logger and builds a
// recommendation engine that logs through it. A nil cfg uses the defaults.
func NewEngine(cfg *Config) (*recommend.Engine, error) {
	if cfg == nil {
		cfg = defaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.Init(cfg.Logging.ToLogging())
	return recommend.NewEngine(&cfg.Recommend, logging.Logger())
}
