// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/peerrank/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"peerrank.yaml",
	"peerrank.yml",
	"/etc/peerrank/config.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "PEERRANK_CONFIG_PATH"

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	"peerrank_metric":            "recommend.metric",
	"peerrank_degenerate_policy": "recommend.degenerate_policy",
	"peerrank_unrated_only":      "recommend.unrated_only",
	"peerrank_workers":           "recommend.workers",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Recommend: *recommend.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load reads defaults, the config file found by findConfigFile and the
// environment, then validates the result.
func Load() (*Config, error) {
	return loadFrom(findConfigFile())
}

// loadFrom is Load with an explicit config file path; "" skips the file layer.
func loadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	// PEERRANK_WORKERS -> recommend.workers
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped keys return "" and are skipped so unrelated variables never
// reach the configuration.
//
// Examples:
//   - PEERRANK_METRIC -> recommend.metric
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// Watch reloads the configuration whenever the file at path changes and
// passes the result to onChange. A reload that fails to parse or validate
// is reported through the error argument; the caller keeps its previous
// configuration in that case.
//
//	err := config.Watch(path, func(cfg *config.Config, err error) {
//	    if err != nil {
//	        logging.Logger().Warn().Err(err).Msg("config reload failed")
//	        return
//	    }
//	    _ = engine.UpdateConfig(&cfg.Recommend)
//	})
func Watch(path string, onChange func(*Config, error)) error {
	provider := file.Provider(path)

	return provider.Watch(func(event any, err error) {
		if err != nil {
			onChange(nil, fmt.Errorf("watch %s: %w", path, err))
			return
		}
		onChange(loadFrom(path))
	})
}
