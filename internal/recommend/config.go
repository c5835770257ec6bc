// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

package recommend

import (
	"fmt"

	"github.com/tomtom215/peerrank/internal/validation"
)

// DegeneratePolicy decides what happens when a metric cannot score a peer.
type DegeneratePolicy string

const (
	// DegenerateLenient treats the peer's similarity as 0 and continues.
	DegenerateLenient DegeneratePolicy = "lenient"

	// DegenerateStrict aborts the whole recommendation.
	DegenerateStrict DegeneratePolicy = "strict"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Metric is the default similarity metric name.
	// Options: "euclidean", "pearson", "tanimoto", "cosine".
	// Default: "euclidean".
	Metric string `koanf:"metric" json:"metric" validate:"oneof=euclidean pearson tanimoto cosine"`

	// DegeneratePolicy controls degenerate similarity handling.
	// Default: lenient.
	DegeneratePolicy DegeneratePolicy `koanf:"degenerate_policy" json:"degenerate_policy" validate:"oneof=lenient strict"`

	// UnratedOnly drops items the target already rated from every result.
	// Default: false (all items are ranked).
	UnratedOnly bool `koanf:"unrated_only" json:"unrated_only"`

	// Workers is the number of goroutines used for per-item aggregation.
	// 1 keeps the computation single-threaded.
	// Default: 1.
	Workers int `koanf:"workers" json:"workers" validate:"min=1,max=256"`
}

// DefaultConfig returns a Config with the literal algorithm's behavior.
func DefaultConfig() *Config {
	return &Config{
		Metric:           "euclidean",
		DegeneratePolicy: DegenerateLenient,
		UnratedOnly:      false,
		Workers:          1,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("recommend config: %w", err)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
