// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

package config

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/peerrank/internal/logging"
)

func TestNewEngine(t *testing.T) {
	t.Cleanup(func() { logging.Init(logging.DefaultConfig()) })

	tests := []struct {
		name       string
		cfg        func() *Config
		wantErr    bool
		wantMetric string
		wantLevel  zerolog.Level
	}{
		{
			name:       "nil config uses defaults",
			cfg:        func() *Config { return nil },
			wantMetric: "euclidean",
			wantLevel:  zerolog.InfoLevel,
		},
		{
			name: "configured metric and level",
			cfg: func() *Config {
				cfg := defaultConfig()
				cfg.Recommend.Metric = "cosine"
				cfg.Logging.Level = "error"
				return cfg
			},
			wantMetric: "cosine",
			wantLevel:  zerolog.ErrorLevel,
		},
		{
			name: "invalid config rejected",
			cfg: func() *Config {
				cfg := defaultConfig()
				cfg.Recommend.Workers = 0
				return cfg
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := NewEngine(tt.cfg())
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewEngine() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewEngine() error = %v", err)
			}
			if got := engine.GetConfig().Metric; got != tt.wantMetric {
				t.Errorf("Metric = %q, want %q", got, tt.wantMetric)
			}
			if got := logging.Logger().GetLevel(); got != tt.wantLevel {
				t.Errorf("global logger level = %v, want %v", got, tt.wantLevel)
			}
		})
	}
}
