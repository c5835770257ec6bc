// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		emit       func(zerolog.Logger)
		wantSubstr []string
		wantEmpty  bool
	}{
		{
			name: "json at configured level",
			cfg:  Config{Level: "debug", Format: "json"},
			emit: func(l zerolog.Logger) { l.Debug().Str("metric", "cosine").Msg("ranking") },
			wantSubstr: []string{
				`"level":"debug"`, `"metric":"cosine"`, `"message":"ranking"`,
			},
		},
		{
			name:      "below level is dropped",
			cfg:       Config{Level: "warn"},
			emit:      func(l zerolog.Logger) { l.Info().Msg("ignored") },
			wantEmpty: true,
		},
		{
			name:      "unknown level falls back to info",
			cfg:       Config{Level: "loud"},
			emit:      func(l zerolog.Logger) { l.Debug().Msg("ignored") },
			wantEmpty: true,
		},
		{
			name:       "timestamp and caller",
			cfg:        Config{Timestamp: true, Caller: true},
			emit:       func(l zerolog.Logger) { l.Info().Msg("fields") },
			wantSubstr: []string{`"time":`, `"caller":`},
		},
		{
			name:       "console format",
			cfg:        Config{Format: "console"},
			emit:       func(l zerolog.Logger) { l.Warn().Msg("console message") },
			wantSubstr: []string{"console message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.cfg.Output = &buf
			tt.emit(New(tt.cfg))

			out := buf.String()
			if tt.wantEmpty {
				if out != "" {
					t.Errorf("expected no output, got: %s", out)
				}
				return
			}
			for _, s := range tt.wantSubstr {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %s: %s", s, out)
				}
			}
			if tt.cfg.Format == "console" && strings.HasPrefix(strings.TrimSpace(out), "{") {
				t.Errorf("console format emitted JSON: %s", out)
			}
		})
	}
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "error", Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	logger := Logger()
	if logger.GetLevel() != zerolog.ErrorLevel {
		t.Errorf("Logger().GetLevel() = %v, want error", logger.GetLevel())
	}

	logger.Warn().Msg("dropped")
	logger.Error().Msg("kept")
	if out := buf.String(); strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
		t.Errorf("unexpected global logger output: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"disabled", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.expected {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
