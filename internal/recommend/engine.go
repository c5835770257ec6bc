// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

package recommend

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/peerrank/internal/logging"
	"github.com/tomtom215/peerrank/internal/metrics"
	"github.com/tomtom215/peerrank/internal/similarity"
)

// Engine runs recommendation requests against caller-supplied matrices
// using a fixed configuration. It holds no ratings of its own.
// It is safe for concurrent use.
type Engine struct {
	config   *Config
	metric   similarity.Metric
	configMu sync.RWMutex

	logger zerolog.Logger

	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewEngine creates a new recommendation engine. A nil cfg selects
// DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	metric, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &Engine{
		config: cfg.Clone(),
		metric: metric,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

func resolveConfig(cfg *Config) (similarity.Metric, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	metric, err := similarity.ByName(cfg.Metric)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return metric, nil
}

// Recommend ranks the items of req.Matrix for req.Target.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req, opts := e.prepareRequest(ctx, req)
	logger := e.createRequestLogger(ctx, req)
	logger.Debug().Msg("processing recommendation request")

	result, err := rank(ctx, req.Matrix, req.Target, req.Metric, req.TopN, opts)

	metricName := metricLabel(req.Metric)
	metrics.RecordRecommendation(metricName, time.Since(start), metrics.OutcomeOf(err, classifyError))
	if err != nil {
		e.errorCount.Add(1)
		return nil, err
	}

	metrics.RecordDegeneratePeers(metricName, result.degeneratePeers)
	metrics.RecordUnscoredItems(metricName, result.unscoredItems)

	resp := &Response{
		Items: result.items,
		Metadata: ResponseMetadata{
			RequestID:       req.RequestID,
			Target:          req.Target,
			Metric:          metricName,
			TopN:            req.TopN,
			DegeneratePeers: result.degeneratePeers,
			UnscoredItems:   result.unscoredItems,
			LatencyMS:       time.Since(start).Milliseconds(),
			Timestamp:       start,
		},
	}

	logger.Debug().
		Int("returned", len(resp.Items)).
		Int("degenerate_peers", result.degeneratePeers).
		Int("unscored_items", result.unscoredItems).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest fills in the request ID and metric and derives the
// pipeline options from the engine config.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(ctx context.Context, req Request) (Request, options) {
	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	if req.RequestID == "" {
		req.RequestID = logging.GenerateRequestID()
	}

	e.configMu.RLock()
	defer e.configMu.RUnlock()

	if req.Metric == nil {
		req.Metric = e.metric
	}
	unratedOnly := e.config.UnratedOnly
	if req.UnratedOnly != nil {
		unratedOnly = *req.UnratedOnly
	}

	return req, options{
		policy:      e.config.DegeneratePolicy,
		unratedOnly: unratedOnly,
		workers:     e.config.Workers,
	}
}

// createRequestLogger creates a logger with request context. A logger stored
// in ctx with logging.ContextWithLogger replaces the engine's own.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(ctx context.Context, req Request) zerolog.Logger {
	base := e.logger
	if l, ok := logging.LoggerFromContext(ctx); ok {
		base = l.With().Str("component", "recommend").Logger()
	}

	return base.With().
		Str("request_id", req.RequestID).
		Int("target", req.Target).
		Str("metric", metricLabel(req.Metric)).
		Int("top_n", req.TopN).
		Logger()
}

func metricLabel(m similarity.Metric) string {
	if m == nil {
		return "none"
	}
	return m.Name()
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	e.configMu.RLock()
	defer e.configMu.RUnlock()
	return e.config.Clone()
}

// UpdateConfig validates cfg and swaps it in for subsequent requests.
func (e *Engine) UpdateConfig(cfg *Config) error {
	if cfg == nil {
		return invalidArgument("config", "must not be nil")
	}

	metric, err := resolveConfig(cfg)
	if err != nil {
		return err
	}

	e.configMu.Lock()
	e.config = cfg.Clone()
	e.metric = metric
	e.configMu.Unlock()

	e.logger.Info().
		Str("metric", cfg.Metric).
		Str("degenerate_policy", string(cfg.DegeneratePolicy)).
		Int("workers", cfg.Workers).
		Msg("configuration updated")
	return nil
}

// GetStats returns request counters.
func (e *Engine) GetStats() Stats {
	return Stats{
		RequestCount: e.requestCount.Load(),
		ErrorCount:   e.errorCount.Load(),
	}
}
