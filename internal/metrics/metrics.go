// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for RecommendationsTotal.
const (
	OutcomeSuccess         = "success"
	OutcomeInvalidArgument = "invalid_argument"
	OutcomeDegenerate      = "degenerate_input"
	OutcomeCanceled        = "canceled"
	OutcomeError           = "error"
)

var (
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peerrank_recommendations_total",
			Help: "Total number of recommendation calls by similarity metric and outcome",
		},
		[]string{"metric", "outcome"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "peerrank_recommendation_duration_seconds",
			Help:    "Duration of recommendation calls in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"metric"},
	)

	DegeneratePeersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peerrank_degenerate_peers_total",
			Help: "Total number of peers whose similarity to the target was undefined",
		},
		[]string{"metric"},
	)

	UnscoredItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peerrank_unscored_items_total",
			Help: "Total number of items with no weighted peer rating, scored as zero",
		},
		[]string{"metric"},
	)
)

// Classifier maps an error to an outcome label. The recommend package
// supplies one that knows its own error types.
type Classifier func(err error) string

// RecordRecommendation records the latency and outcome of one call.
func RecordRecommendation(metric string, duration time.Duration, outcome string) {
	RecommendationDuration.WithLabelValues(metric).Observe(duration.Seconds())
	RecommendationsTotal.WithLabelValues(metric, outcome).Inc()
}

// RecordDegeneratePeers adds n degenerate peers for metric.
func RecordDegeneratePeers(metric string, n int) {
	if n > 0 {
		DegeneratePeersTotal.WithLabelValues(metric).Add(float64(n))
	}
}

// RecordUnscoredItems adds n zero-fallback items for metric.
func RecordUnscoredItems(metric string, n int) {
	if n > 0 {
		UnscoredItemsTotal.WithLabelValues(metric).Add(float64(n))
	}
}

// OutcomeOf classifies err with classify, treating nil as success and
// context cancellation as canceled before consulting classify.
func OutcomeOf(err error, classify Classifier) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	case classify != nil:
		return classify(err)
	default:
		return OutcomeError
	}
}
