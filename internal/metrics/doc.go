// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

// Package metrics provides Prometheus instrumentation for the recommendation
// engine.
//
// Collectors are registered with the default registry through promauto, so
// an embedding application exposes them by mounting promhttp.Handler().
//
// # Available Metrics
//
//   - peerrank_recommendations_total{metric,outcome}: recommendation calls by result
//   - peerrank_recommendation_duration_seconds{metric}: end-to-end call latency
//   - peerrank_degenerate_peers_total{metric}: peers whose similarity was undefined
//   - peerrank_unscored_items_total{metric}: items that fell back to a zero score
//
// # Usage
//
//	start := time.Now()
//	recs, err := engine.Recommend(ctx, req)
//	metrics.RecordRecommendation("pearson", time.Since(start), err)
package metrics
