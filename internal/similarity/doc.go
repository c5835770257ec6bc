// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

// Package similarity implements the interchangeable pairwise similarity
// metrics used to weight peer opinions in the recommendation engine.
//
// # Metrics
//
//   - Euclidean: 1 / (1 + distance), range (0, 1]
//   - Pearson: correlation coefficient, range [-1, 1]
//   - Tanimoto: extended Jaccard coefficient, range [0, 1] for non-negative ratings
//   - Cosine: cosine of the angle between rating vectors, range [-1, 1]
//
// All metrics follow the "higher is more similar" convention so the engine
// can weight ratings uniformly regardless of which one is selected.
//
// # Usage
//
//	metric, err := similarity.ByName("pearson")
//	if err != nil {
//	    return err
//	}
//	score, err := metric.Similarity(ratingsA, ratingsB)
//
// Custom metrics can be plugged in with Named:
//
//	manhattan := similarity.Named("manhattan", func(a, b []float64) (float64, error) {
//	    ...
//	})
//
// # Degenerate Input
//
// When the underlying statistic is undefined for a vector pair (zero
// variance for Pearson, zero magnitude for Cosine, two all-zero vectors for
// Tanimoto) the metric fails with a *DegenerateInputError. Callers decide
// whether that aborts their computation or degrades the pair to zero
// similarity.
//
// # Thread Safety
//
// Metrics are stateless and safe for concurrent use.
package similarity
