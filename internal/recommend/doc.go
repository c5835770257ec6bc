// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

// Package recommend implements user-based collaborative filtering over a
// dense ratings matrix.
//
// # Algorithm
//
// For a target subject t, a similarity metric sim and every item j:
//
//	score(t, j) = sum_{p != t, r(p, j) > 0} sim(t, p) * r(p, j) / sum_{p != t, r(p, j) > 0} sim(t, p)
//
// Ratings <= 0 mean "not rated" and exclude that subject from the item's
// aggregate. The target's own similarity is fixed at 0, so its ratings never
// influence its recommendations. Items are ranked by descending score with
// ascending item index breaking ties, and the first N are returned.
//
// # Edge Cases
//
//   - Zero weight sum: the item is scored 0 and stays in the ranking, so the
//     result always holds exactly N entries.
//   - Degenerate similarity: in lenient mode (default) the peer's similarity
//     becomes 0; in strict mode the call fails with the metric's
//     *similarity.DegenerateInputError.
//   - Already-rated items: ranked like every other item. UnratedOnly drops
//     them before truncation.
//
// # Usage
//
//	m, err := recommend.NewMatrix([][]float64{
//	    {5, 3, 0},
//	    {4, 0, 2},
//	    {5, 4, 1},
//	})
//	recs, err := recommend.GetRecommendation(m, 0, similarity.Euclidean, 1)
//
// The Engine adds configuration, structured logging and Prometheus metrics:
//
//	engine, err := recommend.NewEngine(cfg, logger)
//	resp, err := engine.Recommend(ctx, recommend.Request{Matrix: m, Target: 0, TopN: 5})
//
// # Thread Safety
//
// A Matrix is immutable after construction. Concurrent calls against the same
// matrix are safe; every call allocates its own buffers.
package recommend
