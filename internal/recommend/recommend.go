// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/tomtom215/peerrank/internal/similarity"
	"github.com/tomtom215/peerrank/internal/vecmath"
)

// options are the per-call knobs of the ranking pipeline.
type options struct {
	policy      DegeneratePolicy
	unratedOnly bool
	workers     int
}

func defaultOptions() options {
	return options{policy: DegenerateLenient, workers: 1}
}

// ranking is the outcome of one pipeline run.
type ranking struct {
	items           []Recommendation
	degeneratePeers int
	unscoredItems   int
}

// GetRecommendation returns the topN items for target ranked by
// similarity-weighted peer rating.
//
// Every item is ranked, including ones the target already rated. Degenerate
// similarities count as 0 and items nobody weighted rated score 0.
// topN must lie in [0, m.Items()]; target must be a valid row.
func GetRecommendation(m *Matrix, target int, metric similarity.Metric, topN int) ([]Recommendation, error) {
	r, err := rank(context.Background(), m, target, metric, topN, defaultOptions())
	if err != nil {
		return nil, err
	}
	return r.items, nil
}

// rank runs the similarity pass, the per-item aggregation and the ranking.
func rank(ctx context.Context, m *Matrix, target int, metric similarity.Metric, topN int, opts options) (ranking, error) {
	if err := validateCall(m, target, metric, topN); err != nil {
		return ranking{}, err
	}
	if topN == 0 {
		return ranking{items: []Recommendation{}}, nil
	}

	if ContextCancelled(ctx) {
		return ranking{}, ctx.Err()
	}

	sims, degenerate, err := peerSimilarities(m, target, metric, opts.policy)
	if err != nil {
		return ranking{}, err
	}

	if ContextCancelled(ctx) {
		return ranking{}, ctx.Err()
	}

	scores, unscored := aggregate(m, sims, opts.workers)

	if ContextCancelled(ctx) {
		return ranking{}, ctx.Err()
	}

	items := rankItems(m, target, scores, topN, opts.unratedOnly)
	return ranking{items: items, degeneratePeers: degenerate, unscoredItems: unscored}, nil
}

func validateCall(m *Matrix, target int, metric similarity.Metric, topN int) error {
	if m == nil || m.Subjects() == 0 {
		return invalidArgument("matrix", "must contain at least one subject")
	}
	if metric == nil {
		return invalidArgument("metric", "must not be nil")
	}
	if target < 0 || target >= m.Subjects() {
		return invalidArgument("target", "%d out of range [0, %d)", target, m.Subjects())
	}
	if topN < 0 {
		return invalidArgument("topN", "must be non-negative, got %d", topN)
	}
	if topN > m.Items() {
		return invalidArgument("topN", "%d exceeds item count %d", topN, m.Items())
	}
	return nil
}

// peerSimilarities returns sim(target, p) for every subject p, with the
// target's own entry fixed at 0. It also reports how many peers were
// degraded to 0 under the lenient policy.
func peerSimilarities(m *Matrix, target int, metric similarity.Metric, policy DegeneratePolicy) ([]float64, int, error) {
	sims := make([]float64, m.Subjects())
	self := m.rows[target]
	degenerate := 0

	for idx, peer := range m.rows {
		if idx == target {
			continue
		}

		sim, err := metric.Similarity(self, peer)
		if err == nil && (math.IsNaN(sim) || math.IsInf(sim, 0)) {
			err = &similarity.DegenerateInputError{
				Metric: metric.Name(),
				Err:    fmt.Errorf("%w: score is %v", vecmath.ErrDegenerate, sim),
			}
		}
		if err != nil {
			if errors.Is(err, similarity.ErrDegenerateInput) && policy != DegenerateStrict {
				degenerate++
				continue
			}
			return nil, 0, fmt.Errorf("similarity of subject %d to peer %d: %w", target, idx, err)
		}

		sims[idx] = sim
	}

	return sims, degenerate, nil
}

// aggregate computes the weighted score of every item. Items whose weight
// sum is zero score 0 and are counted as unscored. With workers > 1 the
// items are split into contiguous chunks processed concurrently.
func aggregate(m *Matrix, sims []float64, workers int) ([]float64, int) {
	scores := make([]float64, m.Items())
	if workers <= 1 || m.Items() < 2 {
		return scores, scoreRange(m, sims, scores, 0, m.Items())
	}

	if workers > m.Items() {
		workers = m.Items()
	}
	chunkSize := (m.Items() + workers - 1) / workers

	var wg sync.WaitGroup
	var mu sync.Mutex
	unscored := 0

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > m.Items() {
			end = m.Items()
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			n := scoreRange(m, sims, scores, lo, hi)

			mu.Lock()
			unscored += n
			mu.Unlock()
		}(start, end)
	}

	wg.Wait()
	return scores, unscored
}

// scoreRange fills scores[lo:hi] and returns the number of unscored items.
// Each call owns its critic and weight buffers.
func scoreRange(m *Matrix, sims, scores []float64, lo, hi int) int {
	critics := make([]float64, m.Subjects())
	weights := make([]float64, m.Subjects())
	unscored := 0

	for j := lo; j < hi; j++ {
		for idx, row := range m.rows {
			if IsRated(row[j]) {
				critics[idx] = row[j]
				weights[idx] = sims[idx]
			} else {
				critics[idx] = 0
				weights[idx] = 0
			}
		}

		score, err := vecmath.WeightedMean(critics, weights)
		if err != nil {
			score = 0
			unscored++
		}
		scores[j] = score
	}

	return unscored
}

// rankItems orders items by descending score, ascending index on ties, and
// keeps the first topN.
func rankItems(m *Matrix, target int, scores []float64, topN int, unratedOnly bool) []Recommendation {
	items := make([]Recommendation, 0, len(scores))
	for j, score := range scores {
		if unratedOnly && IsRated(m.rows[target][j]) {
			continue
		}
		items = append(items, Recommendation{Item: j, Score: score})
	}

	sort.Slice(items, func(a, b int) bool {
		if items[a].Score != items[b].Score {
			return items[a].Score > items[b].Score
		}
		return items[a].Item < items[b].Item
	})

	if len(items) > topN {
		items = items[:topN]
	}
	return items
}

// ContextCancelled checks if the context has been canceled.
func ContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
