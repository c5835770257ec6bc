// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

package similarity

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/peerrank/internal/vecmath"
)

// Metric scores how alike two equal-length rating vectors are.
// Larger scores mean more similar. Implementations must be pure.
type Metric interface {
	// Name returns the metric identifier (e.g., "euclidean", "pearson").
	Name() string

	// Similarity returns the similarity of a and b.
	Similarity(a, b []float64) (float64, error)
}

// MetricFunc adapts an ordinary function to the Metric contract.
type MetricFunc func(a, b []float64) (float64, error)

// namedMetric pairs a MetricFunc with its identifier.
type namedMetric struct {
	name string
	fn   MetricFunc
}

// Named wraps fn as a Metric called name. Degenerate failures reported by
// vecmath are converted into *DegenerateInputError.
func Named(name string, fn MetricFunc) Metric {
	return &namedMetric{name: name, fn: fn}
}

func (m *namedMetric) Name() string {
	return m.name
}

func (m *namedMetric) Similarity(a, b []float64) (float64, error) {
	score, err := m.fn(a, b)
	if err == nil {
		return score, nil
	}
	if errors.Is(err, vecmath.ErrDegenerate) {
		return 0, &DegenerateInputError{Metric: m.name, Err: err}
	}
	return 0, fmt.Errorf("%s similarity: %w", m.name, err)
}

// Built-in metrics.
var (
	Euclidean = Named("euclidean", euclidean)
	Pearson   = Named("pearson", vecmath.PearsonCorrelation)
	Tanimoto  = Named("tanimoto", vecmath.TanimotoCoefficient)
	Cosine    = Named("cosine", vecmath.CosineAngle)
)

var builtins = map[string]Metric{
	Euclidean.Name(): Euclidean,
	Pearson.Name():   Pearson,
	Tanimoto.Name():  Tanimoto,
	Cosine.Name():    Cosine,
}

// EuclideanScore maps a Euclidean distance onto (0, 1].
// Distance 0 maps to exactly 1 and larger distances approach 0.
func EuclideanScore(dist float64) float64 {
	return 1 / (1 + dist)
}

func euclidean(a, b []float64) (float64, error) {
	d, err := vecmath.EuclideanDistance(a, b)
	if err != nil {
		return 0, err
	}
	return EuclideanScore(d), nil
}

// ByName returns the built-in metric with the given name (case-insensitive).
func ByName(name string) (Metric, error) {
	m, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownMetric, name, strings.Join(Names(), ", "))
	}
	return m, nil
}

// Names returns the built-in metric names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
