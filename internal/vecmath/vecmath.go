// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

package vecmath

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrLengthMismatch is returned when two vectors differ in length.
	ErrLengthMismatch = errors.New("vector lengths differ")

	// ErrDegenerate is returned when a statistic is undefined for the input.
	ErrDegenerate = errors.New("statistic undefined for input")
)

func checkLengths(a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// EuclideanDistance returns the L2 distance between a and b.
// Two empty vectors are at distance 0.
func EuclideanDistance(a, b []float64) (float64, error) {
	if err := checkLengths(a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, nil
	}

	d := floats.Distance(a, b, 2)
	if !finite(d) {
		return 0, fmt.Errorf("%w: euclidean distance is %v", ErrDegenerate, d)
	}
	return d, nil
}

// PearsonCorrelation returns the Pearson correlation coefficient of a and b.
// It fails with ErrDegenerate for fewer than two entries or when either
// vector has zero variance.
func PearsonCorrelation(a, b []float64) (float64, error) {
	if err := checkLengths(a, b); err != nil {
		return 0, err
	}
	if len(a) < 2 {
		return 0, fmt.Errorf("%w: correlation needs at least 2 entries, got %d", ErrDegenerate, len(a))
	}
	if stat.Variance(a, nil) == 0 || stat.Variance(b, nil) == 0 {
		return 0, fmt.Errorf("%w: zero variance", ErrDegenerate)
	}

	r := stat.Correlation(a, b, nil)
	if !finite(r) {
		return 0, fmt.Errorf("%w: correlation is %v", ErrDegenerate, r)
	}
	return clamp(r, -1, 1), nil
}

// TanimotoCoefficient returns a·b / (a·a + b·b - a·b).
// The denominator is zero only when both vectors are all zeros.
func TanimotoCoefficient(a, b []float64) (float64, error) {
	if err := checkLengths(a, b); err != nil {
		return 0, err
	}

	ab := floats.Dot(a, b)
	den := floats.Dot(a, a) + floats.Dot(b, b) - ab
	if den == 0 {
		return 0, fmt.Errorf("%w: tanimoto denominator is zero", ErrDegenerate)
	}

	t := ab / den
	if !finite(t) {
		return 0, fmt.Errorf("%w: tanimoto coefficient is %v", ErrDegenerate, t)
	}
	return t, nil
}

// CosineAngle returns the cosine of the angle between a and b, clamped to
// [-1, 1] to absorb rounding.
func CosineAngle(a, b []float64) (float64, error) {
	if err := checkLengths(a, b); err != nil {
		return 0, err
	}

	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("%w: zero magnitude vector", ErrDegenerate)
	}

	c := floats.Dot(a, b) / (normA * normB)
	if !finite(c) {
		return 0, fmt.Errorf("%w: cosine is %v", ErrDegenerate, c)
	}
	return clamp(c, -1, 1), nil
}

// WeightedMean returns sum(values[i]*weights[i]) / sum(weights[i]).
// A zero weight sum fails with ErrDegenerate.
func WeightedMean(values, weights []float64) (float64, error) {
	if err := checkLengths(values, weights); err != nil {
		return 0, err
	}
	if floats.Sum(weights) == 0 {
		return 0, fmt.Errorf("%w: weights sum to zero", ErrDegenerate)
	}

	m := stat.Mean(values, weights)
	if !finite(m) {
		return 0, fmt.Errorf("%w: weighted mean is %v", ErrDegenerate, m)
	}
	return m, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
