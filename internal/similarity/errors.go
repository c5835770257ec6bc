// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

package similarity

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateInput matches any *DegenerateInputError via errors.Is.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrUnknownMetric is returned by ByName for unregistered metric names.
	ErrUnknownMetric = errors.New("unknown similarity metric")
)

// DegenerateInputError reports that a metric could not produce a meaningful
// value for a vector pair.
type DegenerateInputError struct {
	// Metric is the name of the metric that failed.
	Metric string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("%s similarity: degenerate input: %v", e.Metric, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DegenerateInputError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDegenerateInput.
func (e *DegenerateInputError) Is(target error) bool {
	return target == ErrDegenerateInput
}
