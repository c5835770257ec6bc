// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

package recommend

import (
	"errors"
	"fmt"

	"github.com/tomtom215/peerrank/internal/metrics"
	"github.com/tomtom215/peerrank/internal/similarity"
)

// ErrInvalidArgument matches any *InvalidArgumentError via errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a malformed call: an empty or ragged matrix,
// an out-of-range target, or a topN outside [0, items].
type InvalidArgumentError struct {
	// Field names the offending argument.
	Field string

	// Reason describes the violation.
	Reason string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArgument(field, format string, args ...any) error {
	return &InvalidArgumentError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// classifyError maps engine errors to metric outcome labels.
func classifyError(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return metrics.OutcomeInvalidArgument
	case errors.Is(err, similarity.ErrDegenerateInput):
		return metrics.OutcomeDegenerate
	default:
		return metrics.OutcomeError
	}
}
