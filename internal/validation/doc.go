// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

// Package validation provides struct validation using go-playground/validator v10.
//
// It exposes a thread-safe singleton validator (struct info is cached after
// first use) and translates validator.FieldError values into short
// human-readable messages.
//
// Example usage:
//
//	type Settings struct {
//	    Metric  string `validate:"oneof=euclidean pearson tanimoto cosine"`
//	    Workers int    `validate:"min=1,max=256"`
//	}
//
//	if err := validation.ValidateStruct(&s); err != nil {
//	    return fmt.Errorf("invalid settings: %w", err)
//	}
package validation
