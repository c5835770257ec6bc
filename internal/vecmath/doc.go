// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

// Package vecmath provides the dense vector statistics the similarity metrics
// and the recommendation engine are built on.
//
// Every function takes equal-length []float64 slices and returns a single
// value. Length mismatches fail with ErrLengthMismatch; inputs for which the
// statistic is mathematically undefined (zero variance, zero magnitude, zero
// weight sum) fail with ErrDegenerate instead of returning NaN or Inf.
//
// The heavy lifting is delegated to gonum's floats and stat packages.
package vecmath
