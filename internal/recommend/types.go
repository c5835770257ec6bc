// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

package recommend

import (
	"time"

	"github.com/tomtom215/peerrank/internal/similarity"
)

// Recommendation is one ranked item.
type Recommendation struct {
	// Item is the column index in the ratings matrix.
	Item int `json:"item"`

	// Score is the similarity-weighted mean of peer ratings for the item.
	Score float64 `json:"score"`
}

// Request represents a recommendation request.
type Request struct {
	// Matrix is the ratings table. Required.
	Matrix *Matrix `json:"matrix"`

	// Target is the row index of the subject to recommend for.
	Target int `json:"target"`

	// Metric overrides the engine's configured metric when non-nil.
	Metric similarity.Metric `json:"-"`

	// TopN is the number of recommendations to return.
	TopN int `json:"top_n"`

	// UnratedOnly drops items the target has already rated.
	// When nil the engine's Config.UnratedOnly applies; a non-nil value
	// overrides it in either direction.
	UnratedOnly *bool `json:"unrated_only,omitempty"`

	// RequestID is a unique identifier for tracing.
	// Taken from the context or generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// Response represents a recommendation response.
type Response struct {
	// Items is the ranked list, at most TopN long.
	Items []Recommendation `json:"items"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	RequestID string `json:"request_id"`
	Target    int    `json:"target"`
	Metric    string `json:"metric"`
	TopN      int    `json:"top_n"`

	// DegeneratePeers counts peers whose similarity was undefined and
	// replaced by 0.
	DegeneratePeers int `json:"degenerate_peers"`

	// UnscoredItems counts items no weighted peer rated; they score 0.
	UnscoredItems int `json:"unscored_items"`

	LatencyMS int64     `json:"latency_ms"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats holds engine-level counters.
type Stats struct {
	RequestCount int64 `json:"request_count"`
	ErrorCount   int64 `json:"error_count"`
}
