// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

package recommend

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"
)

// Unrated is the rating value stored for items a subject has not rated.
// Any value <= 0 is treated as unrated.
const Unrated = 0.0

// IsRated reports whether v is a real rating rather than the unrated sentinel.
func IsRated(v float64) bool {
	return v > 0
}

// Matrix is an immutable subjects x items ratings table.
type Matrix struct {
	rows  [][]float64
	items int
}

// NewMatrix copies rows into a Matrix. It requires at least one row, rows of
// identical length and finite values.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, invalidArgument("matrix", "must contain at least one subject")
	}

	items := len(rows[0])
	copied := make([][]float64, len(rows))
	for i, row := range rows {
		if len(row) != items {
			return nil, invalidArgument("matrix", "row %d has %d items, want %d", i, len(row), items)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, invalidArgument("matrix", "rating at (%d, %d) is not finite", i, j)
			}
		}
		copied[i] = append([]float64(nil), row...)
	}

	return &Matrix{rows: copied, items: items}, nil
}

// Subjects returns the number of rows.
func (m *Matrix) Subjects() int {
	return len(m.rows)
}

// Items returns the number of columns.
func (m *Matrix) Items() int {
	return m.items
}

// At returns the rating subject gave item.
func (m *Matrix) At(subject, item int) float64 {
	return m.rows[subject][item]
}

// Row returns a copy of subject's ratings.
func (m *Matrix) Row(subject int) []float64 {
	return append([]float64(nil), m.rows[subject]...)
}

// RatedBy returns the indices of the items subject has rated, ascending.
func (m *Matrix) RatedBy(subject int) []int {
	var rated []int
	for j, v := range m.rows[subject] {
		if IsRated(v) {
			rated = append(rated, j)
		}
	}
	return rated
}

// MarshalJSON encodes the matrix as an array of rows.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.rows)
}

// UnmarshalJSON decodes an array of rows, applying the NewMatrix checks.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("decode matrix: %w", err)
	}

	decoded, err := NewMatrix(rows)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}
