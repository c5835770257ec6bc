// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type testSettings struct {
	Metric  string `validate:"required,oneof=euclidean pearson"`
	Workers int    `validate:"min=1,max=8"`
	Label   string `validate:"omitempty,max=5"`
	TopN    int    `validate:"gte=0"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     testSettings
		wantField string
		wantMsg   string
	}{
		{
			name:  "valid",
			input: testSettings{Metric: "pearson", Workers: 2},
		},
		{
			name:      "missing metric",
			input:     testSettings{Workers: 1},
			wantField: "Metric",
			wantMsg:   "Metric is required",
		},
		{
			name:      "unknown metric",
			input:     testSettings{Metric: "jaccard", Workers: 1},
			wantField: "Metric",
			wantMsg:   "Metric must be one of: euclidean pearson",
		},
		{
			name:      "workers below minimum",
			input:     testSettings{Metric: "pearson", Workers: 0},
			wantField: "Workers",
			wantMsg:   "Workers must be at least 1",
		},
		{
			name:      "workers above maximum",
			input:     testSettings{Metric: "pearson", Workers: 9},
			wantField: "Workers",
			wantMsg:   "Workers must be at most 8",
		},
		{
			name:      "string too long",
			input:     testSettings{Metric: "pearson", Workers: 1, Label: "toolong"},
			wantField: "Label",
			wantMsg:   "Label must be at most 5 characters",
		},
		{
			name:      "negative top n",
			input:     testSettings{Metric: "pearson", Workers: 1, TopN: -1},
			wantField: "TopN",
			wantMsg:   "TopN must be greater than or equal to 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() error = %v, want nil", err)
				}
				return
			}

			var structErr *StructError
			if !errors.As(err, &structErr) {
				t.Fatalf("ValidateStruct() error = %v, want *StructError", err)
			}
			if len(structErr.Errors()) != 1 {
				t.Fatalf("got %d field errors, want 1: %v", len(structErr.Errors()), err)
			}
			fe := structErr.Errors()[0]
			if fe.Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", fe.Field(), tt.wantField)
			}
			if fe.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", fe.Error(), tt.wantMsg)
			}
		})
	}
}

func TestStructError_JoinsMessages(t *testing.T) {
	err := ValidateStruct(&testSettings{Workers: 0})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Metric is required") || !strings.Contains(msg, "Workers must be at least 1") {
		t.Errorf("Error() = %q, want both field messages", msg)
	}
	if !strings.Contains(msg, "; ") {
		t.Errorf("Error() = %q, want messages joined by '; '", msg)
	}
}
