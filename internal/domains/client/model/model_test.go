package model_test

import (
	"testing"

	"cardex/internal/domains/client/model"
)

func TestEncodeTags(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		expected string
	}{
		{name: "nil encodes to empty list", tags: nil, expected: "[]"},
		{name: "empty list", tags: []string{}, expected: "[]"},
		{name: "values", tags: []string{"vegetarian", "halal"}, expected: `["vegetarian","halal"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.EncodeTags(tt.tags); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDecodeTags(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		expected []string
	}{
		{name: "round trip", stored: `["vegetarian","halal"]`, expected: []string{"vegetarian", "halal"}},
		{name: "empty string degrades to empty list", stored: "", expected: []string{}},
		{name: "malformed text degrades to empty list", stored: "not json", expected: []string{}},
		{name: "json null degrades to empty list", stored: "null", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.DecodeTags(tt.stored)

			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}

			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}

func TestClient_ValueText(t *testing.T) {
	groupType := "family"
	client := model.Client{
		FullName:          "John Smith",
		NumberOfTravelers: 4,
		GroupType:         &groupType,
		Status:            model.StatusPending,
	}

	tests := []struct {
		name     string
		column   string
		expected string
	}{
		{name: "string column", column: model.FieldFullName, expected: "John Smith"},
		{name: "integer column renders as text", column: model.FieldNumberOfTravelers, expected: "4"},
		{name: "nullable column with value", column: model.FieldGroupType, expected: "family"},
		{name: "nullable column without value", column: model.FieldAssignedTo, expected: ""},
		{name: "unknown column", column: "gdpr_consent", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := client.ValueText(tt.column); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
