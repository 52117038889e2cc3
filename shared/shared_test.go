package shared_test

import (
	"strings"
	"testing"

	"cardex/shared"
	"cardex/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "exact division", total: 100, limit: 50, expected: 2},
		{name: "remainder adds a page", total: 101, limit: 50, expected: 3},
		{name: "zero total is one page", total: 0, limit: 50, expected: 1},
		{name: "zero limit is one page", total: 100, limit: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("abc", "id", "clients")

	where, args := filter.GetWhereClause()

	if where != "(clients.id = :id)" {
		t.Errorf("unexpected where clause: %q", where)
	}

	if args["id"] != "abc" {
		t.Errorf("expected id arg 'abc', got %v", args["id"])
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("client:get"); got != "client:get" {
		t.Errorf("expected bare prefix, got %q", got)
	}

	if got := shared.BuildCacheKey("client:get", "abc"); got != "client:get:abc" {
		t.Errorf("expected joined key, got %q", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 50}

	filterA := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
		},
	}
	filterB := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
		},
	}

	keyA := shared.BuildCacheKeyWithQuery("client:gets", params, filterA)
	keyB := shared.BuildCacheKeyWithQuery("client:gets", params, filterB)

	if keyA == keyB {
		t.Error("expected distinct filters to produce distinct cache keys")
	}

	if keyA != shared.BuildCacheKeyWithQuery("client:gets", params, filterA) {
		t.Error("expected identical queries to produce identical cache keys")
	}
}

func TestBuildCacheKeyWithQuery_ArgOrder(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 25}

	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "group_type", Value: "Family", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "arrival_date", Value: "2026-09-01", Operator: dto.FilterOperatorGreaterEq},
		},
	}

	key := shared.BuildCacheKeyWithQuery("client:gets", params, filter)

	// Args render in sorted key order regardless of filter order, so the
	// same view always caches under one key.
	for range 20 {
		if again := shared.BuildCacheKeyWithQuery("client:gets", params, filter); again != key {
			t.Fatalf("expected stable cache key, got %q then %q", key, again)
		}
	}

	expected := "arrival_date=2026-09-01;group_type=Family;status=pending;"
	if !strings.HasSuffix(key, expected) {
		t.Errorf("expected key to end with %q, got %q", expected, key)
	}
}
