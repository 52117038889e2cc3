package dto_test

import (
	"net/http"
	"net/url"
	"testing"

	"cardex/shared/dto"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"per_page": "20",
				"sort_by":  "full_name",
				"sort_dir": "asc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "full_name",
				SortDir: "ASC",
			},
		},
		{
			name:           "missing parameters with defaults",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  1,
				Limit: 50,
			},
		},
		{
			name: "invalid numbers are ignored",
			queryParams: map[string]string{
				"page":     "abc",
				"per_page": "-5",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "invalid sort direction is ignored",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			request := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(request, tt.defaultRequest)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name: "eq operator",
			filter: dto.Filter{
				Field:    "status",
				Value:    "pending",
				Operator: dto.FilterOperatorEq,
				Table:    "clients",
			},
			expectedWhere: "clients.status = :status",
			expectedArgs:  map[string]any{"status": "pending"},
		},
		{
			name: "like operator is case insensitive",
			filter: dto.Filter{
				Field:    "email",
				Value:    "Smith",
				Operator: dto.FilterOperatorLike,
			},
			expectedWhere: "LOWER(email) LIKE LOWER(:email) ",
			expectedArgs:  map[string]any{"email": "%Smith%"},
		},
		{
			name: "range bound with custom arg name",
			filter: dto.Filter{
				ArgName:  "start_date",
				Field:    "arrival_date",
				Value:    "2025-01-01",
				Operator: dto.FilterOperatorGreaterEq,
			},
			expectedWhere: "arrival_date >= :start_date",
			expectedArgs:  map[string]any{"start_date": "2025-01-01"},
		},
		{
			name: "is not null has no args",
			filter: dto.Filter{
				Field:    "group_type",
				Operator: dto.FilterIsNotNull,
			},
			expectedWhere: "group_type IS NOT NULL",
			expectedArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expectedWhere {
				t.Errorf("expected where %q, got %q", tt.expectedWhere, where)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for key, expected := range tt.expectedArgs {
				if args[key] != expected {
					t.Errorf("expected arg %s to be %v, got %v", key, expected, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group compiles to no clause", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		where, args := group.GetWhereClause()

		if where != "" {
			t.Errorf("expected empty where, got %q", where)
		}

		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("nested or group inside and group", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{
					Field:    "status",
					Value:    "pending",
					Operator: dto.FilterOperatorEq,
				},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{
							Field:    "full_name",
							Value:    "smith",
							Operator: dto.FilterOperatorLike,
						},
						dto.Filter{
							Field:    "email",
							Value:    "smith",
							Operator: dto.FilterOperatorLike,
						},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		expected := "(status = :status AND (LOWER(full_name) LIKE LOWER(:full_name)  OR LOWER(email) LIKE LOWER(:email) ))"
		if where != expected {
			t.Errorf("expected where %q, got %q", expected, where)
		}

		if args["status"] != "pending" {
			t.Errorf("expected status arg, got %v", args)
		}

		if args["full_name"] != "%smith%" || args["email"] != "%smith%" {
			t.Errorf("expected like args, got %v", args)
		}
	})

	t.Run("missing operator defaults to and", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "a", Value: 1, Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "b", Value: 2, Operator: dto.FilterOperatorEq},
			},
		}

		where, _ := group.GetWhereClause()

		expected := "(a = :a AND b = :b)"
		if where != expected {
			t.Errorf("expected where %q, got %q", expected, where)
		}
	})
}
