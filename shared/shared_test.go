package shared_test

import (
	"reflect"
	"testing"
	"time"

	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateGuest struct {
		FullName string `db:"full_name"`
		Email    string `db:"email"`
		Notes    string `db:"notes"`
		Internal string
	}

	tests := []struct {
		name     string
		data     updateGuest
		username string
		expected map[string]any
	}{
		{
			name: "populated fields",
			data: updateGuest{
				FullName: "Asha Rao",
				Email:    "asha@example.com",
				Internal: "ignored",
			},
			username: "staff-1",
			expected: map[string]any{
				"full_name": "Asha Rao",
				"email":     "asha@example.com",
			},
		},
		{
			name:     "all zero values keeps only metadata",
			data:     updateGuest{},
			username: "staff-1",
			expected: map[string]any{},
		},
		{
			name: "partial fields",
			data: updateGuest{
				Notes: "VIP guest",
			},
			username: "admin",
			expected: map[string]any{
				"notes": "VIP guest",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, tt.username)

			if result[constant.FieldModifiedBy] != tt.username {
				t.Errorf("expected modified_by to be %s, got %v", tt.username, result[constant.FieldModifiedBy])
			}

			if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
				t.Error("expected modified_at to be a time.Time")
			}

			for key, expectedValue := range tt.expected {
				if actualValue, exists := result[key]; !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			for key := range result {
				if key == constant.FieldModifiedAt || key == constant.FieldModifiedBy {
					continue
				}
				if _, expected := tt.expected[key]; !expected {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "id", "bookings")

	if len(result.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(result.Filters))
	}

	filter, ok := result.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected filter to be of type dto.Filter")
	}

	if filter.Field != "id" {
		t.Errorf("expected field to be id, got %s", filter.Field)
	}

	if filter.Value != "550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("unexpected value %v", filter.Value)
	}

	if filter.Operator != dto.FilterOperatorEq {
		t.Errorf("expected operator to be %s, got %s", dto.FilterOperatorEq, filter.Operator)
	}

	if filter.Table != "bookings" {
		t.Errorf("expected table to be bookings, got %s", filter.Table)
	}
}

func TestDateRangeFilter(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	result := shared.DateRangeFilter("created_at", "bookings", from, to)

	if result.Operator != dto.FilterGroupOperatorAnd {
		t.Errorf("expected AND group, got %s", result.Operator)
	}

	if len(result.Filters) != 2 {
		t.Fatalf("expected 2 filters, got %d", len(result.Filters))
	}

	lower, ok := result.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected lower bound to be of type dto.Filter")
	}

	if lower.Operator != dto.FilterOperatorGreaterEq || !lower.Value.(time.Time).Equal(from) {
		t.Errorf("unexpected lower bound %+v", lower)
	}

	upper, ok := result.Filters[1].(dto.Filter)
	if !ok {
		t.Fatal("expected upper bound to be of type dto.Filter")
	}

	endOfDay := time.Date(2026, 3, 7, 23, 59, 59, 0, time.UTC)
	if upper.Operator != dto.FilterOperatorLessEq || !upper.Value.(time.Time).Equal(endOfDay) {
		t.Errorf("expected upper bound pushed to end of day, got %+v", upper)
	}
}

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "iso date",
			input:    "2026-03-01",
			expected: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "day month year date",
			input:    "01/03/2026",
			expected: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "unsupported format",
			input:       "March 1, 2026",
			expectError: true,
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := shared.ParseFlexibleDate(tt.input)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if !result.Equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	if key := shared.BuildCacheKey("booking", "get", "booking-1"); key != "booking:get:booking-1" {
		t.Errorf("unexpected cache key %s", key)
	}

	if key := shared.BuildCacheKey("guest"); key != "guest" {
		t.Errorf("unexpected cache key %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := shared.FilterByID("booking-1", "id", "bookings")

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	if first != second {
		t.Errorf("expected stable keys for identical queries, got %s and %s", first, second)
	}

	other := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)
	if first == other {
		t.Error("expected different keys for different queries")
	}
}
