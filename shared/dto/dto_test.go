package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	if metadata.CreatedAt == "" {
		t.Error("expected CreatedAt to be formatted")
	}

	if metadata.ModifiedAt == "" {
		t.Error("expected ModifiedAt to be formatted")
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

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
				"limit":    "20",
				"sort_by":  "created_at",
				"sort_dir": "ASC",
			},
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "created_at",
				SortDir: "ASC",
			},
		},
		{
			name:           "default request with no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:        "no defaults with no parameters",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name: "invalid page falls back to default",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "negative page falls back to default",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "lowercase sort direction is normalized",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			expected: dto.QueryParams{
				SortDir: dto.SortDirDesc,
			},
		},
		{
			name: "invalid sort direction is ignored",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			request := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			var params dto.QueryParams
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
			name: "eq with table",
			filter: dto.Filter{
				Table:    "bookings",
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "reserved",
			},
			expectedWhere: "bookings.status = :status",
			expectedArgs:  map[string]any{"status": "reserved"},
		},
		{
			name: "eq with arg name override",
			filter: dto.Filter{
				Table:    "booking_rooms",
				Field:    "check_in_date",
				Operator: dto.FilterOperatorLess,
				ArgName:  "overlap_check_out",
				Value:    "2026-03-04",
			},
			expectedWhere: "booking_rooms.check_in_date < :overlap_check_out",
			expectedArgs:  map[string]any{"overlap_check_out": "2026-03-04"},
		},
		{
			name: "in with slice",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorIn,
				Value:    []string{"pending", "reserved"},
			},
			expectedWhere: "status IN (:status_0, :status_1) ",
			expectedArgs:  map[string]any{"status_0": "pending", "status_1": "reserved"},
		},
		{
			name: "is null",
			filter: dto.Filter{
				Table:    "housekeeping_tasks",
				Field:    "completed_at",
				Operator: dto.FilterIsNull,
			},
			expectedWhere: "housekeeping_tasks.completed_at IS NULL",
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
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "guest_id", Operator: dto.FilterOperatorEq, Value: "guest-1"},
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "reserved"},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(guest_id = :guest_id AND status = :status)"
	if where != expected {
		t.Errorf("expected where %q, got %q", expected, where)
	}

	if args["guest_id"] != "guest-1" || args["status"] != "reserved" {
		t.Errorf("unexpected args %+v", args)
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %+v", args)
	}
}
