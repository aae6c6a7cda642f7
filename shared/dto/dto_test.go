package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "frontdesk",
		ModifiedBy: "system",
	})

	assert.Equal(t, "frontdesk", metadata.CreatedBy)
	assert.Equal(t, "system", metadata.ModifiedBy)
	assert.NotEmpty(t, metadata.CreatedAt)
	assert.NotEmpty(t, metadata.ModifiedAt)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			target:   "/v1/admin/bookings?page=2&limit=20&sort_by=check_in&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "check_in", SortDir: "ASC"},
		},
		{
			name:           "defaults",
			target:         "/v1/admin/bookings",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "invalid numbers fall back to defaults",
			target:         "/v1/admin/bookings?page=-1&limit=abc&sort_dir=sideways",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults",
			target:   "/v1/admin/bookings?page=0",
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_RestrictSort(t *testing.T) {
	params := dto.QueryParams{SortBy: "1; DROP TABLE bookings"}
	params.RestrictSort("check_in", "created_at")

	assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)
	assert.Equal(t, constant.DefaultValueSortDir, params.SortDir)

	params = dto.QueryParams{SortBy: "check_in", SortDir: dto.SortDirAsc}
	params.RestrictSort("check_in")

	assert.Equal(t, "check_in", params.SortBy)
	assert.Equal(t, dto.SortDirAsc, params.SortDir)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq, Table: "bookings"},
			dto.Filter{Field: "status", Value: "cancelled", Operator: dto.FilterOperatorNotEq},
			dto.Filter{Field: "check_in", ArgName: "window_end", Value: "2025-07-10", Operator: dto.FilterOperatorLess},
			dto.Filter{Field: "check_out", ArgName: "window_start", Value: "2025-07-01", Operator: dto.FilterOperatorGreater},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.room_id = :room_id AND status != :status AND check_in < :window_end AND check_out > :window_start)", where)
	assert.Equal(t, map[string]any{
		"room_id":      "r1",
		"status":       "cancelled",
		"window_end":   "2025-07-10",
		"window_start": "2025-07-01",
	}, args)
}

func TestFilterGroup_Nested(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "booking_id", Value: "b1", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "used_at", Operator: dto.FilterIsNull},
					dto.Filter{Field: "status", ArgName: "status_in", Value: []string{"pending", "confirmed"}, Operator: dto.FilterOperatorIn},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(booking_id = :booking_id AND (used_at IS NULL OR status IN (:status_in_0, :status_in_1) ))", where)
	assert.Equal(t, "pending", args["status_in_0"])
	assert.Equal(t, "confirmed", args["status_in_1"])
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
