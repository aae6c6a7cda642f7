package shared_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/shared"
	"hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/dto"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRoom struct {
		Name     string `db:"name"`
		Capacity *int   `db:"capacity"`
		Active   *bool  `db:"active"`
		Ignored  string
	}

	capacity := 0
	active := false

	result := shared.TransformFields(updateRoom{Name: "Garden Suite", Capacity: &capacity, Active: &active, Ignored: "x"}, "frontdesk")

	assert.Equal(t, "Garden Suite", result["name"])
	assert.Equal(t, 0, result["capacity"])
	assert.Equal(t, false, result["active"])
	assert.NotContains(t, result, "Ignored")
	assert.Equal(t, "frontdesk", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])

	empty := shared.TransformFields(updateRoom{}, "frontdesk")
	assert.Len(t, empty, 2)
}

func TestFilterByID(t *testing.T) {
	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: "b-1", Operator: dto.FilterOperatorEq, Table: "bookings"},
		},
	}

	assert.Equal(t, expected, shared.FilterByID("b-1", "id", "bookings"))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get:r-1", shared.BuildCacheKey("room:get", "r-1"))
	assert.Equal(t, "report:occupancy:r-1:2025-07-01:2025-07-31", shared.BuildCacheKey("report:occupancy", "r-1", "2025-07-01", "2025-07-31"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "check_in", SortDir: "ASC"}
	filter := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "room_id", Value: "r-1", Operator: dto.FilterOperatorEq},
		},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "booking:gets:1:10:check_in:ASC")
	assert.Contains(t, first, "room_id=r-1&status=pending")

	params.Page = 2
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("booking:gets", params, filter))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "room:gets:*").Return(nil)
	shared.InvalidateCaches(context.Background(), redisCache, "room:gets")

	redisCache.EXPECT().Clear(gomock.Any(), "room:count:*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), redisCache, "room:count")
}
