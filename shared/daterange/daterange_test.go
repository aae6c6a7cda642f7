package daterange_test

import (
	"testing"
	"time"

	"hotel/shared/daterange"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)

	return t
}

func TestNew_TruncatesToDay(t *testing.T) {
	r := daterange.New(time.Date(2025, 7, 1, 14, 30, 0, 0, time.UTC), time.Date(2025, 7, 4, 11, 0, 0, 0, time.UTC))

	assert.Equal(t, day("2025-07-01"), r.Start)
	assert.Equal(t, day("2025-07-04"), r.End)
	assert.Equal(t, 3, r.Days())
}

func TestOverlaps(t *testing.T) {
	existing := daterange.New(day("2025-07-01"), day("2025-07-04"))

	tests := []struct {
		name      string
		candidate daterange.Range
		want      bool
	}{
		{name: "partial overlap", candidate: daterange.New(day("2025-07-03"), day("2025-07-06")), want: true},
		{name: "adjacent after", candidate: daterange.New(day("2025-07-04"), day("2025-07-06")), want: false},
		{name: "adjacent before", candidate: daterange.New(day("2025-06-28"), day("2025-07-01")), want: false},
		{name: "inside", candidate: daterange.New(day("2025-07-02"), day("2025-07-03")), want: true},
		{name: "enclosing", candidate: daterange.New(day("2025-06-30"), day("2025-07-10")), want: true},
		{name: "identical", candidate: existing, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.candidate))
			assert.Equal(t, tt.want, tt.candidate.Overlaps(existing))
		})
	}
}

func TestContains(t *testing.T) {
	window := daterange.New(day("2025-07-01"), day("2025-07-04"))

	assert.True(t, window.Contains(daterange.New(day("2025-07-01"), day("2025-07-04"))))
	assert.True(t, window.Contains(daterange.New(day("2025-07-02"), day("2025-07-03"))))
	assert.False(t, window.Contains(daterange.New(day("2025-06-30"), day("2025-07-03"))))
	assert.False(t, window.Contains(daterange.New(day("2025-07-02"), day("2025-07-05"))))
}

func TestIntersect(t *testing.T) {
	window := daterange.New(day("2025-07-01"), day("2025-07-10"))

	got, ok := window.Intersect(daterange.New(day("2025-06-28"), day("2025-07-03")))
	assert.True(t, ok)
	assert.Equal(t, 2, got.Days())

	_, ok = window.Intersect(daterange.New(day("2025-07-10"), day("2025-07-12")))
	assert.False(t, ok)
}

func TestBetween(t *testing.T) {
	assert.Equal(t, 3, daterange.Between(day("2025-07-01"), day("2025-07-04")))
	assert.Equal(t, 0, daterange.Between(day("2025-07-04"), day("2025-07-01")))
	assert.Equal(t, 0, daterange.Between(day("2025-07-04"), day("2025-07-04")))
	assert.False(t, daterange.New(day("2025-07-04"), day("2025-07-04")).Valid())
}

func TestDay_NormalizesZones(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	late := time.Date(2025, 7, 1, 23, 30, 0, 0, jakarta)

	assert.Equal(t, day("2025-07-01"), daterange.Day(late))
	assert.Equal(t, day("2025-07-01"), daterange.Day(day("2025-07-01")))
}

func TestMonth(t *testing.T) {
	r := daterange.Month(time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC))

	assert.Equal(t, day("2025-02-01"), r.Start)
	assert.Equal(t, day("2025-03-01"), r.End)
	assert.Equal(t, 28, r.Days())
}
