package availability_test

import (
	"testing"
	"time"

	"hotel/internal/domains/booking/availability"
	"hotel/internal/domains/booking/model"
	"hotel/shared/daterange"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)

	return t
}

func stay(checkIn, checkOut string) daterange.Range {
	return daterange.New(date(checkIn), date(checkOut))
}

func booking(id, checkIn, checkOut string, status model.Status) *model.Booking {
	return model.FromRow(model.BookingRow{
		ID:       id,
		RoomID:   "room-r",
		CheckIn:  date(checkIn),
		CheckOut: date(checkOut),
		Status:   string(status),
	})
}

func TestOverlaps_Symmetric(t *testing.T) {
	ranges := []daterange.Range{
		stay("2025-07-01", "2025-07-04"),
		stay("2025-07-03", "2025-07-06"),
		stay("2025-07-04", "2025-07-06"),
		stay("2025-06-25", "2025-07-10"),
		stay("2025-07-02", "2025-07-03"),
		stay("2025-08-01", "2025-08-02"),
	}

	for _, a := range ranges {
		for _, b := range ranges {
			assert.Equal(t, availability.Overlaps(a, b), availability.Overlaps(b, a))
		}
	}
}

func TestIsAvailable_Scenarios(t *testing.T) {
	existing := []*model.Booking{booking("b-1", "2025-07-01", "2025-07-04", model.StatusConfirmed)}

	tests := []struct {
		name      string
		candidate daterange.Range
		want      bool
	}{
		{name: "overlapping tail is rejected", candidate: stay("2025-07-03", "2025-07-06"), want: false},
		{name: "checkout to checkin adjacency is accepted", candidate: stay("2025-07-04", "2025-07-06"), want: true},
		{name: "ending on existing check-in is accepted", candidate: stay("2025-06-28", "2025-07-01"), want: true},
		{name: "enclosed stay is rejected", candidate: stay("2025-07-02", "2025-07-03"), want: false},
		{name: "enclosing stay is rejected", candidate: stay("2025-06-30", "2025-07-05"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, availability.IsAvailable(existing, tt.candidate, ""))
		})
	}
}

func TestIsAvailable_StatusRules(t *testing.T) {
	candidate := stay("2025-07-02", "2025-07-03")

	for _, status := range model.Statuses {
		existing := []*model.Booking{booking("b-1", "2025-07-01", "2025-07-04", status)}

		assert.Equal(t, status == model.StatusCancelled, availability.IsAvailable(existing, candidate, ""), string(status))
	}
}

func TestConflicts_ExcludesSelf(t *testing.T) {
	existing := []*model.Booking{
		booking("b-1", "2025-07-01", "2025-07-04", model.StatusPending),
		booking("b-2", "2025-07-06", "2025-07-08", model.StatusConfirmed),
	}

	assert.Empty(t, availability.Conflicts(existing, stay("2025-07-02", "2025-07-05"), "b-1"))

	conflicts := availability.Conflicts(existing, stay("2025-07-02", "2025-07-07"), "b-1")
	assert.Len(t, conflicts, 1)
	assert.Equal(t, "b-2", conflicts[0].ID())
}

func TestIsAvailable_Empty(t *testing.T) {
	assert.True(t, availability.IsAvailable(nil, stay("2025-07-01", "2025-07-02"), ""))
}
