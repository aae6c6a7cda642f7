package stats_test

import (
	"fmt"
	"testing"
	"time"

	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/report/stats"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)

	return t
}

func ptr(t time.Time) *time.Time {
	return &t
}

func booking(checkIn, checkOut string, amount int64, status model.Status) *model.Booking {
	return model.FromRow(model.BookingRow{
		ID:          checkIn + checkOut,
		RoomID:      "room-r",
		CheckIn:     date(checkIn),
		CheckOut:    date(checkOut),
		TotalAmount: amount,
		Status:      string(status),
	})
}

func TestOccupancyRate(t *testing.T) {
	tests := []struct {
		name     string
		bookings []*model.Booking
		start    string
		end      string
		want     int
	}{
		{
			name:     "window fully covered",
			bookings: []*model.Booking{booking("2025-07-01", "2025-07-04", 7500, model.StatusConfirmed)},
			start:    "2025-07-01",
			end:      "2025-07-04",
			want:     100,
		},
		{
			name:     "partial overlap is clipped to the window",
			bookings: []*model.Booking{booking("2025-06-28", "2025-07-02", 7500, model.StatusConfirmed)},
			start:    "2025-07-01",
			end:      "2025-07-11",
			want:     10,
		},
		{
			name: "truncated percentage",
			bookings: []*model.Booking{
				booking("2025-07-01", "2025-07-02", 2500, model.StatusCheckedOut),
			},
			start: "2025-07-01",
			end:   "2025-07-04",
			want:  33,
		},
		{
			name: "spans are summed",
			bookings: []*model.Booking{
				booking("2025-07-01", "2025-07-03", 5000, model.StatusCompleted),
				booking("2025-07-05", "2025-07-06", 2500, model.StatusPending),
			},
			start: "2025-07-01",
			end:   "2025-07-11",
			want:  30,
		},
		{
			name:     "cancelled bookings are ignored",
			bookings: []*model.Booking{booking("2025-07-01", "2025-07-04", 7500, model.StatusCancelled)},
			start:    "2025-07-01",
			end:      "2025-07-04",
			want:     0,
		},
		{
			name:     "empty window",
			bookings: []*model.Booking{booking("2025-07-01", "2025-07-04", 7500, model.StatusConfirmed)},
			start:    "2025-07-04",
			end:      "2025-07-04",
			want:     0,
		},
		{
			name:     "inverted window",
			bookings: []*model.Booking{booking("2025-07-01", "2025-07-04", 7500, model.StatusConfirmed)},
			start:    "2025-07-10",
			end:      "2025-07-01",
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stats.OccupancyRate(tt.bookings, date(tt.start), date(tt.end)))
		})
	}
}

func TestOccupancyRate_Bounded(t *testing.T) {
	var bookings []*model.Booking

	for day := 1; day < 28; day += 3 {
		checkIn := fmt.Sprintf("2025-07-%02d", day)
		checkOut := fmt.Sprintf("2025-07-%02d", day+2)
		bookings = append(bookings, booking(checkIn, checkOut, 5000, model.StatusConfirmed))
	}

	for start := 1; start < 28; start++ {
		for end := start; end <= 31; end += 4 {
			rate := stats.OccupancyRate(bookings, date(fmt.Sprintf("2025-07-%02d", start)), date(fmt.Sprintf("2025-07-%02d", end)))

			assert.GreaterOrEqual(t, rate, 0)
			assert.LessOrEqual(t, rate, 100)
		}
	}
}

func TestRevenue_Containment(t *testing.T) {
	bookings := []*model.Booking{booking("2025-07-01", "2025-07-04", 7500, model.StatusConfirmed)}

	assert.Equal(t, int64(7500), stats.Revenue(bookings, ptr(date("2025-07-01")), ptr(date("2025-07-04"))))
	assert.Equal(t, int64(0), stats.Revenue(bookings, ptr(date("2025-07-02")), ptr(date("2025-07-04"))))
	assert.Equal(t, int64(0), stats.Revenue(bookings, ptr(date("2025-07-01")), ptr(date("2025-07-03"))))
}

func TestRevenue_OpenBounds(t *testing.T) {
	bookings := []*model.Booking{
		booking("2025-07-01", "2025-07-04", 7500, model.StatusCompleted),
		booking("2025-07-10", "2025-07-12", 5000, model.StatusConfirmed),
		booking("2025-07-20", "2025-07-21", 2500, model.StatusCancelled),
	}

	assert.Equal(t, int64(12500), stats.Revenue(bookings, nil, nil))
	assert.Equal(t, int64(5000), stats.Revenue(bookings, ptr(date("2025-07-05")), nil))
	assert.Equal(t, int64(7500), stats.Revenue(bookings, nil, ptr(date("2025-07-05"))))
}
