// Package stats aggregates occupancy and revenue over a room's bookings.
//
// Occupancy counts any overlap with the window, pro rata. Revenue only
// attributes a stay that lies entirely inside the window. The two filters
// differ on purpose and must not be unified.
package stats

import (
	"hotel/internal/domains/booking/availability"
	"hotel/internal/domains/booking/model"
	"hotel/shared/daterange"
	"time"
)

const percent = 100

// OccupancyRate is the share of nights in [start, end) covered by bookings, truncated to a
// whole percentage. Spans of distinct bookings are summed as is, relying on the inventory being
// free of overlaps. A window with end <= start yields 0.
func OccupancyRate(bookings []*model.Booking, start, end time.Time) int {
	window := daterange.New(start, end)

	windowDays := window.Days()
	if windowDays <= 0 {
		return 0
	}

	bookedDays := 0

	for _, booking := range bookings {
		if !availability.Blocks(booking) {
			continue
		}

		overlap, ok := window.Intersect(booking.Stay())
		if !ok {
			continue
		}

		bookedDays += overlap.Days()
	}

	return bookedDays * percent / windowDays
}

// Revenue sums TotalAmount of bookings contained in the window. A nil bound is open.
// Cancelled stays carry no income, so they are skipped regardless of the window.
func Revenue(bookings []*model.Booking, start, end *time.Time) int64 {
	var total int64

	for _, booking := range bookings {
		if !availability.Blocks(booking) {
			continue
		}

		if start != nil && booking.CheckIn().Before(daterange.Day(*start)) {
			continue
		}

		if end != nil && booking.CheckOut().After(daterange.Day(*end)) {
			continue
		}

		total += booking.TotalAmount()
	}

	return total
}
