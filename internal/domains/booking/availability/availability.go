// Package availability decides whether a stay fits into a room's existing reservations.
package availability

import (
	"hotel/internal/domains/booking/model"
	"hotel/shared/daterange"
)

// Overlaps is the half-open test: a stay ending on the day another begins does not collide.
func Overlaps(existing, candidate daterange.Range) bool {
	return existing.Overlaps(candidate)
}

// Blocks reports whether a booking occupies its dates. Only a cancelled booking releases them;
// completed stays still count so the predicate stays uniform.
func Blocks(booking *model.Booking) bool {
	return booking.Status() != model.StatusCancelled
}

// Conflicts returns the blocking bookings that overlap candidate, skipping excludeID so a booking
// being moved does not collide with itself.
func Conflicts(existing []*model.Booking, candidate daterange.Range, excludeID string) []*model.Booking {
	var conflicts []*model.Booking

	for _, booking := range existing {
		if booking.ID() == excludeID || !Blocks(booking) {
			continue
		}

		if Overlaps(booking.Stay(), candidate) {
			conflicts = append(conflicts, booking)
		}
	}

	return conflicts
}

// IsAvailable reports whether candidate collides with none of the room's bookings.
func IsAvailable(existing []*model.Booking, candidate daterange.Range, excludeID string) bool {
	return len(Conflicts(existing, candidate, excludeID)) == 0
}
