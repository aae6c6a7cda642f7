package model

import "hotel/shared/failure"

var (
	ErrInvalidStay        = failure.BusinessRule("Check-in date must be before check-out date.")
	ErrCheckInInPast      = failure.BusinessRule("Check-in date cannot be in the past.")
	ErrConfirmNotPending  = failure.BusinessRule("Only pending bookings can be confirmed.")
	ErrCheckInNotReady    = failure.BusinessRule("Only confirmed bookings can be checked in.")
	ErrCheckOutNotReady   = failure.BusinessRule("Only checked-in bookings can be checked out.")
	ErrCompleteNotReady   = failure.BusinessRule("Only checked-out bookings can be completed.")
	ErrCompleteTooEarly   = failure.BusinessRule("Booking cannot be completed before the check-out date.")
	ErrCancelCompleted    = failure.BusinessRule("Completed bookings cannot be cancelled.")
	ErrUpdateNotPending   = failure.BusinessRule("Only pending bookings can have their dates changed.")
	ErrPhoneRequired      = failure.BusinessRule("Contact phone is required.")
	ErrAddressRequired    = failure.BusinessRule("Contact address is required.")
	// ErrRoomUnavailable is the double-booking rule violation. It carries 409 so callers can tell a
	// taken room apart from malformed input; the exclusion-constraint race maps to it as well.
	ErrRoomUnavailable    = failure.Conflict("Room is not available for the selected dates.")
	ErrRoomNotBookable    = failure.BusinessRule("Room is not accepting reservations.")
	ErrCapacityExceeded   = failure.BusinessRule("Guest count exceeds room capacity.")
	ErrBookingNotFound    = failure.NotFound("booking not found")
	ErrNotBookingOwner    = failure.Forbidden("You are not allowed to manage this booking.")
	ErrOtpRequiresPending = failure.BusinessRule("Verification codes are only issued for pending bookings.")
)
