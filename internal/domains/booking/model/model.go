package model

import (
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldToken           = "token"
	FieldRoomID          = "room_id"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldGuests          = "guests"
	FieldGuestName       = "guest_name"
	FieldEmail           = "email"
	FieldTotalAmount     = "total_amount"
	FieldSpecialRequests = "special_requests"
	FieldStatus          = "status"
	FieldCreatedAt       = "created_at"
)

// SortableFields are the columns a listing may order by.
var SortableFields = []string{FieldCheckIn, FieldCheckOut, FieldCreatedAt, FieldTotalAmount, FieldStatus}

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusBooked     Status = "booked"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists the whole vocabulary. Booked is reserved and no transition produces it.
var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusBooked,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCompleted,
	StatusCancelled,
}

func (s Status) Valid() bool {
	for _, status := range Statuses {
		if s == status {
			return true
		}
	}

	return false
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// BookingRow is the persisted shape of a Booking.
type BookingRow struct {
	ID              string    `db:"id"`
	Token           string    `db:"token"`
	RoomID          string    `db:"room_id"`
	CheckIn         time.Time `db:"check_in"`
	CheckOut        time.Time `db:"check_out"`
	Guests          int       `db:"guests"`
	GuestName       string    `db:"guest_name"`
	Email           string    `db:"email"`
	Phone           string    `db:"phone"`
	Address         string    `db:"address"`
	TotalAmount     int64     `db:"total_amount"`
	SpecialRequests string    `db:"special_requests"`
	Status          string    `db:"status"`
	model.Metadata
}
