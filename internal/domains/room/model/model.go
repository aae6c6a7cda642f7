package model

import (
	"hotel/shared/failure"
	"hotel/shared/model"
	"slices"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldNightlyPrice = "nightly_price"
	FieldCapacity     = "capacity"
	FieldStatus       = "status"
	FieldCreatedAt    = "created_at"
)

const (
	ImageTableName  = "room_images"
	ImageEntityName = "room_image"

	FieldImageID       = "id"
	FieldImageRoomID   = "room_id"
	FieldImagePosition = "position"
)

// SortableFields are the columns a room listing may order by.
var SortableFields = []string{FieldName, FieldNightlyPrice, FieldCapacity, FieldCreatedAt}

// Status is the operational state of a room, independent of its reservations.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusBooked      Status = "booked"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
	StatusInactive    Status = "inactive"
)

var Statuses = []Status{StatusAvailable, StatusBooked, StatusOccupied, StatusMaintenance, StatusInactive}

func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

// AcceptsReservations is false for rooms taken out of service.
func (s Status) AcceptsReservations() bool {
	return s != StatusMaintenance && s != StatusInactive
}

var (
	ErrRoomNotFound  = failure.NotFound("room not found")
	ErrImageNotFound = failure.NotFound("room image not found")
	ErrNameTaken     = failure.Conflict("A room with this name already exists.")
)

type Room struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Description  string `db:"description"`
	NightlyPrice int64  `db:"nightly_price"`
	Capacity     int    `db:"capacity"`
	Status       string `db:"status"`
	model.Metadata
}

func (r Room) AcceptsReservations() bool {
	return Status(r.Status).AcceptsReservations()
}

// Fits reports whether guests stay within the room's capacity.
func (r Room) Fits(guests int) bool {
	return guests > 0 && guests <= r.Capacity
}

// Image is one picture of a room's gallery, stored in object storage under ObjectKey.
type Image struct {
	ID        string `db:"id"`
	RoomID    string `db:"room_id"`
	URL       string `db:"url"`
	ObjectKey string `db:"object_key"`
	Position  int    `db:"position"`
	model.Metadata
}
