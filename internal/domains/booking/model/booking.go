package model

import (
	"hotel/shared/clock"
	"hotel/shared/daterange"
	"hotel/shared/model"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContactInfo is the guest's phone and postal address. Both are required.
type ContactInfo struct {
	phone   string
	address string
}

func NewContactInfo(phone, address string) (ContactInfo, error) {
	phone = strings.TrimSpace(phone)
	address = strings.TrimSpace(address)

	if phone == "" {
		return ContactInfo{}, ErrPhoneRequired
	}

	if address == "" {
		return ContactInfo{}, ErrAddressRequired
	}

	return ContactInfo{phone: phone, address: address}, nil
}

func (c ContactInfo) Phone() string   { return c.phone }
func (c ContactInfo) Address() string { return c.address }

// Draft carries everything needed to open a reservation.
type Draft struct {
	RoomID          string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	GuestName       string
	Email           string
	Contact         ContactInfo
	NightlyPrice    int64
	SpecialRequests string
	CreatedBy       string
}

// Booking is the reservation aggregate. It is built by NewBooking or
// rehydrated by FromRow and only changes through its transition methods.
type Booking struct {
	id              string
	token           string
	roomID          string
	stay            daterange.Range
	guests          int
	guestName       string
	email           string
	contact         ContactInfo
	totalAmount     int64
	specialRequests string
	status          Status
	metadata        model.Metadata
}

// NewBooking validates the stay against the clock's today and opens a Pending booking
// priced at NightlyPrice per night.
func NewBooking(clk clock.Clock, draft Draft) (*Booking, error) {
	stay := daterange.New(draft.CheckIn, draft.CheckOut)
	if err := validateStay(clk, stay); err != nil {
		return nil, err
	}

	now := clk.Now()

	return &Booking{
		id:              uuid.NewString(),
		token:           uuid.NewString(),
		roomID:          draft.RoomID,
		stay:            stay,
		guests:          draft.Guests,
		guestName:       strings.TrimSpace(draft.GuestName),
		email:           strings.TrimSpace(draft.Email),
		contact:         draft.Contact,
		totalAmount:     draft.NightlyPrice * int64(stay.Days()),
		specialRequests: strings.TrimSpace(draft.SpecialRequests),
		status:          StatusPending,
		metadata: model.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  draft.CreatedBy,
			ModifiedBy: draft.CreatedBy,
		},
	}, nil
}

func validateStay(clk clock.Clock, stay daterange.Range) error {
	if !stay.Valid() {
		return ErrInvalidStay
	}

	if stay.Start.Before(clock.Today(clk)) {
		return ErrCheckInInPast
	}

	return nil
}

func (b *Booking) ID() string              { return b.id }
func (b *Booking) Token() string           { return b.token }
func (b *Booking) RoomID() string          { return b.roomID }
func (b *Booking) CheckIn() time.Time      { return b.stay.Start }
func (b *Booking) CheckOut() time.Time     { return b.stay.End }
func (b *Booking) Stay() daterange.Range   { return b.stay }
func (b *Booking) Nights() int             { return b.stay.Days() }
func (b *Booking) Guests() int             { return b.guests }
func (b *Booking) GuestName() string       { return b.guestName }
func (b *Booking) Email() string           { return b.email }
func (b *Booking) Contact() ContactInfo    { return b.contact }
func (b *Booking) TotalAmount() int64      { return b.totalAmount }
func (b *Booking) SpecialRequests() string { return b.specialRequests }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) Metadata() model.Metadata {
	return b.metadata
}

// BelongsTo reports whether email is the address the booking was made with, ignoring case.
func (b *Booking) BelongsTo(email string) bool {
	return email != "" && strings.EqualFold(strings.TrimSpace(email), b.email)
}

func (b *Booking) Confirm() error {
	if b.status != StatusPending {
		return ErrConfirmNotPending
	}

	b.status = StatusConfirmed

	return nil
}

func (b *Booking) CheckInGuest() error {
	if b.status != StatusConfirmed {
		return ErrCheckInNotReady
	}

	b.status = StatusCheckedIn

	return nil
}

func (b *Booking) CheckOutGuest() error {
	if b.status != StatusCheckedIn {
		return ErrCheckOutNotReady
	}

	b.status = StatusCheckedOut

	return nil
}

// Complete closes a checked-out stay once the clock has reached the check-out date.
func (b *Booking) Complete(clk clock.Clock) error {
	if b.status != StatusCheckedOut {
		return ErrCompleteNotReady
	}

	if clock.Today(clk).Before(b.stay.End) {
		return ErrCompleteTooEarly
	}

	b.status = StatusCompleted

	return nil
}

// Cancel is allowed from every status except Completed, including Cancelled itself.
func (b *Booking) Cancel() error {
	if b.status == StatusCompleted {
		return ErrCancelCompleted
	}

	b.status = StatusCancelled

	return nil
}

// UpdateDates moves a pending stay and reprices it at nightlyPrice.
func (b *Booking) UpdateDates(clk clock.Clock, checkIn, checkOut time.Time, nightlyPrice int64) error {
	if b.status != StatusPending {
		return ErrUpdateNotPending
	}

	stay := daterange.New(checkIn, checkOut)
	if err := validateStay(clk, stay); err != nil {
		return err
	}

	b.stay = stay
	b.totalAmount = nightlyPrice * int64(stay.Days())

	return nil
}

// Touch stamps the modification audit columns.
func (b *Booking) Touch(clk clock.Clock, actor string) {
	b.metadata.ModifiedAt = clk.Now()
	b.metadata.ModifiedBy = actor
}

func (b *Booking) ToRow() BookingRow {
	return BookingRow{
		ID:              b.id,
		Token:           b.token,
		RoomID:          b.roomID,
		CheckIn:         b.stay.Start,
		CheckOut:        b.stay.End,
		Guests:          b.guests,
		GuestName:       b.guestName,
		Email:           b.email,
		Phone:           b.contact.phone,
		Address:         b.contact.address,
		TotalAmount:     b.totalAmount,
		SpecialRequests: b.specialRequests,
		Status:          string(b.status),
		Metadata:        b.metadata,
	}
}

// FromRow rehydrates a stored booking without re-running creation rules,
// since a past check-in is legitimate for an existing reservation.
func FromRow(row BookingRow) *Booking {
	return &Booking{
		id:              row.ID,
		token:           row.Token,
		roomID:          row.RoomID,
		stay:            daterange.New(row.CheckIn, row.CheckOut),
		guests:          row.Guests,
		guestName:       row.GuestName,
		email:           row.Email,
		contact:         ContactInfo{phone: row.Phone, address: row.Address},
		totalAmount:     row.TotalAmount,
		specialRequests: row.SpecialRequests,
		status:          Status(row.Status),
		metadata:        row.Metadata,
	}
}

func FromRows(rows []BookingRow) []*Booking {
	bookings := make([]*Booking, len(rows))
	for i, row := range rows {
		bookings[i] = FromRow(row)
	}

	return bookings
}
