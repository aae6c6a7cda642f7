package model_test

import (
	"net/http"
	"testing"
	"time"

	"hotel/internal/domains/booking/model"
	"hotel/shared/clock"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 6, 20, 9, 30, 0, 0, time.UTC)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return t
}

func draft(checkIn, checkOut string) model.Draft {
	contact, err := model.NewContactInfo("+62 811 000 111", "Jl. Merdeka 1, Bandung")
	if err != nil {
		panic(err)
	}

	return model.Draft{
		RoomID:       "room-1",
		CheckIn:      date(checkIn),
		CheckOut:     date(checkOut),
		Guests:       2,
		GuestName:    "Ada Lovelace",
		Email:        "Ada@Example.com",
		Contact:      contact,
		NightlyPrice: 2500,
		CreatedBy:    "guest",
	}
}

func newBooking(t *testing.T) *model.Booking {
	t.Helper()

	booking, err := model.NewBooking(clock.Fixed(today), draft("2025-07-01", "2025-07-04"))
	require.NoError(t, err)

	return booking
}

// withStatus walks the aggregate through legal transitions up to status.
func withStatus(t *testing.T, status model.Status) *model.Booking {
	t.Helper()

	booking := newBooking(t)
	afterStay := clock.Fixed(date("2025-07-04"))

	steps := map[model.Status][]func() error{
		model.StatusPending:    nil,
		model.StatusConfirmed:  {booking.Confirm},
		model.StatusCheckedIn:  {booking.Confirm, booking.CheckInGuest},
		model.StatusCheckedOut: {booking.Confirm, booking.CheckInGuest, booking.CheckOutGuest},
		model.StatusCompleted:  {booking.Confirm, booking.CheckInGuest, booking.CheckOutGuest, func() error { return booking.Complete(afterStay) }},
		model.StatusCancelled:  {booking.Cancel},
	}

	for _, step := range steps[status] {
		require.NoError(t, step())
	}

	require.Equal(t, status, booking.Status())

	return booking
}

func TestNewBooking(t *testing.T) {
	booking := newBooking(t)

	assert.Equal(t, model.StatusPending, booking.Status())
	assert.NotEmpty(t, booking.ID())
	assert.NotEmpty(t, booking.Token())
	assert.NotEqual(t, booking.ID(), booking.Token())
	assert.Equal(t, 3, booking.Nights())
	assert.Equal(t, int64(7500), booking.TotalAmount())
	assert.Equal(t, "room-1", booking.RoomID())
	assert.Equal(t, "+62 811 000 111", booking.Contact().Phone())
	assert.Equal(t, today, booking.Metadata().CreatedAt)
}

func TestNewBooking_CheckInToday(t *testing.T) {
	booking, err := model.NewBooking(clock.Fixed(today), draft("2025-06-20", "2025-06-21"))

	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, booking.Status())
}

func TestNewBooking_InvalidDates(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		err      error
	}{
		{name: "same day", checkIn: "2025-07-01", checkOut: "2025-07-01", err: model.ErrInvalidStay},
		{name: "inverted", checkIn: "2025-07-04", checkOut: "2025-07-01", err: model.ErrInvalidStay},
		{name: "past check-in", checkIn: "2025-06-19", checkOut: "2025-06-22", err: model.ErrCheckInInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := model.NewBooking(clock.Fixed(today), draft(tt.checkIn, tt.checkOut))

			assert.Nil(t, booking)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewContactInfo(t *testing.T) {
	_, err := model.NewContactInfo("  ", "Somewhere")
	assert.ErrorIs(t, err, model.ErrPhoneRequired)

	_, err = model.NewContactInfo("+1 555 0100", "")
	assert.ErrorIs(t, err, model.ErrAddressRequired)

	contact, err := model.NewContactInfo(" +1 555 0100 ", " 1 Main St ")
	require.NoError(t, err)
	assert.Equal(t, "+1 555 0100", contact.Phone())
	assert.Equal(t, "1 Main St", contact.Address())
}

func TestConfirm_Twice(t *testing.T) {
	booking := newBooking(t)

	require.NoError(t, booking.Confirm())

	err := booking.Confirm()
	assert.ErrorIs(t, err, model.ErrConfirmNotPending)
	assert.EqualError(t, err, "Only pending bookings can be confirmed.")
	assert.Equal(t, model.StatusConfirmed, booking.Status())
}

func TestTransitions_Guards(t *testing.T) {
	assert.ErrorIs(t, withStatus(t, model.StatusPending).CheckInGuest(), model.ErrCheckInNotReady)
	assert.ErrorIs(t, withStatus(t, model.StatusConfirmed).CheckOutGuest(), model.ErrCheckOutNotReady)
	assert.ErrorIs(t, withStatus(t, model.StatusCheckedIn).Complete(clock.Fixed(date("2025-08-01"))), model.ErrCompleteNotReady)
	assert.ErrorIs(t, withStatus(t, model.StatusCancelled).Confirm(), model.ErrConfirmNotPending)
}

func TestComplete_BeforeCheckOut(t *testing.T) {
	booking := withStatus(t, model.StatusCheckedOut)

	err := booking.Complete(clock.Fixed(time.Date(2025, 7, 3, 23, 59, 0, 0, time.UTC)))

	assert.ErrorIs(t, err, model.ErrCompleteTooEarly)
	assert.Equal(t, model.StatusCheckedOut, booking.Status())

	require.NoError(t, booking.Complete(clock.Fixed(date("2025-07-04"))))
	assert.Equal(t, model.StatusCompleted, booking.Status())
}

func TestCancel_FromEveryStatus(t *testing.T) {
	for _, status := range []model.Status{
		model.StatusPending,
		model.StatusConfirmed,
		model.StatusCheckedIn,
		model.StatusCheckedOut,
		model.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			booking := withStatus(t, status)

			require.NoError(t, booking.Cancel())
			assert.Equal(t, model.StatusCancelled, booking.Status())
		})
	}

	completed := withStatus(t, model.StatusCompleted)
	assert.ErrorIs(t, completed.Cancel(), model.ErrCancelCompleted)
	assert.Equal(t, model.StatusCompleted, completed.Status())
}

func TestUpdateDates(t *testing.T) {
	booking := newBooking(t)

	require.NoError(t, booking.UpdateDates(clock.Fixed(today), date("2025-07-10"), date("2025-07-15"), 3000))
	assert.Equal(t, date("2025-07-10"), booking.CheckIn())
	assert.Equal(t, date("2025-07-15"), booking.CheckOut())
	assert.Equal(t, int64(15000), booking.TotalAmount())

	assert.ErrorIs(t, booking.UpdateDates(clock.Fixed(today), date("2025-06-01"), date("2025-06-03"), 3000), model.ErrCheckInInPast)
	assert.ErrorIs(t, booking.UpdateDates(clock.Fixed(today), date("2025-07-15"), date("2025-07-10"), 3000), model.ErrInvalidStay)
	assert.Equal(t, date("2025-07-10"), booking.CheckIn())

	require.NoError(t, booking.Confirm())
	assert.ErrorIs(t, booking.UpdateDates(clock.Fixed(today), date("2025-07-20"), date("2025-07-21"), 3000), model.ErrUpdateNotPending)
}

func TestBelongsTo(t *testing.T) {
	booking := newBooking(t)

	assert.True(t, booking.BelongsTo("ada@example.com"))
	assert.True(t, booking.BelongsTo(" ADA@EXAMPLE.COM "))
	assert.False(t, booking.BelongsTo("eve@example.com"))
	assert.False(t, booking.BelongsTo(""))
}

func TestRowRoundTrip(t *testing.T) {
	booking := withStatus(t, model.StatusConfirmed)

	row := booking.ToRow()
	assert.Equal(t, "confirmed", row.Status)
	assert.Equal(t, "Jl. Merdeka 1, Bandung", row.Address)

	restored := model.FromRow(row)
	assert.Equal(t, booking, restored)
}

func TestStatus(t *testing.T) {
	assert.True(t, model.StatusBooked.Valid())
	assert.False(t, model.Status("archived").Valid())
	assert.True(t, model.StatusCancelled.Terminal())
	assert.True(t, model.StatusCompleted.Terminal())
	assert.False(t, model.StatusCheckedOut.Terminal())
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "double booking is a conflict", err: model.ErrRoomUnavailable, code: http.StatusConflict},
		{name: "guard violation is a bad request", err: model.ErrConfirmNotPending, code: http.StatusBadRequest},
		{name: "foreign booking is forbidden", err: model.ErrNotBookingOwner, code: http.StatusForbidden},
		{name: "unknown booking is not found", err: model.ErrBookingNotFound, code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}
