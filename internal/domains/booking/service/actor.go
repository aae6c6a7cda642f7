package service

import (
	"context"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
)

// Actor is whoever drives a booking operation: a guest known only by the email the booking
// was made with, or an authenticated staff member.
type Actor struct {
	UserID string
	Email  string
	Staff  bool
}

func Guest(email string) Actor {
	return Actor{Email: email}
}

// StaffFromContext builds the actor from the claims the auth middleware put on ctx.
func StaffFromContext(ctx context.Context) Actor {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	return Actor{UserID: userID, Email: email, Staff: true}
}

// Name is recorded in the audit columns.
func (a Actor) Name() string {
	switch {
	case a.Staff && a.UserID != constant.Empty:
		return a.UserID
	case a.Email != constant.Empty:
		return a.Email
	default:
		return constant.SystemUser
	}
}

// authorize lets staff act on any booking and a guest only on their own.
func authorize(actor Actor, booking *model.Booking) error {
	if actor.Staff || booking.BelongsTo(actor.Email) {
		return nil
	}

	return model.ErrNotBookingOwner
}

// Reference addresses a booking by guest token or by internal id.
type Reference struct {
	token string
	id    string
}

func ByToken(token string) Reference {
	return Reference{token: token}
}

func ByID(id string) Reference {
	return Reference{id: id}
}
