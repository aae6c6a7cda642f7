package dto

import (
	"strings"

	"hotel/internal/domains/booking/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"
	"time"
)

type CreateBookingRequest struct {
	RoomID          string `json:"room_id"          validate:"required,uuid"`
	CheckIn         string `json:"check_in"         validate:"required,dateonly"`
	CheckOut        string `json:"check_out"        validate:"required,dateonly"`
	Guests          int    `json:"guests"           validate:"required,min=1,max=20"`
	GuestName       string `json:"guest_name"       validate:"required,max=100"`
	Email           string `json:"email"            validate:"required,email,max=255"`
	Phone           string `json:"phone"            validate:"required,phone"`
	Address         string `json:"address"          validate:"required,max=500"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=1000"`
}

// Dates parses the stay dates. Validation has already checked the format.
func (c *CreateBookingRequest) Dates() (time.Time, time.Time, error) {
	return parseDates(c.CheckIn, c.CheckOut)
}

func parseDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := timezone.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	out, err := timezone.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return in, out, nil
}

type ConfirmBookingRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code"  validate:"required,len=6,numeric"`
}

// GuestRequest identifies the guest acting on a booking by the email it was made with.
type GuestRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateDatesRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	CheckIn  string `json:"check_in"  validate:"required,dateonly"`
	CheckOut string `json:"check_out" validate:"required,dateonly"`
}

func (u *UpdateDatesRequest) Dates() (time.Time, time.Time, error) {
	return parseDates(u.CheckIn, u.CheckOut)
}

// BookingResponse is the guest view. The internal id is never part of it.
type BookingResponse struct {
	Token           string `json:"token"`
	RoomID          string `json:"room_id"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Nights          int    `json:"nights"`
	Guests          int    `json:"guests"`
	GuestName       string `json:"guest_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	TotalAmount     int64  `json:"total_amount"`
	SpecialRequests string `json:"special_requests"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

func (r *BookingResponse) FromModel(booking *model.Booking) {
	r.Token = booking.Token()
	r.RoomID = booking.RoomID()
	r.CheckIn = timezone.FormatDate(booking.CheckIn())
	r.CheckOut = timezone.FormatDate(booking.CheckOut())
	r.Nights = booking.Nights()
	r.Guests = booking.Guests()
	r.GuestName = booking.GuestName()
	r.Email = booking.Email()
	r.Phone = booking.Contact().Phone()
	r.Address = booking.Contact().Address()
	r.TotalAmount = booking.TotalAmount()
	r.SpecialRequests = booking.SpecialRequests()
	r.Status = string(booking.Status())
	r.CreatedAt = timezone.Format(booking.Metadata().CreatedAt, constant.DateFormat)
}

// CreateBookingResponse tells the guest where to send the verification code.
type CreateBookingResponse struct {
	BookingResponse
	VerificationSent bool `json:"verification_sent"`
}

// AdminBookingResponse is the staff view, including the internal id and audit trail.
// created_at comes from the embedded guest view.
type AdminBookingResponse struct {
	ID string `json:"id"`
	BookingResponse
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func (r *AdminBookingResponse) FromModel(booking *model.Booking) {
	var audit gDto.Metadata

	audit.FromModel(booking.Metadata())

	r.ID = booking.ID()
	r.BookingResponse.FromModel(booking)
	r.ModifiedAt = audit.ModifiedAt
	r.CreatedBy = audit.CreatedBy
	r.ModifiedBy = audit.ModifiedBy
}

type GetBookingsResponse struct {
	Bookings  []AdminBookingResponse `json:"bookings"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(bookings []*model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]AdminBookingResponse, len(bookings))
	for i, booking := range bookings {
		r.Bookings[i].FromModel(booking)
	}
}

// BookingFilter holds the staff listing query string filters.
type BookingFilter struct {
	RoomID string `json:"room_id" validate:"omitempty,uuid"`
	Status string `json:"status"  validate:"omitempty,oneof=pending confirmed booked checked_in checked_out completed cancelled"`
	Email  string `json:"email"   validate:"omitempty,max=255"`
	From   string `json:"from"    validate:"omitempty,dateonly"`
	To     string `json:"to"      validate:"omitempty,dateonly"`
}

// ToFilterGroup narrows the listing. From and To select stays meeting [From, To).
func (f *BookingFilter) ToFilterGroup() gDto.FilterGroup {
	filters := []any{}

	if f.RoomID != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldRoomID, Value: f.RoomID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.Status != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: f.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.Email != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldEmail, Value: strings.TrimSpace(f.Email), Operator: gDto.FilterOperatorLike, Table: model.TableName})
	}

	if f.From != constant.Empty {
		filters = append(filters, gDto.Filter{ArgName: "stay_from", Field: model.FieldCheckOut, Value: f.From, Operator: gDto.FilterOperatorGreater, Table: model.TableName})
	}

	if f.To != constant.Empty {
		filters = append(filters, gDto.Filter{ArgName: "stay_to", Field: model.FieldCheckIn, Value: f.To, Operator: gDto.FilterOperatorLess, Table: model.TableName})
	}

	return gDto.FilterGroup{Filters: filters}
}
