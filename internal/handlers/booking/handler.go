package booking

import (
	"context"
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// transition is any booking operation driven by a reference and an actor.
type transition func(ctx context.Context, ref service.Reference, actor service.Actor) (dto.BookingResponse, error)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the guest flow. Guests are identified by booking token plus the booking email.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/{token}", handler.GetBooking)
		routerGroup.Post("/{token}/confirm", handler.ConfirmBooking)
		routerGroup.Post("/{token}/otp", handler.ResendOtp)
		routerGroup.Patch("/{token}/dates", handler.UpdateDates)
		routerGroup.Post("/{token}/cancel", handler.CancelBooking)
		routerGroup.Post("/{token}/complete", handler.CompleteBooking)
	})
}

// StaffRouter registers the front desk operations. The caller applies auth.
func (handler *Handler) StaffRouter(router chi.Router) {
	router.Get("/admin/bookings", handler.GetBookings)
	router.Post("/admin/bookings/{id}/check-in", handler.CheckIn)
	router.Post("/admin/bookings/{id}/check-out", handler.CheckOut)
	router.Post("/admin/bookings/{id}/complete", handler.StaffComplete)
	router.Post("/admin/bookings/{id}/cancel", handler.StaffCancel)
}

// CreateBooking places a pending reservation and mails a verification code.
// @Summary Create a booking
// @Description Reserve a room for [check_in, check_out). The booking stays pending until the emailed code is confirmed.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Reservation details"
// @Success 201 {object} response.Data[dto.CreateBookingResponse] "Pending booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Room is not available"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created for room " + req.RoomID)

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBooking returns the guest view of a booking.
// @Summary Get a booking by token
// @Tags Booking
// @Produce json
// @Param token path string true "Booking token"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{token} [get]
func (handler *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	booking, err := handler.service.GetByToken(ctx, chi.URLParam(r, constant.RequestParamToken))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// ConfirmBooking redeems the verification code.
// @Summary Confirm a booking
// @Description A rejected code answers 422 with reason expired, exhausted, mismatch or not_found.
// @Tags Booking
// @Accept json
// @Produce json
// @Param token path string true "Booking token"
// @Param request body dto.ConfirmBookingRequest true "Email and code"
// @Success 200 {object} response.Data[dto.BookingResponse] "Confirmed booking"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{token}/confirm [post]
func (handler *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmBooking")
	defer scope.End()

	var req dto.ConfirmBookingRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Confirm(ctx, chi.URLParam(r, constant.RequestParamToken), req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// ResendOtp issues a fresh verification code and retires the previous one.
// @Summary Resend the verification code
// @Tags Booking
// @Accept json
// @Produce json
// @Param token path string true "Booking token"
// @Param request body dto.GuestRequest true "Booking email"
// @Success 202 {object} response.Message "Verification code sent"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{token}/otp [post]
func (handler *Handler) ResendOtp(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResendOtp")
	defer scope.End()

	var req dto.GuestRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.ResendOtp(ctx, chi.URLParam(r, constant.RequestParamToken), req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusAccepted, "Verification code sent")
}

// UpdateDates moves a pending booking and reprices it.
// @Summary Change booking dates
// @Tags Booking
// @Accept json
// @Produce json
// @Param token path string true "Booking token"
// @Param request body dto.UpdateDatesRequest true "Email and new dates"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{token}/dates [patch]
func (handler *Handler) UpdateDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDates")
	defer scope.End()

	var req dto.UpdateDatesRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	ref := service.ByToken(chi.URLParam(r, constant.RequestParamToken))

	booking, err := handler.service.UpdateDates(ctx, ref, service.Guest(req.Email), checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking cancels the guest's booking.
// @Summary Cancel a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param token path string true "Booking token"
// @Param request body dto.GuestRequest true "Booking email"
// @Success 200 {object} response.Data[dto.BookingResponse] "Cancelled booking"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{token}/cancel [post]
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	handler.guest(w, r, ".CancelBooking", handler.service.Cancel)
}

// CompleteBooking closes a checked-out stay.
// @Summary Complete a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param token path string true "Booking token"
// @Param request body dto.GuestRequest true "Booking email"
// @Success 200 {object} response.Data[dto.BookingResponse] "Completed booking"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{token}/complete [post]
func (handler *Handler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	handler.guest(w, r, ".CompleteBooking", handler.service.Complete)
}

// GetBookings lists bookings for staff.
// @Summary List bookings
// @Tags Admin Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room"
// @Param status query string false "Filter by status"
// @Param email query string false "Filter by guest email"
// @Param from query string false "Stays ending after this date (YYYY-MM-DD)"
// @Param to query string false "Stays starting before this date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Bookings"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.SortableFields...)

	query := r.URL.Query()
	filter := dto.BookingFilter{
		RoomID: query.Get(model.FieldRoomID),
		Status: query.Get(model.FieldStatus),
		Email:  query.Get(model.FieldEmail),
		From:   query.Get("from"),
		To:     query.Get("to"),
	}

	if err := validator.ValidateStruct(&filter); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filter.ToFilterGroup())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// CheckIn marks the guest of a confirmed booking as arrived.
// @Summary Check in
// @Tags Admin Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Checked-in booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/{id}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	handler.staff(w, r, ".CheckIn", handler.service.CheckIn)
}

// CheckOut marks the guest as departed.
// @Summary Check out
// @Tags Admin Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Checked-out booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	handler.staff(w, r, ".CheckOut", handler.service.CheckOut)
}

// StaffComplete closes a checked-out stay on or after its check-out date.
// @Summary Complete a booking
// @Tags Admin Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Completed booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) StaffComplete(w http.ResponseWriter, r *http.Request) {
	handler.staff(w, r, ".StaffComplete", handler.service.Complete)
}

// StaffCancel cancels any booking that is not completed.
// @Summary Cancel a booking
// @Tags Admin Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Cancelled booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) StaffCancel(w http.ResponseWriter, r *http.Request) {
	handler.staff(w, r, ".StaffCancel", handler.service.Cancel)
}

// guest runs op for the guest named in the request body against the booking in the path.
func (handler *Handler) guest(w http.ResponseWriter, r *http.Request, span string, op transition) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+span)
	defer scope.End()

	var req dto.GuestRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	booking, err := op(ctx, service.ByToken(chi.URLParam(r, constant.RequestParamToken)), service.Guest(req.Email))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// staff runs op as the authenticated staff member against the booking id in the path.
func (handler *Handler) staff(w http.ResponseWriter, r *http.Request, span string, op transition) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+span)
	defer scope.End()

	actor := service.StaffFromContext(ctx)

	booking, err := op(ctx, service.ByID(chi.URLParam(r, constant.RequestParamID)), actor)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking changed by user " + actor.UserID)

	response.WithJSON(w, http.StatusOK, booking)
}
