package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	otpModel "hotel/internal/domains/otp/model"
	"hotel/internal/handlers/booking"
	"hotel/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (chi.Router, *bookingMocks.MockBookingService) {
	svc := bookingMocks.NewMockBookingService(gomock.NewController(t))
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		handler.Router(r)
		handler.StaffRouter(r)
	})

	return router, svc
}

func serve(router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestCreateBooking(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error) {
				assert.Equal(t, "2025-07-04", req.CheckIn)

				return dto.CreateBookingResponse{BookingResponse: dto.BookingResponse{Token: "tok", Status: "pending"}, VerificationSent: true}, nil
			})

		rec := serve(router, http.MethodPost, "/v1/bookings", `{
			"room_id": "7f4b1f7e-4d4e-4a57-9a0b-0d4f7c0c2a11",
			"check_in": "2025-07-04",
			"check_out": "2025-07-06",
			"guests": 2,
			"guest_name": "Ada Guest",
			"email": "guest@example.com",
			"phone": "+62 812 0000 0000",
			"address": "Jl. Merdeka 1"
		}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"verification_sent":true`)
	})

	t.Run("invalid body never reaches the service", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPost, "/v1/bookings", `{"room_id": "nope"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("room taken", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.CreateBookingResponse{}, model.ErrRoomUnavailable)

		rec := serve(router, http.MethodPost, "/v1/bookings", `{
			"room_id": "7f4b1f7e-4d4e-4a57-9a0b-0d4f7c0c2a11",
			"check_in": "2025-07-03",
			"check_out": "2025-07-06",
			"guests": 1,
			"guest_name": "Ada Guest",
			"email": "guest@example.com",
			"phone": "+62 812 0000 0000",
			"address": "Jl. Merdeka 1"
		}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestConfirmBooking_RejectedCode(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Confirm(gomock.Any(), "tok", dto.ConfirmBookingRequest{Email: "guest@example.com", Code: "123456"}).
		Return(dto.BookingResponse{}, otpModel.ErrCodeExpired)

	rec := serve(router, http.MethodPost, "/v1/bookings/tok/confirm", `{"email":"guest@example.com","code":"123456"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reason":"expired"`)
}

func TestCancelBooking_Guest(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Cancel(gomock.Any(), service.ByToken("tok"), service.Guest("guest@example.com")).
		Return(dto.BookingResponse{Token: "tok", Status: "cancelled"}, nil)

	rec := serve(router, http.MethodPost, "/v1/bookings/tok/cancel", `{"email":"guest@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
}

func TestCheckIn_Staff(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().CheckIn(gomock.Any(), service.ByID("b-1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ service.Reference, actor service.Actor) (dto.BookingResponse, error) {
			assert.True(t, actor.Staff)

			return dto.BookingResponse{Status: "checked_in"}, nil
		})

	rec := serve(router, http.MethodPost, "/v1/admin/bookings/b-1/check-in", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateDates_Malformed(t *testing.T) {
	router, _ := newRouter(t)

	rec := serve(router, http.MethodPatch, "/v1/bookings/tok/dates", `{"email":"guest@example.com","check_in":"04/07/2025","check_out":"2025-07-06"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
