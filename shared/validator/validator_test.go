package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/stretchr/testify/assert"
)

type guestRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Phone    string `json:"phone"     validate:"required,phone"`
	CheckIn  string `json:"check_in"  validate:"required,dateonly"`
	Guests   int    `json:"guests"    validate:"gte=1,lte=10"`
	Category string `json:"category"  validate:"omitempty,oneof=standard deluxe"`
}

func validGuest() guestRequest {
	return guestRequest{
		Email:   "ada@example.com",
		Phone:   "+44 20 7946 0958",
		CheckIn: "2025-07-01",
		Guests:  2,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *guestRequest)
		message string
	}{
		{name: "valid", mutate: func(_ *guestRequest) {}},
		{name: "missing email", mutate: func(r *guestRequest) { r.Email = "" }, message: "email is required"},
		{name: "invalid email", mutate: func(r *guestRequest) { r.Email = "ada" }, message: "email must be a valid email address"},
		{name: "invalid phone", mutate: func(r *guestRequest) { r.Phone = "call me" }, message: "phone must be a valid phone number"},
		{name: "invalid date", mutate: func(r *guestRequest) { r.CheckIn = "01/07/2025" }, message: "check_in must be a date formatted as YYYY-MM-DD"},
		{name: "too many guests", mutate: func(r *guestRequest) { r.Guests = 11 }, message: "guests must be less than or equal to 10"},
		{name: "unknown category", mutate: func(r *guestRequest) { r.Category = "penthouse" }, message: "category must be one of standard deluxe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validGuest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValidate(t *testing.T) {
	var req guestRequest

	err := validator.Validate(strings.NewReader(`{"email":"ada@example.com","phone":"+1 555 0100","check_in":"2025-07-01","guests":1}`), &req)
	assert.NoError(t, err)
	assert.Equal(t, 1, req.Guests)

	err = validator.Validate(strings.NewReader(`{"email":`), &req)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "failed to decode request body")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-02-28", "dateonly"))
	assert.Error(t, validator.ValidateVar("2025-02-30", "dateonly"))
	assert.NoError(t, validator.ValidateVar("3f2504e0-4f89-41d3-9a0c-0305e82c3301", "uuid"))
	assert.Error(t, validator.ValidateVar("not-a-uuid", "uuid"))
}
