package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{Code: http.StatusBadRequest, Message: "Only pending bookings can be confirmed."}

	assert.Equal(t, "Only pending bookings can be confirmed.", f.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "business rule", err: failure.BusinessRule("Check-in date cannot be in the past."), code: http.StatusBadRequest, message: "Check-in date cannot be in the past."},
		{name: "bad request", err: failure.BadRequestFromString("invalid body"), code: http.StatusBadRequest, message: "invalid body"},
		{name: "not found", err: failure.NotFound("booking not found"), code: http.StatusNotFound, message: "booking not found"},
		{name: "forbidden", err: failure.Forbidden("not your booking"), code: http.StatusForbidden, message: "not your booking"},
		{name: "conflict", err: failure.Conflict("room taken"), code: http.StatusConflict, message: "room taken"},
		{name: "unauthorized", err: failure.Unauthorized("token expired"), code: http.StatusUnauthorized, message: "token expired"},
		{name: "unverified", err: failure.Unverified("expired", "code expired"), code: http.StatusUnprocessableEntity, message: "code expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestNilWrappers(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(failure.InternalError(errors.New("db down"))))
}

func TestGetCode_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("failed to confirm booking: %w", failure.Forbidden("nope"))

	assert.Equal(t, http.StatusForbidden, failure.GetCode(wrapped))
	assert.True(t, failure.Is(wrapped, http.StatusForbidden))
	assert.False(t, failure.Is(wrapped, http.StatusNotFound))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(nil))
}

func TestGetReason(t *testing.T) {
	assert.Equal(t, "exhausted", failure.GetReason(failure.Unverified("exhausted", "too many attempts")))
	assert.Empty(t, failure.GetReason(failure.BusinessRule("x")))
	assert.Empty(t, failure.GetReason(errors.New("plain")))
}
