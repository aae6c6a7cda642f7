package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithError(t *testing.T) {
	t.Run("failure code", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithError(rec, failure.Conflict("Room is not available for the selected dates."))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		body := decode(t, rec)
		assert.Equal(t, "Room is not available for the selected dates.", body["error"])
		assert.NotContains(t, body, "reason")
	})

	t.Run("verification reason", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithError(rec, failure.Unverified("expired", "Verification code has expired."))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "expired", decode(t, rec)["reason"])
	})

	t.Run("plain error", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithError(rec, errors.New("db down"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"token": "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"token":"abc"}}`, rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "REQUEST LIMIT EXCEEDED", decode(t, rec)["message"])
}
