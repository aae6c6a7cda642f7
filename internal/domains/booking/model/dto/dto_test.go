package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/shared/constant"
	gModel "hotel/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedBooking() *model.Booking {
	createdAt := time.Date(2025, 6, 20, 9, 30, 0, 0, time.UTC)

	return model.FromRow(model.BookingRow{
		ID:          "b-1",
		Token:       "token-b-1",
		RoomID:      "room-1",
		CheckIn:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
		Guests:      2,
		GuestName:   "Ada Guest",
		Email:       "guest@example.com",
		TotalAmount: 7500,
		Status:      string(model.StatusPending),
		Metadata: gModel.Metadata{
			CreatedAt:  createdAt,
			ModifiedAt: createdAt.Add(30 * time.Minute),
			CreatedBy:  "guest@example.com",
			ModifiedBy: "staff-1",
		},
	})
}

func TestAdminBookingResponse_JSON(t *testing.T) {
	var res dto.AdminBookingResponse

	res.FromModel(storedBooking())

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Equal(t, "b-1", fields["id"])
	assert.Equal(t, "token-b-1", fields["token"])
	assert.Equal(t, "guest@example.com", fields["created_by"])
	assert.Equal(t, "staff-1", fields["modified_by"])

	createdAt, ok := fields["created_at"].(string)
	require.True(t, ok, "created_at missing from %s", raw)

	parsed, err := time.Parse(constant.DateFormat, createdAt)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2025, 6, 20, 9, 30, 0, 0, time.UTC)))

	modifiedAt, ok := fields["modified_at"].(string)
	require.True(t, ok)

	parsed, err = time.Parse(constant.DateFormat, modifiedAt)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)))

	var decoded dto.AdminBookingResponse
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, res, decoded)
}

func TestGetBookingsResponse_KeepsCreatedAt(t *testing.T) {
	var res dto.GetBookingsResponse

	res.FromModels([]*model.Booking{storedBooking()}, 1, 10)

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"created_at":`)
	assert.Equal(t, 1, res.TotalPage)
}
