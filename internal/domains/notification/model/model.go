package model

// Type names the guest-facing message to deliver.
type Type string

const (
	TypeVerificationCode Type = "verification_code"
	TypeConfirmation     Type = "booking_confirmed"
	TypeUpdate           Type = "booking_updated"
	TypeCancellation     Type = "booking_cancelled"
)

// Message is the payload published to the notification topic and keyed by booking token,
// so messages of one booking keep their order.
type Message struct {
	Type         Type   `json:"type"`
	BookingToken string `json:"booking_token"`
	Email        string `json:"email"`
	GuestName    string `json:"guest_name"`
	RoomID       string `json:"room_id"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
	TotalAmount  int64  `json:"total_amount"`
	Status       string `json:"status"`
	Code         string `json:"code,omitempty"`
}
