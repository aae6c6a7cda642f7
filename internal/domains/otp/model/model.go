package model

import (
	"hotel/shared/failure"
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "otp_verifications"
	EntityName = "otp_verification"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldEmail       = "email"
	FieldCodeHash    = "code_hash"
	FieldExpiresAt   = "expires_at"
	FieldAttempts    = "attempts"
	FieldUsed        = "used"
	FieldInvalidated = "invalidated"
	FieldCreatedAt   = "created_at"
)

const (
	CodeLength  = 6
	MaxAttempts = 5
)

// Verification is a stored one-time passcode. Only the bcrypt digest of the code is kept.
type Verification struct {
	ID          string    `db:"id"`
	BookingID   string    `db:"booking_id"`
	Email       string    `db:"email"`
	CodeHash    string    `db:"code_hash"`
	ExpiresAt   time.Time `db:"expires_at"`
	Attempts    int       `db:"attempts"`
	Used        bool      `db:"used"`
	Invalidated bool      `db:"invalidated"`
	model.Metadata
}

// Expired reports whether the code can no longer be redeemed at now.
func (v Verification) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}

func (v Verification) Exhausted() bool {
	return v.Attempts >= MaxAttempts
}

// Active reports whether the record can still be redeemed.
func (v Verification) Active(now time.Time) bool {
	return !v.Used && !v.Invalidated && !v.Expired(now)
}

// Result is the outcome of a validation attempt.
type Result string

const (
	ResultValid     Result = "valid"
	ResultNotFound  Result = "not_found"
	ResultExhausted Result = "exhausted"
	ResultExpired   Result = "expired"
	ResultMismatch  Result = "mismatch"
)

var (
	ErrCodeNotFound  = failure.Unverified(string(ResultNotFound), "No active verification code. Request a new one.")
	ErrCodeExhausted = failure.Unverified(string(ResultExhausted), "Too many failed attempts. Request a new code.")
	ErrCodeExpired   = failure.Unverified(string(ResultExpired), "Verification code has expired. Request a new one.")
	ErrCodeMismatch  = failure.Unverified(string(ResultMismatch), "Verification code is incorrect.")
)

// Err maps a failed outcome to its verification failure, nil for ResultValid.
func (r Result) Err() error {
	switch r {
	case ResultValid:
		return nil
	case ResultExhausted:
		return ErrCodeExhausted
	case ResultExpired:
		return ErrCodeExpired
	case ResultMismatch:
		return ErrCodeMismatch
	default:
		return ErrCodeNotFound
	}
}
