// Package secret hashes short-lived secrets such as one-time passcodes so
// that only a one-way digest is ever persisted.
package secret

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt cost used for passcode digests.
	DefaultCost = bcrypt.DefaultCost
)

var (
	ErrEmptySecret = errors.New("secret cannot be empty")
	ErrMismatch    = errors.New("secret does not match")
)

// Hash returns the bcrypt digest of value.
func Hash(value string) (string, error) {
	if value == "" {
		return "", ErrEmptySecret
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(value), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}

	return string(digest), nil
}

// Verify returns nil when value matches digest and ErrMismatch when it does not.
func Verify(value, digest string) error {
	if value == "" || digest == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(value))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}

		return fmt.Errorf("failed to verify secret: %w", err)
	}

	return nil
}
