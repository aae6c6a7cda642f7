package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/otp/model"
	"hotel/internal/domains/otp/repository"
	"hotel/shared/clock"
	"hotel/shared/constant"
	"hotel/shared/secret"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	defaultExpiryMinutes  = 15
	defaultRetentionHours = 24
)

var codeSpace = big.NewInt(1_000_000)

// Otp issues and redeems one-time passcodes bound to a booking and an email address.
type Otp interface {
	Generate(ctx context.Context, bookingID, email string) (string, error)
	// Validate never reports a rejected code as an error. Attempt counters are
	// persisted in their own unit of work unless ctx already carries one.
	Validate(ctx context.Context, bookingID, code, email string) (model.Result, error)
	Invalidate(ctx context.Context, bookingID, email string) error
	Cleanup(ctx context.Context) (int64, error)
}

type serviceImpl struct {
	repo  repository.Verification
	tx    postgres.Transactor
	cfg   *config.Config
	clock clock.Clock
	otel  otel.Otel
}

func New(repo repository.Verification, tx postgres.Transactor, cfg *config.Config, clk clock.Clock, otel otel.Otel) Otp {
	return &serviceImpl{
		repo:  repo,
		tx:    tx,
		cfg:   cfg,
		clock: clk,
		otel:  otel,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *serviceImpl) expiry() time.Duration {
	minutes := s.cfg.OTP.ExpiryMinutes
	if minutes <= 0 {
		minutes = defaultExpiryMinutes
	}

	return time.Duration(minutes) * time.Minute
}

func (s *serviceImpl) retention() time.Duration {
	hours := s.cfg.OTP.RetentionHours
	if hours <= 0 {
		hours = defaultRetentionHours
	}

	return time.Duration(hours) * time.Hour
}

// generateCode draws a zero-padded decimal code from crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("failed to draw verification code: %w", err)
	}

	return fmt.Sprintf("%0*d", model.CodeLength, n.Int64()), nil
}

func (s *serviceImpl) Generate(ctx context.Context, bookingID, email string) (code string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".otp.Generate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email = normalizeEmail(email)
	now := s.clock.Now()

	code, err = generateCode()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate verification code")

		return "", err
	}

	digest, err := secret.Hash(code)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash verification code")

		return "", fmt.Errorf("failed to hash verification code: %w", err)
	}

	record := model.Verification{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Email:     email,
		CodeHash:  digest,
		ExpiresAt: now.Add(s.expiry()),
	}
	record.CreatedAt = now
	record.ModifiedAt = now
	record.CreatedBy = constant.SystemUser
	record.ModifiedBy = constant.SystemUser

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.InvalidateActive(ctx, bookingID, constant.Empty, constant.SystemUser, now); err != nil {
			return fmt.Errorf("failed to invalidate previous codes: %w", err)
		}

		if err := s.repo.Insert(ctx, record); err != nil {
			return fmt.Errorf("failed to store verification code: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to issue verification code")

		return "", err
	}

	return code, nil
}

func (s *serviceImpl) Validate(ctx context.Context, bookingID, code, email string) (result model.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".otp.Validate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email = normalizeEmail(email)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error

		result, err = s.validate(ctx, bookingID, strings.TrimSpace(code), email)

		return err
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to validate verification code")

		return "", err
	}

	scope.SetAttribute("otp.result", string(result))

	return result, nil
}

func (s *serviceImpl) validate(ctx context.Context, bookingID, code, email string) (model.Result, error) {
	record, err := s.repo.GetActive(ctx, bookingID, email)
	if err != nil {
		return "", fmt.Errorf("failed to load verification code: %w", err)
	}

	if record.ID == constant.Empty {
		return model.ResultNotFound, nil
	}

	if record.Exhausted() {
		return model.ResultExhausted, nil
	}

	now := s.clock.Now()

	if record.Expired(now) {
		return model.ResultExpired, nil
	}

	err = secret.Verify(code, record.CodeHash)
	if errors.Is(err, secret.ErrMismatch) {
		if err := s.repo.RecordAttempt(ctx, record.ID, record.Attempts+1, constant.SystemUser, now); err != nil {
			return "", fmt.Errorf("failed to record verification attempt: %w", err)
		}

		return model.ResultMismatch, nil
	}

	if err != nil {
		return "", err
	}

	if err := s.repo.MarkUsed(ctx, record.ID, constant.SystemUser, now); err != nil {
		return "", fmt.Errorf("failed to redeem verification code: %w", err)
	}

	return model.ResultValid, nil
}

func (s *serviceImpl) Invalidate(ctx context.Context, bookingID, email string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".otp.Invalidate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.repo.InvalidateActive(ctx, bookingID, normalizeEmail(email), constant.SystemUser, s.clock.Now())
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to invalidate verification codes")

		return fmt.Errorf("failed to invalidate verification codes: %w", err)
	}

	return nil
}

// Cleanup removes records that expired longer ago than the retention window.
func (s *serviceImpl) Cleanup(ctx context.Context) (deleted int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".otp.Cleanup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	before := s.clock.Now().Add(-s.retention())

	deleted, err = s.repo.DeleteExpired(ctx, before)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete expired verification codes")

		return 0, fmt.Errorf("failed to delete expired verification codes: %w", err)
	}

	log.Info().Int64("deleted", deleted).Time("before", before).Msg("expired verification codes removed")

	return deleted, nil
}
