package service_test

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"testing"
	"time"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	txMocks "hotel/infras/postgres/mocks"
	otpMocks "hotel/internal/domains/otp/mocks"
	"hotel/internal/domains/otp/model"
	"hotel/internal/domains/otp/service"
	"hotel/shared/clock"
	"hotel/shared/constant"
	"hotel/shared/secret"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

func passThroughTx(ctrl *gomock.Controller) *txMocks.MockTransactor {
	tx := txMocks.NewMockTransactor(ctrl)
	tx.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).
		AnyTimes()

	return tx
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.OTP.ExpiryMinutes = 15
	cfg.OTP.RetentionHours = 24

	return cfg
}

func hashOf(t *testing.T, code string) string {
	t.Helper()

	digest, err := secret.Hash(code)
	require.NoError(t, err)

	return digest
}

func TestOtpService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := otpMocks.NewMockVerification(ctrl)
	svc := service.New(repo, passThroughTx(ctrl), newConfig(), clock.Fixed(fixedNow), otelMocks.NewOtel())

	var stored model.Verification

	gomock.InOrder(
		repo.EXPECT().InvalidateActive(gomock.Any(), "booking-1", constant.Empty, constant.SystemUser, fixedNow).Return(nil),
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v model.Verification) error {
			stored = v

			return nil
		}),
	)

	code, err := svc.Generate(context.Background(), "booking-1", " Guest@Example.com ")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9]{6}$`), code)
	assert.Equal(t, "booking-1", stored.BookingID)
	assert.Equal(t, "guest@example.com", stored.Email)
	assert.Equal(t, fixedNow.Add(15*time.Minute), stored.ExpiresAt)
	assert.Zero(t, stored.Attempts)
	assert.NotEqual(t, code, stored.CodeHash)
	assert.NoError(t, secret.Verify(code, stored.CodeHash))
}

func TestOtpService_Generate_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := otpMocks.NewMockVerification(ctrl)
	svc := service.New(repo, passThroughTx(ctrl), newConfig(), clock.Fixed(fixedNow), otelMocks.NewOtel())

	repo.EXPECT().InvalidateActive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

	code, err := svc.Generate(context.Background(), "booking-1", "guest@example.com")

	assert.Error(t, err)
	assert.Empty(t, code)
}

func TestOtpService_Validate(t *testing.T) {
	digest := hashOf(t, "123456")

	active := func(attempts int, expiresAt time.Time) model.Verification {
		return model.Verification{
			ID:        "otp-1",
			BookingID: "booking-1",
			Email:     "guest@example.com",
			CodeHash:  digest,
			ExpiresAt: expiresAt,
			Attempts:  attempts,
		}
	}

	tests := []struct {
		name      string
		code      string
		setupMock func(repo *otpMocks.MockVerification)
		want      model.Result
		wantErr   bool
	}{
		{
			name: "no active record",
			code: "123456",
			setupMock: func(repo *otpMocks.MockVerification) {
				repo.EXPECT().GetActive(gomock.Any(), "booking-1", "guest@example.com").Return(model.Verification{}, nil)
			},
			want: model.ResultNotFound,
		},
		{
			name: "attempts exhausted even with the right code",
			code: "123456",
			setupMock: func(repo *otpMocks.MockVerification) {
				repo.EXPECT().GetActive(gomock.Any(), gomock.Any(), gomock.Any()).Return(active(model.MaxAttempts, fixedNow.Add(time.Minute)), nil)
			},
			want: model.ResultExhausted,
		},
		{
			name: "expired",
			code: "123456",
			setupMock: func(repo *otpMocks.MockVerification) {
				repo.EXPECT().GetActive(gomock.Any(), gomock.Any(), gomock.Any()).Return(active(0, fixedNow), nil)
			},
			want: model.ResultExpired,
		},
		{
			name: "mismatch increments attempts",
			code: "654321",
			setupMock: func(repo *otpMocks.MockVerification) {
				repo.EXPECT().GetActive(gomock.Any(), gomock.Any(), gomock.Any()).Return(active(2, fixedNow.Add(time.Minute)), nil)
				repo.EXPECT().RecordAttempt(gomock.Any(), "otp-1", 3, constant.SystemUser, fixedNow).Return(nil)
			},
			want: model.ResultMismatch,
		},
		{
			name: "valid marks the record used",
			code: "123456",
			setupMock: func(repo *otpMocks.MockVerification) {
				repo.EXPECT().GetActive(gomock.Any(), gomock.Any(), gomock.Any()).Return(active(4, fixedNow.Add(time.Minute)), nil)
				repo.EXPECT().MarkUsed(gomock.Any(), "otp-1", constant.SystemUser, fixedNow).Return(nil)
			},
			want: model.ResultValid,
		},
		{
			name: "storage error",
			code: "123456",
			setupMock: func(repo *otpMocks.MockVerification) {
				repo.EXPECT().GetActive(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Verification{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := otpMocks.NewMockVerification(ctrl)
			svc := service.New(repo, passThroughTx(ctrl), newConfig(), clock.Fixed(fixedNow), otelMocks.NewOtel())

			tt.setupMock(repo)

			got, err := svc.Validate(context.Background(), "booking-1", tt.code, "GUEST@example.com")
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOtpService_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := otpMocks.NewMockVerification(ctrl)
	svc := service.New(repo, passThroughTx(ctrl), newConfig(), clock.Fixed(fixedNow), otelMocks.NewOtel())

	repo.EXPECT().InvalidateActive(gomock.Any(), "booking-1", "guest@example.com", constant.SystemUser, fixedNow).Return(nil)

	assert.NoError(t, svc.Invalidate(context.Background(), "booking-1", "Guest@Example.com"))
}

func TestOtpService_Cleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := otpMocks.NewMockVerification(ctrl)
	svc := service.New(repo, passThroughTx(ctrl), newConfig(), clock.Fixed(fixedNow), otelMocks.NewOtel())

	repo.EXPECT().DeleteExpired(gomock.Any(), fixedNow.Add(-24*time.Hour)).Return(int64(3), nil)

	deleted, err := svc.Cleanup(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

// memoryStore keeps verification records in memory so several calls can be chained.
type memoryStore struct {
	records []model.Verification
}

func (m *memoryStore) Insert(_ context.Context, v model.Verification) error {
	m.records = append(m.records, v)

	return nil
}

func (m *memoryStore) GetActive(_ context.Context, bookingID, email string) (model.Verification, error) {
	var candidates []model.Verification

	for _, v := range m.records {
		if v.BookingID == bookingID && v.Email == email && !v.Used && !v.Invalidated {
			candidates = append(candidates, v)
		}
	}

	if len(candidates) == 0 {
		return model.Verification{}, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].CreatedAt.After(candidates[j].CreatedAt) })

	return candidates[0], nil
}

func (m *memoryStore) update(id string, fn func(v *model.Verification)) {
	for i := range m.records {
		if m.records[i].ID == id {
			fn(&m.records[i])
		}
	}
}

func (m *memoryStore) RecordAttempt(_ context.Context, id string, attempts int, _ string, _ time.Time) error {
	m.update(id, func(v *model.Verification) { v.Attempts = attempts })

	return nil
}

func (m *memoryStore) MarkUsed(_ context.Context, id string, _ string, _ time.Time) error {
	m.update(id, func(v *model.Verification) { v.Used = true })

	return nil
}

func (m *memoryStore) InvalidateActive(_ context.Context, bookingID, email, _ string, _ time.Time) error {
	for i := range m.records {
		v := &m.records[i]
		if v.BookingID == bookingID && (email == constant.Empty || v.Email == email) && !v.Used {
			v.Invalidated = true
		}
	}

	return nil
}

func (m *memoryStore) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	kept := m.records[:0]
	deleted := int64(0)

	for _, v := range m.records {
		if v.ExpiresAt.Before(before) {
			deleted++

			continue
		}

		kept = append(kept, v)
	}

	m.records = kept

	return deleted, nil
}

func TestOtpService_CodeValidatesExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(&memoryStore{}, passThroughTx(ctrl), newConfig(), clock.Fixed(fixedNow), otelMocks.NewOtel())
	ctx := context.Background()

	code, err := svc.Generate(ctx, "booking-1", "guest@example.com")
	require.NoError(t, err)

	first, err := svc.Validate(ctx, "booking-1", code, "guest@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.ResultValid, first)

	second, err := svc.Validate(ctx, "booking-1", code, "guest@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.ResultNotFound, second)
}

func TestOtpService_SixthAttemptIsExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(&memoryStore{}, passThroughTx(ctrl), newConfig(), clock.Fixed(fixedNow), otelMocks.NewOtel())
	ctx := context.Background()

	code, err := svc.Generate(ctx, "booking-1", "guest@example.com")
	require.NoError(t, err)

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}

	for range model.MaxAttempts {
		result, err := svc.Validate(ctx, "booking-1", wrong, "guest@example.com")
		require.NoError(t, err)
		assert.Equal(t, model.ResultMismatch, result)
	}

	result, err := svc.Validate(ctx, "booking-1", code, "guest@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.ResultExhausted, result)
}

func TestOtpService_RegenerateInvalidatesPreviousCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := &memoryStore{}
	current := fixedNow
	svc := service.New(store, passThroughTx(ctrl), newConfig(), clock.Func(func() time.Time { return current }), otelMocks.NewOtel())
	ctx := context.Background()

	oldCode, err := svc.Generate(ctx, "booking-1", "guest@example.com")
	require.NoError(t, err)

	current = current.Add(time.Minute)

	newCode, err := svc.Generate(ctx, "booking-1", "guest@example.com")
	require.NoError(t, err)

	if oldCode != newCode {
		result, err := svc.Validate(ctx, "booking-1", oldCode, "guest@example.com")
		require.NoError(t, err)
		assert.Equal(t, model.ResultMismatch, result)
	}

	result, err := svc.Validate(ctx, "booking-1", newCode, "guest@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.ResultValid, result)

	assert.Len(t, store.records, 2)
	assert.True(t, store.records[0].Invalidated)
}

func TestResult_Err(t *testing.T) {
	assert.NoError(t, model.ResultValid.Err())
	assert.Equal(t, model.ErrCodeExpired, model.ResultExpired.Err())
	assert.Equal(t, model.ErrCodeExhausted, model.ResultExhausted.Err())
	assert.Equal(t, model.ErrCodeMismatch, model.ResultMismatch.Err())
	assert.Equal(t, model.ErrCodeNotFound, model.ResultNotFound.Err())
}
