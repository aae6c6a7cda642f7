package helper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/helper"
	"hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/shared/clock"
	"hotel/shared/constant"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var seededAt = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

func TestSeeder_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRoom(ctrl)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(4)
	repo.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rooms []model.Room) error {
		assert.Len(t, rooms, 4)
		assert.Equal(t, "Garden Single", rooms[0].Name)
		assert.Equal(t, string(model.StatusAvailable), rooms[0].Status)
		assert.Equal(t, string(model.StatusMaintenance), rooms[3].Status)
		assert.Equal(t, constant.SystemUser, rooms[0].CreatedBy)
		assert.Equal(t, seededAt, rooms[0].CreatedAt)
		assert.NotEmpty(t, rooms[0].ID)

		return nil
	})

	inserted, err := helper.NewSeeder(repo, clock.Fixed(seededAt)).Seed(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 4, inserted)
}

func TestSeeder_Seed_AlreadyPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRoom(ctrl)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(4)

	inserted, err := helper.NewSeeder(repo, clock.Fixed(seededAt)).Seed(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestSeeder_Seed_Failures(t *testing.T) {
	t.Run("malformed file", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		_, err := helper.NewSeeder(mocks.NewMockRoom(ctrl), clock.Fixed(seededAt)).
			WithData([]byte("rooms: [")).
			Seed(context.Background())

		assert.Error(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		_, err := helper.NewSeeder(mocks.NewMockRoom(ctrl), clock.Fixed(seededAt)).
			WithData([]byte("rooms:\n  - name: Broken\n    capacity: 1\n    status: demolished\n")).
			Seed(context.Background())

		assert.ErrorContains(t, err, "demolished")
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRoom(ctrl)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))

		_, err := helper.NewSeeder(repo, clock.Fixed(seededAt)).Seed(context.Background())

		assert.ErrorContains(t, err, "connection refused")
	})
}
