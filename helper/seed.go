package helper

import (
	"context"
	_ "embed"
	"fmt"

	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/repository"
	"hotel/shared/clock"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed seed/rooms.yaml
var roomsSeed []byte

type seedRoom struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	NightlyPrice int64  `yaml:"nightly_price"`
	Capacity     int    `yaml:"capacity"`
	Status       string `yaml:"status"`
}

type seedFile struct {
	Rooms []seedRoom `yaml:"rooms"`
}

// Seeder loads the demo room catalogue. Rooms already present by name are left untouched.
type Seeder struct {
	repo  repository.Room
	clock clock.Clock
	data  []byte
}

func NewSeeder(repo repository.Room, clk clock.Clock) *Seeder {
	return &Seeder{repo: repo, clock: clk, data: roomsSeed}
}

// WithData replaces the embedded catalogue.
func (s *Seeder) WithData(data []byte) *Seeder {
	s.data = data

	return s
}

func (s *Seeder) Seed(ctx context.Context) (int, error) {
	var file seedFile
	if err := yaml.Unmarshal(s.data, &file); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	now := s.clock.Now()
	rooms := make([]model.Room, 0, len(file.Rooms))

	for _, entry := range file.Rooms {
		status := model.Status(entry.Status)
		if entry.Status == "" {
			status = model.StatusAvailable
		}

		if !status.Valid() {
			return 0, fmt.Errorf("seed room %q has unknown status %q", entry.Name, entry.Status)
		}

		exists, err := s.repo.Exist(ctx, gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{Field: model.FieldName, Value: entry.Name, Operator: gDto.FilterOperatorEq},
			},
		})
		if err != nil {
			return 0, fmt.Errorf("failed to check seed room %q: %w", entry.Name, err)
		}

		if exists {
			continue
		}

		rooms = append(rooms, model.Room{
			ID:           uuid.NewString(),
			Name:         entry.Name,
			Description:  entry.Description,
			NightlyPrice: entry.NightlyPrice,
			Capacity:     entry.Capacity,
			Status:       string(status),
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  constant.SystemUser,
				ModifiedBy: constant.SystemUser,
			},
		})
	}

	if len(rooms) == 0 {
		log.Info().Msg("Seed data already present")

		return 0, nil
	}

	if err := s.repo.InsertBulk(ctx, rooms); err != nil {
		return 0, fmt.Errorf("failed to insert seed rooms: %w", err)
	}

	log.Info().Int("rooms", len(rooms)).Msg("Seed data inserted")

	return len(rooms), nil
}
