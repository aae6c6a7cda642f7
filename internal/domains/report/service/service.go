package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/report/model/dto"
	"hotel/internal/domains/report/stats"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/clock"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	reportOccupancy = "occupancy"
	reportRevenue   = "revenue"
	openBound       = "open"
)

// Report answers per-room occupancy and revenue questions. Results are cached under
// report:<roomID> so booking writes can drop every report of the room at once.
type Report interface {
	Occupancy(ctx context.Context, roomID string, req dto.ReportRequest) (dto.OccupancyResponse, error)
	Revenue(ctx context.Context, roomID string, req dto.ReportRequest) (dto.RevenueResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	cfg         *config.Config
	cache       cache.RedisCache
	clock       clock.Clock
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, clk clock.Clock, otel otel.Otel) Report {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		cfg:         cfg,
		cache:       cache,
		clock:       clk,
		otel:        otel,
	}
}

// Occupancy defaults a missing bound to the current calendar month.
func (s *serviceImpl) Occupancy(ctx context.Context, roomID string, req dto.ReportRequest) (res dto.OccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Occupancy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, end, err := req.Bounds()
	if err != nil {
		return res, failure.BadRequest(err)
	}

	month := daterange.Month(s.clock.Now())
	if start == nil {
		start = &month.Start
	}

	if end == nil {
		end = &month.End
	}

	cacheKey := shared.BuildCacheKey(constant.CachePrefixReport, roomID, reportOccupancy, *dto.FormatBound(start), *dto.FormatBound(end))

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for occupancy report")

		return res, nil
	}

	bookings, err := s.bookings(ctx, roomID, start, end)
	if err != nil {
		return res, err
	}

	res = dto.OccupancyResponse{
		RoomID:        roomID,
		Start:         *dto.FormatBound(start),
		End:           *dto.FormatBound(end),
		OccupancyRate: stats.OccupancyRate(bookings, *start, *end),
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Revenue(ctx context.Context, roomID string, req dto.ReportRequest) (res dto.RevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Revenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, end, err := req.Bounds()
	if err != nil {
		return res, failure.BadRequest(err)
	}

	cacheKey := shared.BuildCacheKey(constant.CachePrefixReport, roomID, reportRevenue, boundKey(start), boundKey(end))

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for revenue report")

		return res, nil
	}

	// Overlap is a superset of containment, so the window query never misses a contained stay.
	bookings, err := s.bookings(ctx, roomID, start, end)
	if err != nil {
		return res, err
	}

	res = dto.RevenueResponse{
		RoomID:  roomID,
		Start:   dto.FormatBound(start),
		End:     dto.FormatBound(end),
		Revenue: stats.Revenue(bookings, start, end),
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) bookings(ctx context.Context, roomID string, start, end *time.Time) ([]*bookingModel.Booking, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return nil, roomModel.ErrRoomNotFound
	}

	rows, err := s.bookingRepo.ListBlocking(ctx, roomID, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room bookings")

		return nil, fmt.Errorf("failed to get room bookings: %w", err)
	}

	return bookingModel.FromRows(rows), nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save report to cache")
	}
}

func boundKey(t *time.Time) string {
	if t == nil {
		return openBound
	}

	return *dto.FormatBound(t)
}
