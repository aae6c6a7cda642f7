//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/helper"
	"hotel/infras/jwt"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/infras/s3"
	"hotel/permissions"
	"hotel/shared/cache"
	"hotel/shared/clock"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"
	"hotel/transport/worker"

	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	notificationService "hotel/internal/domains/notification/service"
	otpRepository "hotel/internal/domains/otp/repository"
	otpService "hotel/internal/domains/otp/service"
	reportService "hotel/internal/domains/report/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"

	bookingHandler "hotel/internal/handlers/booking"
	reportHandler "hotel/internal/handlers/report"
	roomHandler "hotel/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomRepository.NewImage,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var otpDomain = wire.NewSet(
	otpRepository.New,
	otpService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	otpDomain,
	notificationService.New,
	reportService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *worker.Worker {
	wire.Build(
		config.Get,
		postgres.New,
		postgres.NewTransactor,
		otel.New,
		kafka.New,
		clock.New,
		otpDomain,
		notificationService.New,
		worker.New,
	)

	return &worker.Worker{}
}

func InitializeSeeder() *helper.Seeder {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		clock.New,
		roomRepository.New,
		helper.NewSeeder,
	)

	return &helper.Seeder{}
}
