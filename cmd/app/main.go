package main

import (
	"context"

	"hotel/config"
	"hotel/di"
	_ "hotel/docs"
	"hotel/helper"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title						Hotel Reservation API
// @version					1.0
// @description				Room catalogue, OTP confirmed bookings and occupancy reports.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	if cfg.App.SeedDemoData {
		if _, err := di.InitializeSeeder().Seed(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo data")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
