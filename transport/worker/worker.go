// Package worker runs the background side of the service: notification delivery from Kafka and
// the periodic purge of expired verification codes.
package worker

import (
	"context"
	"sync"
	"time"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/shared/constant"
	notification "hotel/internal/domains/notification/service"
	otp "hotel/internal/domains/otp/service"

	"github.com/rs/zerolog/log"
)

const defaultCleanupInterval = time.Hour

type Worker struct {
	cfg      *config.Config
	kafka    kafka.Client
	notifier notification.Notifier
	otp      otp.Otp
	otel     otel.Otel
}

func New(cfg *config.Config, kafka kafka.Client, notifier notification.Notifier, otp otp.Otp, otel otel.Otel) *Worker {
	return &Worker{
		cfg:      cfg,
		kafka:    kafka,
		notifier: notifier,
		otp:      otp,
		otel:     otel,
	}
}

// Run blocks until ctx is cancelled, then waits for the consumer and the sweeper to stop.
func (w *Worker) Run(ctx context.Context) {
	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()

		log.Info().Str("topic", w.cfg.Kafka.NotificationTopic).Msg("Starting notification consumer.")
		w.kafka.Consume(ctx, w.cfg.Kafka.ConsumerGroup, w.cfg.Kafka.NotificationTopic, w.notifier.Deliver)
	}()

	go func() {
		defer wg.Done()

		w.sweepEvery(ctx, w.cleanupInterval())
	}()

	wg.Wait()

	w.shutdown()
}

func (w *Worker) cleanupInterval() time.Duration {
	if w.cfg.OTP.CleanupIntervalMinutes <= 0 {
		return defaultCleanupInterval
	}

	return time.Duration(w.cfg.OTP.CleanupIntervalMinutes) * time.Minute
}

// sweepEvery purges once at start and then on every tick.
func (w *Worker) sweepEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		w.Sweep(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Sweep deletes verification codes past their retention window. Failures are logged and retried on the next tick.
func (w *Worker) Sweep(ctx context.Context) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".worker.Sweep")
	defer scope.End()

	deleted, err := w.otp.Cleanup(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("verification code sweep failed")

		return
	}

	scope.SetAttribute("otp.deleted", int(deleted))
}

func (w *Worker) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := w.kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client")
	}

	if err := w.otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Worker stopped.")
}
