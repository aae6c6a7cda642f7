package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/notification/model"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Notifier hands guest messages to the delivery pipeline. A false result means the message was
// not accepted; callers never roll back a committed change because of it.
type Notifier interface {
	SendVerificationCode(ctx context.Context, message model.Message) bool
	SendConfirmation(ctx context.Context, message model.Message) bool
	SendUpdate(ctx context.Context, message model.Message) bool
	SendCancellation(ctx context.Context, message model.Message) bool
	// Deliver handles one consumed message on the worker side.
	Deliver(ctx context.Context, message kafkaGo.Message) error
}

type serviceImpl struct {
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func New(kafka kafka.Client, cfg *config.Config, otel otel.Otel) Notifier {
	return &serviceImpl{
		kafka: kafka,
		cfg:   cfg,
		otel:  otel,
	}
}

func (s *serviceImpl) SendVerificationCode(ctx context.Context, message model.Message) bool {
	message.Type = model.TypeVerificationCode

	return s.publish(ctx, message)
}

func (s *serviceImpl) SendConfirmation(ctx context.Context, message model.Message) bool {
	message.Type = model.TypeConfirmation

	return s.publish(ctx, message)
}

func (s *serviceImpl) SendUpdate(ctx context.Context, message model.Message) bool {
	message.Type = model.TypeUpdate

	return s.publish(ctx, message)
}

func (s *serviceImpl) SendCancellation(ctx context.Context, message model.Message) bool {
	message.Type = model.TypeCancellation

	return s.publish(ctx, message)
}

func (s *serviceImpl) publish(ctx context.Context, message model.Message) bool {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification."+string(message.Type))
	defer scope.End()

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.NotificationTopic, kafka.Message{
		Key:   message.BookingToken,
		Value: message,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().
			Err(err).
			Str("type", string(message.Type)).
			Str("booking_token", message.BookingToken).
			Msg("failed to publish notification")

		return false
	}

	return true
}

func (s *serviceImpl) Deliver(ctx context.Context, msg kafkaGo.Message) error {
	_, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.Deliver")
	defer scope.End()

	message, err := kafka.Decode[model.Message](msg)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to decode notification: %w", err)
	}

	switch message.Type {
	case model.TypeVerificationCode, model.TypeConfirmation, model.TypeUpdate, model.TypeCancellation:
	default:
		err = fmt.Errorf("unknown notification type %q", message.Type)
		scope.TraceError(err)

		return err
	}

	// Mail composition lives outside this service; the worker records the hand-off.
	log.Info().
		Str("type", string(message.Type)).
		Str("booking_token", message.BookingToken).
		Str("recipient", maskEmail(message.Email)).
		Msg("notification delivered")

	return nil
}

// maskEmail keeps the first character of the local part.
func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return constant.Asterix
	}

	return email[:1] + strings.Repeat(constant.Asterix, at-1) + email[at:]
}
