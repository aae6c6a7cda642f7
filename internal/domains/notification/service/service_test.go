package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/notification/model"
	"hotel/internal/domains/notification/service"

	"github.com/stretchr/testify/assert"
	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Notifier, *kafkaMocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.NotificationTopic = "booking-notifications"

	return service.New(client, cfg, otelMocks.NewOtel()), client
}

func TestNotifier_Send(t *testing.T) {
	tests := []struct {
		name     string
		send     func(n service.Notifier, ctx context.Context, msg model.Message) bool
		wantType model.Type
	}{
		{name: "verification code", send: service.Notifier.SendVerificationCode, wantType: model.TypeVerificationCode},
		{name: "confirmation", send: service.Notifier.SendConfirmation, wantType: model.TypeConfirmation},
		{name: "update", send: service.Notifier.SendUpdate, wantType: model.TypeUpdate},
		{name: "cancellation", send: service.Notifier.SendCancellation, wantType: model.TypeCancellation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier, client := newService(t)

			client.EXPECT().
				SendMessages(gomock.Any(), "booking-notifications", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
					assert.Len(t, messages, 1)
					assert.Equal(t, "token-1", messages[0].Key)

					payload, ok := messages[0].Value.(model.Message)
					assert.True(t, ok)
					assert.Equal(t, tt.wantType, payload.Type)

					return nil
				})

			ok := tt.send(notifier, context.Background(), model.Message{BookingToken: "token-1", Email: "guest@example.com"})

			assert.True(t, ok)
		})
	}
}

func TestNotifier_SendFailure(t *testing.T) {
	notifier, client := newService(t)

	client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	assert.False(t, notifier.SendConfirmation(context.Background(), model.Message{BookingToken: "token-1"}))
}

func TestNotifier_Deliver(t *testing.T) {
	notifier, _ := newService(t)

	valid, _ := json.Marshal(model.Message{Type: model.TypeConfirmation, BookingToken: "token-1", Email: "guest@example.com"})
	unknown, _ := json.Marshal(model.Message{Type: "sms", BookingToken: "token-1"})

	assert.NoError(t, notifier.Deliver(context.Background(), kafkaGo.Message{Key: []byte("token-1"), Value: valid}))
	assert.Error(t, notifier.Deliver(context.Background(), kafkaGo.Message{Value: unknown}))
	assert.Error(t, notifier.Deliver(context.Background(), kafkaGo.Message{Value: []byte("{not json")}))
}
