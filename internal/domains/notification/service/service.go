package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/notification/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

// Notifier publishes booking lifecycle events. Every method is best-effort:
// a broker outage must never fail the front desk operation that triggered
// the event.
type Notifier interface {
	PublishBookingEvent(ctx context.Context, eventType string, event model.BookingEvent)
}

type serviceImpl struct {
	producer kafka.Producer
	cfg      *config.Config
	otel     otel.Otel
}

func New(producer kafka.Producer, cfg *config.Config, otel otel.Otel) Notifier {
	return &serviceImpl{
		producer: producer,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) PublishBookingEvent(ctx context.Context, eventType string, event model.BookingEvent) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.PublishBookingEvent")
	defer scope.End()

	event.EventType = eventType
	if event.OccurredAt.IsZero() {
		event.OccurredAt = timezone.Now()
	}

	message := kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}

	if err := s.producer.Publish(ctx, s.cfg.External.Kafka.BookingEventTopic, message); err != nil {
		log.Error().Err(err).
			Str("event_type", eventType).
			Str("booking_id", event.BookingID).
			Msg("failed to publish booking event")
	}
}
