package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// Producer publishes messages to a Kafka topic. Callers treat publish
// failures as non-fatal; delivery guarantees belong to the broker.
type Producer interface {
	Publish(ctx context.Context, topic string, messages ...Message) error
	Close() error
}

type producerImpl struct {
	writer *kafkaGo.Writer
	otel   otel.Otel
}

func NewProducer(config *config.Config, otl otel.Otel) Producer {
	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(config.External.Kafka.Brokers...),
		Balancer:               &kafkaGo.LeastBytes{},
		WriteTimeout:           time.Duration(config.External.Kafka.WriteTimeoutSecs) * time.Second,
		AllowAutoTopicCreation: true,
	}

	log.Info().
		Strs("brokers", config.External.Kafka.Brokers).
		Msg("Kafka producer initialized")

	return &producerImpl{
		writer: writer,
		otel:   otl,
	}
}

func (p *producerImpl) Publish(ctx context.Context, topic string, messages ...Message) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("topic", topic)

	kafkaMessages := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		kafkaMessage, err := message.ToKafkaMessage()
		if err != nil {
			return err
		}

		kafkaMessage.Topic = topic
		kafkaMessages = append(kafkaMessages, kafkaMessage)
	}

	if err = p.writer.WriteMessages(ctx, kafkaMessages...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish messages")

		return fmt.Errorf("failed to publish messages: %w", err)
	}

	return nil
}

func (p *producerImpl) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}

	return nil
}
