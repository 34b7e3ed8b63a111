// Package messaging publishes domain events to kafka.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kagailawrence/modarflor/internal/domain/events"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// NewPublisher returns a kafka publisher when events are enabled and a logging no-op otherwise
func NewPublisher(settings *config.EventSettings, logger logger.Logger) (events.Publisher, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if !settings.Enabled {
		return NewNoopPublisher(logger), nil
	}
	return NewKafkaPublisher(settings, logger), nil
}

// KafkaPublisher writes JSON encoded events to one topic
type KafkaPublisher struct {
	writer *kafka.Writer
	logger logger.Logger
}

// NewKafkaPublisher creates the writer. Connections are opened lazily on the first write.
func NewKafkaPublisher(settings *config.EventSettings, logger logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(settings.Brokers...),
			Topic:                  settings.Topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			WriteTimeout:           10 * time.Second,
		},
		logger: logger,
	}
}

// Publish writes the event synchronously
func (p *KafkaPublisher) Publish(ctx context.Context, event *events.Event) error {
	msg, err := toMessage(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event %s: %w", event.Type, event.ID, err)
	}

	p.logger.Info("event published", "type", event.Type, "id", event.ID, "topic", p.writer.Topic)
	return nil
}

// Close flushes pending writes
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func toMessage(event *events.Event) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode %s event: %w", event.Type, err)
	}

	key := event.Key
	if key == "" {
		key = event.ID
	}

	return kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}, nil
}

// NoopPublisher logs events instead of publishing them
type NoopPublisher struct {
	logger logger.Logger
}

// NewNoopPublisher creates a publisher that never leaves the process
func NewNoopPublisher(logger logger.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

// Publish logs the event
func (p *NoopPublisher) Publish(_ context.Context, event *events.Event) error {
	p.logger.Debug("event not published (events disabled)", "type", event.Type, "id", event.ID)
	return nil
}

// Close does nothing
func (p *NoopPublisher) Close() error {
	return nil
}
