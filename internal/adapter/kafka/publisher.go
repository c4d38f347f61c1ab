package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/climate-pulse/internal/config"
	"github.com/couchcryptid/climate-pulse/internal/domain"
)

// Publisher produces projection events to a Kafka topic.
// It implements insight.Publisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured projection topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaProjectionTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
		// One event per request; don't wait for a batch to fill.
		BatchTimeout: 10 * time.Millisecond,
	}
	return &Publisher{writer: w, logger: logger}
}

// Publish serializes and writes a single projection event.
func (p *Publisher) Publish(ctx context.Context, event domain.ProjectionEvent) error {
	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write projection event %s: %w", event.ID, err)
	}
	p.logger.Debug("projection event published",
		"event_id", event.ID,
		"topic", p.writer.Topic,
		"scenario", event.Result.Scenario.String(),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals a ProjectionEvent into a Kafka message keyed by
// scenario, so one scenario's events stay ordered within a partition.
func serializeToMessage(event domain.ProjectionEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize projection event: %w", err)
	}
	scenario := event.Result.Scenario.String()
	return kafkago.Message{
		Key:   []byte(scenario),
		Value: data,
		Time:  event.ComputedAt,
		Headers: []kafkago.Header{
			{Key: "scenario", Value: []byte(scenario)},
			{Key: "impact_level", Value: []byte(event.Result.Impact.String())},
			{Key: "computed_at", Value: []byte(event.ComputedAt.Format(time.RFC3339))},
		},
	}, nil
}
