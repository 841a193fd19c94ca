package repository

import (
	"context"

	"FxRisk/internal/domain/models"
	"FxRisk/internal/domain/repository"
)

// MessagePublisher is the producer side used for events. The producer is
// owned and closed by the caller.
type MessagePublisher interface {
	Publish(ctx context.Context, topic string, key []byte, value interface{}) error
}

// KafkaEventPublisher publishes analysis events keyed by analysis ID.
type KafkaEventPublisher struct {
	producer MessagePublisher
	topic    string
}

// NewKafkaEventPublisher creates an event publisher on topic.
func NewKafkaEventPublisher(p MessagePublisher, topic string) repository.EventPublisher {
	return &KafkaEventPublisher{producer: p, topic: topic}
}

func (p *KafkaEventPublisher) PublishAnalysis(ctx context.Context, ev models.AnalysisEvent) error {
	return p.producer.Publish(ctx, p.topic, []byte(ev.ID), ev)
}

// NoopEventPublisher discards events. Used when Kafka is disabled.
type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishAnalysis(context.Context, models.AnalysisEvent) error { return nil }
