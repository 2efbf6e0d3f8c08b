package repository

import (
	"context"
	"fmt"

	"NeoWatch/internal/domain/models"
	"NeoWatch/pkg/kafka"
)

// KafkaAuditPublisher writes audit events to a Kafka topic, keyed by
// event kind so consumers see per-kind ordering.
type KafkaAuditPublisher struct {
	producer *kafka.Producer
	topic    string
}

func NewKafkaAuditPublisher(producer *kafka.Producer, topic string) *KafkaAuditPublisher {
	return &KafkaAuditPublisher{producer: producer, topic: topic}
}

func (p *KafkaAuditPublisher) Publish(ctx context.Context, e *models.AuditEvent) error {
	if e == nil {
		return fmt.Errorf("audit event nil")
	}
	if err := p.producer.Publish(ctx, p.topic, []byte(e.Kind), e); err != nil {
		return fmt.Errorf("publish audit event: %w", err)
	}
	return nil
}

func (p *KafkaAuditPublisher) PublishBatch(ctx context.Context, events []*models.AuditEvent) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		if e == nil {
			continue
		}
		msgs = append(msgs, kafka.Message{Key: []byte(e.Kind), Value: e})
	}
	if err := p.producer.PublishBatch(ctx, p.topic, msgs); err != nil {
		return fmt.Errorf("publish audit batch: %w", err)
	}
	return nil
}

func (p *KafkaAuditPublisher) Close() error {
	return p.producer.Close()
}

// NoopAuditPublisher discards events. Used when auditing is disabled.
type NoopAuditPublisher struct{}

func (NoopAuditPublisher) Publish(ctx context.Context, e *models.AuditEvent) error { return nil }

func (NoopAuditPublisher) PublishBatch(ctx context.Context, events []*models.AuditEvent) error {
	return nil
}

func (NoopAuditPublisher) Close() error { return nil }
