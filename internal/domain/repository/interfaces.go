package repository

import (
	"context"

	"NeoWatch/internal/domain/models"
)

// AuditPublisher delivers engine audit events to an external sink.
type AuditPublisher interface {
	Publish(ctx context.Context, e *models.AuditEvent) error
	PublishBatch(ctx context.Context, events []*models.AuditEvent) error
	Close() error
}

type Metrics interface {
	RecordClassification(method, class string)
	RecordRiskLevel(scope, level string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
