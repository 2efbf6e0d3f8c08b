package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"NeoWatch/internal/domain/models"
	"NeoWatch/internal/domain/repository"
	"NeoWatch/internal/domain/service"
	"NeoWatch/internal/services/orbit"
	"NeoWatch/pkg/logger"
)

// Auditor accepts audit events without blocking the caller.
type Auditor interface {
	Submit(e *models.AuditEvent)
}

// ClassificationResolver resolves an object's orbit class through a
// fixed tier order: provider-stated class, geometric computation,
// generative prediction, then the hazard-aware fallback. Each tier is
// isolated so a failure only advances to the next one; Resolve never
// returns an error.
type ClassificationResolver struct {
	predictor service.OrbitPredictor
	logger    *logger.Logger
	metrics   repository.Metrics
	auditor   Auditor
}

type ResolverOption func(*ClassificationResolver)

func WithResolverLogger(log *logger.Logger) ResolverOption {
	return func(r *ClassificationResolver) { r.logger = log }
}

func WithResolverMetrics(m repository.Metrics) ResolverOption {
	return func(r *ClassificationResolver) { r.metrics = m }
}

func WithResolverAuditor(a Auditor) ResolverOption {
	return func(r *ClassificationResolver) { r.auditor = a }
}

// NewClassificationResolver builds a resolver. predictor may be nil, in
// which case the predicted tier is skipped entirely.
func NewClassificationResolver(predictor service.OrbitPredictor, opts ...ResolverOption) *ClassificationResolver {
	r := &ClassificationResolver{predictor: predictor}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve classifies one object. allowPredicted gates the generative
// tier only; the deterministic tiers always run.
func (r *ClassificationResolver) Resolve(ctx context.Context, in models.ClassificationInput, allowPredicted bool) models.OrbitClassification {
	start := time.Now()

	result := r.resolve(ctx, in, allowPredicted)

	if r.metrics != nil {
		r.metrics.RecordClassification(string(result.Method), result.OrbitClass)
		r.metrics.RecordLatency("classify", time.Since(start).Seconds())
	}
	r.audit(in.Name, result)

	return result
}

func (r *ClassificationResolver) resolve(ctx context.Context, in models.ClassificationInput, allowPredicted bool) models.OrbitClassification {
	if c, ok := r.fromProvider(in); ok {
		return c
	}

	if in.Elements.Complete() {
		return orbit.Classify(in.Elements, in.Hazardous)
	}

	if allowPredicted && r.predictor != nil {
		if c, ok := r.fromPrediction(ctx, in); ok {
			return c
		}
	}

	return orbit.Fallback(in.Hazardous)
}

func (r *ClassificationResolver) fromProvider(in models.ClassificationInput) (models.OrbitClassification, bool) {
	if in.ProviderClass == nil || in.ProviderClass.Type == "" {
		return models.OrbitClassification{}, false
	}

	return models.OrbitClassification{
		OrbitClass:  in.ProviderClass.Type,
		Description: in.ProviderClass.Description,
		Confidence:  95,
		Method:      models.MethodProvider,
		RiskLevel:   orbit.RiskLevelFromClass(in.ProviderClass.Type),
	}, true
}

func (r *ClassificationResolver) fromPrediction(ctx context.Context, in models.ClassificationInput) (models.OrbitClassification, bool) {
	class, reason, err := r.predictor.PredictClass(ctx, in)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("orbit prediction unavailable",
				logger.String("object", in.Name),
				logger.Error(err),
			)
		}
		if r.metrics != nil {
			r.metrics.RecordError("prediction")
		}
		return models.OrbitClassification{}, false
	}

	return models.OrbitClassification{
		OrbitClass:  class,
		Description: reason,
		Confidence:  60,
		Method:      models.MethodPredicted,
		RiskLevel:   orbit.RiskLevelFromClass(class),
	}, true
}

func (r *ClassificationResolver) audit(object string, c models.OrbitClassification) {
	if r.auditor == nil {
		return
	}
	r.auditor.Submit(&models.AuditEvent{
		ID:         uuid.NewString(),
		Kind:       "classification",
		Object:     object,
		Method:     string(c.Method),
		OrbitClass: c.OrbitClass,
		RiskLevel:  string(c.RiskLevel),
		Confidence: c.Confidence,
		At:         time.Now().UTC(),
	})
}
