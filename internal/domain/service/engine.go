package service

import (
	"context"

	"NeoWatch/internal/domain/models"
)

// OrbitPredictor predicts an orbit class from descriptive object
// parameters using an external generative-text service. Implementations
// must honor ctx cancellation; any error is treated by the resolver as
// "tier unavailable".
type OrbitPredictor interface {
	PredictClass(ctx context.Context, in models.ClassificationInput) (class, reason string, err error)
}

// NarrativeGenerator produces free-text risk analysis for a prompt built
// from approach statistics.
type NarrativeGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
