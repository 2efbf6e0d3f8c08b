package usecase

import (
	"context"
	"errors"
	"testing"

	"NeoWatch/internal/domain/models"
)

type stubPredictor struct {
	class  string
	reason string
	err    error
	calls  int
}

func (s *stubPredictor) PredictClass(ctx context.Context, in models.ClassificationInput) (string, string, error) {
	s.calls++
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	return s.class, s.reason, s.err
}

type captureAuditor struct {
	events []*models.AuditEvent
}

func (c *captureAuditor) Submit(e *models.AuditEvent) { c.events = append(c.events, e) }

func ptr(f float64) *float64 { return &f }

func TestResolveProviderTierWins(t *testing.T) {
	pred := &stubPredictor{class: "Amor", reason: "x"}
	r := NewClassificationResolver(pred)

	in := models.ClassificationInput{
		Name:          "433 Eros",
		ProviderClass: &models.OrbitClassHint{Type: "AMO", Description: "Near-Earth asteroid"},
		Elements: models.OrbitalElements{
			SemiMajorAxis: ptr(1.458), Eccentricity: ptr(0.223), Inclination: ptr(10.83),
		},
	}

	got := r.Resolve(context.Background(), in, true)
	if got.Method != models.MethodProvider {
		t.Fatalf("expected provider method, got %s", got.Method)
	}
	if got.OrbitClass != "AMO" || got.Confidence != 95 {
		t.Fatalf("unexpected provider classification: %+v", got)
	}
	if got.RiskLevel != models.RiskMedium {
		t.Fatalf("AMO should map to Medium risk, got %s", got.RiskLevel)
	}
	if pred.calls != 0 {
		t.Fatal("predictor must not be called when provider class is present")
	}
}

func TestResolveComputedTier(t *testing.T) {
	r := NewClassificationResolver(nil)

	in := models.ClassificationInput{
		Name: "2010 AB",
		Elements: models.OrbitalElements{
			SemiMajorAxis: ptr(1.2), Eccentricity: ptr(0.3), Inclination: ptr(10),
		},
	}

	got := r.Resolve(context.Background(), in, true)
	if got.Method != models.MethodComputed || got.OrbitClass != "Apollo" {
		t.Fatalf("expected computed Apollo, got %+v", got)
	}
}

func TestResolvePredictedTier(t *testing.T) {
	pred := &stubPredictor{class: "Apollo", reason: "close Earth-crossing approach"}
	aud := &captureAuditor{}
	r := NewClassificationResolver(pred, WithResolverAuditor(aud))

	in := models.ClassificationInput{Name: "2023 DW", Hazardous: true}

	got := r.Resolve(context.Background(), in, true)
	if got.Method != models.MethodPredicted || got.Confidence != 60 {
		t.Fatalf("expected predicted tier with confidence 60, got %+v", got)
	}
	if got.OrbitClass != "Apollo" || got.RiskLevel != models.RiskHigh {
		t.Fatalf("unexpected prediction result: %+v", got)
	}
	if len(aud.events) != 1 || aud.events[0].Kind != "classification" || aud.events[0].ID == "" {
		t.Fatalf("expected one audit event with an id, got %+v", aud.events)
	}
}

func TestResolvePredictionFailureFallsBack(t *testing.T) {
	pred := &stubPredictor{err: errors.New("upstream timeout")}
	r := NewClassificationResolver(pred)

	in := models.ClassificationInput{Name: "x", Hazardous: true}

	got := r.Resolve(context.Background(), in, true)
	if got.Method != models.MethodFallback || got.OrbitClass != "Potentially Hazardous" {
		t.Fatalf("expected hazardous fallback, got %+v", got)
	}
	if got.RiskLevel != models.RiskHigh || got.Confidence != 50 {
		t.Fatalf("unexpected fallback values: %+v", got)
	}
}

func TestResolveCancelledPredictionMatchesDisallowed(t *testing.T) {
	pred := &stubPredictor{class: "Apollo", reason: "x"}
	r := NewClassificationResolver(pred)
	in := models.ClassificationInput{Name: "x"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cancelled := r.Resolve(ctx, in, true)
	disallowed := r.Resolve(context.Background(), in, false)
	if cancelled != disallowed {
		t.Fatalf("cancelled prediction should match allowPredicted=false: %+v vs %+v", cancelled, disallowed)
	}
}

func TestResolveFallbackNonHazardous(t *testing.T) {
	r := NewClassificationResolver(nil)

	got := r.Resolve(context.Background(), models.ClassificationInput{Name: "x"}, false)
	if got.OrbitClass != "Unknown" || got.RiskLevel != models.RiskLow || got.Confidence != 0 {
		t.Fatalf("unexpected fallback: %+v", got)
	}
	if got.Method != models.MethodFallback {
		t.Fatalf("expected fallback method, got %s", got.Method)
	}
}

func TestResolveConfidenceMonotonicAcrossTiers(t *testing.T) {
	pred := &stubPredictor{class: "Apollo", reason: "x"}
	r := NewClassificationResolver(pred)

	elements := models.OrbitalElements{
		SemiMajorAxis: ptr(2.77), Eccentricity: ptr(0.078), Inclination: ptr(10.6),
	}

	provider := r.Resolve(context.Background(), models.ClassificationInput{
		ProviderClass: &models.OrbitClassHint{Type: "Apollo"},
		Elements:      elements,
	}, true)
	computed := r.Resolve(context.Background(), models.ClassificationInput{Elements: elements}, true)
	predicted := r.Resolve(context.Background(), models.ClassificationInput{}, true)
	fallback := r.Resolve(context.Background(), models.ClassificationInput{}, false)

	if !(provider.Confidence >= computed.Confidence &&
		computed.Confidence >= predicted.Confidence &&
		predicted.Confidence >= fallback.Confidence) {
		t.Fatalf("confidence not monotonic: %d %d %d %d",
			provider.Confidence, computed.Confidence, predicted.Confidence, fallback.Confidence)
	}
}
