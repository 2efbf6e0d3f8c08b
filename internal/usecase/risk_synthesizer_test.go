package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"NeoWatch/internal/domain/models"
)

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func approach(name string, hazardous bool, missAU float64) models.ApproachRecord {
	return models.ApproachRecord{
		Name:           name,
		Diameter:       models.DiameterRange{Min: 100, Max: 300},
		VelocityKPS:    15,
		MissDistanceAU: missAU,
		Hazardous:      hazardous,
	}
}

func TestSynthesizeBatchRiskLevels(t *testing.T) {
	s := NewRiskSynthesizer(nil)

	cases := []struct {
		name    string
		records []models.ApproachRecord
		want    models.AggregateRiskLevel
	}{
		{
			"six hazardous is critical",
			[]models.ApproachRecord{
				approach("a", true, 0.2), approach("b", true, 0.2), approach("c", true, 0.2),
				approach("d", true, 0.2), approach("e", true, 0.2), approach("f", true, 0.2),
			},
			models.AggregateRiskCritical,
		},
		{
			"very close approach is critical",
			[]models.ApproachRecord{approach("a", false, 0.005)},
			models.AggregateRiskCritical,
		},
		{
			"three hazardous is high",
			[]models.ApproachRecord{approach("a", true, 0.2), approach("b", true, 0.2), approach("c", true, 0.2)},
			models.AggregateRiskHigh,
		},
		{
			"close approach is high",
			[]models.ApproachRecord{approach("a", false, 0.03)},
			models.AggregateRiskHigh,
		},
		{
			"one hazardous is medium",
			[]models.ApproachRecord{approach("a", true, 0.2), approach("b", false, 0.3)},
			models.AggregateRiskMedium,
		},
		{
			"quiet set is low",
			[]models.ApproachRecord{approach("a", false, 0.2)},
			models.AggregateRiskLow,
		},
	}

	for _, tc := range cases {
		got := s.Synthesize(context.Background(), tc.records)
		if got.RiskLevel != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got.RiskLevel)
		}
		if got.Analysis == "" {
			t.Fatalf("%s: deterministic analysis must not be empty", tc.name)
		}
		if len(got.Recommendations) == 0 {
			t.Fatalf("%s: deterministic path must include recommendations", tc.name)
		}
		if got.GeneratedAt.IsZero() {
			t.Fatalf("%s: generatedAt not set", tc.name)
		}
	}
}

func TestSynthesizeEmptyBatch(t *testing.T) {
	s := NewRiskSynthesizer(nil)

	got := s.Synthesize(context.Background(), nil)
	if got.RiskLevel != models.AggregateRiskLow {
		t.Fatalf("empty batch should be low risk, got %s", got.RiskLevel)
	}
	if !strings.Contains(got.Analysis, "No close approaches") {
		t.Fatalf("unexpected empty-batch analysis: %q", got.Analysis)
	}
}

func TestSynthesizeSingleRiskLevels(t *testing.T) {
	s := NewRiskSynthesizer(nil)

	large := models.ApproachRecord{
		Name:           "99942 Apophis",
		Diameter:       models.DiameterRange{Min: 1500, Max: 2000},
		VelocityKPS:    7.4,
		MissDistanceAU: 0.02,
		Hazardous:      true,
	}
	if got := s.SynthesizeSingle(context.Background(), large); got.RiskLevel != models.AggregateRiskCritical {
		t.Fatalf("large close hazardous object should be critical, got %s", got.RiskLevel)
	}

	large.MissDistanceAU = 0.3
	if got := s.SynthesizeSingle(context.Background(), large); got.RiskLevel != models.AggregateRiskHigh {
		t.Fatalf("large hazardous object should be high, got %s", got.RiskLevel)
	}

	small := approach("small", false, 0.02)
	if got := s.SynthesizeSingle(context.Background(), small); got.RiskLevel != models.AggregateRiskMedium {
		t.Fatalf("very close object should be medium, got %s", got.RiskLevel)
	}

	quiet := approach("quiet", false, 0.4)
	if got := s.SynthesizeSingle(context.Background(), quiet); got.RiskLevel != models.AggregateRiskLow {
		t.Fatalf("distant object should be low, got %s", got.RiskLevel)
	}
}

func TestSynthesizeGenerativeText(t *testing.T) {
	gen := &stubGenerator{text: "An elevated week for close approaches.\n- Increase observation cadence\n- Refine orbit solutions\n"}
	s := NewRiskSynthesizer(gen)

	got := s.Synthesize(context.Background(), []models.ApproachRecord{approach("a", true, 0.2)})
	if got.Analysis != gen.text {
		t.Fatalf("generative analysis should be used verbatim: %q", got.Analysis)
	}
	want := []string{"Increase observation cadence", "Refine orbit solutions"}
	if !reflect.DeepEqual(got.Recommendations, want) {
		t.Fatalf("expected %v, got %v", want, got.Recommendations)
	}
	if got.RiskLevel != models.AggregateRiskMedium {
		t.Fatal("risk level must stay deterministic on the generative path")
	}
}

func TestSynthesizeGeneratorFailureFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("timeout")}
	s := NewRiskSynthesizer(gen)

	records := []models.ApproachRecord{approach("a", true, 0.2)}
	got := s.Synthesize(context.Background(), records)
	deterministic := NewRiskSynthesizer(nil).Synthesize(context.Background(), records)

	if got.Analysis != deterministic.Analysis || got.RiskLevel != deterministic.RiskLevel {
		t.Fatalf("generator failure should degrade to the deterministic result: %+v vs %+v", got, deterministic)
	}
}

func TestExtractRecommendations(t *testing.T) {
	text := "Summary line.\n- First action\n* Second action\n• Third action\n1. Fourth action\n2) Fifth action\n- First action\nnot a list line"
	got := extractRecommendations(text)
	want := []string{"First action", "Second action", "Third action", "Fourth action", "Fifth action"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got := extractRecommendations("prose only, no markers"); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}
