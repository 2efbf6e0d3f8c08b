package orbit

import (
	"testing"

	"NeoWatch/internal/domain/models"
	"NeoWatch/internal/services/elements"
)

func elems(a, e, i float64) models.OrbitalElements {
	return models.OrbitalElements{SemiMajorAxis: &a, Eccentricity: &e, Inclination: &i}
}

func TestClassifyBands(t *testing.T) {
	cases := []struct {
		name       string
		el         models.OrbitalElements
		class      string
		risk       models.RiskLevel
		confidence int
	}{
		{"apollo", elems(1.2, 0.3, 10), "Apollo", models.RiskHigh, 85},
		{"aten", elems(0.9, 0.2, 10), "Aten", models.RiskHigh, 85},
		{"amor", elems(1.5, 0.2, 10), "Amor", models.RiskMedium, 80},
		{"atira", elems(0.7, 0.3, 10), "Atira", models.RiskMedium, 85},
		{"main belt", elems(2.77, 0.078, 10.6), "Main Belt", models.RiskLow, 90},
		{"trojan", elems(5.2, 0.05, 10), "Trojan", models.RiskLow, 85},
		{"centaur", elems(15, 0.3, 20), "Centaur", models.RiskLow, 80},
		{"trans-neptunian", elems(45, 0.1, 5), "Trans-Neptunian", models.RiskLow, 85},
		{"short period", elems(5.3, 0.75, 20), "Short Period", models.RiskLow, 75},
		{"high inclination", elems(1.8, 0.1, 70), "High Inclination", models.RiskMedium, 70},
		{"inner solar system", elems(1.4, 0.05, 5), "Inner Solar System", models.RiskMedium, 60},
		{"outer asteroid belt", elems(4.0, 0.1, 10), "Outer Asteroid Belt", models.RiskLow, 65},
	}

	for _, tc := range cases {
		got := Classify(tc.el, false)
		if got.OrbitClass != tc.class {
			t.Fatalf("%s: expected class %q, got %q", tc.name, tc.class, got.OrbitClass)
		}
		if got.RiskLevel != tc.risk {
			t.Fatalf("%s: expected risk %s, got %s", tc.name, tc.risk, got.RiskLevel)
		}
		if got.Confidence != tc.confidence {
			t.Fatalf("%s: expected confidence %d, got %d", tc.name, tc.confidence, got.Confidence)
		}
		if got.Method != models.MethodComputed {
			t.Fatalf("%s: expected computed method, got %s", tc.name, got.Method)
		}
	}
}

func TestClassifyEarthCrossingSplit(t *testing.T) {
	// Both orbits cross Earth's path; only the semi-major axis differs.
	if got := Classify(elems(1.01, 0.1, 5), false); got.OrbitClass != "Apollo" {
		t.Fatalf("a > 1 should be Apollo, got %q", got.OrbitClass)
	}
	if got := Classify(elems(0.99, 0.1, 5), false); got.OrbitClass != "Aten" {
		t.Fatalf("a <= 1 should be Aten, got %q", got.OrbitClass)
	}
}

func TestClassifyUsesProvidedDistancesOverDerived(t *testing.T) {
	a, e, i := 2.5, 0.05, 5.0
	q, bigQ := 0.9, 1.1
	el := models.OrbitalElements{
		SemiMajorAxis:      &a,
		Eccentricity:       &e,
		Inclination:        &i,
		PerihelionDistance: &q,
		AphelionDistance:   &bigQ,
	}

	if got := Classify(el, false); got.OrbitClass != "Apollo" {
		t.Fatalf("provider-supplied q/Q should win over derived values, got %q", got.OrbitClass)
	}
}

func TestClassifyIncompleteFallsBack(t *testing.T) {
	a := 1.2
	el := models.OrbitalElements{SemiMajorAxis: &a}

	got := Classify(el, true)
	if got.OrbitClass != "Potentially Hazardous" || got.RiskLevel != models.RiskHigh || got.Confidence != 50 {
		t.Fatalf("unexpected hazardous fallback: %+v", got)
	}
	if got.Method != models.MethodFallback {
		t.Fatalf("expected fallback method, got %s", got.Method)
	}

	got = Classify(el, false)
	if got.OrbitClass != "Unknown" || got.RiskLevel != models.RiskLow || got.Confidence != 0 {
		t.Fatalf("unexpected non-hazardous fallback: %+v", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	el := elems(1.458, 0.223, 10.83)
	first := Classify(el, false)
	for range 10 {
		if got := Classify(el, false); got != first {
			t.Fatalf("classification not deterministic: %+v then %+v", first, got)
		}
	}
}

func TestExtractAndClassifyRoundTrip(t *testing.T) {
	raw := map[string]any{
		"semi_major_axis":     "1.458",
		"eccentricity":        0.223,
		"inclination":         10.83,
		"perihelion_distance": 1.133,
		"aphelion_distance":   1.783,
	}

	first := Classify(elements.Extract(raw), false)
	for range 5 {
		if got := Classify(elements.Extract(raw), false); got != first {
			t.Fatalf("round trip not idempotent: %+v then %+v", first, got)
		}
	}
	if first.OrbitClass != "Amor" {
		t.Fatalf("expected Amor for 433 Eros elements, got %q", first.OrbitClass)
	}
}

func TestRiskLevelFromClass(t *testing.T) {
	cases := []struct {
		class string
		want  models.RiskLevel
	}{
		{"Apollo", models.RiskHigh},
		{"APO", models.RiskHigh},
		{"aten", models.RiskHigh},
		{"Amor", models.RiskMedium},
		{"Atira", models.RiskMedium},
		{"Potentially Hazardous Asteroid", models.RiskMedium},
		{"Main Belt", models.RiskLow},
		{"", models.RiskLow},
	}
	for _, tc := range cases {
		if got := RiskLevelFromClass(tc.class); got != tc.want {
			t.Fatalf("class %q: expected %s, got %s", tc.class, tc.want, got)
		}
	}
}
