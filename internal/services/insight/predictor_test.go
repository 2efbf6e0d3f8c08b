package insight

import (
	"strings"
	"testing"

	"NeoWatch/internal/domain/models"
)

func testInput(name string, dMin, dMax, vel float64) models.ClassificationInput {
	return models.ClassificationInput{
		Name:         name,
		Hazardous:    true,
		DiameterMinM: &dMin,
		DiameterMaxM: &dMax,
		VelocityKPS:  &vel,
	}
}

func TestParseClassReply(t *testing.T) {
	class, reason, err := parseClassReply("CLASS: Apollo | REASON: Earth-crossing orbit with a > 1 AU")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if class != "Apollo" {
		t.Fatalf("expected class Apollo, got %q", class)
	}
	if reason != "Earth-crossing orbit with a > 1 AU" {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestParseClassReplySkipsPreamble(t *testing.T) {
	reply := "Based on the parameters:\nCLASS: Amor | REASON: approaches but does not cross Earth's orbit\n"
	class, _, err := parseClassReply(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if class != "Amor" {
		t.Fatalf("expected class Amor, got %q", class)
	}
}

func TestParseClassReplyMalformed(t *testing.T) {
	cases := []string{
		"no structured line at all",
		"CLASS: Apollo",
		"CLASS: Apollo | Earth-crossing",
		"CLASS: | REASON: empty class",
		"CLASS: Apollo | REASON: a | REASON: b",
	}
	for _, reply := range cases {
		if _, _, err := parseClassReply(reply); err == nil {
			t.Fatalf("expected error for reply %q", reply)
		}
	}
}

func TestBuildClassPromptIncludesParameters(t *testing.T) {
	d1, d2, v := 120.0, 260.0, 18.44
	prompt := buildClassPrompt(testInput("2023 DW", d1, d2, v))

	for _, want := range []string{"2023 DW", "120-260 m", "18.44 km/s", "CLASS:", "REASON:"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestPredictorNotConfigured(t *testing.T) {
	p := NewPredictor(NewClient("", "", ""))
	if _, _, err := p.PredictClass(t.Context(), testInput("x", 1, 2, 3)); err == nil {
		t.Fatal("expected error from unconfigured predictor")
	}
}
