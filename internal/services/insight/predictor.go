package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"NeoWatch/internal/domain/models"
)

// Predictor asks the generative service for an orbit class when the
// provider and computed tiers have nothing to offer.
type Predictor struct {
	client *Client
}

func NewPredictor(client *Client) *Predictor {
	return &Predictor{client: client}
}

// PredictClass builds a compact prompt from the object's descriptive
// parameters and parses a strict "CLASS: <name> | REASON: <text>" reply.
func (p *Predictor) PredictClass(ctx context.Context, in models.ClassificationInput) (string, string, error) {
	if p == nil || !p.client.Configured() {
		return "", "", ErrNotConfigured
	}

	reply, err := p.client.Complete(ctx, buildClassPrompt(in))
	if err != nil {
		return "", "", err
	}
	return parseClassReply(reply)
}

func buildClassPrompt(in models.ClassificationInput) string {
	var b strings.Builder
	b.WriteString("You are an orbital dynamics assistant. Given the parameters of a near-Earth object, name its most likely orbit class.\n")
	fmt.Fprintf(&b, "Object: %s\n", in.Name)
	if in.DiameterMinM != nil && in.DiameterMaxM != nil {
		fmt.Fprintf(&b, "Estimated diameter: %.0f-%.0f m\n", *in.DiameterMinM, *in.DiameterMaxM)
	}
	if in.VelocityKPS != nil {
		fmt.Fprintf(&b, "Relative velocity: %.2f km/s\n", *in.VelocityKPS)
	}
	if in.MissDistanceAU != nil {
		fmt.Fprintf(&b, "Miss distance: %.4f AU\n", *in.MissDistanceAU)
	}
	if in.AbsoluteMagnitude != nil {
		fmt.Fprintf(&b, "Absolute magnitude: %.2f\n", *in.AbsoluteMagnitude)
	}
	fmt.Fprintf(&b, "Potentially hazardous: %t\n", in.Hazardous)
	b.WriteString("Answer on a single line in exactly this format:\nCLASS: <class name> | REASON: <one sentence>")
	return b.String()
}

// parseClassReply enforces the reply contract. Anything that does not
// match is an error so the resolver can fall through to its next tier.
func parseClassReply(reply string) (string, string, error) {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "CLASS:") {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) != 2 {
			return "", "", fmt.Errorf("malformed prediction line: %q", line)
		}

		class := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(parts[0]), "CLASS:"))
		rest := strings.TrimSpace(parts[1])
		if !strings.HasPrefix(rest, "REASON:") {
			return "", "", fmt.Errorf("malformed prediction line: %q", line)
		}
		reason := strings.TrimSpace(strings.TrimPrefix(rest, "REASON:"))

		if class == "" {
			return "", "", errors.New("prediction returned empty class")
		}
		return class, reason, nil
	}
	return "", "", errors.New("prediction reply missing CLASS line")
}
