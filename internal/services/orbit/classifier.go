package orbit

import (
	"strings"

	"NeoWatch/internal/domain/models"
)

// Earth's perihelion and aphelion in AU bound the Earth-crossing band.
const (
	earthPerihelionAU = 0.983
	earthAphelionAU   = 1.017
)

// Classify derives an orbit class from orbital elements alone. It is pure
// and total: incomplete elements yield the hazard-aware fallback, complete
// ones always match one of the geometric bands. Rule order encodes
// Earth-proximity precedence, so a body satisfying several bands gets the
// one nearest Earth.
func Classify(el models.OrbitalElements, hazardous bool) models.OrbitClassification {
	if !el.Complete() {
		return Fallback(hazardous)
	}

	a := *el.SemiMajorAxis
	e := *el.Eccentricity
	i := *el.Inclination
	q, _ := el.Perihelion()
	bigQ, _ := el.Aphelion()

	switch {
	case bigQ >= earthPerihelionAU && q <= earthAphelionAU:
		if a > 1 {
			return computed("Apollo", "Earth-crossing orbit with semi-major axis beyond Earth's", models.RiskHigh, 85)
		}
		return computed("Aten", "Earth-crossing orbit with semi-major axis inside Earth's", models.RiskHigh, 85)

	case q > earthAphelionAU && q <= 1.3:
		return computed("Amor", "Near-Earth orbit approaching but not crossing Earth's", models.RiskMedium, 80)

	case bigQ < earthPerihelionAU:
		return computed("Atira", "Orbit entirely inside Earth's", models.RiskMedium, 85)

	case a >= 2.1 && a <= 3.3 && e < 0.3 && i < 30:
		return computed("Main Belt", "Low-eccentricity orbit within the main asteroid belt", models.RiskLow, 90)

	case a >= 5.1 && a <= 5.4 && e < 0.1 && i < 30:
		return computed("Trojan", "Near-circular orbit sharing Jupiter's path", models.RiskLow, 85)

	case a >= 5.4 && a <= 30.1 && (bigQ > 5.2 || q < 30.1):
		return computed("Centaur", "Orbit between Jupiter and Neptune", models.RiskLow, 80)

	case a > 30.1:
		return computed("Trans-Neptunian", "Orbit beyond Neptune", models.RiskLow, 85)

	case e > 0.7:
		if a > 20 {
			return computed("Long Period", "Highly eccentric long-period orbit", models.RiskLow, 75)
		}
		return computed("Short Period", "Highly eccentric short-period orbit", models.RiskLow, 75)

	case i > 60:
		return computed("High Inclination", "Orbit steeply inclined to the ecliptic", models.RiskMedium, 70)

	case a < 1.5:
		return computed("Inner Solar System", "Orbit within the inner solar system", models.RiskMedium, 60)

	case a < 5.5:
		return computed("Outer Asteroid Belt", "Orbit in the outer asteroid belt region", models.RiskLow, 65)

	default:
		return computed("Outer Solar System", "Orbit in the outer solar system", models.RiskLow, 60)
	}
}

// Fallback is the terminal classification used when no better tier is
// available. It never fails.
func Fallback(hazardous bool) models.OrbitClassification {
	if hazardous {
		return models.OrbitClassification{
			OrbitClass:  "Potentially Hazardous",
			Description: "Flagged as potentially hazardous by the data provider",
			Confidence:  50,
			Method:      models.MethodFallback,
			RiskLevel:   models.RiskHigh,
		}
	}
	return models.OrbitClassification{
		OrbitClass:  "Unknown",
		Description: "Insufficient data to classify this orbit",
		Confidence:  0,
		Method:      models.MethodFallback,
		RiskLevel:   models.RiskLow,
	}
}

// RiskLevelFromClass maps a provider-supplied class label to a risk level
// using substring matching. Non-matching or empty labels are Low.
func RiskLevelFromClass(class string) models.RiskLevel {
	c := strings.ToLower(class)
	switch {
	case strings.Contains(c, "apollo"),
		strings.Contains(c, "aten"),
		strings.Contains(c, "apo"),
		strings.Contains(c, "ate"):
		return models.RiskHigh
	case strings.Contains(c, "amor"),
		strings.Contains(c, "atira"),
		strings.Contains(c, "amo"),
		strings.Contains(c, "ati"),
		strings.Contains(c, "potentially hazardous"):
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func computed(class, description string, risk models.RiskLevel, confidence int) models.OrbitClassification {
	return models.OrbitClassification{
		OrbitClass:  class,
		Description: description,
		Confidence:  confidence,
		Method:      models.MethodComputed,
		RiskLevel:   risk,
	}
}
