package elements

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"NeoWatch/internal/domain/models"
)

// Field aliases accepted in provider payloads. Lookups are
// case-insensitive after lowercasing the incoming key.
var fieldAliases = map[string][]string{
	"semiMajorAxis":   {"semi_major_axis", "semimajoraxis", "a"},
	"eccentricity":    {"eccentricity", "e"},
	"inclination":     {"inclination", "i", "inc"},
	"perihelion":      {"perihelion_distance", "periheliondistance", "q"},
	"aphelion":        {"aphelion_distance", "apheliondistance", "ad"},
	"period":          {"orbital_period", "orbitalperiod", "period", "per_y", "per"},
	"ascendingNode":   {"ascending_node_longitude", "ascendingnodelongitude", "om", "node"},
	"argOfPerihelion": {"perihelion_argument", "perihelionargument", "w", "argument_of_perihelion"},
	"meanAnomaly":     {"mean_anomaly", "meananomaly", "ma", "m"},
}

// Extract pulls orbital elements out of a loosely structured provider
// payload. Unknown keys are ignored and values that cannot be read as a
// finite number are skipped, never fatal.
func Extract(raw map[string]any) models.OrbitalElements {
	var el models.OrbitalElements
	if len(raw) == 0 {
		return el
	}

	lowered := make(map[string]any, len(raw))
	for k, v := range raw {
		lowered[strings.ToLower(strings.TrimSpace(k))] = v
	}

	el.SemiMajorAxis = lookup(lowered, "semiMajorAxis", nonNegative)
	el.Eccentricity = lookup(lowered, "eccentricity", nonNegative)
	el.Inclination = lookup(lowered, "inclination", anyFinite)
	el.PerihelionDistance = lookup(lowered, "perihelion", nonNegative)
	el.AphelionDistance = lookup(lowered, "aphelion", nonNegative)
	el.OrbitalPeriod = lookup(lowered, "period", nonNegative)
	el.AscendingNode = lookup(lowered, "ascendingNode", anyFinite)
	el.PerihelionArgument = lookup(lowered, "argOfPerihelion", anyFinite)
	el.MeanAnomaly = lookup(lowered, "meanAnomaly", anyFinite)

	return el
}

func lookup(raw map[string]any, field string, valid func(float64) bool) *float64 {
	for _, alias := range fieldAliases[field] {
		v, ok := raw[alias]
		if !ok {
			continue
		}
		f, ok := parseNumber(v)
		if !ok || !valid(f) {
			continue
		}
		return &f
	}
	return nil
}

func nonNegative(f float64) bool { return f >= 0 }
func anyFinite(f float64) bool   { return true }

// parseNumber accepts the numeric encodings seen across providers:
// JSON numbers, pre-decoded ints, json.Number, and numeric strings.
func parseNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
