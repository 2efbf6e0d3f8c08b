package elements

import (
	"encoding/json"
	"math"
	"testing"
)

func TestExtractCanonicalKeys(t *testing.T) {
	el := Extract(map[string]any{
		"semi_major_axis":          1.458,
		"eccentricity":             "0.223",
		"inclination":              10.83,
		"perihelion_distance":      1.133,
		"aphelion_distance":        1.783,
		"orbital_period":           1.76,
		"ascending_node_longitude": 304.3,
		"perihelion_argument":      178.9,
		"mean_anomaly":             json.Number("300.9"),
	})

	if el.SemiMajorAxis == nil || *el.SemiMajorAxis != 1.458 {
		t.Fatalf("semi-major axis not extracted: %+v", el.SemiMajorAxis)
	}
	if el.Eccentricity == nil || *el.Eccentricity != 0.223 {
		t.Fatalf("string eccentricity not extracted: %+v", el.Eccentricity)
	}
	if el.MeanAnomaly == nil || *el.MeanAnomaly != 300.9 {
		t.Fatalf("json.Number mean anomaly not extracted: %+v", el.MeanAnomaly)
	}
	if !el.Complete() {
		t.Fatal("expected complete elements")
	}
}

func TestExtractShortAliases(t *testing.T) {
	el := Extract(map[string]any{
		"a":  2.77,
		"e":  0.078,
		"i":  10.6,
		"q":  2.55,
		"ad": 2.98,
		"om": 80.3,
		"w":  73.6,
		"ma": 60,
	})

	if !el.Complete() {
		t.Fatal("short aliases should yield complete elements")
	}
	if el.PerihelionDistance == nil || *el.PerihelionDistance != 2.55 {
		t.Fatalf("q alias not extracted: %+v", el.PerihelionDistance)
	}
	if el.MeanAnomaly == nil || *el.MeanAnomaly != 60 {
		t.Fatalf("int mean anomaly not extracted: %+v", el.MeanAnomaly)
	}
}

func TestExtractRejectsMalformedValues(t *testing.T) {
	el := Extract(map[string]any{
		"semi_major_axis": "not a number",
		"eccentricity":    -0.5,
		"inclination":     math.NaN(),
		"q":               math.Inf(1),
		"orbital_period":  nil,
	})

	if el.SemiMajorAxis != nil {
		t.Fatal("non-numeric string should be absent")
	}
	if el.Eccentricity != nil {
		t.Fatal("negative eccentricity should be absent")
	}
	if el.Inclination != nil {
		t.Fatal("NaN should be absent")
	}
	if el.PerihelionDistance != nil {
		t.Fatal("Inf should be absent")
	}
	if el.Complete() {
		t.Fatal("malformed record must not be complete")
	}
}

func TestExtractEmptyAndNil(t *testing.T) {
	if el := Extract(nil); el.Complete() {
		t.Fatal("nil record must be empty")
	}
	if el := Extract(map[string]any{}); el.SemiMajorAxis != nil {
		t.Fatal("empty record must be empty")
	}
}

func TestExtractCaseInsensitiveKeys(t *testing.T) {
	el := Extract(map[string]any{
		"Semi_Major_Axis": 1.2,
		"ECCENTRICITY":    0.1,
		"Inclination ":    5.0,
	})
	if !el.Complete() {
		t.Fatalf("mixed-case keys should extract: %+v", el)
	}
}

func TestExtractDerivedPerihelion(t *testing.T) {
	el := Extract(map[string]any{"a": 2.0, "e": 0.5, "i": 1.0})

	q, ok := el.Perihelion()
	if !ok || q != 1.0 {
		t.Fatalf("expected derived q=1.0, got %v ok=%v", q, ok)
	}
	bigQ, ok := el.Aphelion()
	if !ok || bigQ != 3.0 {
		t.Fatalf("expected derived Q=3.0, got %v ok=%v", bigQ, ok)
	}
}
