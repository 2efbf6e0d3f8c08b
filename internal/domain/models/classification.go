package models

import "encoding/json"

// ClassificationMethod identifies which resolution tier produced a result.
type ClassificationMethod string

const (
	MethodProvider  ClassificationMethod = "provider"
	MethodComputed  ClassificationMethod = "computed"
	MethodPredicted ClassificationMethod = "predicted"
	MethodFallback  ClassificationMethod = "fallback"
)

// RiskLevel is the qualitative per-object risk scale.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// OrbitClassification is the result of resolving an object's orbit class.
// Method records the tier that answered so callers can audit how much
// trust to place in the result.
type OrbitClassification struct {
	OrbitClass  string               `json:"orbitClass"`
	Description string               `json:"description"`
	Confidence  int                  `json:"confidence"`
	Method      ClassificationMethod `json:"method"`
	RiskLevel   RiskLevel            `json:"riskLevel"`
}

// OrbitClassHint is an orbit class already stated by a data provider.
// Providers send it either as a bare string or as {type, description};
// both decode into the same shape.
type OrbitClassHint struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (h *OrbitClassHint) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		h.Type = s
		h.Description = ""
		return nil
	}
	var obj struct {
		Type        string `json:"type"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	h.Type = obj.Type
	h.Description = obj.Description
	return nil
}

// ClassificationInput carries everything the resolver may use about one
// object. Only Elements and Hazardous matter for the deterministic tiers;
// the descriptive fields feed the prediction prompt when present.
type ClassificationInput struct {
	Name              string
	ProviderClass     *OrbitClassHint
	Elements          OrbitalElements
	Hazardous         bool
	DiameterMinM      *float64
	DiameterMaxM      *float64
	VelocityKPS       *float64
	MissDistanceAU    *float64
	AbsoluteMagnitude *float64
}
