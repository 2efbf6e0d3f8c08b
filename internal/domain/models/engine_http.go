package models

// Requests for engine HTTP endpoints. Defined in domain for consistency and reuse.

// ClassifyRequest carries one already-fetched provider record. OrbitalData
// is kept loosely typed on purpose: providers disagree on field names and
// value types, and the extractor tolerates both.
type ClassifyRequest struct {
	Name              string          `json:"name" validate:"required"`
	OrbitClass        *OrbitClassHint `json:"orbit_class"`
	OrbitalData       map[string]any  `json:"orbital_data"`
	Hazardous         bool            `json:"is_potentially_hazardous"`
	DiameterMinM      *float64        `json:"diameter_min_m"`
	DiameterMaxM      *float64        `json:"diameter_max_m"`
	VelocityKPS       *float64        `json:"velocity_kps"`
	MissDistanceAU    *float64        `json:"miss_distance_au"`
	AbsoluteMagnitude *float64        `json:"absolute_magnitude"`
	AllowPredicted    *bool           `json:"allow_predicted"`
}

// ApproachRequest is the wire form of one close approach.
type ApproachRequest struct {
	Name              string   `json:"name" validate:"required"`
	DiameterMinM      float64  `json:"diameter_min_m" validate:"gte=0"`
	DiameterMaxM      float64  `json:"diameter_max_m" validate:"gte=0"`
	VelocityKPS       float64  `json:"velocity_kps" validate:"gte=0"`
	MissDistanceAU    float64  `json:"miss_distance_au" validate:"gte=0"`
	ApproachDate      string   `json:"approach_date"`
	Hazardous         bool     `json:"is_potentially_hazardous"`
	OrbitClass        string   `json:"orbit_class"`
	AbsoluteMagnitude *float64 `json:"absolute_magnitude"`
	OrbitalPeriod     *float64 `json:"orbital_period"`
	Inclination       *float64 `json:"inclination"`
	Eccentricity      *float64 `json:"eccentricity"`
}

// RiskBatchRequest asks for one aggregate risk analysis over a set of
// approaches.
type RiskBatchRequest struct {
	Objects []ApproachRequest `json:"objects" validate:"required,min=1,max=1000,dive"`
}

// RiskObjectRequest asks for a single-object risk analysis.
type RiskObjectRequest struct {
	Object ApproachRequest `json:"object" validate:"required"`
}
