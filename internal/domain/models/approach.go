package models

import "time"

// DiameterRange is an estimated diameter interval in meters.
type DiameterRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Mean returns the midpoint of the estimate.
func (d DiameterRange) Mean() float64 {
	return (d.Min + d.Max) / 2
}

// ApproachRecord is one close-approach observation of a near-Earth object.
// The orbital fields at the bottom are optional extras some providers
// attach; they enrich single-object risk narratives when present.
type ApproachRecord struct {
	Name           string
	Diameter       DiameterRange
	VelocityKPS    float64
	MissDistanceAU float64
	ApproachDate   time.Time
	Hazardous      bool

	OrbitClass        string
	AbsoluteMagnitude *float64
	OrbitalPeriod     *float64
	Inclination       *float64
	Eccentricity      *float64
}
