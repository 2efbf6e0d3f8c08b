package models

// OrbitalElements holds the canonical orbital parameters of a small body.
// Every field is optional: a nil pointer means the data provider did not
// supply a usable value. Distances are in AU, angles in degrees, the
// orbital period in years.
type OrbitalElements struct {
	SemiMajorAxis      *float64
	Eccentricity       *float64
	Inclination        *float64
	PerihelionDistance *float64
	AphelionDistance   *float64
	OrbitalPeriod      *float64
	PerihelionArgument *float64
	AscendingNode      *float64
	MeanAnomaly        *float64
}

// Complete reports whether the elements required for geometric
// classification (semi-major axis, eccentricity, inclination) are present.
func (e OrbitalElements) Complete() bool {
	return e.SemiMajorAxis != nil && e.Eccentricity != nil && e.Inclination != nil
}

// Perihelion returns the perihelion distance q, deriving q = a(1-e) when
// the provider did not supply it directly.
func (e OrbitalElements) Perihelion() (float64, bool) {
	if e.PerihelionDistance != nil {
		return *e.PerihelionDistance, true
	}
	if e.SemiMajorAxis != nil && e.Eccentricity != nil {
		return *e.SemiMajorAxis * (1 - *e.Eccentricity), true
	}
	return 0, false
}

// Aphelion returns the aphelion distance Q, deriving Q = a(1+e) when
// the provider did not supply it directly.
func (e OrbitalElements) Aphelion() (float64, bool) {
	if e.AphelionDistance != nil {
		return *e.AphelionDistance, true
	}
	if e.SemiMajorAxis != nil && e.Eccentricity != nil {
		return *e.SemiMajorAxis * (1 + *e.Eccentricity), true
	}
	return 0, false
}
