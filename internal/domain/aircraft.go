package domain

// Static capacity and fuel constants for one airframe.
// Loaded once per packing run and never mutated. Defaults ship for the
// UH-60 Black Hawk but every field is overridable from configuration.
type AircraftProfile struct {
	Name        string
	MaxWeightKg float64
	BayLengthM  float64
	BayWidthM   float64
	BayHeightM  float64

	// Fuel model: level cruise burn plus a per-kilogram cargo penalty.
	FuelBurnEmptyKgH float64
	FuelBurnPerKgH   float64
	CruiseSpeedKmh   float64
	RangeKm          float64
	FuelCapacityKg   float64
}

// UH60BlackHawk returns the published cargo specs used as service defaults.
func UH60BlackHawk() AircraftProfile {
	return AircraftProfile{
		Name:             "UH-60 Black Hawk",
		MaxWeightKg:      1200,
		BayLengthM:       3.8,
		BayWidthM:        2.2,
		BayHeightM:       1.3,
		FuelBurnEmptyKgH: 320,
		FuelBurnPerKgH:   0.08,
		CruiseSpeedKmh:   268,
		RangeKm:          592,
		FuelCapacityKg:   1360,
	}
}

func (p AircraftProfile) BayVolumeM3() float64 {
	return p.BayLengthM * p.BayWidthM * p.BayHeightM
}

// Validate rejects profiles that would make packing arithmetic meaningless.
// A failure here is a configuration error: fatal at load time, never
// recoverable mid-packing.
func (p AircraftProfile) Validate() error {
	if p.MaxWeightKg <= 0 {
		return &ValidationError{Field: "max_weight_kg", Reason: "must be positive"}
	}
	if p.BayLengthM <= 0 || p.BayWidthM <= 0 || p.BayHeightM <= 0 {
		return &ValidationError{Field: "bay_dimensions", Reason: "must be positive on all axes"}
	}
	if p.FuelBurnEmptyKgH < 0 || p.FuelBurnPerKgH < 0 {
		return &ValidationError{Field: "fuel_burn", Reason: "must not be negative"}
	}
	if p.CruiseSpeedKmh <= 0 {
		return &ValidationError{Field: "cruise_speed_kmh", Reason: "must be positive"}
	}
	return nil
}
