package services

import "airlift-load-service/internal/domain"

// DefaultMissionKm is the round-trip distance assumed when a generation
// request does not specify one.
const DefaultMissionKm = 100

// FuelEfficiency estimates mission fuel use for a cargo weight.
//
// Burn rate is the empty cruise burn plus a per-kilogram cargo penalty;
// the rating buckets follow capacity utilization: 75-85% is the sweet spot,
// heavier loads cost more fuel per kilogram but waste no trips, and light
// loads waste trips outright.
func FuelEfficiency(p domain.AircraftProfile, cargoKg, missionKm float64) domain.FuelReport {
	if missionKm <= 0 {
		missionKm = DefaultMissionKm
	}

	burnRateKgH := p.FuelBurnEmptyKgH + cargoKg*p.FuelBurnPerKgH
	flightHours := missionKm / p.CruiseSpeedKmh
	fuelUsedKg := burnRateKgH * flightHours

	ratio := 0.0
	if fuelUsedKg > 0 {
		ratio = cargoKg / fuelUsedKg
	}

	utilization := cargoKg / p.MaxWeightKg

	var rating string
	switch {
	case utilization >= 0.75 && utilization <= 0.85:
		rating = "Optimal"
	case utilization > 0.85:
		rating = "Good"
	case utilization >= 0.60:
		rating = "Moderate"
	default:
		rating = "Low"
	}

	return domain.FuelReport{
		MissionKm:           missionKm,
		FuelUsedKg:          fuelUsedKg,
		EfficiencyRatio:     ratio,
		Rating:              rating,
		CapacityUtilization: utilization,
	}
}
