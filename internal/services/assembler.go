package services

import "airlift-load-service/internal/domain"

// AssemblePlan combines placements, unplaced items, and balance metrics
// into a single immutable LoadPlan. Re-running with identical inputs yields
// a bit-identical plan; crews rely on repeated generations agreeing.
func AssemblePlan(
	p domain.AircraftProfile,
	placements []domain.Placement,
	unplaced []domain.CargoItem,
	quadrantWeights [4]float64,
	missionKm float64,
) *domain.LoadPlan {
	totalKg := 0.0
	totalM3 := 0.0
	for _, pl := range placements {
		totalKg += pl.Item.WeightKg
		totalM3 += pl.Item.VolumeM3()
	}

	balance := EvaluateBalance(p, placements, quadrantWeights)

	return &domain.LoadPlan{
		Aircraft:          p,
		Placements:        placements,
		Unplaced:          unplaced,
		TotalWeightKg:     totalKg,
		WeightUtilization: totalKg / p.MaxWeightKg,
		TotalVolumeM3:     totalM3,
		VolumeUtilization: totalM3 / p.BayVolumeM3(),
		QuadrantWeights:   quadrantWeights,
		BalanceScore:      balance.Score,
		FrontWeightKg:     balance.FrontKg,
		RearWeightKg:      balance.RearKg,
		LeftWeightKg:      balance.LeftKg,
		RightWeightKg:     balance.RightKg,
		CenterOfGravity:   balance.CenterOfGravity,
		Fuel:              FuelEfficiency(p, totalKg, missionKm),
	}
}
