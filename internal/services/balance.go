package services

import "airlift-load-service/internal/domain"

// Balance metrics for one packed bay.
type BalanceSummary struct {
	Score           float64
	CenterOfGravity domain.Vec3
	FrontKg         float64
	RearKg          float64
	LeftKg          float64
	RightKg         float64
}

// EvaluateBalance computes the quadrant spread score and center of gravity
// for a set of placements.
//
// Score is 1 - (heaviest quadrant - lightest quadrant) / max(total, 1),
// clamped to [0,1]: 1.0 means perfectly even, lower means more skew.
// The center of gravity is the weight-weighted mean of placement centers in
// the vehicle frame. An empty bay scores 1.0 with its CoG at the frame
// origin (the geometric bay center).
func EvaluateBalance(
	p domain.AircraftProfile,
	placements []domain.Placement,
	quadrantWeights [4]float64,
) BalanceSummary {
	s := BalanceSummary{Score: 1.0}

	totalKg := 0.0
	minKg, maxKg := quadrantWeights[0], quadrantWeights[0]
	for i, w := range quadrantWeights {
		totalKg += w
		if w < minKg {
			minKg = w
		}
		if w > maxKg {
			maxKg = w
		}

		q := domain.Quadrants[i]
		if q.IsFront() {
			s.FrontKg += w
		} else {
			s.RearKg += w
		}
		if q.IsLeft() {
			s.LeftKg += w
		} else {
			s.RightKg += w
		}
	}

	if len(placements) == 0 {
		return s
	}

	denom := totalKg
	if denom < 1 {
		denom = 1
	}
	s.Score = 1 - (maxKg-minKg)/denom
	if s.Score < 0 {
		s.Score = 0
	}
	if s.Score > 1 {
		s.Score = 1
	}

	var weighted domain.Vec3
	for _, pl := range placements {
		weighted = weighted.Add(pl.Center(p).Scale(pl.Item.WeightKg))
	}
	s.CenterOfGravity = weighted.Scale(1 / totalKg)

	return s
}
