package services

import (
	"airlift-load-service/internal/domain"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateBalanceEmptyBay(t *testing.T) {
	p := testProfile()

	s := EvaluateBalance(p, nil, [4]float64{})

	assert.Equal(t, 1.0, s.Score)
	assert.Equal(t, domain.Vec3{}, s.CenterOfGravity, "empty bay CoG sits at the geometric center")
	assert.Zero(t, s.FrontKg)
	assert.Zero(t, s.RearKg)
}

func TestEvaluateBalanceScoreFormula(t *testing.T) {
	p := testProfile()

	// One 100 kg item front-left, nothing else: spread 100 over total 100.
	pl := domain.Placement{
		Item:     cube(1, 5, 100, 0.5),
		Quadrant: domain.FrontLeft,
	}
	s := EvaluateBalance(p, []domain.Placement{pl}, [4]float64{100, 0, 0, 0})

	assert.InDelta(t, 0.0, s.Score, 1e-9, "fully skewed load scores 0")
	assert.Equal(t, 100.0, s.FrontKg)
	assert.Equal(t, 0.0, s.RearKg)
	assert.Equal(t, 100.0, s.LeftKg)
	assert.Equal(t, 0.0, s.RightKg)
}

func TestEvaluateBalancePartialSkew(t *testing.T) {
	p := testProfile()

	placements := []domain.Placement{
		{Item: cube(1, 5, 60, 0.5), Quadrant: domain.FrontLeft},
		{Item: cube(2, 5, 40, 0.5), Quadrant: domain.RearRight},
	}
	s := EvaluateBalance(p, placements, [4]float64{60, 0, 0, 40})

	// 1 - (60-0)/100
	assert.InDelta(t, 0.4, s.Score, 1e-9)
	assert.Equal(t, 60.0, s.FrontKg)
	assert.Equal(t, 40.0, s.RearKg)
}

func TestEvaluateBalanceCenterOfGravity(t *testing.T) {
	p := domain.AircraftProfile{MaxWeightKg: 1000, BayLengthM: 4, BayWidthM: 2, BayHeightM: 1, CruiseSpeedKmh: 200}

	// Two equal items mirrored across the bay center cancel on X and Y.
	a := domain.Placement{Item: cube(1, 5, 50, 1), Quadrant: domain.FrontLeft, Anchor: domain.Vec3{}}
	b := domain.Placement{Item: cube(2, 5, 50, 1), Quadrant: domain.RearRight, Anchor: domain.Vec3{X: 1}}

	s := EvaluateBalance(p, []domain.Placement{a, b}, [4]float64{50, 0, 0, 50})

	if math.Abs(s.CenterOfGravity.Y) > 1e-9 {
		t.Fatalf("Y should cancel, got %f", s.CenterOfGravity.Y)
	}
	// a center: (-1.5, -0.5, 0); b center: (1.5, 0.5, 0).
	assert.InDelta(t, 0.0, s.CenterOfGravity.X, 1e-9)
	assert.InDelta(t, 0.0, s.CenterOfGravity.Z, 1e-9)
}
