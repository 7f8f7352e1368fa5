package domain

// Assignment of one cargo item to a bay position.
// Anchor is the item's minimum corner expressed in the quadrant's local
// frame (offsets from the quadrant origin). The footprint translated to
// the anchor always lies inside the quadrant region and never overlaps
// an earlier placement in the same quadrant.
type Placement struct {
	Item     CargoItem
	Quadrant Quadrant
	Anchor   Vec3
}

// MinCorner returns the placement's minimum corner in the vehicle frame.
func (pl Placement) MinCorner(p AircraftProfile) Vec3 {
	return pl.Quadrant.Origin(p).Add(pl.Anchor)
}

// Center returns the item's geometric center in the vehicle frame,
// the point used for center-of-gravity accounting.
func (pl Placement) Center(p AircraftProfile) Vec3 {
	half := Vec3{X: pl.Item.LengthM / 2, Y: pl.Item.WidthM / 2, Z: pl.Item.HeightM / 2}
	return pl.MinCorner(p).Add(half)
}

// Fuel consumption estimate for flying the packed load over one mission.
type FuelReport struct {
	MissionKm           float64
	FuelUsedKg          float64
	EfficiencyRatio     float64
	Rating              string
	CapacityUtilization float64
}

// Immutable result of one packing run. Placements and unplaced items
// partition the full input set; TotalWeightKg never exceeds the profile's
// MaxWeightKg. The published "current plan" slot replaces whole LoadPlans
// by atomic swap and never edits one in place.
type LoadPlan struct {
	Aircraft AircraftProfile

	Placements []Placement
	Unplaced   []CargoItem

	TotalWeightKg     float64
	WeightUtilization float64
	TotalVolumeM3     float64
	VolumeUtilization float64

	QuadrantWeights [4]float64
	BalanceScore    float64
	FrontWeightKg   float64
	RearWeightKg    float64
	LeftWeightKg    float64
	RightWeightKg   float64
	CenterOfGravity Vec3

	Fuel FuelReport
}
