package dto

import "time"

// Optional overrides for one generation run; zero-value fields fall back
// to the service's configured profile.
type GenerateRequest struct {
	MaxWeightKg *float64 `json:"max_weight_kg"`
	BayLengthM  *float64 `json:"bay_length_m"`
	BayWidthM   *float64 `json:"bay_width_m"`
	BayHeightM  *float64 `json:"bay_height_m"`
	MissionKm   *float64 `json:"mission_km"`
}

type Vec3Response struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type PlacementResponse struct {
	ItemID   int64        `json:"item_id"`
	ItemType string       `json:"item_type"`
	Priority int          `json:"priority"`
	WeightKg float64      `json:"weight_kg"`
	LengthM  float64      `json:"length_m"`
	WidthM   float64      `json:"width_m"`
	HeightM  float64      `json:"height_m"`
	Quadrant string       `json:"quadrant"`
	Anchor   Vec3Response `json:"anchor"`
	Center   Vec3Response `json:"center"`
}

type UnplacedResponse struct {
	ItemID   int64   `json:"item_id"`
	ItemType string  `json:"item_type"`
	Priority int     `json:"priority"`
	WeightKg float64 `json:"weight_kg"`
	LengthM  float64 `json:"length_m"`
	WidthM   float64 `json:"width_m"`
	HeightM  float64 `json:"height_m"`
}

type FuelResponse struct {
	MissionKm           float64 `json:"mission_km"`
	FuelUsedKg          float64 `json:"fuel_used_kg"`
	EfficiencyRatio     float64 `json:"efficiency_ratio"`
	Rating              string  `json:"rating"`
	CapacityUtilization float64 `json:"capacity_utilization"`
}

type PlanStatsResponse struct {
	TotalWeightKg     float64            `json:"total_weight_kg"`
	MaxWeightKg       float64            `json:"max_weight_kg"`
	WeightUtilization float64            `json:"weight_utilization"`
	TotalVolumeM3     float64            `json:"total_volume_m3"`
	VolumeUtilization float64            `json:"volume_utilization"`
	ItemsPacked       int                `json:"items_packed"`
	ItemsUnplaced     int                `json:"items_unplaced"`
	QuadrantWeights   map[string]float64 `json:"quadrant_weights"`
	BalanceScore      float64            `json:"balance_score"`
	FrontWeightKg     float64            `json:"front_weight_kg"`
	RearWeightKg      float64            `json:"rear_weight_kg"`
	LeftWeightKg      float64            `json:"left_weight_kg"`
	RightWeightKg     float64            `json:"right_weight_kg"`
	CenterOfGravity   Vec3Response       `json:"center_of_gravity"`
}

type PlanResponse struct {
	Aircraft    AircraftPresetResponse `json:"aircraft"`
	GeneratedAt time.Time              `json:"generated_at"`
	Placements  []PlacementResponse    `json:"placements"`
	Unplaced    []UnplacedResponse     `json:"unplaced"`
	Stats       PlanStatsResponse      `json:"stats"`
	Fuel        FuelResponse           `json:"fuel_efficiency"`
}
