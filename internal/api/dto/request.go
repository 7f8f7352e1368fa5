package dto

type SubmitRequest struct {
	ItemType string `json:"item_type"`
	Priority int    `json:"priority"`
}

type SubmitResponse struct {
	Added   int    `json:"added"`
	Message string `json:"message"`
}

// Pending requests grouped by (type, priority), mirroring the intake view.
type PendingGroup struct {
	ItemType string  `json:"item_type"`
	Label    string  `json:"label"`
	Priority int     `json:"priority"`
	Count    int     `json:"count"`
	WeightKg float64 `json:"weight_kg"`
	LengthM  float64 `json:"length_m"`
	WidthM   float64 `json:"width_m"`
	HeightM  float64 `json:"height_m"`
}

type ListRequestsResponse struct {
	Pending []PendingGroup `json:"pending"`
	Total   int            `json:"total"`
}

type ItemPresetResponse struct {
	ItemType string     `json:"item_type"`
	Label    string     `json:"label"`
	WeightKg float64    `json:"weight_kg"`
	LengthM  float64    `json:"length_m"`
	WidthM   float64    `json:"width_m"`
	HeightM  float64    `json:"height_m"`
	Color    [3]float64 `json:"color"`
}

type ListItemPresetsResponse struct {
	Presets []ItemPresetResponse `json:"presets"`
}

type AircraftPresetResponse struct {
	Name             string  `json:"name"`
	MaxWeightKg      float64 `json:"max_weight_kg"`
	BayLengthM       float64 `json:"bay_length_m"`
	BayWidthM        float64 `json:"bay_width_m"`
	BayHeightM       float64 `json:"bay_height_m"`
	FuelBurnEmptyKgH float64 `json:"fuel_burn_empty_kg_h"`
	FuelBurnPerKgH   float64 `json:"fuel_burn_per_kg_h"`
	CruiseSpeedKmh   float64 `json:"cruise_speed_kmh"`
	RangeKm          float64 `json:"range_km"`
	FuelCapacityKg   float64 `json:"fuel_capacity_kg"`
}
