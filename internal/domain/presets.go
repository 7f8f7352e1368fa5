package domain

import "fmt"

// Default physical attributes for an item type. Colors are RGB in [0,1]
// and are only consumed by the exporters (PDF fill, OpenSCAD color()).
type ItemPreset struct {
	Label    string
	WeightKg float64
	LengthM  float64
	WidthM   float64
	HeightM  float64
	Color    [3]float64
}

// ItemPresets is the closed attribute table for all accepted cargo types.
// Dimensions are meters, weights are kilograms.
var ItemPresets = map[ItemType]ItemPreset{
	ItemWaterCase:    {Label: "Water Case (24 bottles)", WeightKg: 18, LengthM: 0.45, WidthM: 0.30, HeightM: 0.25, Color: [3]float64{0.2, 0.5, 0.9}},
	ItemFoodCans:     {Label: "Dozen NP Food Cans", WeightKg: 10, LengthM: 0.40, WidthM: 0.30, HeightM: 0.22, Color: [3]float64{0.8, 0.3, 0.1}},
	ItemFirstAidKit:  {Label: "First-Aid Kit", WeightKg: 4, LengthM: 0.35, WidthM: 0.25, HeightM: 0.20, Color: [3]float64{0.9, 0.1, 0.1}},
	ItemToiletPaper:  {Label: "Toilet Paper (12-Roll Pack)", WeightKg: 3, LengthM: 0.40, WidthM: 0.30, HeightM: 0.25, Color: [3]float64{0.95, 0.95, 0.95}},
	ItemSanitaryPads: {Label: "Sanitary Pads (20 Pack)", WeightKg: 1, LengthM: 0.30, WidthM: 0.20, HeightM: 0.12, Color: [3]float64{0.9, 0.5, 0.8}},
	ItemClothingPack: {Label: "Clothing Pack (Jacket + Undergarments)", WeightKg: 5, LengthM: 0.45, WidthM: 0.35, HeightM: 0.25, Color: [3]float64{0.3, 0.3, 0.6}},
	ItemBlanket:      {Label: "Blanket (Rolled)", WeightKg: 2, LengthM: 0.50, WidthM: 0.25, HeightM: 0.25, Color: [3]float64{0.6, 0.4, 0.2}},
	ItemPetSupplies:  {Label: "Pet Supplies Pack", WeightKg: 6, LengthM: 0.50, WidthM: 0.30, HeightM: 0.30, Color: [3]float64{0.9, 0.7, 0.2}},
	ItemBabyFormula:  {Label: "Baby Formula (Case)", WeightKg: 8, LengthM: 0.40, WidthM: 0.30, HeightM: 0.25, Color: [3]float64{0.8, 0.9, 0.7}},
}

// ItemTypes lists all accepted types in a stable order, for preset listings
// and deterministic seeding.
var ItemTypes = []ItemType{
	ItemWaterCase,
	ItemFoodCans,
	ItemFirstAidKit,
	ItemToiletPaper,
	ItemSanitaryPads,
	ItemClothingPack,
	ItemBlanket,
	ItemPetSupplies,
	ItemBabyFormula,
}

// ItemFromPreset builds a cargo item with the default attributes of its type.
func ItemFromPreset(t ItemType, priority int, id int64) (CargoItem, error) {
	preset, ok := ItemPresets[t]
	if !ok {
		return CargoItem{}, &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown item type %q", t)}
	}

	item := CargoItem{
		ID:       id,
		Type:     t,
		Priority: priority,
		WeightKg: preset.WeightKg,
		LengthM:  preset.LengthM,
		WidthM:   preset.WidthM,
		HeightM:  preset.HeightM,
	}
	if err := item.Validate(); err != nil {
		return CargoItem{}, err
	}
	return item, nil
}

// QuantityForPriority maps a request's priority to the number of units added
// to the pending set. Tuned so high priorities fill the UH-60 toward its
// fuel-efficient 75-85% capacity band.
func QuantityForPriority(priority int) int {
	quantities := map[int]int{
		1:  3,
		2:  6,
		3:  10,
		4:  15,
		5:  20,
		6:  25,
		7:  30,
		8:  35,
		9:  40,
		10: 50,
	}
	if q, ok := quantities[priority]; ok {
		return q
	}
	return 20
}
