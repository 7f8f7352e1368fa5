package domain

import "fmt"

// Closed set of cargo categories accepted by the intake form.
// Attributes for each type live in the preset table (presets.go).
type ItemType string

const (
	ItemWaterCase    ItemType = "water-case"
	ItemFoodCans     ItemType = "food-cans"
	ItemFirstAidKit  ItemType = "first-aid-kit"
	ItemToiletPaper  ItemType = "toilet-paper"
	ItemSanitaryPads ItemType = "sanitary-pads"
	ItemClothingPack ItemType = "clothing-pack"
	ItemBlanket      ItemType = "blanket"
	ItemPetSupplies  ItemType = "pet-supplies"
	ItemBabyFormula  ItemType = "baby-formula"
)

// Represents a single cargo request handled by the system.
// An item is created by the intake endpoint, persisted with a monotonically
// increasing ID (its submission order), and is never mutated afterwards.
// The ID doubles as the final tie-break in the packing order, which keeps
// repeated plan generations bit-identical.
type CargoItem struct {
	ID       int64
	Type     ItemType
	Priority int
	WeightKg float64
	LengthM  float64
	WidthM   float64
	HeightM  float64
}

func (c CargoItem) VolumeM3() float64 {
	return c.LengthM * c.WidthM * c.HeightM
}

// Validation failure on a cargo item or aircraft profile.
// Surfaced to the caller before any packing starts; a plan is never
// generated or replaced when one of these is raised.
type ValidationError struct {
	ItemID int64
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.ItemID > 0 {
		return fmt.Sprintf("validation: item %d: %s %s", e.ItemID, e.Field, e.Reason)
	}
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

// Validate checks the physical plausibility of a cargo item.
func (c CargoItem) Validate() error {
	if _, ok := ItemPresets[c.Type]; !ok {
		return &ValidationError{ItemID: c.ID, Field: "type", Reason: fmt.Sprintf("unknown item type %q", c.Type)}
	}
	if c.Priority < 1 || c.Priority > 10 {
		return &ValidationError{ItemID: c.ID, Field: "priority", Reason: "must be between 1 and 10"}
	}
	if c.WeightKg <= 0 {
		return &ValidationError{ItemID: c.ID, Field: "weight", Reason: "must be positive"}
	}
	if c.LengthM <= 0 || c.WidthM <= 0 || c.HeightM <= 0 {
		return &ValidationError{ItemID: c.ID, Field: "dimensions", Reason: "must be positive on all axes"}
	}
	return nil
}
