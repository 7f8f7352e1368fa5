package handlers

import (
	"airlift-load-service/internal/api/dto"
	"airlift-load-service/internal/domain"
	"net/http"
)

// PresetHandler serves the closed item and aircraft preset tables so the
// intake form never hard-codes attributes.
type PresetHandler struct {
	Profile domain.AircraftProfile
}

func (h *PresetHandler) Items(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	res := dto.ListItemPresetsResponse{
		Presets: make([]dto.ItemPresetResponse, 0, len(domain.ItemTypes)),
	}
	for _, t := range domain.ItemTypes {
		preset := domain.ItemPresets[t]
		res.Presets = append(res.Presets, dto.ItemPresetResponse{
			ItemType: string(t),
			Label:    preset.Label,
			WeightKg: preset.WeightKg,
			LengthM:  preset.LengthM,
			WidthM:   preset.WidthM,
			HeightM:  preset.HeightM,
			Color:    preset.Color,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PresetHandler) Aircraft(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	p := h.Profile
	writeJSON(w, r, http.StatusOK, dto.AircraftPresetResponse{
		Name:             p.Name,
		MaxWeightKg:      p.MaxWeightKg,
		BayLengthM:       p.BayLengthM,
		BayWidthM:        p.BayWidthM,
		BayHeightM:       p.BayHeightM,
		FuelBurnEmptyKgH: p.FuelBurnEmptyKgH,
		FuelBurnPerKgH:   p.FuelBurnPerKgH,
		CruiseSpeedKmh:   p.CruiseSpeedKmh,
		RangeKm:          p.RangeKm,
		FuelCapacityKg:   p.FuelCapacityKg,
	})
}
