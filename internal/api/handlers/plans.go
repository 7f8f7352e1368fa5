package handlers

import (
	"airlift-load-service/internal/adapters/export"
	"airlift-load-service/internal/api/dto"
	"airlift-load-service/internal/domain"
	"airlift-load-service/internal/planstore"
	"airlift-load-service/internal/ports"
	"airlift-load-service/internal/services"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"
)

// PlanHandler owns plan generation and the crew-facing read endpoints.
type PlanHandler struct {
	Repo    ports.CargoRepository
	Store   *planstore.Store
	Cache   ports.PlanCache // optional; nil disables write-through
	Profile domain.AircraftProfile
}

// Generate recomputes the load plan from the current pending set and
// publishes it atomically. The generation guard is claimed for the whole
// pipeline; a concurrent caller gets 409 and the published plan is
// untouched.
func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.GenerateRequest
	if r.ContentLength != 0 {
		dec := json.NewDecoder(r.Body)
		defer r.Body.Close()
		dec.DisallowUnknownFields()

		if err := dec.Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid json body")
			return
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
			return
		}
	}

	profile := h.Profile
	if req.MaxWeightKg != nil {
		profile.MaxWeightKg = *req.MaxWeightKg
	}
	if req.BayLengthM != nil {
		profile.BayLengthM = *req.BayLengthM
	}
	if req.BayWidthM != nil {
		profile.BayWidthM = *req.BayWidthM
	}
	if req.BayHeightM != nil {
		profile.BayHeightM = *req.BayHeightM
	}
	if err := profile.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	missionKm := float64(services.DefaultMissionKm)
	if req.MissionKm != nil {
		missionKm = *req.MissionKm
	}

	if err := h.Store.Begin(); err != nil {
		writeError(w, r, http.StatusConflict, "a generation is already in progress, retry shortly")
		return
	}

	plan, err := services.GenerateLoadPlan(r.Context(), services.GenerateRequest{
		Profile:   profile,
		MissionKm: missionKm,
	}, h.Repo)
	if err != nil {
		h.Store.Abort()

		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeError(w, r, http.StatusBadRequest, verr.Error())
			return
		}
		log.Printf("generate plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	published := h.Store.Publish(plan)

	if h.Cache != nil {
		if err := h.Cache.PutLatest(r.Context(), plan, published.PublishedAt); err != nil {
			// Cache is best-effort; the in-process slot is authoritative.
			log.Printf("plan cache write failed: %v", err)
		}
	}

	writeJSON(w, r, http.StatusOK, planToResponse(plan, published.PublishedAt))
}

// Current returns the published plan snapshot. Falls back to the plan
// cache after a restart, before the first in-process generation.
func (h *PlanHandler) Current(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	plan, at, err := h.currentPlan(r)
	if err != nil {
		writeError(w, r, http.StatusNotFound, "no load plan available yet")
		return
	}

	writeJSON(w, r, http.StatusOK, planToResponse(plan, at))
}

// ExportPDF streams the crew loading sheet for the current plan.
func (h *PlanHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	plan, _, err := h.currentPlan(r)
	if err != nil {
		writeError(w, r, http.StatusNotFound, "no load plan available yet")
		return
	}

	pdf, err := export.RenderLoadingPDF(plan)
	if err != nil {
		log.Printf("render pdf failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="loading_plan.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("write pdf failed: %v", err)
	}
}

// ExportSCAD streams the OpenSCAD manifest for the current plan.
func (h *PlanHandler) ExportSCAD(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	plan, _, err := h.currentPlan(r)
	if err != nil {
		writeError(w, r, http.StatusNotFound, "no load plan available yet")
		return
	}

	scad, err := export.RenderOpenSCAD(plan)
	if err != nil {
		log.Printf("render openscad failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="cargo_manifest.scad"`)
	if _, err := w.Write(scad); err != nil {
		log.Printf("write openscad failed: %v", err)
	}
}

func (h *PlanHandler) currentPlan(r *http.Request) (*domain.LoadPlan, time.Time, error) {
	published, err := h.Store.Current()
	if err == nil {
		return published.Plan, published.PublishedAt, nil
	}

	if h.Cache != nil {
		plan, at, found, cerr := h.Cache.GetLatest(r.Context())
		if cerr != nil {
			log.Printf("plan cache read failed: %v", cerr)
		} else if found {
			return plan, at, nil
		}
	}
	return nil, time.Time{}, err
}

func planToResponse(plan *domain.LoadPlan, at time.Time) dto.PlanResponse {
	p := plan.Aircraft

	placements := make([]dto.PlacementResponse, 0, len(plan.Placements))
	for _, pl := range plan.Placements {
		center := pl.Center(p)
		placements = append(placements, dto.PlacementResponse{
			ItemID:   pl.Item.ID,
			ItemType: string(pl.Item.Type),
			Priority: pl.Item.Priority,
			WeightKg: pl.Item.WeightKg,
			LengthM:  pl.Item.LengthM,
			WidthM:   pl.Item.WidthM,
			HeightM:  pl.Item.HeightM,
			Quadrant: pl.Quadrant.String(),
			Anchor:   dto.Vec3Response{X: pl.Anchor.X, Y: pl.Anchor.Y, Z: pl.Anchor.Z},
			Center:   dto.Vec3Response{X: center.X, Y: center.Y, Z: center.Z},
		})
	}

	unplaced := make([]dto.UnplacedResponse, 0, len(plan.Unplaced))
	for _, item := range plan.Unplaced {
		unplaced = append(unplaced, dto.UnplacedResponse{
			ItemID:   item.ID,
			ItemType: string(item.Type),
			Priority: item.Priority,
			WeightKg: item.WeightKg,
			LengthM:  item.LengthM,
			WidthM:   item.WidthM,
			HeightM:  item.HeightM,
		})
	}

	quadrantWeights := make(map[string]float64, 4)
	for i, q := range domain.Quadrants {
		quadrantWeights[q.String()] = plan.QuadrantWeights[i]
	}

	return dto.PlanResponse{
		Aircraft: dto.AircraftPresetResponse{
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
		},
		GeneratedAt: at,
		Placements:  placements,
		Unplaced:    unplaced,
		Stats: dto.PlanStatsResponse{
			TotalWeightKg:     plan.TotalWeightKg,
			MaxWeightKg:       p.MaxWeightKg,
			WeightUtilization: plan.WeightUtilization,
			TotalVolumeM3:     plan.TotalVolumeM3,
			VolumeUtilization: plan.VolumeUtilization,
			ItemsPacked:       len(plan.Placements),
			ItemsUnplaced:     len(plan.Unplaced),
			QuadrantWeights:   quadrantWeights,
			BalanceScore:      plan.BalanceScore,
			FrontWeightKg:     plan.FrontWeightKg,
			RearWeightKg:      plan.RearWeightKg,
			LeftWeightKg:      plan.LeftWeightKg,
			RightWeightKg:     plan.RightWeightKg,
			CenterOfGravity:   dto.Vec3Response{X: plan.CenterOfGravity.X, Y: plan.CenterOfGravity.Y, Z: plan.CenterOfGravity.Z},
		},
		Fuel: dto.FuelResponse{
			MissionKm:           plan.Fuel.MissionKm,
			FuelUsedKg:          plan.Fuel.FuelUsedKg,
			EfficiencyRatio:     plan.Fuel.EfficiencyRatio,
			Rating:              plan.Fuel.Rating,
			CapacityUtilization: plan.Fuel.CapacityUtilization,
		},
	}
}
