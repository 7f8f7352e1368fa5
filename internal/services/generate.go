package services

import (
	"airlift-load-service/internal/domain"
	"airlift-load-service/internal/platform/obs"
	"airlift-load-service/internal/ports"
	"context"
	"fmt"
)

type GenerateRequest struct {
	Profile   domain.AircraftProfile
	MissionKm float64
}

// GenerateLoadPlan runs the full packing pipeline over the current pending
// set: prioritize, pack, balance, assemble. It is pure apart from the
// repository read; publication of the result is the caller's concern so the
// generation guard can wrap the whole call.
func GenerateLoadPlan(
	ctx context.Context,
	req GenerateRequest,
	repo ports.CargoRepository,
) (plan *domain.LoadPlan, err error) {
	defer obs.Time(ctx, "generate_load_plan")(&err)

	if err := req.Profile.Validate(); err != nil {
		return nil, fmt.Errorf("generate load plan: %w", err)
	}

	pending, err := repo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate load plan: list pending requests: %w", err)
	}

	ordered, err := OrderByPriority(pending)
	if err != nil {
		return nil, fmt.Errorf("generate load plan: %w", err)
	}

	placements, unplaced, quadrantWeights := PackItems(req.Profile, ordered)

	return AssemblePlan(req.Profile, placements, unplaced, quadrantWeights, req.MissionKm), nil
}
