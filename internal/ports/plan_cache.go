package ports

import (
	"airlift-load-service/internal/domain"
	"context"
	"time"
)

// Port: optional out-of-process cache of the most recently published plan,
// so crew displays keep a snapshot across service restarts. Write-through
// only; the in-process plan slot remains the source of truth.
type PlanCache interface {
	PutLatest(ctx context.Context, plan *domain.LoadPlan, publishedAt time.Time) error
	// GetLatest returns (nil, zero, false, nil) on a cache miss.
	GetLatest(ctx context.Context) (*domain.LoadPlan, time.Time, bool, error)
}
