package cache

import (
	"airlift-load-service/internal/domain"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestCache(t *testing.T) *RedisPlanCache {
	t.Helper()

	srv := miniredis.RunT(t)
	c, err := NewRedisPlanCache(context.Background(), srv.Addr(), time.Hour)
	if err != nil {
		t.Fatalf("connect to test redis: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRedisPlanCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	plan := &domain.LoadPlan{
		Aircraft:      domain.UH60BlackHawk(),
		TotalWeightKg: 850,
		BalanceScore:  0.5,
	}
	publishedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if err := c.PutLatest(ctx, plan, publishedAt); err != nil {
		t.Fatalf("put latest: %v", err)
	}

	got, gotAt, ok, err := c.GetLatest(ctx)
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit after put")
	}
	if !gotAt.Equal(publishedAt) {
		t.Fatalf("published at = %v, want %v", gotAt, publishedAt)
	}
	if got.Aircraft.Name != plan.Aircraft.Name || got.TotalWeightKg != plan.TotalWeightKg {
		t.Fatalf("cached plan = %+v, want %+v", got, plan)
	}
}

func TestRedisPlanCacheMiss(t *testing.T) {
	c := newTestCache(t)

	got, _, ok, err := c.GetLatest(context.Background())
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if ok || got != nil {
		t.Fatal("expected a miss on an empty cache")
	}
}

func TestRedisPlanCacheRejectsNilPlan(t *testing.T) {
	c := newTestCache(t)

	if err := c.PutLatest(context.Background(), nil, time.Now()); err == nil {
		t.Fatal("expected an error for a nil plan")
	}
}
