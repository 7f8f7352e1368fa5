package cache

import (
	"airlift-load-service/internal/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const latestPlanKey = "loadplan:latest"

// Redis-backed cache of the most recently published load plan, so crew
// displays can keep showing a snapshot across service restarts. The
// in-process plan slot stays authoritative; this is write-through only.
type RedisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

type cachedPlan struct {
	PublishedAt time.Time        `json:"published_at"`
	Plan        *domain.LoadPlan `json:"plan"`
}

// NewRedisPlanCache connects to addr and verifies the connection.
func NewRedisPlanCache(ctx context.Context, addr string, ttl time.Duration) (*RedisPlanCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis plan cache: verify connection to %q: %w", addr, err)
	}
	return &RedisPlanCache{client: client, ttl: ttl}, nil
}

// Store the published plan under the latest-plan key.
func (c *RedisPlanCache) PutLatest(ctx context.Context, plan *domain.LoadPlan, publishedAt time.Time) error {
	if plan == nil {
		return errors.New("put latest plan: plan is nil")
	}

	payload, err := json.Marshal(cachedPlan{PublishedAt: publishedAt, Plan: plan})
	if err != nil {
		return fmt.Errorf("put latest plan: marshal: %w", err)
	}

	if err := c.client.Set(ctx, latestPlanKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("put latest plan: set key: %w", err)
	}
	return nil
}

// Fetch the cached latest plan. A miss is not an error.
func (c *RedisPlanCache) GetLatest(ctx context.Context) (*domain.LoadPlan, time.Time, bool, error) {
	payload, err := c.client.Get(ctx, latestPlanKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("get latest plan: get key: %w", err)
	}

	var cached cachedPlan
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, time.Time{}, false, fmt.Errorf("get latest plan: unmarshal: %w", err)
	}
	return cached.Plan, cached.PublishedAt, true, nil
}

func (c *RedisPlanCache) Close() error {
	return c.client.Close()
}
