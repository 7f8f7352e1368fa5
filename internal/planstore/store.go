// Package planstore holds the process-wide "current load plan" slot.
//
// The slot is replaced by atomic swap under exclusive access and never
// edited field by field. Readers always observe either the previous
// complete plan or the new one, never a partial state.
package planstore

import (
	"airlift-load-service/internal/domain"
	"errors"
	"sync"
	"time"
)

// Returned when a generation is requested while one is already in flight.
// The previously published plan is untouched; the caller should retry.
var ErrGenerationInProgress = errors.New("plan generation already in progress")

// Returned by Current before any plan has been published.
var ErrNoPlan = errors.New("no load plan published yet")

// A published plan together with its publication instant.
type PublishedPlan struct {
	Plan        *domain.LoadPlan
	PublishedAt time.Time
}

// Store serializes plan generation and publication.
type Store struct {
	mu         sync.RWMutex
	current    *PublishedPlan
	generating bool

	now func() time.Time
}

func New() *Store {
	return &Store{now: time.Now}
}

// Begin claims the generation guard. The whole prioritize->pack->balance->
// assemble pipeline runs under this claim so two concurrent generations
// cannot interleave. Callers must end the claim with Publish or Abort.
func (s *Store) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generating {
		return ErrGenerationInProgress
	}
	s.generating = true
	return nil
}

// Abort releases the generation guard without touching the published plan.
func (s *Store) Abort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false
}

// Publish swaps the new plan into the slot as a unit and releases the
// generation guard.
func (s *Store) Publish(plan *domain.LoadPlan) PublishedPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	published := PublishedPlan{Plan: plan, PublishedAt: s.now()}
	s.current = &published
	s.generating = false
	return published
}

// Current returns the published plan snapshot. Refresh means re-read,
// never recompute.
func (s *Store) Current() (PublishedPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return PublishedPlan{}, ErrNoPlan
	}
	return *s.current, nil
}
