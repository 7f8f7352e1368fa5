package services

import (
	"airlift-load-service/internal/domain"
	"fmt"
	"slices"
)

// OrderByPriority produces the total packing order for a pending set.
//
// Every item is validated before any ordering happens, so a malformed
// item rejects the whole run without touching the published plan.
// The three-key comparator (priority desc, weight desc, submission ID asc)
// yields a fully deterministic order even among exact duplicates. Heavier
// items sort first within a priority so they get first pick of quadrant
// space while the bins are still balanced.
func OrderByPriority(items []domain.CargoItem) ([]domain.CargoItem, error) {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("order items: %w", err)
		}
	}

	ordered := slices.Clone(items)
	slices.SortFunc(ordered, func(a, b domain.CargoItem) int {
		if a.Priority != b.Priority {
			if a.Priority > b.Priority {
				return -1
			}
			return 1
		}
		if a.WeightKg != b.WeightKg {
			if a.WeightKg > b.WeightKg {
				return -1
			}
			return 1
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})

	return ordered, nil
}
