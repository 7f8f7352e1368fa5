package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"airlift-load-service/internal/adapters/repositories"
	"airlift-load-service/internal/domain"

	"github.com/fatih/color"
)

var (
	infoColor  = color.New(color.FgCyan)
	errorColor = color.New(color.FgRed, color.Bold)
)

func PrintInfo(msg string) {
	infoColor.Fprintln(os.Stderr, msg)
}

func PrintError(msg string) {
	errorColor.Fprintln(os.Stderr, msg)
}

// loadItemsFromSeed expands a request seed file into concrete cargo items
// with sequential submission IDs, the same expansion the intake endpoint
// performs.
func loadItemsFromSeed(path string) ([]domain.CargoItem, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", path, err)
	}

	var seeds []repositories.RequestSeed
	if err := json.Unmarshal(bytes, &seeds); err != nil {
		return nil, fmt.Errorf("load seed: parse json: %w", err)
	}

	items := make([]domain.CargoItem, 0, len(seeds))
	nextID := int64(1)
	for i, seed := range seeds {
		if seed.Quantity < 1 {
			return nil, fmt.Errorf("load seed: invalid quantity %d at index %d", seed.Quantity, i+1)
		}
		for n := 0; n < seed.Quantity; n++ {
			item, err := domain.ItemFromPreset(domain.ItemType(seed.ItemType), seed.Priority, nextID)
			if err != nil {
				return nil, fmt.Errorf("load seed: at index %d: %w", i+1, err)
			}
			items = append(items, item)
			nextID++
		}
	}
	return items, nil
}

// loadPlanFromFile reads a plan previously written by `loadctl generate`.
func loadPlanFromFile(path string) (*domain.LoadPlan, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load plan: read %q: %w", path, err)
	}

	var plan domain.LoadPlan
	if err := json.Unmarshal(bytes, &plan); err != nil {
		return nil, fmt.Errorf("load plan: parse json: %w", err)
	}
	return &plan, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
