package repositories

import (
	"airlift-load-service/internal/domain"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Postgres variants used by cmd/dbtool to maintain the central mirror of
// the request queue. Same schema shape as SQLite, $n placeholders.

func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRequestsQuery := `
	CREATE TABLE IF NOT EXISTS cargo_requests (
		request_id BIGSERIAL PRIMARY KEY,
		item_type TEXT NOT NULL,
		priority INTEGER NOT NULL,
		weight_kg DOUBLE PRECISION NOT NULL,
		length_m DOUBLE PRECISION NOT NULL,
		width_m DOUBLE PRECISION NOT NULL,
		height_m DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_cargo_requests_priority
	ON cargo_requests(priority DESC, weight_kg DESC);
	`

	statements := []string{
		createRequestsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres mirror with cargo request data from a JSON file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed postgres requests: read %q: %w", jsonPath, err)
	}

	var data []RequestSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed postgres requests: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed postgres requests: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO cargo_requests (
		item_type,
		priority,
		weight_kg,
		length_m,
		width_m,
		height_m
	)
	VALUES ($1, $2, $3, $4, $5, $6);
	`)
	if err != nil {
		return fmt.Errorf("seed postgres requests: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, seed := range data {
		preset, ok := domain.ItemPresets[domain.ItemType(seed.ItemType)]
		if !ok {
			return fmt.Errorf("seed postgres requests: unknown item type %q at index %d", seed.ItemType, i+1)
		}
		if seed.Priority < 1 || seed.Priority > 10 {
			return fmt.Errorf("seed postgres requests: invalid priority %d at index %d", seed.Priority, i+1)
		}
		if seed.Quantity < 1 {
			return fmt.Errorf("seed postgres requests: invalid quantity %d at index %d", seed.Quantity, i+1)
		}

		for n := 0; n < seed.Quantity; n++ {
			if _, err := stmt.Exec(
				seed.ItemType,
				seed.Priority,
				preset.WeightKg,
				preset.LengthM,
				preset.WidthM,
				preset.HeightM,
			); err != nil {
				return fmt.Errorf("seed postgres requests: insert item_type=%q: %w", seed.ItemType, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed postgres requests: commit tx: %w", err)
	}

	return nil
}
