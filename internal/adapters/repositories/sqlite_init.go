package repositories

import (
	"airlift-load-service/internal/domain"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRequestsQuery := `
	CREATE TABLE IF NOT EXISTS cargo_requests (
		request_id INTEGER PRIMARY KEY AUTOINCREMENT,
		item_type TEXT NOT NULL,
		priority INTEGER NOT NULL,
		weight_kg REAL NOT NULL,
		length_m REAL NOT NULL,
		width_m REAL NOT NULL,
		height_m REAL NOT NULL
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
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// One line of a request seed file: a typed request expanded to quantity
// rows with preset attributes, exactly what the intake endpoint does.
type RequestSeed struct {
	ItemType string `json:"item_type"`
	Priority int    `json:"priority"`
	Quantity int    `json:"quantity"`
}

// Populate the database with cargo request data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed requests: read %q: %w", jsonPath, err)
	}

	var data []RequestSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed requests: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed requests: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO cargo_requests (
		item_type,
		priority,
		weight_kg,
		length_m,
		width_m,
		height_m
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed requests: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, seed := range data {
		preset, ok := domain.ItemPresets[domain.ItemType(seed.ItemType)]
		if !ok {
			return fmt.Errorf("seed requests: unknown item type %q at index %d", seed.ItemType, i+1)
		}
		if seed.Priority < 1 || seed.Priority > 10 {
			return fmt.Errorf("seed requests: invalid priority %d at index %d", seed.Priority, i+1)
		}
		if seed.Quantity < 1 {
			return fmt.Errorf("seed requests: invalid quantity %d at index %d", seed.Quantity, i+1)
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
				return fmt.Errorf("seed requests: insert item_type=%q: %w", seed.ItemType, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed requests: commit tx: %w", err)
	}

	return nil
}
