package repositories

import (
	"airlift-load-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLite-backed implementation of the CargoRepository port.
type SqliteCargoRepository struct{ DB *sql.DB }

func NewSqliteCargoRepository(db *sql.DB) *SqliteCargoRepository {
	return &SqliteCargoRepository{DB: db}
}

// Return all pending cargo requests in submission order.
func (s *SqliteCargoRepository) ListPending(ctx context.Context) ([]domain.CargoItem, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite cargo repository: DB is nil")
	}

	query := `
	SELECT
		request_id,
		item_type,
		priority,
		weight_kg,
		length_m,
		width_m,
		height_m
	FROM cargo_requests
	ORDER BY request_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pending: query cargo_requests table: %w", err)
	}
	defer rows.Close()

	items := make([]domain.CargoItem, 0, 64)
	for rows.Next() {
		var item domain.CargoItem
		var itemType string
		err := rows.Scan(
			&item.ID,
			&itemType,
			&item.Priority,
			&item.WeightKg,
			&item.LengthM,
			&item.WidthM,
			&item.HeightM,
		)
		if err != nil {
			return nil, fmt.Errorf("list pending: scan row: %w", err)
		}
		item.Type = domain.ItemType(itemType)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pending: row iteration: %w", err)
	}

	return items, nil
}

// Append quantity requests of one type with preset attributes.
func (s *SqliteCargoRepository) AddRequests(ctx context.Context, t domain.ItemType, priority, quantity int) (int, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite cargo repository: DB is nil")
	}

	preset, ok := domain.ItemPresets[t]
	if !ok {
		return 0, &domain.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown item type %q", t)}
	}
	if priority < 1 || priority > 10 {
		return 0, &domain.ValidationError{Field: "priority", Reason: "must be between 1 and 10"}
	}
	if quantity < 1 {
		return 0, &domain.ValidationError{Field: "quantity", Reason: "must be positive"}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("add requests: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO cargo_requests (
		item_type,
		priority,
		weight_kg,
		length_m,
		width_m,
		height_m
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return 0, fmt.Errorf("add requests: prepare insert: %w", err)
	}
	defer stmt.Close()

	for n := 0; n < quantity; n++ {
		if _, err := stmt.ExecContext(
			ctx,
			string(t),
			priority,
			preset.WeightKg,
			preset.LengthM,
			preset.WidthM,
			preset.HeightM,
		); err != nil {
			return 0, fmt.Errorf("add requests: insert item_type=%q: %w", t, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("add requests: commit tx: %w", err)
	}

	return quantity, nil
}

// Drop every pending request and reset the submission sequence so the next
// intake starts from ID 1 again.
func (s *SqliteCargoRepository) ClearRequests(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("sqlite cargo repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("clear requests: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cargo_requests;`); err != nil {
		return fmt.Errorf("clear requests: delete rows: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name = 'cargo_requests';`); err != nil {
		return fmt.Errorf("clear requests: reset sequence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("clear requests: commit tx: %w", err)
	}

	return nil
}
