package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Storage provides SQLite-backed solve history. It implements Repository.
type Storage struct {
	db *sql.DB
}

var _ Repository = (*Storage)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS solves (
	id              TEXT PRIMARY KEY,
	created_at      TIMESTAMP NOT NULL,
	target_cents    INTEGER NOT NULL,
	tolerance_cents INTEGER NOT NULL,
	item_count      INTEGER NOT NULL,
	dropped_lines   INTEGER NOT NULL,
	found           INTEGER NOT NULL,
	achieved_cents  INTEGER NOT NULL,
	exact           INTEGER NOT NULL,
	duration_ms     INTEGER NOT NULL,
	selected_json   TEXT
);
CREATE INDEX IF NOT EXISTS idx_solves_created_at ON solves(created_at DESC);
`

// NewStorage opens (creating if needed) the SQLite database at path.
func NewStorage(path string) (*Storage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for integration tests.
func (s *Storage) DB() *sql.DB {
	return s.db
}

// SaveSolve inserts or replaces a solve record.
func (s *Storage) SaveSolve(rec *SolveRecord) error {
	selectedJSON, err := json.Marshal(rec.Selected)
	if err != nil {
		return fmt.Errorf("failed to encode selected items: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO solves
		(id, created_at, target_cents, tolerance_cents, item_count,
		 dropped_lines, found, achieved_cents, exact, duration_ms, selected_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.CreatedAt,
		rec.TargetCents,
		rec.ToleranceCents,
		rec.ItemCount,
		rec.DroppedLines,
		rec.Found,
		rec.AchievedCents,
		rec.Exact,
		rec.DurationMS,
		string(selectedJSON),
	)
	return err
}

// GetSolve retrieves a record by ID. Returns nil, nil when not found.
func (s *Storage) GetSolve(id string) (*SolveRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, created_at, target_cents, tolerance_cents, item_count,
		       dropped_lines, found, achieved_cents, exact, duration_ms, selected_json
		FROM solves WHERE id = ?`, id)

	rec, err := scanSolve(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rec, err
}

// ListSolves returns the newest records first.
func (s *Storage) ListSolves(limit int) ([]*SolveRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, created_at, target_cents, tolerance_cents, item_count,
		       dropped_lines, found, achieved_cents, exact, duration_ms, selected_json
		FROM solves ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*SolveRecord, 0, limit)
	for rows.Next() {
		rec, err := scanSolve(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSolve(row rowScanner) (*SolveRecord, error) {
	rec := &SolveRecord{}
	var createdAt time.Time
	var selectedJSON sql.NullString

	err := row.Scan(
		&rec.ID,
		&createdAt,
		&rec.TargetCents,
		&rec.ToleranceCents,
		&rec.ItemCount,
		&rec.DroppedLines,
		&rec.Found,
		&rec.AchievedCents,
		&rec.Exact,
		&rec.DurationMS,
		&selectedJSON,
	)
	if err != nil {
		return nil, err
	}

	rec.CreatedAt = createdAt
	if selectedJSON.Valid && selectedJSON.String != "" {
		if err := json.Unmarshal([]byte(selectedJSON.String), &rec.Selected); err != nil {
			return nil, fmt.Errorf("failed to decode selected items: %w", err)
		}
	}
	return rec, nil
}
