package storage

// Repository defines the solve-history storage interface. It exists so the
// API layer can run against SQLite in production and an in-memory mock in
// tests.
type Repository interface {
	// SaveSolve persists one completed reconciliation attempt.
	SaveSolve(rec *SolveRecord) error

	// GetSolve retrieves a record by its ID, nil when absent.
	GetSolve(id string) (*SolveRecord, error)

	// ListSolves returns the most recent records, newest first.
	ListSolves(limit int) ([]*SolveRecord, error)

	Close() error
}
