package storage

import "sort"

// MockRepository is an in-memory Repository for tests: fast, isolated, and
// with hooks for asserting calls and injecting errors.
type MockRepository struct {
	records map[string]*SolveRecord

	// Hooks for test assertions
	SaveSolveCalled bool
	LastSavedSolve  *SolveRecord

	// Error injection for testing error paths
	SaveSolveErr  error
	GetSolveErr   error
	ListSolvesErr error
}

// NewMockRepository creates a new mock repository for testing.
func NewMockRepository() *MockRepository {
	return &MockRepository{records: make(map[string]*SolveRecord)}
}

var _ Repository = (*MockRepository)(nil)

// Close does nothing for the mock.
func (m *MockRepository) Close() error {
	return nil
}

// SaveSolve stores a copy of the record in memory.
func (m *MockRepository) SaveSolve(rec *SolveRecord) error {
	m.SaveSolveCalled = true
	m.LastSavedSolve = rec
	if m.SaveSolveErr != nil {
		return m.SaveSolveErr
	}

	// copy to guard against test mutations
	copied := *rec
	m.records[rec.ID] = &copied
	return nil
}

// GetSolve retrieves a record from the in-memory map.
func (m *MockRepository) GetSolve(id string) (*SolveRecord, error) {
	if m.GetSolveErr != nil {
		return nil, m.GetSolveErr
	}
	return m.records[id], nil
}

// ListSolves returns records newest first.
func (m *MockRepository) ListSolves(limit int) ([]*SolveRecord, error) {
	if m.ListSolvesErr != nil {
		return nil, m.ListSolvesErr
	}
	if limit <= 0 {
		limit = 20
	}

	records := make([]*SolveRecord, 0, len(m.records))
	for _, rec := range m.records {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID < records[j].ID
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
