package storage_test

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianopnk-hub/nf-solver-web/internal/infrastructure/storage"
)

func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "solves_test_*.db")
	require.NoError(t, err)
	tmpFile.Close()

	store, err := storage.NewStorage(tmpFile.Name())
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
		os.Remove(tmpFile.Name())
	})
	return store
}

func testRecord(createdAt time.Time) *storage.SolveRecord {
	return &storage.SolveRecord{
		ID:             uuid.NewString(),
		CreatedAt:      createdAt,
		TargetCents:    150000,
		ToleranceCents: 500,
		ItemCount:      3,
		Found:          true,
		AchievedCents:  149800,
		DurationMS:     4,
		Selected: []storage.SelectedItem{
			{Position: 0, Label: "NF001", AmountCents: 100000},
			{Position: 2, Label: "NF003", AmountCents: 49800},
		},
	}
}

func TestStorage_SaveAndGetSolve(t *testing.T) {
	store := newTestStorage(t)

	rec := testRecord(time.Now().UTC())
	require.NoError(t, store.SaveSolve(rec))

	got, err := store.GetSolve(rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.TargetCents, got.TargetCents)
	assert.Equal(t, rec.ToleranceCents, got.ToleranceCents)
	assert.True(t, got.Found)
	assert.Equal(t, rec.AchievedCents, got.AchievedCents)
	require.Len(t, got.Selected, 2)
	assert.Equal(t, rec.Selected[1], got.Selected[1])
}

func TestStorage_GetSolve_Missing(t *testing.T) {
	store := newTestStorage(t)

	got, err := store.GetSolve("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStorage_SaveSolve_NotFoundOutcome(t *testing.T) {
	store := newTestStorage(t)

	rec := testRecord(time.Now().UTC())
	rec.Found = false
	rec.AchievedCents = 0
	rec.Selected = nil
	require.NoError(t, store.SaveSolve(rec))

	got, err := store.GetSolve(rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Found)
	assert.Empty(t, got.Selected)
}

func TestStorage_ListSolves(t *testing.T) {
	store := newTestStorage(t)

	base := time.Now().UTC().Truncate(time.Second)
	var ids []string
	for i := 0; i < 5; i++ {
		rec := testRecord(base.Add(time.Duration(i) * time.Second))
		require.NoError(t, store.SaveSolve(rec))
		ids = append(ids, rec.ID)
	}

	t.Run("newest first", func(t *testing.T) {
		records, err := store.ListSolves(10)
		require.NoError(t, err)
		require.Len(t, records, 5)
		assert.Equal(t, ids[4], records[0].ID)
		assert.Equal(t, ids[0], records[4].ID)
	})

	t.Run("limit respected", func(t *testing.T) {
		records, err := store.ListSolves(2)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("zero limit uses default", func(t *testing.T) {
		records, err := store.ListSolves(0)
		require.NoError(t, err)
		assert.Len(t, records, 5)
	})
}

func TestMockRepository(t *testing.T) {
	t.Run("save and get", func(t *testing.T) {
		repo := storage.NewMockRepository()
		rec := testRecord(time.Now().UTC())

		require.NoError(t, repo.SaveSolve(rec))
		assert.True(t, repo.SaveSolveCalled)
		assert.Equal(t, rec, repo.LastSavedSolve)

		got, err := repo.GetSolve(rec.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, rec.ID, got.ID)
	})

	t.Run("error injection", func(t *testing.T) {
		repo := storage.NewMockRepository()
		repo.SaveSolveErr = assert.AnError

		err := repo.SaveSolve(testRecord(time.Now().UTC()))
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("list newest first", func(t *testing.T) {
		repo := storage.NewMockRepository()
		base := time.Now().UTC()

		older := testRecord(base.Add(-time.Minute))
		newer := testRecord(base)
		require.NoError(t, repo.SaveSolve(older))
		require.NoError(t, repo.SaveSolve(newer))

		records, err := repo.ListSolves(10)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, newer.ID, records[0].ID)
	})
}
