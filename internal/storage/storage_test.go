package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "pocketcube.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	var version int
	err := db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pocketcube.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening must not re-apply migrations.
	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecordAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Record("ooooggggwwwwbbbbyyyyrrrr", 0x5FD3097E, "", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = repo.Record("some-scrambled-layout", 12345, "U' F'", 2)
	require.NoError(t, err)

	solves, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, solves, 2)

	// Newest first.
	assert.Equal(t, "U' F'", solves[0].Solution)
	assert.Equal(t, 2, solves[0].MoveCount)
	assert.Equal(t, uint32(12345), solves[0].Configuration)
	assert.Equal(t, uint32(0x5FD3097E), solves[1].Configuration)
	assert.False(t, solves[0].SolvedAt.IsZero())
}

func TestListLimit(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	for i := 0; i < 5; i++ {
		_, err := repo.Record("layout", uint32(i), "F", 1)
		require.NoError(t, err)
	}

	solves, err := repo.List(3)
	require.NoError(t, err)
	assert.Len(t, solves, 3)
}
