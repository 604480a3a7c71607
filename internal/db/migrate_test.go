package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemory(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='plan_state'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "plan_state", name)
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	// Re-running migrations on an already-migrated database must not fail.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestOpenDB_RejectsNonDefaultRowID(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO plan_state (id, data, updated_at) VALUES ('other', '{}', '2025-03-15')`)
	assert.Error(t, err, "check constraint should reject any id but 'default'")
}
