package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	tables := []string{"users", "auth_sessions", "conversations", "chat_messages", "learning_plans"}
	for _, table := range tables {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestOpenDB_ForeignKeysEnabled(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var enabled int
	require.NoError(t, database.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

// Running migrations twice must be a no-op.
func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestSchema_RoleCheck(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO users (id, name, email, password_hash, created_at) VALUES ('u1','n','e@x','h','2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(
		`INSERT INTO conversations (id, user_id, title, created_at, updated_at) VALUES ('c1','u1','t','2026-01-01T00:00:00Z','2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = database.Exec(
		`INSERT INTO chat_messages (id, user_id, conversation_id, role, content, created_at)
		 VALUES ('m1','u1','c1','system','x','2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "role outside user/assistant must be rejected")
}

func TestSchema_ForeignKeyEnforced(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO auth_sessions (id, user_id, created_at, expires_at)
		 VALUES ('s1','ghost','2026-01-01T00:00:00Z','2026-01-02T00:00:00Z')`)
	assert.Error(t, err, "session for a missing user must be rejected")
}
