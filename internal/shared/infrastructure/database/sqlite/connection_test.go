package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database"
)

func TestNewConnection_File(t *testing.T) {
	ctx := context.Background()

	cfg := database.Config{
		URL:       "sqlite://" + filepath.Join(t.TempDir(), "nested", "minutes.db"),
		AccessKey: "local",
	}

	conn, err := database.NewConnection(ctx, cfg)
	require.NoError(t, err)
	defer conn.Close()

	assert.NoError(t, conn.Ping(ctx))
	assert.Equal(t, database.DriverSQLite, conn.Driver())
}

func TestNewConnection_RequiresPath(t *testing.T) {
	_, err := NewConnection(context.Background(), database.Config{URL: "sqlite://"})
	assert.Error(t, err)
}

func TestConnection_ExecAndQuery(t *testing.T) {
	ctx := context.Background()

	conn, err := NewConnection(ctx, database.Config{URL: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(ctx, `CREATE TABLE test (id TEXT PRIMARY KEY, name TEXT)`)
	require.NoError(t, err)

	result, err := conn.Exec(ctx, `INSERT INTO test (id, name) VALUES (?, ?)`, "1", "Alice")
	require.NoError(t, err)

	rowsAffected, err := result.RowsAffected()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rowsAffected)

	var id, name string
	err = conn.QueryRow(ctx, `SELECT id, name FROM test WHERE id = ?`, "1").Scan(&id, &name)
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	_, err = conn.Exec(ctx, `INSERT INTO test (id, name) VALUES (?, ?)`, "2", "Bob")
	require.NoError(t, err)

	rows, err := conn.Query(ctx, `SELECT id, name FROM test ORDER BY id`)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		require.NoError(t, rows.Scan(&id, &name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"Alice", "Bob"}, names)
}

func TestConnection_ErrorsAreStoreReported(t *testing.T) {
	ctx := context.Background()

	conn, err := NewConnection(ctx, database.Config{URL: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Query(ctx, `SELECT id FROM meeting_minutes LIMIT 1`)
	require.Error(t, err)
	assert.True(t, database.IsServerError(err))
	assert.Equal(t, database.KindMissingRelation, database.Classify(err).Kind)

	err = conn.QueryRow(ctx, `SELECT 1 WHERE 1 = 0`).Scan(new(int))
	assert.True(t, database.IsNoRows(err))
}
