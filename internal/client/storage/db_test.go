package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesMetadataTable(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	require.True(t, tableExists(t, db, "goose_db_version"))
	require.True(t, tableExists(t, db, "metadata"))

	_, err = db.ExecContext(ctx, `INSERT INTO metadata(namespace, key, value) VALUES ('session', 'username', 'alice')`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO metadata(namespace, key, value) VALUES ('session', 'username', 'bob')`)
	require.Error(t, err, "namespace+key must be unique")
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))
	require.True(t, tableExists(t, db, "metadata"))
}

func TestInitDatabase_CreatesDirectory(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "dir", "app.db")

	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	defer db.Close()
	require.True(t, tableExists(t, db, "metadata"))
}

func TestInitDatabase_BadPath(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := InitDatabase(context.Background(), filepath.Join(blocker, "app.db"))
	require.Error(t, err)
}
