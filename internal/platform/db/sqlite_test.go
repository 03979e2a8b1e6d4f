package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePath(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, "hsd_ngo.db"), StorePath(dir, "hsd_ngo.db"))
	assert.Equal(t, "hsd_ngo.db", StorePath(filepath.Join(dir, "missing"), "hsd_ngo.db"))
	assert.Equal(t, "hsd_ngo.db", StorePath("", "hsd_ngo.db"))
}

func TestMigrateIsNonDestructive(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, Migrate(ctx, conn))

	_, err = conn.Exec(`INSERT INTO providers (provider_name) VALUES ('Alpha Support')`)
	require.NoError(t, err)

	// Re-running startup migration must keep existing rows.
	require.NoError(t, Migrate(ctx, conn))

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM providers`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, Migrate(ctx, conn))

	wantErr := assert.AnError
	err = WithTx(ctx, conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO providers (provider_name) VALUES ('Ghost')`); err != nil {
			return err
		}
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM providers`).Scan(&count))
	assert.Zero(t, count, "failed unit of work leaves no rows behind")
}
