// Package db owns the SQLite backing store lifecycle.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open opens (creating if missing) the SQLite store at path.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("platform/db: store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("platform/db: create data directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("platform/db: open store: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("platform/db: enable foreign keys: %w", err)
	}
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("platform/db: set busy timeout: %w", err)
	}
	return conn, nil
}

// Migrate ensures all declared tables exist. The embedded migrations only
// issue CREATE ... IF NOT EXISTS statements; existing tables are never
// dropped or altered.
func Migrate(ctx context.Context, conn *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("platform/db: set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, conn, "migrations"); err != nil {
		return fmt.Errorf("platform/db: run migrations: %w", err)
	}
	return nil
}

// StorePath resolves the backing store location. When dataDir exists it is
// treated as the writable production volume; otherwise the store lives in
// the working directory.
func StorePath(dataDir, fileName string) string {
	if dataDir != "" {
		if info, err := os.Stat(dataDir); err == nil && info.IsDir() {
			return filepath.Join(dataDir, fileName)
		}
	}
	return fileName
}
