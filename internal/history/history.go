// Package history records completed organize operations in a small
// SQLite database so past runs can be inspected with "landsort history".
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/Nomadcxx/landsort/internal/paths"
)

// DB is the handle for the transfer history database
type DB struct {
	db   *sql.DB
	path string
	mu   sync.RWMutex
}

// Open opens or creates the database at the default location
func Open() (*DB, error) {
	dbPath, err := paths.HistoryPath()
	if err != nil {
		return nil, fmt.Errorf("unable to resolve history path: %w", err)
	}
	return OpenPath(dbPath)
}

// OpenPath opens or creates the database at a specific path
func OpenPath(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("unable to create history directory: %w", err)
	}

	// WAL mode so a watch daemon and the CLI can share the file
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("unable to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping history database: %w", err)
	}

	h := &DB{db: db, path: path}
	if err := h.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to migrate history database: %w", err)
	}

	return h, nil
}

// OpenInMemory opens an in-memory database for testing
func OpenInMemory() (*DB, error) {
	// Shared cache so every pooled connection sees the same database
	db, err := sql.Open("sqlite", ":memory:?_cache=shared")
	if err != nil {
		return nil, fmt.Errorf("unable to open in-memory database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping in-memory database: %w", err)
	}

	h := &DB{db: db, path: ":memory:"}
	if err := h.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to migrate in-memory database: %w", err)
	}

	return h, nil
}

// Close closes the database connection
func (h *DB) Close() error {
	return h.db.Close()
}

// Path returns the filesystem path to the database file
func (h *DB) Path() string {
	return h.path
}

func (h *DB) migrate() error {
	_, err := h.db.Exec(`
		CREATE TABLE IF NOT EXISTS transfers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			operation TEXT NOT NULL,
			source_path TEXT NOT NULL,
			target_path TEXT NOT NULL,
			year TEXT NOT NULL,
			bytes INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			executed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_transfers_executed_at
			ON transfers(executed_at);
		CREATE INDEX IF NOT EXISTS idx_transfers_year
			ON transfers(year);
	`)
	return err
}
