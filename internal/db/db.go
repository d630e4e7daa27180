package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB holding the catalog build history.
type DB struct {
	*sql.DB
	path string
}

// Open creates or opens a SQLite database at the given path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	d := &DB{DB: sqlDB, path: path}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// OpenMemory creates an in-memory SQLite database (useful for testing).
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// Every pooled connection to :memory: would get its own empty database.
	sqlDB.SetMaxOpenConns(1)

	d := &DB{DB: sqlDB, path: ":memory:"}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// Path returns the file the database was opened from.
func (d *DB) Path() string { return d.path }

// migrate runs all schema migrations.
func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

// schema contains the full database schema. New tables are added here.
const schema = `
CREATE TABLE IF NOT EXISTS catalog_builds (
    id TEXT PRIMARY KEY,
    built_at DATETIME NOT NULL DEFAULT (datetime('now')),
    examples_dir TEXT NOT NULL DEFAULT '',
    version_count INTEGER NOT NULL DEFAULT 0,
    example_count INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_catalog_builds_built_at ON catalog_builds(built_at);

CREATE TABLE IF NOT EXISTS catalog_versions (
    build_id TEXT NOT NULL REFERENCES catalog_builds(id) ON DELETE CASCADE,
    label TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY(build_id, label)
);

CREATE TABLE IF NOT EXISTS catalog_examples (
    build_id TEXT NOT NULL,
    version TEXT NOT NULL,
    position INTEGER NOT NULL,
    identifier TEXT NOT NULL,
    display_name TEXT NOT NULL,
    json_text TEXT NOT NULL,
    yaml_text TEXT NOT NULL,
    PRIMARY KEY(build_id, version, identifier),
    FOREIGN KEY(build_id, version) REFERENCES catalog_versions(build_id, label) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_catalog_examples_order ON catalog_examples(build_id, version, position);
`
