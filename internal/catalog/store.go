package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/oas-examples/internal/db"
)

// Build describes one persisted catalog build.
type Build struct {
	ID           string    `json:"id"`
	BuiltAt      time.Time `json:"built_at"`
	ExamplesDir  string    `json:"examples_dir"`
	VersionCount int       `json:"version_count"`
	ExampleCount int       `json:"example_count"`
}

// Store persists catalog builds so a built site can be served without
// re-reading the example files.
type Store struct {
	db *db.DB
}

// NewStore creates a new catalog store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// SaveBuild stores cat as a new build in a single transaction.
func (s *Store) SaveBuild(ctx context.Context, cat *Catalog, examplesDir string) (*Build, error) {
	b := Build{
		ID:           uuid.New().String(),
		BuiltAt:      time.Now().UTC(),
		ExamplesDir:  examplesDir,
		VersionCount: len(cat.versions),
		ExampleCount: cat.Count(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO catalog_builds (id, built_at, examples_dir, version_count, example_count)
		 VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.BuiltAt, b.ExamplesDir, b.VersionCount, b.ExampleCount,
	); err != nil {
		return nil, fmt.Errorf("inserting build: %w", err)
	}

	for vi, v := range cat.versions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO catalog_versions (build_id, label, position) VALUES (?, ?, ?)`,
			b.ID, v.Label, vi,
		); err != nil {
			return nil, fmt.Errorf("inserting version %s: %w", v.Label, err)
		}
		for ei, ex := range v.Examples {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO catalog_examples (build_id, version, position, identifier, display_name, json_text, yaml_text)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				b.ID, v.Label, ei, ex.Identifier, ex.DisplayName, ex.JSONText, ex.YAMLText,
			); err != nil {
				return nil, fmt.Errorf("inserting example %s/%s: %w", v.Label, ex.Identifier, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing build: %w", err)
	}
	return &b, nil
}

// ListBuilds returns the most recent builds first. A limit of zero or less
// returns all builds.
func (s *Store) ListBuilds(ctx context.Context, limit int) ([]Build, error) {
	query := `SELECT id, built_at, examples_dir, version_count, example_count
		 FROM catalog_builds ORDER BY built_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing builds: %w", err)
	}
	defer rows.Close()

	var builds []Build
	for rows.Next() {
		var b Build
		if err := rows.Scan(&b.ID, &b.BuiltAt, &b.ExamplesDir, &b.VersionCount, &b.ExampleCount); err != nil {
			return nil, fmt.Errorf("scanning build: %w", err)
		}
		builds = append(builds, b)
	}
	return builds, rows.Err()
}

// Latest returns the catalog of the most recent build, or nil when nothing
// has been built yet.
func (s *Store) Latest(ctx context.Context) (*Build, *Catalog, error) {
	builds, err := s.ListBuilds(ctx, 1)
	if err != nil {
		return nil, nil, err
	}
	if len(builds) == 0 {
		return nil, nil, nil
	}
	cat, err := s.Load(ctx, builds[0].ID)
	if err != nil {
		return nil, nil, err
	}
	return &builds[0], cat, nil
}

// Load rebuilds the catalog stored under buildID.
func (s *Store) Load(ctx context.Context, buildID string) (*Catalog, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM catalog_builds WHERE id = ?`, buildID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking build: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("build %s not found", buildID)
	}

	versionRows, err := s.db.QueryContext(ctx,
		`SELECT label FROM catalog_versions WHERE build_id = ? ORDER BY position`, buildID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing versions: %w", err)
	}
	var versions []Version
	index := make(map[string]int)
	for versionRows.Next() {
		var label string
		if err := versionRows.Scan(&label); err != nil {
			versionRows.Close()
			return nil, fmt.Errorf("scanning version: %w", err)
		}
		index[label] = len(versions)
		versions = append(versions, Version{Label: label})
	}
	versionRows.Close()
	if err := versionRows.Err(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT version, identifier, display_name, json_text, yaml_text
		 FROM catalog_examples WHERE build_id = ? ORDER BY version, position`, buildID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing examples: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var version string
		var ex ExampleRecord
		if err := rows.Scan(&version, &ex.Identifier, &ex.DisplayName, &ex.JSONText, &ex.YAMLText); err != nil {
			return nil, fmt.Errorf("scanning example: %w", err)
		}
		i, ok := index[version]
		if !ok {
			return nil, fmt.Errorf("example %s references unknown version %s", ex.Identifier, version)
		}
		versions[i].Examples = append(versions[i].Examples, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return New(versions)
}

// Prune keeps the newest keep builds and deletes the rest.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 1 {
		keep = 1
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM catalog_builds WHERE id NOT IN (
			SELECT id FROM catalog_builds ORDER BY built_at DESC, rowid DESC LIMIT ?
		 )`, keep,
	)
	if err != nil {
		return 0, fmt.Errorf("pruning builds: %w", err)
	}
	return res.RowsAffected()
}
