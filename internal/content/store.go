// Package content implements the content-provider capability: the ordered
// project collection, the about record, and slug lookup. Content lives in a
// local SQLite database seeded once from a JSON file, standing in for the
// headless CMS the deployed site reads.
package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"folio-cli/internal/model"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by GetProject for an unknown slug.
var ErrNotFound = errors.New("content: not found")

type Store struct {
	// Dir is the content directory (database + optional seed file).
	Dir string
}

func (s Store) dbPath() string   { return filepath.Join(s.Dir, "content.sqlite") }
func (s Store) seedPath() string { return filepath.Join(s.Dir, "content.json") }

func (s Store) ensure() error {
	return os.MkdirAll(s.Dir, 0755)
}

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.dbPath())
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			sort INTEGER NOT NULL,
			json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_projects_sort ON projects(sort);`,
		`CREATE TABLE IF NOT EXISTS about (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			json TEXT NOT NULL
		);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func hasAnyProjects(ctx context.Context, db *sql.DB) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(1) FROM projects`).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Load opens the content database and returns the full catalog. If the
// database is empty, a one-time import runs: content.json if present in the
// store dir, otherwise the built-in seed.
func (s Store) Load(ctx context.Context) (*Catalog, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	has, err := hasAnyProjects(ctx, db)
	if err != nil {
		return nil, err
	}
	if !has {
		seed, err := s.readSeed()
		if err != nil {
			return nil, err
		}
		if err := saveSeed(ctx, db, seed); err != nil {
			return nil, fmt.Errorf("importing seed content: %w", err)
		}
	}

	return loadCatalog(ctx, db)
}

// Import replaces the stored catalog with the given seed.
func (s Store) Import(ctx context.Context, seed *Seed) error {
	normalizeSeed(seed)
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	return saveSeed(ctx, db, seed)
}

func (s Store) readSeed() (*Seed, error) {
	b, err := os.ReadFile(s.seedPath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSeed(), nil
		}
		return nil, err
	}
	var seed Seed
	if err := json.Unmarshal(b, &seed); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.seedPath(), err)
	}
	normalizeSeed(&seed)
	return &seed, nil
}

func saveSeed(ctx context.Context, db *sql.DB, seed *Seed) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return err
	}
	for i, p := range seed.Projects {
		raw, err := json.Marshal(p)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO projects(id, slug, sort, json) VALUES(?, ?, ?, ?)`,
			p.ID, p.Slug, i, string(raw)); err != nil {
			return err
		}
	}

	raw, err := json.Marshal(seed.About)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO about(id, json) VALUES(1, ?)
		 ON CONFLICT(id) DO UPDATE SET json=excluded.json`, string(raw)); err != nil {
		return err
	}

	return tx.Commit()
}

func loadCatalog(ctx context.Context, db *sql.DB) (*Catalog, error) {
	rows, err := db.QueryContext(ctx, `SELECT json FROM projects ORDER BY sort`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var p model.Project
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var about model.AboutInfo
	var rawAbout string
	switch err := db.QueryRowContext(ctx, `SELECT json FROM about WHERE id = 1`).Scan(&rawAbout); {
	case err == nil:
		if err := json.Unmarshal([]byte(rawAbout), &about); err != nil {
			return nil, err
		}
	case errors.Is(err, sql.ErrNoRows):
		// Catalog without an about record is usable; the menu hides the section.
	default:
		return nil, err
	}

	return NewCatalog(projects, about), nil
}
