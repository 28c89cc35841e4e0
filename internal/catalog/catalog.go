// Package catalog persists splitting runs and their emitted scenes in a
// local sqlite database, so repeated runs over a library can be inspected
// later without re-reading the output directories.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/forPelevin/scenecut/internal/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	input TEXT NOT NULL,
	policy TEXT NOT NULL,
	min_scene REAL NOT NULL,
	intro_limit REAL NOT NULL,
	started_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS scenes (
	run_id INTEGER NOT NULL REFERENCES runs(id),
	idx INTEGER NOT NULL,
	label TEXT NOT NULL,
	start_sec REAL NOT NULL,
	duration_sec REAL NOT NULL,
	file TEXT NOT NULL
);
`

type Repository struct {
	db *sql.DB
}

// Open creates or opens the catalog database at path, applying the schema
// if needed.
func Open(path string) (*Repository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply catalog schema: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error { return r.db.Close() }

func (r *Repository) RecordRun(ctx context.Context, run types.RunRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO runs (input, policy, min_scene, intro_limit, started_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.Input, string(run.Policy), run.MinScene, run.IntroLimit, run.StartedAt.Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repository) RecordScene(ctx context.Context, runID int64, sc types.Scene) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO scenes (run_id, idx, label, start_sec, duration_sec, file)
		VALUES (?, ?, ?, ?, ?, ?)
	`, runID, sc.Index, sc.Label, sc.Start, sc.Duration, sc.File)
	return err
}

// ListRuns returns the most recent runs, newest first.
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]types.RunRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT input, policy, min_scene, intro_limit, started_at
		FROM runs ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []types.RunRecord
	for rows.Next() {
		var run types.RunRecord
		var policy, startedAt string
		if err := rows.Scan(&run.Input, &policy, &run.MinScene, &run.IntroLimit, &startedAt); err != nil {
			return nil, err
		}
		run.Policy = types.Policy(policy)
		run.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// CountScenes returns the number of scenes recorded for a run.
func (r *Repository) CountScenes(ctx context.Context, runID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scenes WHERE run_id = ?`, runID).Scan(&n)
	return n, err
}
