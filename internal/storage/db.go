// Package storage keeps the build ledger: one row per build plus one row
// per published record, so reruns can report identity-token churn. The
// ledger is advisory telemetry; build output never depends on it.
package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite"

	"flyover/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS builds (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  startedAt TEXT NOT NULL,
  cases INTEGER NOT NULL,
  degraded INTEGER NOT NULL,
  tokensNew INTEGER NOT NULL DEFAULT 0,
  tokensGone INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS build_records (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  buildId INTEGER NOT NULL,
  slug TEXT NOT NULL,
  sourceFile TEXT NOT NULL,
  title TEXT,
  status TEXT NOT NULL,
  FOREIGN KEY(buildId) REFERENCES builds(id)
);
CREATE INDEX IF NOT EXISTS idx_build_records_buildId ON build_records(buildId);
CREATE INDEX IF NOT EXISTS idx_build_records_slug ON build_records(slug);
`
	_, err := d.conn.Exec(schema)
	return err
}

// LatestTokens returns the slug set of the most recent recorded build, or
// an empty set when no build has been recorded yet.
func (d *DB) LatestTokens() (map[string]bool, error) {
	var buildID int
	err := d.conn.QueryRow(`SELECT id FROM builds ORDER BY id DESC LIMIT 1`).Scan(&buildID)
	if err == sql.ErrNoRows {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := d.conn.Query(`SELECT slug FROM build_records WHERE buildId = ?`, buildID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := map[string]bool{}
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, err
		}
		tokens[slug] = true
	}
	return tokens, rows.Err()
}

// InsertBuild records one completed build and its per-record rows in a
// single transaction, returning the new build id.
func (d *DB) InsertBuild(run internal.BuildRun, records []internal.LedgerRecord) (int, error) {
	tx, err := d.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		`INSERT INTO builds (startedAt, cases, degraded, tokensNew, tokensGone) VALUES (?, ?, ?, ?, ?)`,
		run.StartedAt, run.Cases, run.Degraded, run.TokensNew, run.TokensGone,
	)
	if err != nil {
		return 0, err
	}
	buildID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, r := range records {
		if _, err := tx.Exec(
			`INSERT INTO build_records (buildId, slug, sourceFile, title, status) VALUES (?, ?, ?, ?, ?)`,
			buildID, r.Slug, r.SourceFile, r.Title, r.Status,
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(buildID), nil
}

// ListBuilds returns the most recent builds, newest first.
func (d *DB) ListBuilds(limit int) ([]internal.BuildRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.conn.Query(
		`SELECT id, startedAt, cases, degraded, tokensNew, tokensGone FROM builds ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []internal.BuildRun{}
	for rows.Next() {
		var run internal.BuildRun
		if err := rows.Scan(&run.ID, &run.StartedAt, &run.Cases, &run.Degraded, &run.TokensNew, &run.TokensGone); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// DiffTokens compares a build's slug set against the previous build's.
func DiffTokens(previous map[string]bool, current []internal.LedgerRecord) (added, removed []string) {
	seen := map[string]bool{}
	for _, r := range current {
		seen[r.Slug] = true
		if !previous[r.Slug] {
			added = append(added, r.Slug)
		}
	}
	for slug := range previous {
		if !seen[slug] {
			removed = append(removed, slug)
		}
	}
	sort.Strings(removed)
	return added, removed
}
