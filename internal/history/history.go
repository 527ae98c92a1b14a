package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	provider    TEXT NOT NULL,
	model       TEXT NOT NULL,
	target      TEXT NOT NULL,
	report_path TEXT NOT NULL,
	duration_ms INTEGER NOT NULL,
	created_at  DATETIME NOT NULL
)`

// Run is one recorded review invocation.
type Run struct {
	ID         int64
	Provider   string
	Model      string
	Target     string
	ReportPath string
	DurationMs int64
	CreatedAt  time.Time
}

// Store persists run history in SQLite (modernc.org/sqlite, pure Go).
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	// SQLite supports one writer; a single connection serializes access
	// through the pool and avoids "database is locked" errors.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}

	return &Store{db: db}, nil
}

// Record inserts a run and returns it with the assigned ID.
func (s *Store) Record(ctx context.Context, run Run) (Run, error) {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (provider, model, target, report_path, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Provider, run.Model, run.Target, run.ReportPath, run.DurationMs, run.CreatedAt)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}
	run.ID, err = res.LastInsertId()
	if err != nil {
		return Run{}, fmt.Errorf("record run id: %w", err)
	}
	return run, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, provider, model, target, report_path, duration_ms, created_at
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Provider, &r.Model, &r.Target, &r.ReportPath, &r.DurationMs, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
