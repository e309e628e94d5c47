// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only run results are stored; game state is never persisted.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/flouhou/internal/host"
)

// timeLayout is the text form used for timestamps written by this package.
const timeLayout = "2006-01-02 15:04:05"

// DefaultDBPath is used when no path is configured.
const DefaultDBPath = "~/.flouhou/flouhou.db"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is a single finished run.
type RunRecord struct {
	ID        int64
	RunID     string
	Player    string
	Hits      int
	Ticks     int64
	EndReason string // "death" or "quit"
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns the wall-clock length of the run.
func (r RunRecord) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = DefaultDBPath
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT '',
			hits INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			started_at DATETIME,
			ended_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(hits DESC, ticks DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}
	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, player, hits, ticks, end_reason, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Player, r.Hits, r.Ticks, r.EndReason,
		formatTimestamp(r.StartedAt), formatTimestamp(r.EndedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveResult records a run result reported by a host session.
func (s *Store) SaveResult(r host.RunResult) error {
	_, err := s.SaveRun(RunRecord{
		RunID:     r.RunID.String(),
		Player:    r.Player,
		Hits:      r.Hits,
		Ticks:     int64(r.Ticks),
		EndReason: string(r.Reason),
		StartedAt: r.StartedAt,
		EndedAt:   r.EndedAt,
	})
	return err
}

const runColumns = `id, run_id, player, hits, ticks, end_reason, started_at, ended_at`

// TopRuns retrieves the best N runs, optionally for a single player.
// Results are ordered by hits, then by survival time.
func (s *Store) TopRuns(player string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR player = ?
		 ORDER BY hits DESC, ticks DESC, id ASC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recently finished runs.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RunByID retrieves a run by its run ID. Returns nil if it does not exist.
func (s *Store) RunByID(runID string) (*RunRecord, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// BestHits returns the highest hit count, optionally for a single player.
// Returns 0 if no runs exist.
func (s *Store) BestHits(player string) (int, error) {
	var hits sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(hits) FROM runs WHERE ? = '' OR player = ?",
		player, player,
	).Scan(&hits)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best hits: %w", err)
	}

	if !hits.Valid {
		return 0, nil
	}

	return int(hits.Int64), nil
}

// ClearRuns deletes every run.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RunStats contains aggregated statistics over all runs.
type RunStats struct {
	Runs       int
	Players    int
	BestHits   int
	AvgHits    float64
	TotalTicks int64
	Deaths     int
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT player), COALESCE(MAX(hits), 0), COALESCE(AVG(hits), 0),
		        COALESCE(SUM(ticks), 0), COALESCE(SUM(end_reason = 'death'), 0), MAX(ended_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Players, &stats.BestHits, &stats.AvgHits,
		&stats.TotalTicks, &stats.Deaths, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	return stats, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (RunRecord, error) {
	var r RunRecord
	var startedAt, endedAt any
	if err := row.Scan(&r.ID, &r.RunID, &r.Player, &r.Hits, &r.Ticks, &r.EndReason, &startedAt, &endedAt); err != nil {
		return r, err
	}
	r.StartedAt = parseTimestamp(startedAt)
	r.EndedAt = parseTimestamp(endedAt)
	return r, nil
}

func scanRuns(rows *sql.Rows) ([]RunRecord, error) {
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

func formatTimestamp(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(timeLayout)
}

// parseTimestamp handles both time.Time and string column values.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
