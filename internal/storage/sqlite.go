// Package storage provides SQLite-based persistence for gridtap: the shared
// leaderboard and the rolling local run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"gridtap/internal/engine"
)

// historyCap is how many runs the local history keeps. Older runs are pruned
// on every insert.
const historyCap = 50

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is a single leaderboard record.
type ScoreEntry struct {
	ID        int64
	Player    string
	Mode      string
	Score     int
	CreatedAt time.Time
}

// RunEntry is a single row of the local run history.
type RunEntry struct {
	ID        int64
	Player    string
	Mode      string
	Score     int
	Hits      int
	Misses    int
	Accuracy  sql.NullInt64
	FastestMs sql.NullInt64
	AvgMs     sql.NullFloat64
	MaxStreak int
	PlayedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_mode_top ON scores(mode, score DESC);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			hits INTEGER NOT NULL,
			misses INTEGER NOT NULL,
			accuracy INTEGER,
			fastest_ms INTEGER,
			avg_ms REAL,
			max_streak INTEGER NOT NULL,
			played_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(played_at DESC);
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

// SubmitScore records a leaderboard entry. Implements engine.ScoreSubmitter.
func (s *Store) SubmitScore(player, mode string, score int) error {
	_, err := s.db.Exec(
		"INSERT INTO scores (player, mode, score) VALUES (?, ?, ?)",
		player, mode, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot submit score: %w", err)
	}
	return nil
}

// RecordRun appends a run to the local history and prunes it to the most
// recent historyCap entries. Implements engine.RunRecorder.
func (s *Store) RecordRun(rec engine.RunRecord) error {
	var accuracy, fastest any
	var avg any
	if rec.Accuracy != nil {
		accuracy = *rec.Accuracy
	}
	if rec.FastestMs != nil {
		fastest = *rec.FastestMs
	}
	if rec.AvgMs != nil {
		avg = *rec.AvgMs
	}

	playedAt := rec.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (player, mode, score, hits, misses, accuracy, fastest_ms, avg_ms, max_streak, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Player, rec.Mode, rec.Score, rec.Hits, rec.Misses,
		accuracy, fastest, avg, rec.MaxStreak,
		playedAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record run: %w", err)
	}

	return s.trimRuns(historyCap)
}

// trimRuns deletes everything but the newest keep rows.
func (s *Store) trimRuns(keep int) error {
	_, err := s.db.Exec(
		`DELETE FROM runs
		 WHERE id NOT IN (SELECT id FROM runs ORDER BY id DESC LIMIT ?)`,
		keep,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot trim run history: %w", err)
	}
	return nil
}

// TopScores retrieves the top N leaderboard entries for the given mode,
// ordered by score descending.
func (s *Store) TopScores(mode string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, mode, score, created_at
		 FROM scores
		 WHERE mode = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Mode, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseDBTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given mode, 0 if none exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE mode = ?",
		mode,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// RecentRuns retrieves the most recent entries of the local run history.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, player, mode, score, hits, misses, accuracy, fastest_ms, avg_ms, max_streak, played_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var playedAt any
		if err := rows.Scan(
			&e.ID, &e.Player, &e.Mode, &e.Score, &e.Hits, &e.Misses,
			&e.Accuracy, &e.FastestMs, &e.AvgMs, &e.MaxStreak, &playedAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.PlayedAt = parseDBTime(playedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RunCount returns how many runs the local history currently holds.
func (s *Store) RunCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// parseDBTime handles the driver returning either time.Time or a string.
func parseDBTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Ensure Store satisfies the engine collaborator interfaces.
var (
	_ engine.RunRecorder    = (*Store)(nil)
	_ engine.ScoreSubmitter = (*Store)(nil)
)
