// Package storage provides SQLite-based persistence for run history and best scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/coin-runner/internal/runner"
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run.
type RunRecord struct {
	ID        int64
	Board     string // Leaderboard the run belongs to, e.g. "normal"
	RunID     string
	Score     int
	Coins     int
	Duration  time.Duration // Game time, pauses excluded
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board TEXT NOT NULL,
			run_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_board ON runs(board);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(board, score DESC);

		CREATE TABLE IF NOT EXISTS best_scores (
			board TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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
	result, err := s.db.Exec(
		"INSERT INTO runs (board, run_id, score, coins, duration_ms) VALUES (?, ?, ?, ?, ?)",
		r.Board, r.RunID, r.Score, r.Coins, r.Duration.Milliseconds(),
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

// SaveSummary records the summary emitted by a session at game over.
func (s *Store) SaveSummary(board string, sum runner.Summary) (int64, error) {
	return s.SaveRun(RunRecord{
		Board:    board,
		RunID:    sum.RunID,
		Score:    sum.FinalScore,
		Coins:    sum.FinalCoins,
		Duration: sum.Elapsed,
	})
}

// TopScores retrieves the top N runs on the given board.
// Results are ordered by score descending, earliest first on ties.
func (s *Store) TopScores(board string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRuns(
		`SELECT id, board, run_id, score, coins, duration_ms, created_at
		 FROM runs
		 WHERE board = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		board, limit,
	)
}

// RecentRuns retrieves the most recent runs on the given board.
func (s *Store) RecentRuns(board string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryRuns(
		`SELECT id, board, run_id, score, coins, duration_ms, created_at
		 FROM runs
		 WHERE board = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		board, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Board, &r.RunID, &r.Score, &r.Coins, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// HighScore returns the highest recorded run score on the given board.
// Returns 0 if no runs exist.
func (s *Store) HighScore(board string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE board = ?",
		board,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// BestScore returns the stored best score for the board, or 0 if none was set.
func (s *Store) BestScore(board string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM best_scores WHERE board = ?",
		board,
	).Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	return score, nil
}

// SetBestScore replaces the stored best score for the board.
func (s *Store) SetBestScore(board string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (board, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(board) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		board, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// ClearScores deletes the run history and best score of the given board.
func (s *Store) ClearScores(board string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE board = ?", board); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM best_scores WHERE board = ?", board); err != nil {
		return fmt.Errorf("storage: cannot clear best score: %w", err)
	}
	return nil
}

// BoardStats contains aggregated statistics for a board.
type BoardStats struct {
	Board      string
	RunsCount  int
	HighScore  int
	AvgScore   float64
	TotalCoins int64
	LastPlayed time.Time
}

// GetBoardStats retrieves aggregated statistics for a specific board.
func (s *Store) GetBoardStats(board string) (*BoardStats, error) {
	stats := &BoardStats{Board: board}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(coins), 0)
		 FROM runs WHERE board = ?`,
		board,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore, &stats.TotalCoins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get board stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE board = ? ORDER BY id DESC LIMIT 1`,
		board,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// Boards lists every board that has at least one recorded run.
func (s *Store) Boards() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT board FROM runs ORDER BY board")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list boards: %w", err)
	}
	defer rows.Close()

	var boards []string
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		boards = append(boards, b)
	}

	return boards, rows.Err()
}

// parseTime handles both driver-decoded times and raw SQLite datetime strings.
func parseTime(v any) time.Time {
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

// BestScoreStore adapts one board of the Store to runner.BestScoreStore.
type BestScoreStore struct {
	store *Store
	board string
}

// BestScores returns the session-facing best score store for board.
func (s *Store) BestScores(board string) *BestScoreStore {
	return &BestScoreStore{store: s, board: board}
}

// Get implements runner.BestScoreStore.
func (b *BestScoreStore) Get() (int, error) {
	return b.store.BestScore(b.board)
}

// Set implements runner.BestScoreStore.
func (b *BestScoreStore) Set(score int) error {
	return b.store.SetBestScore(b.board, score)
}

// Ensure BestScoreStore implements runner.BestScoreStore
var _ runner.BestScoreStore = (*BestScoreStore)(nil)
