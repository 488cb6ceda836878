// Package storage provides SQLite-based persistence for PopStar scores and
// play sessions. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Score     int
	CreatedAt time.Time
}

// SessionRecord summarizes one finished board session.
type SessionRecord struct {
	ID          int64
	GameID      string
	Player      string // SSH user or web remote address; empty for local play
	Score       int
	Moves       int
	BestGroup   int
	BoardClears int
	Cleared     int
	Duration    time.Duration
	CreatedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// A leading ~ is expanded to the home directory.
func Open(dbPath string) (*Store, error) {
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
	// SSH and web sessions write concurrently; SQLite allows one writer.
	db.SetMaxOpenConns(1)

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
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			best_group INTEGER NOT NULL DEFAULT 0,
			board_clears INTEGER NOT NULL DEFAULT 0,
			cleared INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id, created_at DESC);
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

// SaveScore records a new anonymous score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// SaveSession records a finished session. A positive score is also entered
// in the high score table, in the same transaction.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	res, err := tx.Exec(
		`INSERT INTO sessions
		 (game_id, player, score, moves, best_group, board_clears, cleared, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.GameID, rec.Player, rec.Score, rec.Moves, rec.BestGroup,
		rec.BoardClears, rec.Cleared, rec.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if rec.Score > 0 {
		if _, err := tx.Exec(
			"INSERT INTO scores (game_id, player, score) VALUES (?, ?, ?)",
			rec.GameID, rec.Player, rec.Score,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit session: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending; ties keep insertion order.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// RecentSessions retrieves the most recent sessions for the given game.
func (s *Store) RecentSessions(gameID string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, moves, best_group, board_clears, cleared, duration_ms, created_at
		 FROM sessions
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Player, &r.Score, &r.Moves, &r.BestGroup,
			&r.BoardClears, &r.Cleared, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores and sessions for the given game.
func (s *Store) ClearScores(gameID string) error {
	for _, table := range []string{"scores", "sessions"} {
		if _, err := s.db.Exec("DELETE FROM "+table+" WHERE game_id = ?", gameID); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID       string
	GamesCount   int
	HighScore    int
	AvgScore     float64
	TotalScore   int64
	BestGroup    int
	BoardClears  int
	StarsCleared int64
	LastPlayed   time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(MAX(best_group), 0), COALESCE(SUM(board_clears), 0), COALESCE(SUM(cleared), 0)
		 FROM sessions WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore,
		&stats.BestGroup, &stats.BoardClears, &stats.StarsCleared)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score),
		        MAX(best_group), SUM(board_clears), SUM(cleared), MAX(created_at)
		 FROM sessions
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore,
			&gs.BestGroup, &gs.BoardClears, &gs.StarsCleared, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
