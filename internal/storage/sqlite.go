// Package storage provides SQLite-based persistence for solved puzzle rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for round records.
type Store struct {
	db *sql.DB
}

// RoundRecord represents a single solved round.
type RoundRecord struct {
	ID        int64
	RoundID   string
	Size      int
	Moves     int
	Duration  time.Duration
	Content   string // Picture shown on the back side
	Player    string // SSH user or local user name
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := homedir.Expand(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			size INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_size ON rounds(size);
		CREATE INDEX IF NOT EXISTS idx_rounds_best ON rounds(size, moves, duration_ms);
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

// SaveRound records a solved round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds (round_id, size, moves, duration_ms, content, player)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.RoundID, r.Size, r.Moves, r.Duration.Milliseconds(), r.Content, r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const roundColumns = `id, round_id, size, moves, duration_ms, content, player, created_at`

// TopRounds retrieves the best N rounds for the given grid size.
// Fewer moves rank first; ties are broken by the faster time.
// A size of 0 ranks rounds of every size together.
func (s *Store) TopRounds(size, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE ? = 0 OR size = ?
		 ORDER BY moves ASC, duration_ms ASC
		 LIMIT ?`,
		size, size, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// RecentRounds retrieves the most recently solved rounds.
func (s *Store) RecentRounds(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent rounds: %w", err)
	}
	return scanRounds(rows)
}

// RoundByID retrieves a round by its round ID.
// Returns nil without error if no such round exists.
func (s *Store) RoundByID(roundID string) (*RoundRecord, error) {
	rows, err := s.db.Query(
		`SELECT `+roundColumns+` FROM rounds WHERE round_id = ?`,
		roundID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	records, err := scanRounds(rows)
	if err != nil || len(records) == 0 {
		return nil, err
	}
	return &records[0], nil
}

// BestMoves returns the lowest move count for the given size.
// Returns 0 if no rounds exist.
func (s *Store) BestMoves(size int) (int, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM rounds WHERE size = ?",
		size,
	).Scan(&moves)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !moves.Valid {
		return 0, nil
	}

	return int(moves.Int64), nil
}

// ClearRounds deletes all rounds of the given size, or every round for size 0.
func (s *Store) ClearRounds(size int) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE ? = 0 OR size = ?", size, size)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// SizeStats contains aggregated statistics for one grid size.
type SizeStats struct {
	Size       int
	Solved     int
	BestMoves  int
	BestTime   time.Duration
	AvgMoves   float64
	TotalTime  time.Duration
	LastPlayed time.Time
}

// GetSizeStats retrieves aggregated statistics for a specific size.
func (s *Store) GetSizeStats(size int) (*SizeStats, error) {
	stats := &SizeStats{Size: size}

	var bestMs, totalMs int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(MIN(duration_ms), 0),
		        COALESCE(AVG(moves), 0), COALESCE(SUM(duration_ms), 0)
		 FROM rounds WHERE size = ?`,
		size,
	).Scan(&stats.Solved, &stats.BestMoves, &bestMs, &stats.AvgMoves, &totalMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get size stats: %w", err)
	}
	stats.BestTime = time.Duration(bestMs) * time.Millisecond
	stats.TotalTime = time.Duration(totalMs) * time.Millisecond

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE size = ? ORDER BY created_at DESC LIMIT 1`,
		size,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllSizeStats retrieves statistics for every size that has been solved.
func (s *Store) GetAllSizeStats() (map[int]*SizeStats, error) {
	rows, err := s.db.Query(
		`SELECT size, COUNT(*), MIN(moves), MIN(duration_ms), AVG(moves), SUM(duration_ms), MAX(created_at)
		 FROM rounds
		 GROUP BY size`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all size stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]*SizeStats)
	for rows.Next() {
		var st SizeStats
		var bestMs, totalMs int64
		var lastPlayed any
		if err := rows.Scan(&st.Size, &st.Solved, &st.BestMoves, &bestMs, &st.AvgMoves, &totalMs, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestTime = time.Duration(bestMs) * time.Millisecond
		st.TotalTime = time.Duration(totalMs) * time.Millisecond
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Size] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

func scanRounds(rows *sql.Rows) ([]RoundRecord, error) {
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RoundID, &r.Size, &r.Moves, &durationMs, &r.Content, &r.Player, &createdAt); err != nil {
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

// parseTime handles both time.Time and string datetimes from the driver.
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
