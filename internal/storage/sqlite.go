// Package storage records play session statistics in SQLite.
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
)

const (
	timeLayout = "2006-01-02 15:04:05"
	dateLayout = "2006-01-02"
)

// Store manages the SQLite database connection for session statistics.
type Store struct {
	db *sql.DB
}

// Session is what happened in one play session. It is a record for the
// stats command, not a save: nothing is restored from it.
type Session struct {
	ID         int64
	DogName    string
	Breed      string
	Player     string
	Frontend   string // "window", "tui" or "ssh"
	StartedAt  time.Time
	EndedAt    time.Time
	Ticks      uint64
	GameDate   time.Time // In-game date reached
	Feedings   int
	FinalFood  float64 // 0..100
	FinalWater float64 // 0..100
	CreatedAt  time.Time
}

// Duration returns the real time the session lasted.
func (s Session) Duration() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}

// Totals aggregates all sessions.
type Totals struct {
	Sessions   int
	Ticks      uint64
	Feedings   int
	PlayTime   time.Duration
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dog_name TEXT NOT NULL,
			breed TEXT NOT NULL,
			player TEXT NOT NULL,
			frontend TEXT NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			game_date TEXT NOT NULL,
			feedings INTEGER NOT NULL DEFAULT 0,
			final_food REAL NOT NULL DEFAULT 0,
			final_water REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_dog ON sessions(dog_name);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (dog_name, breed, player, frontend, started_at, ended_at, ticks, game_date, feedings, final_food, final_water)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.DogName,
		sess.Breed,
		sess.Player,
		sess.Frontend,
		sess.StartedAt.UTC().Format(timeLayout),
		sess.EndedAt.UTC().Format(timeLayout),
		int64(sess.Ticks),
		sess.GameDate.Format(dateLayout),
		sess.Feedings,
		sess.FinalFood,
		sess.FinalWater,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the latest sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, dog_name, breed, player, frontend, started_at, ended_at,
		        ticks, game_date, feedings, final_food, final_water, created_at
		 FROM sessions
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var ticks int64
		var startedAt, endedAt, gameDate, createdAt any
		if err := rows.Scan(
			&sess.ID,
			&sess.DogName,
			&sess.Breed,
			&sess.Player,
			&sess.Frontend,
			&startedAt,
			&endedAt,
			&ticks,
			&gameDate,
			&sess.Feedings,
			&sess.FinalFood,
			&sess.FinalWater,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		sess.Ticks = uint64(ticks)
		sess.StartedAt = parseTime(startedAt, timeLayout)
		sess.EndedAt = parseTime(endedAt, timeLayout)
		sess.GameDate = parseTime(gameDate, dateLayout)
		sess.CreatedAt = parseTime(createdAt, timeLayout)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Totals aggregates every recorded session.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	var ticks int64
	var lastPlayed sql.NullString

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(SUM(feedings), 0), MAX(ended_at)
		 FROM sessions`,
	).Scan(&t.Sessions, &ticks, &t.Feedings, &lastPlayed)
	if err != nil {
		return t, fmt.Errorf("storage: cannot get totals: %w", err)
	}
	t.Ticks = uint64(ticks)
	if lastPlayed.Valid {
		t.LastPlayed = parseTime(lastPlayed.String, timeLayout)
	}

	// Durations are summed in Go; SQLite has no portable interval type.
	rows, err := s.db.Query(`SELECT started_at, ended_at FROM sessions`)
	if err != nil {
		return t, fmt.Errorf("storage: cannot get play time: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var start, end any
		if err := rows.Scan(&start, &end); err != nil {
			return t, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if d := parseTime(end, timeLayout).Sub(parseTime(start, timeLayout)); d > 0 {
			t.PlayTime += d
		}
	}
	if err := rows.Err(); err != nil {
		return t, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return t, nil
}

// ClearSessions deletes every session.
func (s *Store) ClearSessions() error {
	_, err := s.db.Exec("DELETE FROM sessions")
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// SessionByID retrieves one session. Returns nil if it does not exist.
func (s *Store) SessionByID(id int64) (*Session, error) {
	var sess Session
	var ticks int64
	var startedAt, endedAt, gameDate, createdAt any

	err := s.db.QueryRow(
		`SELECT id, dog_name, breed, player, frontend, started_at, ended_at,
		        ticks, game_date, feedings, final_food, final_water, created_at
		 FROM sessions WHERE id = ?`,
		id,
	).Scan(
		&sess.ID, &sess.DogName, &sess.Breed, &sess.Player, &sess.Frontend,
		&startedAt, &endedAt, &ticks, &gameDate, &sess.Feedings,
		&sess.FinalFood, &sess.FinalWater, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}

	sess.Ticks = uint64(ticks)
	sess.StartedAt = parseTime(startedAt, timeLayout)
	sess.EndedAt = parseTime(endedAt, timeLayout)
	sess.GameDate = parseTime(gameDate, dateLayout)
	sess.CreatedAt = parseTime(createdAt, timeLayout)
	return &sess, nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any, layout string) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v.UTC()
	case string:
		if parsed, err := time.Parse(layout, v); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse(layout, string(v)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
