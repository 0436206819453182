// Package store persists game sessions in SQLite so a daily game can be
// resumed. Only the secret and the ordered guess names are stored; a session
// is rebuilt by replaying them through the engine.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/f3rmion/snack/internal/engine"
	"github.com/f3rmion/snack/internal/logging"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Mode distinguishes the daily secret from practice rounds.
type Mode string

const (
	Daily    Mode = "daily"
	Practice Mode = "practice"
)

// DayFormat is the layout of the day column.
const DayFormat = "2006-01-02"

// ErrNotFound is returned when a session does not exist.
var ErrNotFound = errors.New("session not found")

// Record is a stored session.
type Record struct {
	ID        string
	Game      string
	Day       string
	Mode      Mode
	Secret    string
	Status    engine.Status
	Guesses   []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store handles SQLite persistence. Safe for concurrent use.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens or creates the database at path. ":memory:" gives an
// in-memory database that lives until Close.
func Open(path string) (*Store, error) {
	connStr := path
	if path == ":memory:" {
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	logging.Debug("store opened", "path", path)
	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		game TEXT NOT NULL,
		day TEXT NOT NULL,
		mode TEXT NOT NULL,
		secret TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS guesses (
		session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		item_name TEXT NOT NULL,
		PRIMARY KEY (session_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_game_day ON sessions(game, day, mode);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// StartOrResume returns the session to continue for game on day. A daily
// session is unique per game and day, finished or not. A practice session is
// resumed while in progress; otherwise a new one is started with secret.
// The bool reports whether a new session was created.
func (s *Store) StartOrResume(game, day string, mode Mode, secret string) (*Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		row *sql.Row
		q   = `SELECT id FROM sessions WHERE game = ? AND mode = ?`
	)
	switch mode {
	case Daily:
		row = s.db.QueryRow(q+` AND day = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`, game, mode, day)
	case Practice:
		row = s.db.QueryRow(q+` AND status = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`, game, mode, engine.InProgress.String())
	default:
		return nil, false, fmt.Errorf("unknown mode %q", mode)
	}

	var id string
	err := row.Scan(&id)
	switch {
	case err == nil:
		rec, err := s.load(id)
		if err != nil {
			return nil, false, err
		}
		logging.Debug("resuming session", "id", id, "game", game, "guesses", len(rec.Guesses))
		return rec, false, nil
	case !errors.Is(err, sql.ErrNoRows):
		return nil, false, fmt.Errorf("find session: %w", err)
	}

	now := time.Now().UTC()
	rec := &Record{
		ID:        uuid.New().String(),
		Game:      game,
		Day:       day,
		Mode:      mode,
		Secret:    secret,
		Status:    engine.InProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err = s.db.Exec(`
		INSERT INTO sessions (id, game, day, mode, secret, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Game, rec.Day, string(rec.Mode), rec.Secret, rec.Status.String(), rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("insert session: %w", err)
	}

	logging.Info("session started", "id", rec.ID, "game", game, "day", day, "mode", mode)
	return rec, true, nil
}

// AppendGuess records the next guess of a session.
func (s *Store) AppendGuess(id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var seq int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM guesses WHERE session_id = ?`, id).Scan(&seq); err != nil {
		return fmt.Errorf("count guesses: %w", err)
	}

	res, err := tx.Exec(`UPDATE sessions SET updated_at = ? WHERE id = ?`, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(`INSERT INTO guesses (session_id, seq, item_name) VALUES (?, ?, ?)`, id, seq, name); err != nil {
		return fmt.Errorf("insert guess: %w", err)
	}

	return tx.Commit()
}

// SetStatus updates the lifecycle state of a session.
func (s *Store) SetStatus(id string, status engine.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`UPDATE sessions SET status = ?, updated_at = ? WHERE id = ?`,
		status.String(), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Load returns a session with its guesses in order.
func (s *Store) Load(id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load(id)
}

func (s *Store) load(id string) (*Record, error) {
	rec, err := scanRecord(s.db.QueryRow(`
		SELECT id, game, day, mode, secret, status, created_at, updated_at
		FROM sessions WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	rows, err := s.db.Query(`SELECT item_name FROM guesses WHERE session_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("load guesses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan guess: %w", err)
		}
		rec.Guesses = append(rec.Guesses, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load guesses: %w", err)
	}

	return rec, nil
}

// History returns the most recent sessions of a game, newest first, with
// guesses loaded.
func (s *Store) History(game string, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 30
	}

	rows, err := s.db.Query(`
		SELECT id FROM sessions WHERE game = ?
		ORDER BY created_at DESC, rowid DESC LIMIT ?
	`, game, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan history: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	out := make([]Record, 0, len(ids))
	for _, id := range ids {
		rec, err := s.load(id)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, nil
}

func scanRecord(row *sql.Row) (*Record, error) {
	var (
		rec    Record
		mode   string
		status string
	)
	if err := row.Scan(&rec.ID, &rec.Game, &rec.Day, &mode, &rec.Secret, &status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	rec.Mode = Mode(mode)
	rec.Status = engine.ParseStatus(status)
	return &rec, nil
}
