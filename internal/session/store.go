package session

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new session store.
func New(db *sql.DB) SessionStore {
	return &store{
		db: db,
	}
}

func (s *store) Create(courtCount int) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if courtCount < 1 {
		courtCount = 1
	}

	session := &Session{
		ID:         uuid.New().String(),
		CourtCount: courtCount,
		CreatedAt:  time.Now(),
	}

	query := `INSERT INTO sessions (id, court_count, created_at) VALUES (?, ?, ?)`
	_, err := s.db.Exec(query, session.ID, session.CourtCount, session.CreatedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Info("Created session", "id", session.ID, "courts", session.CourtCount)
	return session, nil
}

func (s *store) Get(sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, court_count, created_at, deleted_at FROM sessions WHERE id = ?`
	return scanSession(s.db.QueryRow(query, sessionID))
}

func (s *store) List() ([]Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, court_count, created_at, deleted_at
		FROM sessions
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}
	return sessions, rows.Err()
}

func (s *store) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `UPDATE sessions SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`
	_, err := s.db.Exec(query, time.Now().Unix(), sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	log.Info("Deleted session", "id", sessionID)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var session Session
	var createdAt int64
	var deletedAt sql.NullInt64

	err := row.Scan(&session.ID, &session.CourtCount, &createdAt, &deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to scan session row: %w", err)
	}

	session.CreatedAt = time.Unix(createdAt, 0)
	if deletedAt.Valid {
		t := time.Unix(deletedAt.Int64, 0)
		session.DeletedAt = &t
	}
	return &session, nil
}
