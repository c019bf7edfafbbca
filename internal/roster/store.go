package roster

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ErrPlayerNotFound is returned when an operation targets a nonexistent player.
var ErrPlayerNotFound = errors.New("player not found")

// New creates a new roster store.
func New(db *sql.DB) PlayerStore {
	return &store{
		db: db,
	}
}

func (s *store) AddPlayer(sessionID, name string) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// New players start at the minimum matches-played count of the session so
	// they queue behind nobody but don't reset the fairness ordering either.
	var initialMatches int
	query := `
		SELECT COALESCE(MIN(matches_played), 0)
		FROM players
		WHERE session_id = ? AND deleted_at IS NULL
	`
	if err := s.db.QueryRow(query, sessionID).Scan(&initialMatches); err != nil {
		return nil, fmt.Errorf("failed to read session minimum matches played: %w", err)
	}

	player := &Player{
		ID:            uuid.New().String(),
		SessionID:     sessionID,
		Name:          name,
		IsAvailable:   true,
		MatchesPlayed: initialMatches,
		CreatedAt:     time.Now(),
	}

	insert := `
		INSERT INTO players (id, session_id, name, is_available, matches_played, last_match_round, created_at)
		VALUES (?, ?, ?, 1, ?, 0, ?)
	`
	_, err := s.db.Exec(insert, player.ID, player.SessionID, player.Name, player.MatchesPlayed, player.CreatedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to add player: %w", err)
	}

	log.Info("Added player", "id", player.ID, "session", sessionID, "name", name, "initial_matches", initialMatches)
	return player, nil
}

func (s *store) GetPlayer(playerID string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, session_id, name, is_available, matches_played, last_match_round, created_at, deleted_at
		FROM players
		WHERE id = ?
	`
	player, err := scanPlayer(s.db.QueryRow(query, playerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
		}
		return nil, err
	}
	return player, nil
}

func (s *store) RemovePlayer(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `UPDATE players SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`
	result, err := s.db.Exec(query, time.Now().Unix(), playerID)
	if err != nil {
		return fmt.Errorf("failed to remove player: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}

	log.Info("Removed player", "id", playerID)
	return nil
}

func (s *store) RestorePlayer(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `UPDATE players SET deleted_at = NULL, is_available = 1 WHERE id = ?`
	result, err := s.db.Exec(query, playerID)
	if err != nil {
		return fmt.Errorf("failed to restore player: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}

	log.Info("Restored player", "id", playerID)
	return nil
}

func (s *store) Players(sessionID string, includeUnavailable bool) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, session_id, name, is_available, matches_played, last_match_round, created_at, deleted_at
		FROM players
		WHERE session_id = ? AND deleted_at IS NULL
	`
	if !includeUnavailable {
		query += ` AND is_available = 1`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := s.db.Query(query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *player)
	}
	return players, rows.Err()
}

func (s *store) MarkUnavailable(playerIDs []string) error {
	if len(playerIDs) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := fmt.Sprintf(
		`UPDATE players SET is_available = 0 WHERE id IN (%s)`,
		placeholders(len(playerIDs)),
	)
	_, err := s.db.Exec(query, toAnySlice(playerIDs)...)
	if err != nil {
		return fmt.Errorf("failed to mark players unavailable: %w", err)
	}

	log.Info("Marked players unavailable", "count", len(playerIDs))
	return nil
}

func (s *store) RecordMatchPlayed(playerIDs []string, roundNumber int) error {
	if len(playerIDs) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := fmt.Sprintf(`
		UPDATE players
		SET is_available = 1,
		    matches_played = matches_played + 1,
		    last_match_round = ?
		WHERE id IN (%s) AND deleted_at IS NULL`,
		placeholders(len(playerIDs)),
	)

	args := append([]any{roundNumber}, toAnySlice(playerIDs)...)
	_, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to record match played: %w", err)
	}

	log.Info("Recorded match played", "players", len(playerIDs), "round", roundNumber)
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func toAnySlice(ids []string) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*Player, error) {
	var player Player
	var isAvailable int
	var createdAt int64
	var deletedAt sql.NullInt64

	err := row.Scan(
		&player.ID,
		&player.SessionID,
		&player.Name,
		&isAvailable,
		&player.MatchesPlayed,
		&player.LastMatchRound,
		&createdAt,
		&deletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan player row: %w", err)
	}

	player.IsAvailable = isAvailable == 1
	player.CreatedAt = time.Unix(createdAt, 0)
	if deletedAt.Valid {
		t := time.Unix(deletedAt.Int64, 0)
		player.DeletedAt = &t
	}
	return &player, nil
}
