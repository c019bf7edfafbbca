package matches

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ErrMatchNotFound is returned when an operation targets a nonexistent match.
var ErrMatchNotFound = errors.New("match not found")

// New creates a new match store.
func New(db *sql.DB) MatchStore {
	return &store{
		db: db,
	}
}

func (s *store) CreateRoundMatches(sessionID string, roundNumber int, lineups []Lineup) ([]MatchWithPlayers, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	created := make([]MatchWithPlayers, 0, len(lineups))

	for _, lineup := range lineups {
		match := Match{
			ID:          uuid.New().String(),
			SessionID:   sessionID,
			RoundNumber: roundNumber,
			Status:      StatusActive,
			CreatedAt:   now,
		}

		_, err := tx.Exec(
			`INSERT INTO matches (id, session_id, round_number, status, created_at) VALUES (?, ?, ?, ?, ?)`,
			match.ID, match.SessionID, match.RoundNumber, string(match.Status), match.CreatedAt.Unix(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert match: %w", err)
		}

		players := make([]MatchPlayer, 0, 4)
		for i, members := range [2][2]string{lineup.Team1, lineup.Team2} {
			team := i + 1
			for _, playerID := range members {
				mp := MatchPlayer{
					ID:       uuid.New().String(),
					MatchID:  match.ID,
					PlayerID: playerID,
					Team:     team,
				}
				_, err := tx.Exec(
					`INSERT INTO match_players (id, match_id, player_id, team) VALUES (?, ?, ?, ?)`,
					mp.ID, mp.MatchID, mp.PlayerID, mp.Team,
				)
				if err != nil {
					return nil, fmt.Errorf("failed to insert match player: %w", err)
				}
				players = append(players, mp)
			}
		}

		created = append(created, MatchWithPlayers{Match: match, Players: players})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit round matches: %w", err)
	}

	log.Info("Created round matches", "session", sessionID, "round", roundNumber, "matches", len(created))
	return created, nil
}

func (s *store) GetMatch(matchID string) (*MatchWithPlayers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	match, err := s.scanMatch(s.db.QueryRow(
		`SELECT id, session_id, round_number, status, created_at FROM matches WHERE id = ?`, matchID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
		}
		return nil, err
	}

	players, err := s.matchPlayers(match.ID)
	if err != nil {
		return nil, err
	}

	return &MatchWithPlayers{Match: *match, Players: players}, nil
}

func (s *store) Complete(matchID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The status column is the single source of truth for completion; the
	// conditional write makes a second completion a detectable no-op.
	result, err := s.db.Exec(
		`UPDATE matches SET status = ? WHERE id = ? AND status = ?`,
		string(StatusCompleted), matchID, string(StatusActive),
	)
	if err != nil {
		return false, fmt.Errorf("failed to complete match: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 0 {
		log.Debug("Match already completed or missing", "match", matchID)
		return false, nil
	}

	log.Info("Completed match", "match", matchID)
	return true, nil
}

func (s *store) ListMatches(sessionID string) ([]MatchWithPlayers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT id, session_id, round_number, status, created_at
		 FROM matches WHERE session_id = ?
		 ORDER BY round_number ASC, created_at ASC`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var result []MatchWithPlayers
	for rows.Next() {
		match, err := s.scanMatch(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, MatchWithPlayers{Match: *match})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		players, err := s.matchPlayers(result[i].Match.ID)
		if err != nil {
			return nil, err
		}
		result[i].Players = players
	}

	return result, nil
}

func (s *store) NextRoundNumber(sessionID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var maxRound int
	err := s.db.QueryRow(
		`SELECT COALESCE(MAX(round_number), 0) FROM matches WHERE session_id = ?`, sessionID,
	).Scan(&maxRound)
	if err != nil {
		return 0, fmt.Errorf("failed to derive next round number: %w", err)
	}
	return maxRound + 1, nil
}

func (s *store) matchPlayers(matchID string) ([]MatchPlayer, error) {
	rows, err := s.db.Query(
		`SELECT id, match_id, player_id, team FROM match_players WHERE match_id = ? ORDER BY team ASC, id ASC`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query match players: %w", err)
	}
	defer rows.Close()

	var players []MatchPlayer
	for rows.Next() {
		var mp MatchPlayer
		if err := rows.Scan(&mp.ID, &mp.MatchID, &mp.PlayerID, &mp.Team); err != nil {
			return nil, fmt.Errorf("failed to scan match player row: %w", err)
		}
		players = append(players, mp)
	}
	return players, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *store) scanMatch(row rowScanner) (*Match, error) {
	var match Match
	var status string
	var createdAt int64

	err := row.Scan(&match.ID, &match.SessionID, &match.RoundNumber, &status, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan match row: %w", err)
	}

	match.Status = MatchStatus(status)
	match.CreatedAt = time.Unix(createdAt, 0)
	return &match, nil
}
