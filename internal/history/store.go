package history

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a new history store.
func New(db *sql.DB) HistoryStore {
	return &store{
		db: db,
	}
}

func (s *store) PairCounts(sessionID string, playerIDs []string) (*PairCounts, error) {
	counts := &PairCounts{
		partners:  make(map[pairKey]int),
		opponents: make(map[pairKey]int),
	}
	if len(playerIDs) == 0 {
		return counts, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ph := placeholders(len(playerIDs))
	query := fmt.Sprintf(`
		SELECT player_id, other_player_id, relationship_type, count
		FROM player_history
		WHERE session_id = ? AND player_id IN (%s) AND other_player_id IN (%s)`,
		ph, ph,
	)

	args := make([]any, 0, 1+2*len(playerIDs))
	args = append(args, sessionID)
	for i := 0; i < 2; i++ {
		for _, id := range playerIDs {
			args = append(args, id)
		}
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pair counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var playerID, otherPlayerID, relationship string
		var count int
		if err := rows.Scan(&playerID, &otherPlayerID, &relationship, &count); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}

		key := pairKey{playerID, otherPlayerID}
		switch Relationship(relationship) {
		case RelationshipPartner:
			counts.partners[key] = count
		case RelationshipOpponent:
			counts.opponents[key] = count
		}
	}

	return counts, rows.Err()
}

func (s *store) RecordPairing(sessionID, playerID, otherPlayerID string, relationship Relationship, roundNumber int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The increment happens inside the upsert so concurrent completions
	// touching the same pair cannot lose updates.
	query := `
		INSERT INTO player_history (session_id, player_id, other_player_id, relationship_type, count, last_round, updated_at)
		VALUES (?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT(session_id, player_id, other_player_id, relationship_type)
		DO UPDATE SET count = count + 1, last_round = excluded.last_round, updated_at = excluded.updated_at
	`
	_, err := s.db.Exec(query, sessionID, playerID, otherPlayerID, string(relationship), roundNumber, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record pairing: %w", err)
	}

	log.Debug("Recorded pairing", "session", sessionID, "player", playerID, "other", otherPlayerID, "relationship", relationship, "round", roundNumber)
	return nil
}

func (s *store) Records(sessionID string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT session_id, player_id, other_player_id, relationship_type, count, last_round
		FROM player_history
		WHERE session_id = ?
		ORDER BY player_id, other_player_id, relationship_type
	`
	rows, err := s.db.Query(query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		var relationship string
		err := rows.Scan(
			&record.SessionID,
			&record.PlayerID,
			&record.OtherPlayerID,
			&relationship,
			&record.Count,
			&record.LastRound,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		record.Relationship = Relationship(relationship)
		records = append(records, record)
	}
	return records, rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
