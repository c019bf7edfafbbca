package history

import (
	"database/sql"
	"sync"
)

// store handles all database operations for pairing history.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Relationship describes how two players shared a match.
type Relationship string

const (
	RelationshipPartner  Relationship = "partner"
	RelationshipOpponent Relationship = "opponent"
)

// Record is one directed pairing observation between two players.
type Record struct {
	SessionID     string       `json:"session_id"`
	PlayerID      string       `json:"player_id"`
	OtherPlayerID string       `json:"other_player_id"`
	Relationship  Relationship `json:"relationship_type"`
	Count         int          `json:"count"`
	LastRound     int          `json:"last_round"`
}

type pairKey struct {
	playerID      string
	otherPlayerID string
}

// PairCounts is an in-memory view of pairing history for a set of players.
// Missing pairs count as zero.
type PairCounts struct {
	partners  map[pairKey]int
	opponents map[pairKey]int
}

// Partners returns how many times a and b have shared a team.
func (c *PairCounts) Partners(a, b string) int {
	if c == nil {
		return 0
	}
	return c.partners[pairKey{a, b}]
}

// Opponents returns how many times a and b have faced each other.
func (c *PairCounts) Opponents(a, b string) int {
	if c == nil {
		return 0
	}
	return c.opponents[pairKey{a, b}]
}
