package matches

import (
	"database/sql"
	"sync"
	"time"
)

// store handles all database operations for matches.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// MatchStatus represents the lifecycle state of a match.
type MatchStatus string

const (
	StatusActive    MatchStatus = "active"
	StatusCompleted MatchStatus = "completed"
)

// Match represents one doubles match on one court.
type Match struct {
	ID          string      `json:"id"`
	SessionID   string      `json:"session_id"`
	RoundNumber int         `json:"round_number"`
	Status      MatchStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// MatchPlayer assigns a player to one of a match's two teams.
type MatchPlayer struct {
	ID       string `json:"id"`
	MatchID  string `json:"match_id"`
	PlayerID string `json:"player_id"`
	Team     int    `json:"team"`
}

// MatchWithPlayers is a match together with its four team assignments.
type MatchWithPlayers struct {
	Match   Match         `json:"match"`
	Players []MatchPlayer `json:"players"`
}

// Lineup is the input for creating one match: two teams of two player ids.
type Lineup struct {
	Team1 [2]string
	Team2 [2]string
}
