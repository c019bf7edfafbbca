package roster

import (
	"database/sql"
	"sync"
	"time"
)

// store handles all database operations for the player roster.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player represents a player registered in a session.
type Player struct {
	ID             string     `json:"id"`
	SessionID      string     `json:"session_id"`
	Name           string     `json:"name"`
	IsAvailable    bool       `json:"is_available"`
	MatchesPlayed  int        `json:"matches_played"`
	LastMatchRound int        `json:"last_match_round"`
	CreatedAt      time.Time  `json:"created_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}
