package session

import (
	"database/sql"
	"sync"
	"time"
)

// store handles all database operations for sessions.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Session represents a scoped play event containing players, matches and history.
type Session struct {
	ID         string     `json:"id"`
	CourtCount int        `json:"court_count"`
	CreatedAt  time.Time  `json:"created_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}
