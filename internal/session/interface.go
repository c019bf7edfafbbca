package session

// SessionStore defines the interface for interacting with sessions.
type SessionStore interface {
	Create(courtCount int) (*Session, error)
	Get(sessionID string) (*Session, error)
	// List returns all sessions that have not been soft-deleted, newest first.
	List() ([]Session, error)
	// Delete soft-deletes a session. Its players and history are kept.
	Delete(sessionID string) error
}
