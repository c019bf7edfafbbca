package roster

// PlayerStore defines the interface for interacting with the player roster.
type PlayerStore interface {
	// AddPlayer registers a new player in a session. The player starts at the
	// lowest matches-played count among the session's current players, so a
	// late joiner is not drafted into every following round.
	AddPlayer(sessionID, name string) (*Player, error)
	GetPlayer(playerID string) (*Player, error)
	// RemovePlayer soft-deletes a player. History referencing the player is kept.
	RemovePlayer(playerID string) error
	// RestorePlayer undoes a soft-deletion and makes the player available again.
	RestorePlayer(playerID string) error
	// Players returns the session's non-deleted players. When includeUnavailable
	// is false, only players currently available for selection are returned.
	Players(sessionID string, includeUnavailable bool) ([]Player, error)
	MarkUnavailable(playerIDs []string) error
	// RecordMatchPlayed restores availability and bumps play counters for the
	// given players after a completed match.
	RecordMatchPlayed(playerIDs []string, roundNumber int) error
}
