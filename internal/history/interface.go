package history

// HistoryStore defines the interface for reading and updating pairing history.
type HistoryStore interface {
	// PairCounts reads the partner/opponent counts between the given players.
	// Pairs without a stored record count as zero.
	PairCounts(sessionID string, playerIDs []string) (*PairCounts, error)
	// RecordPairing upserts one directed observation: create at count 1 or
	// atomically increment, updating the last-seen round either way.
	RecordPairing(sessionID, playerID, otherPlayerID string, relationship Relationship, roundNumber int) error
	// Records returns all directed history rows stored for a session.
	Records(sessionID string) ([]Record, error)
}
