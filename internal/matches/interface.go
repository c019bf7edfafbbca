package matches

// MatchStore defines the interface for interacting with matches and their
// team assignments.
type MatchStore interface {
	// CreateRoundMatches inserts one active match per lineup, all sharing the
	// given round number, together with their match_players rows in a single
	// transaction.
	CreateRoundMatches(sessionID string, roundNumber int, lineups []Lineup) ([]MatchWithPlayers, error)
	GetMatch(matchID string) (*MatchWithPlayers, error)
	// Complete transitions a match from active to completed. It reports
	// whether this call performed the transition; completing an
	// already-completed match returns false with no error.
	Complete(matchID string) (bool, error)
	ListMatches(sessionID string) ([]MatchWithPlayers, error)
	// NextRoundNumber derives the next round from persisted state, so a
	// retried generation after a partial failure converges instead of
	// trusting an in-memory counter.
	NextRoundNumber(sessionID string) (int, error)
}
