package notifier

// CourtLineup is one court's pairing, expressed in player names so the
// notification layer stays decoupled from store types.
type CourtLineup struct {
	Court int
	Team1 []string
	Team2 []string
}

// Notifier defines a high-level interface for announcing business events.
// This decouples the rest of the application from the specific notification
// provider (e.g., Slack).
type Notifier interface {
	// SendRoundAnnouncement posts the lineups of a freshly generated round.
	SendRoundAnnouncement(roundNumber int, lineups []CourtLineup, dryRun bool) error
	// SendMatchResult posts that a match finished and its players are back
	// in the rotation.
	SendMatchResult(roundNumber int, lineup CourtLineup, dryRun bool) error
}
