package notifier

import "sync"

// MockNotifier is a mock implementation of Notifier for testing.
// It is safe for concurrent use.
type MockNotifier struct {
	mu sync.Mutex

	SendRoundAnnouncementFunc func(roundNumber int, lineups []CourtLineup, dryRun bool) error
	SendMatchResultFunc       func(roundNumber int, lineup CourtLineup, dryRun bool) error

	RoundAnnouncements []RoundAnnouncementCall
	MatchResults       []MatchResultCall
}

// RoundAnnouncementCall holds the arguments for a call to SendRoundAnnouncement.
type RoundAnnouncementCall struct {
	RoundNumber int
	Lineups     []CourtLineup
	DryRun      bool
}

// MatchResultCall holds the arguments for a call to SendMatchResult.
type MatchResultCall struct {
	RoundNumber int
	Lineup      CourtLineup
	DryRun      bool
}

// NewMock creates a new mock Notifier.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) SendRoundAnnouncement(roundNumber int, lineups []CourtLineup, dryRun bool) error {
	m.mu.Lock()
	m.RoundAnnouncements = append(m.RoundAnnouncements, RoundAnnouncementCall{RoundNumber: roundNumber, Lineups: lineups, DryRun: dryRun})
	m.mu.Unlock()
	if m.SendRoundAnnouncementFunc != nil {
		return m.SendRoundAnnouncementFunc(roundNumber, lineups, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendMatchResult(roundNumber int, lineup CourtLineup, dryRun bool) error {
	m.mu.Lock()
	m.MatchResults = append(m.MatchResults, MatchResultCall{RoundNumber: roundNumber, Lineup: lineup, DryRun: dryRun})
	m.mu.Unlock()
	if m.SendMatchResultFunc != nil {
		return m.SendMatchResultFunc(roundNumber, lineup, dryRun)
	}
	return nil
}
