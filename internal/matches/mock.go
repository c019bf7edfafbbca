package matches

import "sync"

// MockMatchStore is a mock implementation of MatchStore for testing.
// It is safe for concurrent use.
type MockMatchStore struct {
	mu sync.Mutex

	CreateRoundMatchesFunc func(sessionID string, roundNumber int, lineups []Lineup) ([]MatchWithPlayers, error)
	GetMatchFunc           func(matchID string) (*MatchWithPlayers, error)
	CompleteFunc           func(matchID string) (bool, error)
	ListMatchesFunc        func(sessionID string) ([]MatchWithPlayers, error)
	NextRoundNumberFunc    func(sessionID string) (int, error)

	CreateRoundMatchesCalls []CreateRoundMatchesCall
	CompleteCalls           []string
}

// CreateRoundMatchesCall holds the arguments for a call to CreateRoundMatches.
type CreateRoundMatchesCall struct {
	SessionID   string
	RoundNumber int
	Lineups     []Lineup
}

// NewMock creates a new mock MatchStore.
func NewMock() *MockMatchStore {
	return &MockMatchStore{}
}

func (m *MockMatchStore) CreateRoundMatches(sessionID string, roundNumber int, lineups []Lineup) ([]MatchWithPlayers, error) {
	m.mu.Lock()
	m.CreateRoundMatchesCalls = append(m.CreateRoundMatchesCalls, CreateRoundMatchesCall{
		SessionID:   sessionID,
		RoundNumber: roundNumber,
		Lineups:     lineups,
	})
	m.mu.Unlock()
	if m.CreateRoundMatchesFunc != nil {
		return m.CreateRoundMatchesFunc(sessionID, roundNumber, lineups)
	}
	return nil, nil
}

func (m *MockMatchStore) GetMatch(matchID string) (*MatchWithPlayers, error) {
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(matchID)
	}
	return nil, ErrMatchNotFound
}

func (m *MockMatchStore) Complete(matchID string) (bool, error) {
	m.mu.Lock()
	m.CompleteCalls = append(m.CompleteCalls, matchID)
	m.mu.Unlock()
	if m.CompleteFunc != nil {
		return m.CompleteFunc(matchID)
	}
	return true, nil
}

func (m *MockMatchStore) ListMatches(sessionID string) ([]MatchWithPlayers, error) {
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc(sessionID)
	}
	return nil, nil
}

func (m *MockMatchStore) NextRoundNumber(sessionID string) (int, error) {
	if m.NextRoundNumberFunc != nil {
		return m.NextRoundNumberFunc(sessionID)
	}
	return 1, nil
}
