package roster

import "sync"

// MockPlayerStore is a mock implementation of PlayerStore for testing.
// It is safe for concurrent use.
type MockPlayerStore struct {
	mu sync.Mutex

	AddPlayerFunc         func(sessionID, name string) (*Player, error)
	GetPlayerFunc         func(playerID string) (*Player, error)
	RemovePlayerFunc      func(playerID string) error
	RestorePlayerFunc     func(playerID string) error
	PlayersFunc           func(sessionID string, includeUnavailable bool) ([]Player, error)
	MarkUnavailableFunc   func(playerIDs []string) error
	RecordMatchPlayedFunc func(playerIDs []string, roundNumber int) error

	MarkUnavailableCalls   [][]string
	RecordMatchPlayedCalls []RecordMatchPlayedCall
}

// RecordMatchPlayedCall holds the arguments for a call to RecordMatchPlayed.
type RecordMatchPlayedCall struct {
	PlayerIDs   []string
	RoundNumber int
}

// NewMock creates a new mock PlayerStore.
func NewMock() *MockPlayerStore {
	return &MockPlayerStore{}
}

func (m *MockPlayerStore) AddPlayer(sessionID, name string) (*Player, error) {
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(sessionID, name)
	}
	return &Player{ID: "mock-player", SessionID: sessionID, Name: name, IsAvailable: true}, nil
}

func (m *MockPlayerStore) GetPlayer(playerID string) (*Player, error) {
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(playerID)
	}
	return &Player{ID: playerID, IsAvailable: true}, nil
}

func (m *MockPlayerStore) RemovePlayer(playerID string) error {
	if m.RemovePlayerFunc != nil {
		return m.RemovePlayerFunc(playerID)
	}
	return nil
}

func (m *MockPlayerStore) RestorePlayer(playerID string) error {
	if m.RestorePlayerFunc != nil {
		return m.RestorePlayerFunc(playerID)
	}
	return nil
}

func (m *MockPlayerStore) Players(sessionID string, includeUnavailable bool) ([]Player, error) {
	if m.PlayersFunc != nil {
		return m.PlayersFunc(sessionID, includeUnavailable)
	}
	return nil, nil
}

func (m *MockPlayerStore) MarkUnavailable(playerIDs []string) error {
	m.mu.Lock()
	m.MarkUnavailableCalls = append(m.MarkUnavailableCalls, playerIDs)
	m.mu.Unlock()
	if m.MarkUnavailableFunc != nil {
		return m.MarkUnavailableFunc(playerIDs)
	}
	return nil
}

func (m *MockPlayerStore) RecordMatchPlayed(playerIDs []string, roundNumber int) error {
	m.mu.Lock()
	m.RecordMatchPlayedCalls = append(m.RecordMatchPlayedCalls, RecordMatchPlayedCall{PlayerIDs: playerIDs, RoundNumber: roundNumber})
	m.mu.Unlock()
	if m.RecordMatchPlayedFunc != nil {
		return m.RecordMatchPlayedFunc(playerIDs, roundNumber)
	}
	return nil
}
