package session

import "sync"

// MockSessionStore is a mock implementation of SessionStore for testing.
// It is safe for concurrent use.
type MockSessionStore struct {
	mu sync.Mutex

	CreateFunc func(courtCount int) (*Session, error)
	GetFunc    func(sessionID string) (*Session, error)
	ListFunc   func() ([]Session, error)
	DeleteFunc func(sessionID string) error

	CreateCalls []int
	GetCalls    []string
	DeleteCalls []string
}

// NewMock creates a new mock SessionStore.
func NewMock() *MockSessionStore {
	return &MockSessionStore{}
}

func (m *MockSessionStore) Create(courtCount int) (*Session, error) {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, courtCount)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(courtCount)
	}
	return &Session{ID: "mock-session", CourtCount: courtCount}, nil
}

func (m *MockSessionStore) Get(sessionID string) (*Session, error) {
	m.mu.Lock()
	m.GetCalls = append(m.GetCalls, sessionID)
	m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(sessionID)
	}
	return &Session{ID: sessionID, CourtCount: 1}, nil
}

func (m *MockSessionStore) List() ([]Session, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, nil
}

func (m *MockSessionStore) Delete(sessionID string) error {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, sessionID)
	m.mu.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(sessionID)
	}
	return nil
}
