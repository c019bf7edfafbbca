package history

import "sync"

// MockHistoryStore is a mock implementation of HistoryStore for testing.
// It is safe for concurrent use.
type MockHistoryStore struct {
	mu sync.Mutex

	PairCountsFunc    func(sessionID string, playerIDs []string) (*PairCounts, error)
	RecordPairingFunc func(sessionID, playerID, otherPlayerID string, relationship Relationship, roundNumber int) error
	RecordsFunc       func(sessionID string) ([]Record, error)

	RecordPairingCalls []RecordPairingCall
}

// RecordPairingCall holds the arguments for a call to RecordPairing.
type RecordPairingCall struct {
	SessionID     string
	PlayerID      string
	OtherPlayerID string
	Relationship  Relationship
	RoundNumber   int
}

// NewMock creates a new mock HistoryStore.
func NewMock() *MockHistoryStore {
	return &MockHistoryStore{}
}

// NewPairCounts builds a PairCounts from directed records, for tests.
func NewPairCounts(records []Record) *PairCounts {
	counts := &PairCounts{
		partners:  make(map[pairKey]int),
		opponents: make(map[pairKey]int),
	}
	for _, r := range records {
		key := pairKey{r.PlayerID, r.OtherPlayerID}
		switch r.Relationship {
		case RelationshipPartner:
			counts.partners[key] = r.Count
		case RelationshipOpponent:
			counts.opponents[key] = r.Count
		}
	}
	return counts
}

func (m *MockHistoryStore) PairCounts(sessionID string, playerIDs []string) (*PairCounts, error) {
	if m.PairCountsFunc != nil {
		return m.PairCountsFunc(sessionID, playerIDs)
	}
	return NewPairCounts(nil), nil
}

func (m *MockHistoryStore) RecordPairing(sessionID, playerID, otherPlayerID string, relationship Relationship, roundNumber int) error {
	m.mu.Lock()
	m.RecordPairingCalls = append(m.RecordPairingCalls, RecordPairingCall{
		SessionID:     sessionID,
		PlayerID:      playerID,
		OtherPlayerID: otherPlayerID,
		Relationship:  relationship,
		RoundNumber:   roundNumber,
	})
	m.mu.Unlock()
	if m.RecordPairingFunc != nil {
		return m.RecordPairingFunc(sessionID, playerID, otherPlayerID, relationship, roundNumber)
	}
	return nil
}

func (m *MockHistoryStore) Records(sessionID string) ([]Record, error) {
	if m.RecordsFunc != nil {
		return m.RecordsFunc(sessionID)
	}
	return nil, nil
}
