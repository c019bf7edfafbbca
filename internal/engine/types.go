package engine

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/courtsidehq/rotation/internal/history"
	"github.com/courtsidehq/rotation/internal/matches"
	"github.com/courtsidehq/rotation/internal/metrics"
	"github.com/courtsidehq/rotation/internal/roster"
)

// ErrInsufficientPlayers is returned when the eligible pool cannot fill the
// requested court count. No matches are created in that case.
var ErrInsufficientPlayers = errors.New("not enough available players")

// playersPerCourt is fixed by the doubles format: two teams of two.
const playersPerCourt = 4

// Engine generates rounds and completes matches. It owns no persistence of
// its own; it drives the roster, match and history stores.
type Engine struct {
	players roster.PlayerStore
	matches matches.MatchStore
	history history.HistoryStore
	metrics metrics.Metrics

	rndMu sync.Mutex
	rnd   *rand.Rand

	locksMu      sync.Mutex
	sessionLocks map[string]*sync.Mutex
}

// PlayerWeight annotates a player with its fairness priority.
// Lower weight means higher selection priority.
type PlayerWeight struct {
	Player roster.Player `json:"player"`
	Weight int           `json:"weight"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for tie-breaking and optimizer search.
// Tests use this with a fixed seed to make outcomes deterministic.
func WithRand(rnd *rand.Rand) Option {
	return func(e *Engine) {
		e.rnd = rnd
	}
}

// New creates a new Engine.
func New(players roster.PlayerStore, matchStore matches.MatchStore, historyStore history.HistoryStore, metricsSvc metrics.Metrics, opts ...Option) *Engine {
	e := &Engine{
		players:      players,
		matches:      matchStore,
		history:      historyStore,
		metrics:      metricsSvc,
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
		sessionLocks: make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// sessionLock returns the mutex serializing round generation for a session.
func (e *Engine) sessionLock(sessionID string) *sync.Mutex {
	e.locksMu.Lock()
	defer e.locksMu.Unlock()

	lock, ok := e.sessionLocks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		e.sessionLocks[sessionID] = lock
	}
	return lock
}

// shuffle permutes xs in place using the engine's random source.
func shuffle[T any](e *Engine, xs []T) {
	e.rndMu.Lock()
	defer e.rndMu.Unlock()
	e.rnd.Shuffle(len(xs), func(i, j int) {
		xs[i], xs[j] = xs[j], xs[i]
	})
}
