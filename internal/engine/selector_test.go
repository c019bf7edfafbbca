package engine

import (
	"math/rand"
	"testing"

	"github.com/courtsidehq/rotation/internal/history"
	"github.com/courtsidehq/rotation/internal/matches"
	"github.com/courtsidehq/rotation/internal/metrics"
	"github.com/courtsidehq/rotation/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(seed int64) *Engine {
	return New(
		roster.NewMock(),
		matches.NewMock(),
		history.NewMock(),
		metrics.NewMock(),
		WithRand(rand.New(rand.NewSource(seed))),
	)
}

func weighted(id string, matchesPlayed int) PlayerWeight {
	return PlayerWeight{
		Player: roster.Player{ID: id, MatchesPlayed: matchesPlayed},
		Weight: Weight(matchesPlayed),
	}
}

func TestSelectPlayers_InsufficientPool(t *testing.T) {
	e := newTestEngine(1)

	pool := []PlayerWeight{weighted("a", 0), weighted("b", 0), weighted("c", 0)}
	_, err := e.selectPlayers(pool, 4)
	assert.ErrorIs(t, err, ErrInsufficientPlayers)
}

func TestSelectPlayers_TakesLowestWeights(t *testing.T) {
	e := newTestEngine(1)

	pool := []PlayerWeight{
		weighted("veteran1", 3),
		weighted("fresh1", 0),
		weighted("veteran2", 2),
		weighted("fresh2", 0),
		weighted("fresh3", 1),
		weighted("fresh4", 1),
	}

	selected, err := e.selectPlayers(pool, 4)
	require.NoError(t, err)
	require.Len(t, selected, 4)

	ids := make(map[string]bool)
	for _, p := range selected {
		ids[p.ID] = true
	}
	assert.True(t, ids["fresh1"])
	assert.True(t, ids["fresh2"])
	assert.True(t, ids["fresh3"])
	assert.True(t, ids["fresh4"])
}

func TestSelectPlayers_DoesNotMutateInput(t *testing.T) {
	e := newTestEngine(7)

	pool := []PlayerWeight{weighted("a", 0), weighted("b", 1), weighted("c", 2), weighted("d", 3)}
	before := make([]string, len(pool))
	for i, pw := range pool {
		before[i] = pw.Player.ID
	}

	_, err := e.selectPlayers(pool, 4)
	require.NoError(t, err)

	for i, pw := range pool {
		assert.Equal(t, before[i], pw.Player.ID)
	}
}

func TestSelectPlayers_TieBreakIsRandomized(t *testing.T) {
	e := newTestEngine(42)

	// Six equal-weight players competing for four slots: over many draws,
	// selection must not settle on a single stable subset.
	pool := []PlayerWeight{
		weighted("a", 0), weighted("b", 0), weighted("c", 0),
		weighted("d", 0), weighted("e", 0), weighted("f", 0),
	}

	subsets := make(map[string]bool)
	picks := make(map[string]int)
	for i := 0; i < 200; i++ {
		selected, err := e.selectPlayers(pool, 4)
		require.NoError(t, err)

		key := ""
		seen := map[string]bool{}
		for _, p := range selected {
			seen[p.ID] = true
			picks[p.ID]++
		}
		for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
			if seen[id] {
				key += id
			}
		}
		subsets[key] = true
	}

	assert.Greater(t, len(subsets), 1, "equal-weight selection must vary across calls")
	for id, n := range picks {
		assert.Greater(t, n, 0, "player %s was never selected in 200 draws", id)
	}
}
