package matches_test

import (
	"database/sql"
	"testing"

	"github.com/courtsidehq/rotation/internal/database"
	"github.com/courtsidehq/rotation/internal/matches"
	"github.com/courtsidehq/rotation/internal/roster"
	"github.com/courtsidehq/rotation/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory database with one session and eight players.
func setupTestDB(t *testing.T) (matches.MatchStore, string, []string, *sql.DB, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	sess, err := session.New(db).Create(2)
	require.NoError(t, err)

	players := roster.New(db)
	ids := make([]string, 0, 8)
	for _, name := range []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8"} {
		p, err := players.AddPlayer(sess.ID, name)
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	return matches.New(db), sess.ID, ids, db, teardown
}

func TestCreateRoundMatches(t *testing.T) {
	store, sessionID, ids, _, teardown := setupTestDB(t)
	defer teardown()

	lineups := []matches.Lineup{
		{Team1: [2]string{ids[0], ids[1]}, Team2: [2]string{ids[2], ids[3]}},
		{Team1: [2]string{ids[4], ids[5]}, Team2: [2]string{ids[6], ids[7]}},
	}

	created, err := store.CreateRoundMatches(sessionID, 1, lineups)
	require.NoError(t, err)
	require.Len(t, created, 2)

	for _, mwp := range created {
		assert.Equal(t, matches.StatusActive, mwp.Match.Status)
		assert.Equal(t, 1, mwp.Match.RoundNumber)
		require.Len(t, mwp.Players, 4)

		teamSizes := map[int]int{}
		for _, mp := range mwp.Players {
			teamSizes[mp.Team]++
		}
		assert.Equal(t, 2, teamSizes[1])
		assert.Equal(t, 2, teamSizes[2])
	}
}

func TestGetMatch_NotFound(t *testing.T) {
	store, _, _, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.GetMatch("missing")
	assert.ErrorIs(t, err, matches.ErrMatchNotFound)
}

func TestComplete_TransitionsOnce(t *testing.T) {
	store, sessionID, ids, _, teardown := setupTestDB(t)
	defer teardown()

	created, err := store.CreateRoundMatches(sessionID, 1, []matches.Lineup{
		{Team1: [2]string{ids[0], ids[1]}, Team2: [2]string{ids[2], ids[3]}},
	})
	require.NoError(t, err)
	matchID := created[0].Match.ID

	transitioned, err := store.Complete(matchID)
	require.NoError(t, err)
	assert.True(t, transitioned)

	got, err := store.GetMatch(matchID)
	require.NoError(t, err)
	assert.Equal(t, matches.StatusCompleted, got.Match.Status)

	// Second completion is a no-op.
	transitioned, err = store.Complete(matchID)
	require.NoError(t, err)
	assert.False(t, transitioned)

	// Completing a missing match reports no transition.
	transitioned, err = store.Complete("missing")
	require.NoError(t, err)
	assert.False(t, transitioned)
}

func TestNextRoundNumber(t *testing.T) {
	store, sessionID, ids, _, teardown := setupTestDB(t)
	defer teardown()

	next, err := store.NextRoundNumber(sessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, next, "a fresh session starts at round 1")

	_, err = store.CreateRoundMatches(sessionID, next, []matches.Lineup{
		{Team1: [2]string{ids[0], ids[1]}, Team2: [2]string{ids[2], ids[3]}},
	})
	require.NoError(t, err)

	next, err = store.NextRoundNumber(sessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, next)
}

func TestListMatches_OrderedByRound(t *testing.T) {
	store, sessionID, ids, _, teardown := setupTestDB(t)
	defer teardown()

	for round := 1; round <= 3; round++ {
		_, err := store.CreateRoundMatches(sessionID, round, []matches.Lineup{
			{Team1: [2]string{ids[0], ids[1]}, Team2: [2]string{ids[2], ids[3]}},
		})
		require.NoError(t, err)
	}

	all, err := store.ListMatches(sessionID)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, mwp := range all {
		assert.Equal(t, i+1, mwp.Match.RoundNumber)
		assert.Len(t, mwp.Players, 4)
	}
}
