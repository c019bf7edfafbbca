package engine_test

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/courtsidehq/rotation/internal/database"
	"github.com/courtsidehq/rotation/internal/engine"
	"github.com/courtsidehq/rotation/internal/history"
	"github.com/courtsidehq/rotation/internal/matches"
	"github.com/courtsidehq/rotation/internal/metrics"
	"github.com/courtsidehq/rotation/internal/roster"
	"github.com/courtsidehq/rotation/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	engine    *engine.Engine
	players   roster.PlayerStore
	matches   matches.MatchStore
	history   history.HistoryStore
	metrics   *metrics.Mock
	sessionID string
	db        *sql.DB
}

// setup creates an in-memory database, one session and the given players.
func setup(t *testing.T, courtCount int, playerNames ...string) (*fixture, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	sess, err := session.New(db).Create(courtCount)
	require.NoError(t, err)

	playerStore := roster.New(db)
	for _, name := range playerNames {
		_, err := playerStore.AddPlayer(sess.ID, name)
		require.NoError(t, err)
	}

	matchStore := matches.New(db)
	historyStore := history.New(db)
	metricsMock := metrics.NewMock()

	f := &fixture{
		engine: engine.New(
			playerStore, matchStore, historyStore, metricsMock,
			engine.WithRand(rand.New(rand.NewSource(1))),
		),
		players:   playerStore,
		matches:   matchStore,
		history:   historyStore,
		metrics:   metricsMock,
		sessionID: sess.ID,
		db:        db,
	}
	return f, teardown
}

func TestCreateRound_InsufficientPlayers(t *testing.T) {
	f, teardown := setup(t, 1, "A", "B", "C")
	defer teardown()

	_, err := f.engine.CreateRound(f.sessionID, 1, 1)
	assert.ErrorIs(t, err, engine.ErrInsufficientPlayers)

	// No side effects: no matches, everyone still available.
	all, err := f.matches.ListMatches(f.sessionID)
	require.NoError(t, err)
	assert.Len(t, all, 0)

	available, err := f.players.Players(f.sessionID, false)
	require.NoError(t, err)
	assert.Len(t, available, 3)

	assert.Equal(t, 1, f.metrics.RoundsInsufficientPlayers())
	assert.Equal(t, 0, f.metrics.RoundsGenerated())
}

func TestCreateRound_SingleCourt(t *testing.T) {
	f, teardown := setup(t, 1, "A", "B", "C", "D")
	defer teardown()

	created, err := f.engine.CreateRound(f.sessionID, 1, 1)
	require.NoError(t, err)
	require.Len(t, created, 1)

	match := created[0]
	assert.Equal(t, matches.StatusActive, match.Match.Status)
	assert.Equal(t, 1, match.Match.RoundNumber)
	require.Len(t, match.Players, 4)

	teamSizes := map[int]int{}
	for _, mp := range match.Players {
		teamSizes[mp.Team]++
	}
	assert.Equal(t, 2, teamSizes[1])
	assert.Equal(t, 2, teamSizes[2])

	available, err := f.players.Players(f.sessionID, false)
	require.NoError(t, err)
	assert.Len(t, available, 0, "all four selected players are out of the pool")
}

func TestCreateRound_TwoCourts(t *testing.T) {
	f, teardown := setup(t, 2, "A", "B", "C", "D", "E", "F", "G", "H")
	defer teardown()

	created, err := f.engine.CreateRound(f.sessionID, 1, 2)
	require.NoError(t, err)
	require.Len(t, created, 2)

	seen := map[string]int{}
	for _, mwp := range created {
		assert.Equal(t, 1, mwp.Match.RoundNumber, "both matches share the round number")
		require.Len(t, mwp.Players, 4)
		for _, mp := range mwp.Players {
			seen[mp.PlayerID]++
		}
	}
	assert.Len(t, seen, 8)
	for id, n := range seen {
		assert.Equal(t, 1, n, "player %s must appear in exactly one match", id)
	}

	available, err := f.players.Players(f.sessionID, false)
	require.NoError(t, err)
	assert.Len(t, available, 0)
}

func TestCreateRound_PrefersLeastPlayed(t *testing.T) {
	f, teardown := setup(t, 1, "A", "B", "C", "D", "E", "F")
	defer teardown()

	// Two players carry prior rounds; the four fresh ones must be picked.
	allPlayers, err := f.players.Players(f.sessionID, true)
	require.NoError(t, err)
	veterans := map[string]bool{}
	for i, p := range allPlayers {
		if i < 2 {
			veterans[p.ID] = true
			_, err := f.db.Exec(`UPDATE players SET matches_played = 2 WHERE id = ?`, p.ID)
			require.NoError(t, err)
		}
	}

	created, err := f.engine.CreateRound(f.sessionID, 1, 1)
	require.NoError(t, err)
	require.Len(t, created, 1)

	for _, mp := range created[0].Players {
		assert.False(t, veterans[mp.PlayerID], "veterans must wait while fresh players fill the round")
	}
}

func TestCompleteMatch(t *testing.T) {
	f, teardown := setup(t, 1, "A", "B", "C", "D")
	defer teardown()

	created, err := f.engine.CreateRound(f.sessionID, 1, 1)
	require.NoError(t, err)
	matchID := created[0].Match.ID

	require.NoError(t, f.engine.CompleteMatch(matchID))

	got, err := f.matches.GetMatch(matchID)
	require.NoError(t, err)
	assert.Equal(t, matches.StatusCompleted, got.Match.Status)

	players, err := f.players.Players(f.sessionID, true)
	require.NoError(t, err)
	for _, p := range players {
		assert.True(t, p.IsAvailable)
		assert.Equal(t, 1, p.MatchesPlayed)
		assert.Equal(t, 1, p.LastMatchRound)
	}

	records, err := f.history.Records(f.sessionID)
	require.NoError(t, err)
	// 2 partnerships and 4 opponent pairs, each stored in both directions.
	var partnerRows, opponentRows int
	for _, r := range records {
		assert.Equal(t, 1, r.Count)
		assert.Equal(t, 1, r.LastRound)
		switch r.Relationship {
		case history.RelationshipPartner:
			partnerRows++
		case history.RelationshipOpponent:
			opponentRows++
		}
	}
	assert.Equal(t, 4, partnerRows)
	assert.Equal(t, 8, opponentRows)

	assert.Equal(t, 1, f.metrics.MatchesCompleted())
}

func TestCompleteMatch_HistoryIsSymmetric(t *testing.T) {
	f, teardown := setup(t, 1, "A", "B", "C", "D")
	defer teardown()

	created, err := f.engine.CreateRound(f.sessionID, 1, 1)
	require.NoError(t, err)
	require.NoError(t, f.engine.CompleteMatch(created[0].Match.ID))

	var ids []string
	for _, mp := range created[0].Players {
		ids = append(ids, mp.PlayerID)
	}

	counts, err := f.history.PairCounts(f.sessionID, ids)
	require.NoError(t, err)
	for _, a := range ids {
		for _, b := range ids {
			if a == b {
				continue
			}
			assert.Equal(t, counts.Partners(a, b), counts.Partners(b, a))
			assert.Equal(t, counts.Opponents(a, b), counts.Opponents(b, a))
		}
	}
}

func TestCompleteMatch_SecondCallIsNoOp(t *testing.T) {
	f, teardown := setup(t, 1, "A", "B", "C", "D")
	defer teardown()

	created, err := f.engine.CreateRound(f.sessionID, 1, 1)
	require.NoError(t, err)
	matchID := created[0].Match.ID

	require.NoError(t, f.engine.CompleteMatch(matchID))
	require.NoError(t, f.engine.CompleteMatch(matchID))

	players, err := f.players.Players(f.sessionID, true)
	require.NoError(t, err)
	for _, p := range players {
		assert.Equal(t, 1, p.MatchesPlayed, "a second completion must not double-count plays")
	}

	records, err := f.history.Records(f.sessionID)
	require.NoError(t, err)
	for _, r := range records {
		assert.Equal(t, 1, r.Count, "a second completion must not double-count history")
	}

	assert.Equal(t, 1, f.metrics.MatchesCompleted())
}

func TestCompleteMatch_NotFound(t *testing.T) {
	f, teardown := setup(t, 1, "A", "B", "C", "D")
	defer teardown()

	err := f.engine.CompleteMatch("missing")
	assert.ErrorIs(t, err, matches.ErrMatchNotFound)
}

func TestComputePlayerWeights_SortedAscending(t *testing.T) {
	f, teardown := setup(t, 1, "A", "B", "C", "D")
	defer teardown()

	players, err := f.players.Players(f.sessionID, true)
	require.NoError(t, err)
	for i, p := range players {
		_, err := f.db.Exec(`UPDATE players SET matches_played = ? WHERE id = ?`, 3-i, p.ID)
		require.NoError(t, err)
	}

	weights, err := f.engine.ComputePlayerWeights(f.sessionID, true)
	require.NoError(t, err)
	require.Len(t, weights, 4)
	for i := 1; i < len(weights); i++ {
		assert.GreaterOrEqual(t, weights[i].Weight, weights[i-1].Weight)
	}
	assert.Equal(t, 0, weights[0].Weight)
}

func TestComputePlayerWeights_AvailabilityFilter(t *testing.T) {
	f, teardown := setup(t, 1, "A", "B", "C", "D", "E")
	defer teardown()

	_, err := f.engine.CreateRound(f.sessionID, 1, 1)
	require.NoError(t, err)

	pool, err := f.engine.ComputePlayerWeights(f.sessionID, false)
	require.NoError(t, err)
	assert.Len(t, pool, 1, "only the benched player remains eligible")

	everyone, err := f.engine.ComputePlayerWeights(f.sessionID, true)
	require.NoError(t, err)
	assert.Len(t, everyone, 5)
}

func TestRoundsAreRerunnableAfterCompletion(t *testing.T) {
	f, teardown := setup(t, 1, "A", "B", "C", "D", "E")
	defer teardown()

	for round := 1; round <= 3; round++ {
		next, err := f.matches.NextRoundNumber(f.sessionID)
		require.NoError(t, err)
		assert.Equal(t, round, next)

		created, err := f.engine.CreateRound(f.sessionID, next, 1)
		require.NoError(t, err)
		require.NoError(t, f.engine.CompleteMatch(created[0].Match.ID))
	}

	// Nobody can have sat out all three rounds with five players rotating.
	players, err := f.players.Players(f.sessionID, true)
	require.NoError(t, err)
	total := 0
	for _, p := range players {
		total += p.MatchesPlayed
		assert.GreaterOrEqual(t, p.MatchesPlayed, 2)
	}
	assert.Equal(t, 12, total, "three rounds of four players")
}
