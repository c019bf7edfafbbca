package roster_test

import (
	"database/sql"
	"testing"

	"github.com/courtsidehq/rotation/internal/database"
	"github.com/courtsidehq/rotation/internal/roster"
	"github.com/courtsidehq/rotation/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database with one session.
func setupTestDB(t *testing.T) (roster.PlayerStore, string, *sql.DB, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	sess, err := session.New(db).Create(1)
	require.NoError(t, err)

	return roster.New(db), sess.ID, db, teardown
}

func TestAddAndGetPlayer(t *testing.T) {
	store, sessionID, _, teardown := setupTestDB(t)
	defer teardown()

	added, err := store.AddPlayer(sessionID, "Alice")
	require.NoError(t, err)
	assert.True(t, added.IsAvailable)
	assert.Equal(t, 0, added.MatchesPlayed)

	got, err := store.GetPlayer(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, sessionID, got.SessionID)
}

func TestGetPlayer_NotFound(t *testing.T) {
	store, _, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.GetPlayer("missing")
	assert.ErrorIs(t, err, roster.ErrPlayerNotFound)
}

func TestAddPlayer_StartsAtSessionMinimum(t *testing.T) {
	store, sessionID, db, teardown := setupTestDB(t)
	defer teardown()

	p1, err := store.AddPlayer(sessionID, "Veteran One")
	require.NoError(t, err)
	p2, err := store.AddPlayer(sessionID, "Veteran Two")
	require.NoError(t, err)

	_, err = db.Exec(`UPDATE players SET matches_played = 5 WHERE id = ?`, p1.ID)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE players SET matches_played = 3 WHERE id = ?`, p2.ID)
	require.NoError(t, err)

	late, err := store.AddPlayer(sessionID, "Late Joiner")
	require.NoError(t, err)
	assert.Equal(t, 3, late.MatchesPlayed, "a late joiner starts at the session minimum")
}

func TestRemoveAndRestorePlayer(t *testing.T) {
	store, sessionID, _, teardown := setupTestDB(t)
	defer teardown()

	player, err := store.AddPlayer(sessionID, "Bob")
	require.NoError(t, err)

	require.NoError(t, store.RemovePlayer(player.ID))

	players, err := store.Players(sessionID, true)
	require.NoError(t, err)
	assert.Len(t, players, 0, "removed players are hidden from the roster")

	require.NoError(t, store.RestorePlayer(player.ID))

	players, err = store.Players(sessionID, false)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.True(t, players[0].IsAvailable, "restored players come back available")
}

func TestRemovePlayer_NotFound(t *testing.T) {
	store, _, _, teardown := setupTestDB(t)
	defer teardown()

	assert.ErrorIs(t, store.RemovePlayer("missing"), roster.ErrPlayerNotFound)
}

func TestPlayers_AvailabilityFilter(t *testing.T) {
	store, sessionID, _, teardown := setupTestDB(t)
	defer teardown()

	p1, err := store.AddPlayer(sessionID, "Available")
	require.NoError(t, err)
	p2, err := store.AddPlayer(sessionID, "Busy")
	require.NoError(t, err)

	require.NoError(t, store.MarkUnavailable([]string{p2.ID}))

	available, err := store.Players(sessionID, false)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, p1.ID, available[0].ID)

	all, err := store.Players(sessionID, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRecordMatchPlayed(t *testing.T) {
	store, sessionID, _, teardown := setupTestDB(t)
	defer teardown()

	player, err := store.AddPlayer(sessionID, "Carol")
	require.NoError(t, err)
	require.NoError(t, store.MarkUnavailable([]string{player.ID}))

	require.NoError(t, store.RecordMatchPlayed([]string{player.ID}, 3))

	got, err := store.GetPlayer(player.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)
	assert.Equal(t, 1, got.MatchesPlayed)
	assert.Equal(t, 3, got.LastMatchRound)
}
