package engine

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtsidehq/rotation/internal/history"
	"github.com/courtsidehq/rotation/internal/matches"
)

// CreateRound selects the next pool of players and creates one active match
// per court for the given round number. It fails with ErrInsufficientPlayers
// before any write when the eligible pool is short. Round generation is
// serialized per session so two concurrent calls cannot select the same
// player into two matches.
func (e *Engine) CreateRound(sessionID string, roundNumber, courtCount int) ([]matches.MatchWithPlayers, error) {
	if courtCount < 1 {
		courtCount = 1
	}

	lock := e.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	started := time.Now()

	pool, err := e.ComputePlayerWeights(sessionID, false)
	if err != nil {
		return nil, err
	}

	need := courtCount * playersPerCourt
	selected, err := e.selectPlayers(pool, need)
	if err != nil {
		e.metrics.IncRoundsInsufficientPlayers()
		return nil, err
	}

	playerIDs := make([]string, 0, len(selected))
	for _, player := range selected {
		playerIDs = append(playerIDs, player.ID)
	}

	counts, err := e.history.PairCounts(sessionID, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to read pairing history: %w", err)
	}

	lineups, score := e.optimize(selected, counts, courtCount)

	created, err := e.matches.CreateRoundMatches(sessionID, roundNumber, lineups)
	if err != nil {
		return nil, fmt.Errorf("failed to persist round matches: %w", err)
	}

	// A failure past this point leaves active matches with players still
	// marked available. The operation is re-runnable: re-selection excludes
	// players once they are marked unavailable.
	if err := e.players.MarkUnavailable(playerIDs); err != nil {
		return nil, fmt.Errorf("failed to mark selected players unavailable: %w", err)
	}

	e.metrics.IncRoundsGenerated()
	e.metrics.ObserveOptimizerScore(float64(score))
	e.metrics.ObserveRoundGenerationDuration(time.Since(started).Seconds())

	log.Info("Generated round", "session", sessionID, "round", roundNumber, "courts", courtCount, "score", score)
	return created, nil
}

// CompleteMatch transitions a match to completed, releases its players back
// into the pool and records the new partner/opponent observations. The
// status transition is the single source of truth: completing an
// already-completed match is a no-op and does not double-count history.
func (e *Engine) CompleteMatch(matchID string) error {
	match, err := e.matches.GetMatch(matchID)
	if err != nil {
		return err
	}

	transitioned, err := e.matches.Complete(matchID)
	if err != nil {
		return err
	}
	if !transitioned {
		log.Info("Match already completed, skipping", "match", matchID)
		return nil
	}

	playerIDs := make([]string, 0, len(match.Players))
	for _, mp := range match.Players {
		playerIDs = append(playerIDs, mp.PlayerID)
	}

	if err := e.players.RecordMatchPlayed(playerIDs, match.Match.RoundNumber); err != nil {
		return fmt.Errorf("failed to update player counters: %w", err)
	}

	if err := e.recordHistory(match); err != nil {
		return err
	}

	e.metrics.IncMatchesCompleted()
	log.Info("Completed match", "match", matchID, "round", match.Match.RoundNumber)
	return nil
}

// recordHistory derives the two partnerships and four opponent pairs from a
// match's team assignments and upserts each in both directions.
func (e *Engine) recordHistory(match *matches.MatchWithPlayers) error {
	var team1, team2 []string
	for _, mp := range match.Players {
		switch mp.Team {
		case 1:
			team1 = append(team1, mp.PlayerID)
		case 2:
			team2 = append(team2, mp.PlayerID)
		}
	}

	sessionID := match.Match.SessionID
	round := match.Match.RoundNumber

	record := func(a, b string, relationship history.Relationship) error {
		if err := e.history.RecordPairing(sessionID, a, b, relationship, round); err != nil {
			return fmt.Errorf("failed to record %s pairing: %w", relationship, err)
		}
		if err := e.history.RecordPairing(sessionID, b, a, relationship, round); err != nil {
			return fmt.Errorf("failed to record %s pairing: %w", relationship, err)
		}
		return nil
	}

	for _, team := range [][]string{team1, team2} {
		if len(team) != 2 {
			continue
		}
		if err := record(team[0], team[1], history.RelationshipPartner); err != nil {
			return err
		}
	}

	for _, a := range team1 {
		for _, b := range team2 {
			if err := record(a, b, history.RelationshipOpponent); err != nil {
				return err
			}
		}
	}

	return nil
}
