package engine

import (
	"fmt"
	"sort"
)

// weightPerMatch spreads distinct play counts far apart, leaving room for a
// future additive term (e.g. wait time) without collapsing ties.
const weightPerMatch = 100

// Weight computes a player's fairness priority from their cumulative play
// count. Players who have played fewer matches get a lower weight and are
// selected first.
func Weight(matchesPlayed int) int {
	return matchesPlayed * weightPerMatch
}

// ComputePlayerWeights returns the session's non-deleted players annotated
// with their weights, sorted ascending. When includeUnavailable is false,
// only players currently in the pool are returned. Pure read.
func (e *Engine) ComputePlayerWeights(sessionID string, includeUnavailable bool) ([]PlayerWeight, error) {
	players, err := e.players.Players(sessionID, includeUnavailable)
	if err != nil {
		return nil, fmt.Errorf("failed to read players for weighting: %w", err)
	}

	weights := make([]PlayerWeight, 0, len(players))
	for _, player := range players {
		weights = append(weights, PlayerWeight{
			Player: player,
			Weight: Weight(player.MatchesPlayed),
		})
	}

	sort.SliceStable(weights, func(i, j int) bool {
		return weights[i].Weight < weights[j].Weight
	})
	return weights, nil
}
