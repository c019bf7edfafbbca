package engine

import (
	"github.com/courtsidehq/rotation/internal/history"
	"github.com/courtsidehq/rotation/internal/matches"
	"github.com/courtsidehq/rotation/internal/roster"
)

// Partnership repetition distorts fairness more than facing the same
// opponent again, so it weighs four times as heavily in the score.
const (
	partnerPenalty  = 4
	opponentPenalty = 1
)

// Attempt limits for the randomized multi-court assignment search.
const (
	singleCourtAttempts = 100
	multiCourtAttempts  = 500
	maxAttempts         = 1000
)

// teamSplits enumerates the 3 distinct ways to split 4 players into two
// unordered teams of two, as indices into a group of 4.
var teamSplits = [3]struct {
	team1 [2]int
	team2 [2]int
}{
	{[2]int{0, 1}, [2]int{2, 3}},
	{[2]int{0, 2}, [2]int{1, 3}},
	{[2]int{0, 3}, [2]int{1, 2}},
}

// scoreLineup scores one match assignment against the pairing history.
// Zero means no pair in the lineup has ever shared a team or faced each
// other; more repeats make the score more negative.
func scoreLineup(lineup matches.Lineup, counts *history.PairCounts) int {
	score := 0
	score -= partnerPenalty * counts.Partners(lineup.Team1[0], lineup.Team1[1])
	score -= partnerPenalty * counts.Partners(lineup.Team2[0], lineup.Team2[1])
	for _, a := range lineup.Team1 {
		for _, b := range lineup.Team2 {
			score -= opponentPenalty * counts.Opponents(a, b)
		}
	}
	return score
}

// bestLineup exhaustively evaluates the 3 team splits of a group of 4 and
// returns the best-scoring one. This sub-step is exact; ties keep the first
// split found.
func bestLineup(group []roster.Player, counts *history.PairCounts) (matches.Lineup, int) {
	var best matches.Lineup
	bestScore := minInt

	for _, split := range teamSplits {
		lineup := matches.Lineup{
			Team1: [2]string{group[split.team1[0]].ID, group[split.team1[1]].ID},
			Team2: [2]string{group[split.team2[0]].ID, group[split.team2[1]].ID},
		}
		if score := scoreLineup(lineup, counts); score > bestScore {
			best = lineup
			bestScore = score
		}
	}
	return best, bestScore
}

const minInt = -int(^uint(0)>>1) - 1

// optimize partitions the selected players into one lineup per court,
// minimizing repeated partnerships and match-ups. A single court is solved
// exactly; multiple courts use a bounded randomized search: shuffle, slice
// into contiguous groups of 4, solve each group exactly, keep the best total
// seen. Ties are broken by first found.
func (e *Engine) optimize(selected []roster.Player, counts *history.PairCounts, courts int) ([]matches.Lineup, int) {
	attempts := multiCourtAttempts
	if courts == 1 {
		attempts = singleCourtAttempts
	}
	if attempts > maxAttempts {
		attempts = maxAttempts
	}

	pool := make([]roster.Player, len(selected))
	copy(pool, selected)

	var best []matches.Lineup
	bestScore := minInt

	for attempt := 0; attempt < attempts; attempt++ {
		shuffle(e, pool)

		lineups := make([]matches.Lineup, 0, courts)
		total := 0
		for court := 0; court < courts; court++ {
			group := pool[court*playersPerCourt : (court+1)*playersPerCourt]
			lineup, score := bestLineup(group, counts)
			lineups = append(lineups, lineup)
			total += score
		}

		if total > bestScore {
			best = lineups
			bestScore = total
		}

		// A perfect round cannot be improved on.
		if bestScore == 0 {
			break
		}
	}

	return best, bestScore
}
