package engine

import (
	"fmt"
	"sort"

	"github.com/courtsidehq/rotation/internal/roster"
)

// selectPlayers picks the need lowest-weight players from the pool. Ties
// among equal weights are broken by an unbiased random permutation, so the
// same low-weight subset does not displace the rest in a stable order on
// every call. No side effects.
func (e *Engine) selectPlayers(pool []PlayerWeight, need int) ([]roster.Player, error) {
	if len(pool) < need {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientPlayers, need, len(pool))
	}

	candidates := make([]PlayerWeight, len(pool))
	copy(candidates, pool)

	// A shuffle followed by a stable sort on weight alone leaves equal
	// weights in uniformly random relative order.
	shuffle(e, candidates)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight < candidates[j].Weight
	})

	selected := make([]roster.Player, 0, need)
	for _, pw := range candidates[:need] {
		selected = append(selected, pw.Player)
	}
	return selected, nil
}
