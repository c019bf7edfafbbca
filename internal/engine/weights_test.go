package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeight(t *testing.T) {
	assert.Equal(t, 0, Weight(0), "a player who never played has weight 0")
	assert.Equal(t, 100, Weight(1))
	assert.Equal(t, 500, Weight(5))

	// Non-decreasing in matches played.
	prev := Weight(0)
	for played := 1; played <= 50; played++ {
		w := Weight(played)
		assert.GreaterOrEqual(t, w, prev)
		assert.GreaterOrEqual(t, w, 0)
		prev = w
	}
}
