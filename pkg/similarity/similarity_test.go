package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDice(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical strings", "night", "night", 1},
		{"classic nacht/night", "night", "nacht", 0.25},
		{"no overlap", "abc", "xyz", 0},
		{"case sensitive", "ABC", "abc", 0},
		{"both empty", "", "", 0},
		{"one empty", "night", "", 0},
		{"single rune has no bigrams", "a", "a", 0},
		{"repeated bigrams count once", "aaaa", "aa", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Dice(tt.a, tt.b), 1e-9)
		})
	}
}

func TestDiceSymmetry(t *testing.T) {
	a := "A young wizard discovers his destiny"
	b := "A young witch discovers her powers"

	assert.Equal(t, Dice(a, b), Dice(b, a))
	assert.Greater(t, Dice(a, b), 0.0)
	assert.Less(t, Dice(a, b), 1.0)
}

func TestDiceRanksCloserTextsHigher(t *testing.T) {
	ref := "A young wizard discovers his destiny"
	near := "A young wizard discovers his powers"
	far := "Recipes for slow-cooked winter stews"

	assert.Greater(t, Dice(ref, near), Dice(ref, far))
}
