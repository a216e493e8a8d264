package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIdentical(t *testing.T) {
	assert.Equal(t, 100, Score("bleu chanel", "bleu chanel"))
	assert.Equal(t, 100, Score("", ""))
}

func TestScoreEmptySide(t *testing.T) {
	assert.Equal(t, 0, Score("bleu chanel", ""))
	assert.Equal(t, 0, Score("", "bleu chanel"))
}

func TestScoreWordOrderRobust(t *testing.T) {
	// token-sort ratio makes reordering free
	assert.Equal(t, 100, Score("chanel bleu", "bleu chanel"))
}

func TestScorePartialOverlap(t *testing.T) {
	// a contained substring keeps the score high via the partial ratio
	s := Score("aventus", "creed aventus absolu")
	assert.GreaterOrEqual(t, s, 80)

	// unrelated names stay low
	assert.Less(t, Score("bleu chanel", "oud ispahan"), 50)
}

func TestScoreRange(t *testing.T) {
	pairs := [][2]string{
		{"bleu chanel", "blu chanil"},
		{"dior sauvage", "sauvage elixir dior"},
		{"a", "zzzzzz"},
	}
	for _, p := range pairs {
		s := Score(p[0], p[1])
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}
}

func TestScoreSymmetric(t *testing.T) {
	a, b := "bleu chanel", "blu chanil"
	assert.Equal(t, Score(a, b), Score(b, a))
}
