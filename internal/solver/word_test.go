package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWordNormalizes(t *testing.T) {
	assert.Equal(t, Word("crane"), NewWord("  CrAnE\n"))
}

func TestContains(t *testing.T) {
	w := NewWord("speed")
	assert.True(t, w.Contains('e'))
	assert.True(t, w.Contains('d'))
	assert.False(t, w.Contains('z'))
}

func TestCharAt(t *testing.T) {
	w := NewWord("crane")
	assert.Equal(t, byte('c'), w.CharAt(0))
	assert.Equal(t, byte('e'), w.CharAt(4))
	assert.Panics(t, func() { w.CharAt(5) })
	assert.Panics(t, func() { w.CharAt(-1) })
}

func TestFeedbackAsymmetry(t *testing.T) {
	w1 := NewWord("crate")
	w2 := NewWord("space")

	assert.Equal(t, FeedbackCode("Y_G_G"), w1.Feedback(w2))
	assert.Equal(t, FeedbackCode("__GYG"), w2.Feedback(w1))
}

func TestFeedbackReflexive(t *testing.T) {
	for _, s := range []string{"words", "speed", "dance", "aaaaa"} {
		w := NewWord(s)
		code := w.Feedback(w)
		assert.True(t, code.AllHit(), "feedback of %q against itself: %s", s, code)
	}
}

func TestFeedbackRepeatedLetters(t *testing.T) {
	// Simplified semantics: every occurrence of a secret letter scores,
	// with no multiset accounting.
	assert.Equal(t, FeedbackCode("__YYY"), NewWord("speed").Feedback(NewWord("dance")))
	assert.Equal(t, FeedbackCode("_YY_G"), NewWord("geese").Feedback(NewWord("dance")))
}

func TestAllHit(t *testing.T) {
	assert.True(t, FeedbackCode("GGGGG").AllHit())
	assert.False(t, FeedbackCode("GGGGY").AllHit())
	assert.False(t, FeedbackCode("").AllHit())
}

func TestIsAlpha(t *testing.T) {
	assert.True(t, NewWord("crane").IsAlpha())
	assert.False(t, NewWord("cran3").IsAlpha())
	assert.False(t, NewWord("cran e").IsAlpha())
}
