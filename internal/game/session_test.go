package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/prompter/internal/solver"
)

func newTestSession(words []string, rounds int) *Session {
	return NewSession(solver.NewPool(words), solver.PartitionCount{}, 1, rounds)
}

func TestApplyWin(t *testing.T) {
	s := newTestSession([]string{"words"}, 6)

	state, err := s.Apply("words", "GGGGG")
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)

	// Further rounds are rejected.
	_, err = s.Apply("words", "GGGGG")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestApplyFilters(t *testing.T) {
	s := newTestSession([]string{"abcde", "fghij"}, 6)

	state, err := s.Apply("abcde", "_____")
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, state)
	assert.Equal(t, 1, s.Remaining())
	assert.Equal(t, solver.Pool{"fghij"}, s.Candidates())
}

func TestApplyStuck(t *testing.T) {
	s := newTestSession([]string{"crane", "slate"}, 6)

	// Claim z is present: no candidate contains z.
	state, err := s.Apply("zzzzz", "Y____")
	require.NoError(t, err)
	assert.Equal(t, StateStuck, state)
	assert.Equal(t, 0, s.Remaining())
}

func TestApplyLost(t *testing.T) {
	s := newTestSession([]string{"crane", "slate", "haste", "paste", "taste"}, 1)

	// One uninformative round exhausts the budget with >1 candidate left.
	state, err := s.Apply("jumbo", "_____")
	require.NoError(t, err)
	assert.Equal(t, StateLost, state)
}

func TestApplyValidation(t *testing.T) {
	s := newTestSession([]string{"crane", "slate"}, 6)

	_, err := s.Apply("cran", "GGGG")
	var wl *solver.WordLengthError
	assert.ErrorAs(t, err, &wl)

	_, err = s.Apply("cr4ne", "GGGGG")
	assert.Error(t, err)

	_, err = s.Apply("crane", "GGGG")
	var cl *solver.ColorCodeLengthError
	assert.ErrorAs(t, err, &cl)

	_, err = s.Apply("crane", "GGGGQ")
	var ic *solver.InvalidColorCodeError
	assert.ErrorAs(t, err, &ic)

	// Failed validation consumes no round and leaves the session playable.
	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 0, s.Round())
}

func TestSuggest(t *testing.T) {
	s := newTestSession([]string{"aaaaa", "abbbb", "bbbbb"}, 6)

	top := s.Suggest(2)
	require.Len(t, top, 2)
	assert.GreaterOrEqual(t, top[0].Score, top[1].Score)

	all := s.Suggest(10)
	assert.Len(t, all, 3)
}
