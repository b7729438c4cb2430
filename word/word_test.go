package word_test

import (
	"testing"

	"github.com/qmonoid/rookzero/code"
	"github.com/qmonoid/rookzero/enum"
	"github.com/qmonoid/rookzero/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromCode_Identity checks that identity codes of any rank emit
// the empty word.
func TestFromCode_Identity(t *testing.T) {
	for n := 0; n <= 6; n++ {
		w, err := word.FromCode(code.Identity(n))
		require.NoError(t, err)
		assert.Empty(t, w, "identity code of rank %d must read as the empty word", n)
	}
}

// TestFromCode_Reference pins two hand-worked words: the all-cleared
// rank-2 code and the worked-example code of (2,0,3,0,4).
func TestFromCode_Reference(t *testing.T) {
	w, err := word.FromCode(code.Code{0, 0})
	require.NoError(t, err)
	assert.Equal(t, word.Word{0, 1, 0}, w)

	w, err = word.FromCode(code.Code{0, 1, 2, 4, -1})
	require.NoError(t, err)
	assert.Equal(t, word.Word{0, 1, 2, 4, 3, 2, 1, 0, 1}, w)
}

// TestFromCode_RejectsInvalid gates word emission on code validity.
func TestFromCode_RejectsInvalid(t *testing.T) {
	_, err := word.FromCode(code.Code{2})
	assert.ErrorIs(t, err, code.ErrInvalidCode)
}

// TestMinRank covers the empty word and letter maxima.
func TestMinRank(t *testing.T) {
	assert.Equal(t, 0, word.MinRank(word.Word{}))
	assert.Equal(t, 1, word.MinRank(word.Word{0, 0, 0}))
	assert.Equal(t, 5, word.MinRank(word.Word{1, 4, 2}))
}

// TestApply_EmptyWord folds nothing and returns the identity code of
// the requested rank, rank zero included.
func TestApply_EmptyWord(t *testing.T) {
	c, err := word.Apply(word.Word{}, 0)
	require.NoError(t, err)
	assert.Empty(t, c)

	c, err = word.Apply(word.Word{}, 3)
	require.NoError(t, err)
	assert.Equal(t, code.Identity(3), c)
}

// TestApply_Errors covers negative letters and undersized ranks.
func TestApply_Errors(t *testing.T) {
	_, err := word.Apply(word.Word{0, -1}, 2)
	assert.ErrorIs(t, err, word.ErrGeneratorRange)

	_, err = word.Apply(word.Word{3}, 3)
	assert.ErrorIs(t, err, word.ErrRankRange, "letter 3 needs rank 4")
}

// TestCanonize_Reference pins the worked canonization: the word
// (1,0,1,0) collapses to (0,1,0).
func TestCanonize_Reference(t *testing.T) {
	got, err := word.Canonize(word.Word{1, 0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, word.Word{0, 1, 0}, got)
}

// TestCanonize_MergesIdempotentRuns checks π(0)π(0) ~ π(0) and that
// distant letters commute.
func TestCanonize_MergesIdempotentRuns(t *testing.T) {
	squash, err := word.Canonize(word.Word{0, 0})
	require.NoError(t, err)
	assert.Equal(t, word.Word{0}, squash)

	left, err := word.Canonize(word.Word{0, 2})
	require.NoError(t, err)
	right, err := word.Canonize(word.Word{2, 0})
	require.NoError(t, err)
	assert.Equal(t, left, right, "π(0) and π(2) commute")
	assert.Equal(t, word.Word{0, 2}, left)
}

// TestCanonize_SeparatesBraidOrders checks that π(1)π(0)π(1) and
// π(0)π(1)π(0) are distinct elements: both words are already
// canonical and differ.
func TestCanonize_SeparatesBraidOrders(t *testing.T) {
	a, err := word.Canonize(word.Word{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, word.Word{1, 0, 1}, a)

	b, err := word.Canonize(word.Word{0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, word.Word{0, 1, 0}, b)

	assert.NotEqual(t, a, b)
}

// TestIsActionReduced covers reduced and non-reduced samples,
// including a word that is reduced yet not canonical.
func TestIsActionReduced(t *testing.T) {
	ok, err := word.IsActionReduced(word.Word{})
	require.NoError(t, err)
	assert.True(t, ok, "the empty word is reduced")

	ok, err = word.IsActionReduced(word.Word{0, 0})
	require.NoError(t, err)
	assert.False(t, ok, "the second π(0) fixes the rook")

	ok, err = word.IsActionReduced(word.Word{1, 1})
	require.NoError(t, err)
	assert.False(t, ok, "the second π(1) fixes the rook")

	// Reduced but longer than its canonical form (0,1,0).
	ok, err = word.IsActionReduced(word.Word{1, 0, 1, 0})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = word.IsActionReduced(word.Word{-2})
	assert.ErrorIs(t, err, word.ErrGeneratorRange)
}

// TestCanonicalWords_Exhaustive verifies the canonical-word laws over
// every code of rank up to 5: the word rebuilds its code at full rank,
// it is action-reduced, and it is a fixed point of Canonize.
func TestCanonicalWords_Exhaustive(t *testing.T) {
	for n := 0; n <= 5; n++ {
		err := enum.EachCode(n, func(c code.Code) bool {
			w, err := word.FromCode(c)
			if !assert.NoError(t, err) {
				return false
			}
			rebuilt, err := word.Apply(w, n)
			if !assert.NoError(t, err) {
				return false
			}
			if !assert.Equal(t, c, rebuilt, "word %s does not rebuild %s", w, c) {
				return false
			}
			reduced, err := word.IsActionReduced(w)
			if !assert.NoError(t, err) {
				return false
			}
			if !assert.True(t, reduced, "canonical word %s of %s must be reduced", w, c) {
				return false
			}
			canon, err := word.Canonize(w)
			if !assert.NoError(t, err) {
				return false
			}
			return assert.Equal(t, w, canon, "canonical word %s must canonize to itself", w)
		})
		require.NoError(t, err)
	}
}
