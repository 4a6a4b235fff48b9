package corpus_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/embedchain/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catDog = []string{"the cat sat on the mat", "the dog sat on the rug"}

// sampleCorpus is a small corpus with repeated structure.
var sampleCorpus = []string{
	"the quick brown fox jumps over the lazy dog",
	"the lazy dog sleeps in the warm sun",
	"a quick brown fox runs through the forest",
	"the dog chases the quick fox",
	"brown bears sleep in the forest",
	"the sun warms the lazy bears",
}

// TestTokenize covers lowercasing, apostrophes, digits and the length filter.
func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"The CAT sat.", []string{"the", "cat", "sat"}},
		{"Don't stop, a b c 42!", []string{"don't", "stop", "42"}},
		{"über-naïve ça", []string{"über", "naïve", "ça"}},
		{"", []string{}},
		{"a ... b", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := corpus.Tokenize(tc.in)
			if len(tc.want) == 0 {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tc.want, got)
		})
	}
}

// TestOptionsValidation ensures invalid options fail fast.
func TestOptionsValidation(t *testing.T) {
	_, err := corpus.NewStatistics(catDog, corpus.Options{Window: 0, MinCount: 1})
	require.ErrorIs(t, err, corpus.ErrBadWindow)

	_, err = corpus.NewStatistics(catDog, corpus.Options{Window: 2, MinCount: 0})
	require.ErrorIs(t, err, corpus.ErrBadMinCount)
}

// TestEmptyCorpus verifies degenerate input is not an error.
func TestEmptyCorpus(t *testing.T) {
	for _, sentences := range [][]string{nil, {""}, {"a b c"}, {"one two", "three four"}} {
		st, err := corpus.NewStatistics(sentences, corpus.Options{Window: 3, MinCount: 2})
		require.NoError(t, err)
		require.Zero(t, st.Vocabulary().Len())
		require.Empty(t, st.PPMI())
		require.Zero(t, st.NNZ())
		require.Zero(t, st.Total())
		require.Nil(t, st.Matrix())
		require.Zero(t, st.Weight(0, 0))
	}
}

// TestCatDogScenario checks vocabulary filtering at min_count=2.
func TestCatDogScenario(t *testing.T) {
	st, err := corpus.NewStatistics(catDog, corpus.Options{Window: 3, MinCount: 2})
	require.NoError(t, err)

	vocab := st.Vocabulary()
	require.Equal(t, []string{"on", "sat", "the"}, vocab.Words())
	for _, singleton := range []string{"cat", "dog", "mat", "rug"} {
		_, ok := vocab.Index(singleton)
		require.False(t, ok, singleton)
		require.Equal(t, 1, st.Frequency(singleton))
	}
	require.Equal(t, 4, st.Frequency("the"))

	// Filtered tokens still occupy positions: sat–on at distance 1 twice.
	assert.Equal(t, 2.0, st.WordWeight("sat", "on"))
	// the–sat at distance 2 twice per sentence.
	assert.Equal(t, 2.0, st.WordWeight("the", "sat"))
	assert.InDelta(t, 8.0/3.0, st.WordWeight("the", "on"), 1e-12)
	assert.Equal(t, 2, st.Sentences())
	assert.Equal(t, 12, st.Tokens())
}

// TestCatSatWeight checks the cat–sat cell on a build that keeps singletons.
func TestCatSatWeight(t *testing.T) {
	st, err := corpus.NewStatistics(catDog, corpus.Options{Window: 3, MinCount: 1})
	require.NoError(t, err)

	require.Equal(t, 7, st.Vocabulary().Len())
	require.Greater(t, st.WordWeight("cat", "sat"), 0.0)
	require.Equal(t, 1.0, st.WordWeight("cat", "sat"))
	require.Equal(t, st.WordWeight("cat", "sat"), st.WordWeight("sat", "cat"))
}

// TestSymmetry checks w(i,j) and w(j,i) are bit-identical for every cell.
func TestSymmetry(t *testing.T) {
	st, err := corpus.NewStatistics(sampleCorpus, corpus.Options{Window: 4, MinCount: 1})
	require.NoError(t, err)
	require.NotZero(t, st.NNZ())

	for _, c := range st.Cells() {
		require.Equal(t, math.Float64bits(c.Weight), math.Float64bits(st.Weight(c.J, c.I)),
			"cell (%d,%d)", c.I, c.J)
	}
}

// TestMarginals checks row sums and total against the cells.
func TestMarginals(t *testing.T) {
	st, err := corpus.NewStatistics(sampleCorpus, corpus.Options{Window: 2, MinCount: 1})
	require.NoError(t, err)

	rows := make([]float64, st.Vocabulary().Len())
	for _, c := range st.Cells() {
		rows[c.I] += c.Weight
	}
	var total float64
	for i, r := range rows {
		assert.InDelta(t, r, st.RowSum(i), 1e-12)
		total += r
	}
	assert.InDelta(t, total, st.Total(), 1e-9)
	assert.Zero(t, st.RowSum(-1))
}

// TestPPMI_PositiveAndOrdered verifies every score is > 0 and the list is
// sorted by (I, J).
func TestPPMI_PositiveAndOrdered(t *testing.T) {
	st, err := corpus.NewStatistics(sampleCorpus, corpus.Options{Window: 3, MinCount: 1})
	require.NoError(t, err)

	ppmi := st.PPMI()
	require.NotEmpty(t, ppmi)
	require.LessOrEqual(t, len(ppmi), st.NNZ())
	for k, e := range ppmi {
		require.Greater(t, e.Score, 0.0)
		if k > 0 {
			prev := ppmi[k-1]
			require.True(t, prev.I < e.I || (prev.I == e.I && prev.J < e.J))
		}
	}

	again, err := corpus.NewStatistics(sampleCorpus, corpus.Options{Window: 3, MinCount: 1})
	require.NoError(t, err)
	require.Equal(t, ppmi, again.PPMI())
}

// TestPPMI_Formula recomputes one entry by hand.
func TestPPMI_Formula(t *testing.T) {
	st, err := corpus.NewStatistics(catDog, corpus.Options{Window: 3, MinCount: 1})
	require.NoError(t, err)

	for _, e := range st.PPMI() {
		pij := st.Weight(e.I, e.J) / st.Total()
		pi := st.RowSum(e.I) / st.Total()
		pj := st.RowSum(e.J) / st.Total()
		assert.InDelta(t, math.Log(pij/(pi*pj)), e.Score, 1e-12)
	}
}

// ExampleNewStatistics builds the table for two sentences.
func ExampleNewStatistics() {
	st, _ := corpus.NewStatistics(
		[]string{"the cat sat on the mat", "the dog sat on the rug"},
		corpus.Options{Window: 3, MinCount: 2},
	)
	fmt.Println(st.Vocabulary().Words())
	fmt.Println(st.WordWeight("sat", "on"))
	// Output:
	// [on sat the]
	// 2
}
