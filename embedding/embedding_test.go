package embedding_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/embedchain/embedding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnitFromPair_RangeAndDeterminism checks the [-1,1) range and that the
// value depends only on its arguments.
func TestUnitFromPair_RangeAndDeterminism(t *testing.T) {
	for a := uint64(0); a < 50; a++ {
		for b := uint64(0); b < 50; b++ {
			v := embedding.UnitFromPair(a, b)
			require.GreaterOrEqual(t, v, -1.0)
			require.Less(t, v, 1.0)
			require.Equal(t, math.Float64bits(v), math.Float64bits(embedding.UnitFromPair(a, b)))
		}
	}
	assert.NotEqual(t, embedding.UnitFromPair(1, 2), embedding.UnitFromPair(2, 1))
}

// TestHashVector covers unit norm, determinism and distinct words.
func TestHashVector(t *testing.T) {
	a := embedding.HashVector("anchor", 16)
	b := embedding.HashVector("anchor", 16)
	c := embedding.HashVector("other", 16)

	require.Len(t, a, 16)
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.True(t, embedding.IsUnitOrZero(a, 1e-12))
	require.Nil(t, embedding.HashVector("x", 0))
}

// TestNormalize_ZeroPolicy verifies zero and non-finite vectors become zero.
func TestNormalize_ZeroPolicy(t *testing.T) {
	v := []float64{3, 4}
	require.True(t, embedding.Normalize(v))
	assert.InDelta(t, 0.6, v[0], 1e-12)
	assert.InDelta(t, 0.8, v[1], 1e-12)

	z := []float64{0, 0, 0}
	require.False(t, embedding.Normalize(z))
	require.Equal(t, []float64{0, 0, 0}, z)

	bad := []float64{math.Inf(1), 1}
	require.False(t, embedding.Normalize(bad))
	require.Equal(t, []float64{0, 0}, bad)

	src := []float64{0, 2}
	out := embedding.Normalized(src)
	require.Equal(t, []float64{0, 2}, src) // input untouched
	require.Equal(t, []float64{0, 1}, out)
}

// TestNormalize_LargeMagnitude checks components near the float64 limit
// normalize instead of overflowing to a zero vector.
func TestNormalize_LargeMagnitude(t *testing.T) {
	v := []float64{1e300, 1e300}
	require.True(t, embedding.Normalize(v))
	assert.InDelta(t, math.Sqrt2/2, v[0], 1e-15)
	assert.Equal(t, v[0], v[1])
	assert.True(t, embedding.IsUnitOrZero(v, 1e-12))

	tiny := []float64{3e-310, 4e-310}
	require.True(t, embedding.Normalize(tiny))
	assert.InDelta(t, 0.6, tiny[0], 1e-9)
	assert.InDelta(t, 0.8, tiny[1], 1e-9)
}

// TestTable_CloneMerge verifies deep-copy semantics and override order.
func TestTable_CloneMerge(t *testing.T) {
	base := embedding.Table{"a": {1, 0}, "b": {0, 1}}
	clone := base.Clone()
	clone["a"][0] = 9
	require.Equal(t, 1.0, base["a"][0])

	override := embedding.Table{"b": {1, 1}, "c": {2, 2}}
	base.Merge(override)
	override["b"][0] = 7
	require.Equal(t, []float64{1, 1}, base["b"]) // merged value, not aliased
	require.Equal(t, []string{"a", "b", "c"}, base.Words())

	got, ok := base.Get("c")
	require.True(t, ok)
	got[0] = 0
	require.Equal(t, 2.0, base["c"][0])
	_, ok = base.Get("zzz")
	require.False(t, ok)
}

// TestProject_Distribution checks non-negativity and unit sum across shapes.
func TestProject_Distribution(t *testing.T) {
	cases := []struct {
		name  string
		v     []float64
		width int
	}{
		{"longer than width", embedding.HashVector("w", 64), 9},
		{"shorter than width", []float64{0.5, -0.5, 1}, 9},
		{"empty", nil, 9},
		{"exact width", []float64{1, 2, 3}, 3},
		{"large values", []float64{1e6, -1e6, 1e6}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := embedding.Project(tc.v, tc.width)
			require.Len(t, p, tc.width)
			var sum float64
			for _, x := range p {
				require.GreaterOrEqual(t, x, 0.0)
				require.False(t, math.IsNaN(x))
				sum += x
			}
			assert.InDelta(t, 1.0, sum, 1e-2)
		})
	}
	require.Nil(t, embedding.Project([]float64{1}, 0))
}

// TestProject_Stride verifies which elements survive the stride.
func TestProject_Stride(t *testing.T) {
	v := []float64{0, 100, 1, 100, 2, 100}
	p := embedding.Project(v, 3) // stride 2 keeps 0, 1, 2
	require.Len(t, p, 3)
	assert.Less(t, p[0], p[1])
	assert.Less(t, p[1], p[2])
}

// TestTopByMagnitude ranks by norm with the word as tie-break.
func TestTopByMagnitude(t *testing.T) {
	tab := embedding.Table{
		"small": {0.1, 0},
		"big":   {3, 4},
		"b1":    {1, 0},
		"a1":    {0, 1},
		"zero":  {0, 0},
	}
	require.Equal(t, []string{"big", "a1", "b1"}, embedding.TopByMagnitude(tab, 3))
	require.Len(t, embedding.TopByMagnitude(tab, 99), 5)
	require.Nil(t, embedding.TopByMagnitude(tab, 0))
}

// TestNearest excludes the query word and zero vectors.
func TestNearest(t *testing.T) {
	tab := embedding.Table{
		"east":  {1, 0},
		"north": {0, 1},
		"ne":    {1, 1},
		"west":  {-1, 0},
		"void":  {0, 0},
	}
	got := embedding.Nearest(tab, tab["east"], 2, "east")
	require.Len(t, got, 2)
	require.Equal(t, "ne", got[0].Word)
	assert.InDelta(t, math.Sqrt2/2, got[0].Similarity, 1e-12)
	require.Equal(t, "north", got[1].Word)

	all := embedding.Nearest(tab, tab["east"], 10, "east")
	require.Len(t, all, 3) // void skipped
	require.Equal(t, "west", all[2].Word)

	require.Nil(t, embedding.Nearest(tab, []float64{0, 0}, 3, ""))
	require.Zero(t, embedding.Cosine([]float64{1}, []float64{1, 2}))
}

// ExampleProject shows the stride-and-softmax projection of a short vector.
func ExampleProject() {
	p := embedding.Project([]float64{0, 0, 0}, 3)
	fmt.Printf("%.3f %.3f %.3f\n", p[0], p[1], p[2])
	// Output: 0.333 0.333 0.333
}
