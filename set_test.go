package frozen_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orca-zhang/frozen"
)

func sortedStrings(vals []string) []string {
	out := append([]string(nil), vals...)
	sort.Strings(out)
	return out
}

func TestSet_ContainsAndGet(t *testing.T) {
	s, err := frozen.NewSet([]string{"red", "green", "blue"})
	require.NoError(t, err)

	assert.True(t, s.Contains("red"))
	assert.False(t, s.Contains("yellow"))

	v, ok := s.Get("green")
	require.True(t, ok)
	assert.Equal(t, "green", v)

	assert.Equal(t, 3, s.Len())
	assert.False(t, s.IsEmpty())
}

func TestSet_Empty(t *testing.T) {
	s, err := frozen.NewSet([]int{})
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
}

func TestSet_MustGet(t *testing.T) {
	s, err := frozen.NewSet([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a", s.MustGet("a"))
	assert.Panics(t, func() { s.MustGet("z") })
}

func TestSet_All(t *testing.T) {
	s, err := frozen.NewSet([]int{1, 2, 3, 4, 5})
	require.NoError(t, err)

	seen := make(map[int]bool)
	for v := range s.All() {
		seen[v] = true
	}
	assert.Len(t, seen, 5)
	for i := 1; i <= 5; i++ {
		assert.True(t, seen[i])
	}
}

func TestSet_Union(t *testing.T) {
	a, err := frozen.NewSet([]string{"a", "b", "c"})
	require.NoError(t, err)
	b, err := frozen.NewSet([]string{"b", "c", "d"})
	require.NoError(t, err)

	got := sortedStrings(frozen.Union[string](a, b))
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestSet_Intersect(t *testing.T) {
	a, err := frozen.NewSet([]string{"a", "b", "c"})
	require.NoError(t, err)
	b, err := frozen.NewSet([]string{"b", "c", "d"})
	require.NoError(t, err)

	got := sortedStrings(frozen.Intersect[string](a, b))
	assert.Equal(t, []string{"b", "c"}, got)
}

func TestSet_Difference(t *testing.T) {
	a, err := frozen.NewSet([]string{"a", "b", "c"})
	require.NoError(t, err)
	b, err := frozen.NewSet([]string{"b", "c", "d"})
	require.NoError(t, err)

	got := sortedStrings(frozen.Difference[string](a, b))
	assert.Equal(t, []string{"a"}, got)
}

func TestSet_SymmetricDifference(t *testing.T) {
	a, err := frozen.NewSet([]string{"a", "b", "c"})
	require.NoError(t, err)
	b, err := frozen.NewSet([]string{"b", "c", "d"})
	require.NoError(t, err)

	got := sortedStrings(frozen.SymmetricDifference[string](a, b))
	assert.Equal(t, []string{"a", "d"}, got)
}

func TestSet_SubsetSupersetDisjoint(t *testing.T) {
	small, err := frozen.NewSet([]string{"a", "b"})
	require.NoError(t, err)
	big, err := frozen.NewSet([]string{"a", "b", "c", "d"})
	require.NoError(t, err)
	other, err := frozen.NewSet([]string{"x", "y"})
	require.NoError(t, err)

	assert.True(t, frozen.IsSubset[string](small, big))
	assert.False(t, frozen.IsSubset[string](big, small))

	assert.True(t, frozen.IsSuperset[string](big, small))
	assert.False(t, frozen.IsSuperset[string](small, big))

	assert.True(t, frozen.IsDisjoint[string](small, other))
	assert.False(t, frozen.IsDisjoint[string](small, big))
}
