package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairs_Empty(t *testing.T) {
	for _, n := range []int{0, 1} {
		p := NewPairs(0, n)
		_, _, ok := p.Next()
		assert.False(t, ok, "n=%d should yield nothing", n)
	}
}

func TestPairs_Two(t *testing.T) {
	p := NewPairs(0, 2)

	i, j, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 1}, [2]int{i, j})

	_, _, ok = p.Next()
	assert.False(t, ok)
}

func TestPairs_Four(t *testing.T) {
	got := NewPairs(0, 4).Iterator().Collect()
	want := []Pair{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	assert.Equal(t, want, got)
}

func TestPairs_StaysExhausted(t *testing.T) {
	p := NewPairs(0, 3)
	assert.Equal(t, 3, p.Iterator().Count())

	for range 3 {
		_, _, ok := p.Next()
		assert.False(t, ok)
	}
	assert.Equal(t, 0, p.Iterator().Count(), "a drained enumerator must not restart")
}

func TestPairs_Offset(t *testing.T) {
	got := NewPairs(3, 6).Iterator().Collect()
	assert.Equal(t, []Pair{{3, 4}, {3, 5}, {4, 5}}, got)
}

func TestPairs_CoversAllCombinations(t *testing.T) {
	for n := 0; n <= 12; n++ {
		pairs := NewPairs(0, n).Iterator().Collect()
		require.Len(t, pairs, PairCount(n), "n=%d", n)

		seen := make(map[Pair]struct{}, len(pairs))
		for _, p := range pairs {
			assert.Less(t, p.I, p.J)
			_, dup := seen[p]
			assert.False(t, dup, "duplicate pair %v", p)
			seen[p] = struct{}{}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				assert.Contains(t, seen, Pair{i, j})
			}
		}
	}
}

func TestPairs_RangeOverFuncStopsEarly(t *testing.T) {
	p := NewPairs(0, 5)
	first := 0
	for i, j := range p.All() {
		assert.Equal(t, 0, i)
		assert.Equal(t, 1, j)
		first++
		break
	}
	assert.Equal(t, 1, first)

	i, j, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 2}, [2]int{i, j}, "breaking out of All keeps the enumerator position")
}

func TestIterator_FilterAndFold(t *testing.T) {
	it := From([]int{1, 2, 3, 4, 5, 6}).Filter(func(v int) bool { return v%2 == 0 })
	sum := Fold(it, 0, func(acc, v int) int { return acc + v })
	assert.Equal(t, 12, sum)
}

func BenchmarkPairs(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := NewPairs(0, 256)
		for range p.All() {
		}
	}
}
