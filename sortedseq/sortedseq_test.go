// SPDX-License-Identifier: MIT
// Package sortedseq_test covers the sorted union/intersection primitives.
package sortedseq_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/lvaxis/sortedseq"
	"github.com/stretchr/testify/require"
)

// TestMergeLiteralScenario mirrors the axis-level scenario {a,b,d,e} ∪ {b,c,d} ∪ {c,g}.
func TestMergeLiteralScenario(t *testing.T) {
	out := []string{"a", "b", "d", "e"}
	got, same := sortedseq.Merge(out, []string{"b", "c", "d"}, []string{"c", "g"})

	require.False(t, same)
	require.Equal(t, []string{"a", "b", "c", "d", "e", "g"}, got)
}

// TestMergeNoOp checks that subsets, self and empty inputs leave out untouched.
func TestMergeNoOp(t *testing.T) {
	out := []int{1, 3, 5, 7}

	got, same := sortedseq.Merge(out, nil, []int{3, 7}, out)
	require.True(t, same)
	require.Equal(t, []int{1, 3, 5, 7}, got)

	got, same = sortedseq.Merge(out)
	require.True(t, same)
	require.Equal(t, out, got)
}

// TestMergeTailOnly covers the append-only path (no insertion before the end).
func TestMergeTailOnly(t *testing.T) {
	got, same := sortedseq.Merge([]int{1, 2}, []int{2, 3, 4})
	require.False(t, same)
	require.Equal(t, []int{1, 2, 3, 4}, got)

	got, same = sortedseq.Merge(nil, []int{4, 5})
	require.False(t, same)
	require.Equal(t, []int{4, 5}, got)
}

// TestMergeHeadInsertion covers insertion before the first element.
func TestMergeHeadInsertion(t *testing.T) {
	got, same := sortedseq.Merge([]rune{'m', 'z'}, []rune{'a', 'm'})
	require.False(t, same)
	require.Equal(t, []rune{'a', 'm', 'z'}, got)
}

// TestMergeMatchesSortCompact compares Merge against sort+compact on random data.
func TestMergeMatchesSortCompact(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) // deterministic fixture
	for round := 0; round < 50; round++ {
		inputs := make([][]int, 1+rng.Intn(4))
		var all []int
		for k := range inputs {
			inputs[k] = randomSortedSet(rng, rng.Intn(20), 40)
			all = append(all, inputs[k]...)
		}
		out := randomSortedSet(rng, rng.Intn(20), 40)
		all = append(all, out...)
		slices.Sort(all)
		want := slices.Compact(all)

		got, _ := sortedseq.Merge(slices.Clone(out), inputs...)
		require.Equal(t, nonNil(want), nonNil(got), "round %d", round)
		require.True(t, sortedseq.IsStrictlySorted(got))
	}
}

// TestIntersectLiteralScenario mirrors {a,b,d,e} ∩ {b,c,d} ∩ {a,b,d,f} = {b,d}.
func TestIntersectLiteralScenario(t *testing.T) {
	out := []string{"a", "b", "d", "e"}
	got, same := sortedseq.Intersect(out, []string{"b", "c", "d"}, []string{"a", "b", "d", "f"})

	require.False(t, same)
	require.Equal(t, []string{"b", "d"}, got)
}

// TestIntersectNoOp checks self-intersection and supersets.
func TestIntersectNoOp(t *testing.T) {
	out := []uint{2, 4, 6}
	got, same := sortedseq.Intersect(out, []uint{2, 4, 6}, []uint{1, 2, 3, 4, 5, 6})
	require.True(t, same)
	require.Equal(t, []uint{2, 4, 6}, got)
}

// TestIntersectEmpty ensures that an empty input empties the receiver.
func TestIntersectEmpty(t *testing.T) {
	got, same := sortedseq.Intersect([]int{1, 2}, []int{})
	require.False(t, same)
	require.Empty(t, got)
}

// TestIntersectClearsTail verifies that dropped elements are zeroed in the backing array.
func TestIntersectClearsTail(t *testing.T) {
	out := []string{"a", "b", "c"}
	got, _ := sortedseq.Intersect(out, []string{"a"})
	require.Equal(t, []string{"a"}, got)
	require.Equal(t, []string{"a", "", ""}, out[:3])
}

// TestSortedness distinguishes non-decreasing from strictly ascending.
func TestSortedness(t *testing.T) {
	require.True(t, sortedseq.IsSorted([]string{"a", "b", "c"}))
	require.False(t, sortedseq.IsSorted([]string{"c", "b", "a"}))
	require.True(t, sortedseq.IsSorted([]string{"b", "b", "c"}))
	require.False(t, sortedseq.IsStrictlySorted([]string{"b", "b", "c"}))
	require.True(t, sortedseq.IsStrictlySorted([]int{}))
}

func randomSortedSet(rng *rand.Rand, n, limit int) []int {
	seen := make(map[int]struct{}, n)
	out := make([]int, 0, n)
	for len(out) < n {
		v := rng.Intn(limit)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// nonNil normalizes a nil slice to an empty one so require.Equal compares content.
func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}

	return s
}
