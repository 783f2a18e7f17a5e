// SPDX-License-Identifier: MIT
// Package axis_test: Merge / Intersect on sorted and unsorted axes.
package axis_test

import (
	"testing"

	"github.com/katalvlaran/lvaxis/axis"
	"github.com/stretchr/testify/require"
)

func abde() *axis.Axis[string] { return axis.New([]string{"a", "b", "d", "e"}) }

// TestMergeWithEmptyIsNoOp: {a,b,d,e} ∪ {} leaves the axis unchanged.
func TestMergeWithEmptyIsNoOp(t *testing.T) {
	a := abde()
	require.True(t, a.Merge(axis.New([]string{})))
	require.Equal(t, []string{"a", "b", "d", "e"}, a.Labels())
}

// TestMergeWithSelfAndSubsetIsNoOp covers idempotence.
func TestMergeWithSelfAndSubsetIsNoOp(t *testing.T) {
	a := abde()
	require.True(t, a.Merge(a))
	require.True(t, a.Merge(axis.Labels("b", "e")))
	require.Equal(t, []string{"a", "b", "d", "e"}, a.Labels())
	require.True(t, a.IsSorted())
}

// TestMergeSorted: {a,b,d,e} ∪ {b,c,d} ∪ {c,g} = {a,b,c,d,e,g} with positions 0..5.
func TestMergeSorted(t *testing.T) {
	for _, kind := range []axis.IndexKind{axis.HashIndex, axis.OrderedIndex} {
		a := axis.New([]string{"a", "b", "d", "e"}, axis.WithIndex(kind))
		same := a.Merge(axis.Labels("b", "c", "d"), axis.Labels("c", "g"))

		require.False(t, same)
		require.Equal(t, []string{"a", "b", "c", "d", "e", "g"}, a.Labels())
		require.True(t, a.IsSorted())
		for want, l := range []string{"a", "b", "c", "d", "e", "g"} {
			p, err := a.Position(l)
			require.NoError(t, err)
			require.Equal(t, want, p)
		}
	}
}

// TestMergeIntoEmptyAdoptsFirst checks adoption of labels and sortedness.
func TestMergeIntoEmptyAdoptsFirst(t *testing.T) {
	var a axis.Axis[string]
	same := a.Merge(axis.New([]string{}), axis.Labels("c", "a"), axis.Labels("b"))
	require.False(t, same)
	require.False(t, a.IsSorted())
	require.ElementsMatch(t, []string{"a", "b", "c"}, a.Labels())
	requireBijection(t, &a)

	var b axis.Axis[int]
	require.True(t, b.Merge())
	require.True(t, b.Merge(axis.New([]int{})))
	require.True(t, b.Empty())
}

// TestMergeAdoptionDoesNotAliasSource ensures the adopted labels are copied.
func TestMergeAdoptionDoesNotAliasSource(t *testing.T) {
	src := axis.New([]int{1, 2})
	var a axis.Axis[int]
	a.Merge(src)
	a.Merge(axis.Labels(0))
	require.Equal(t, []int{1, 2}, src.Labels())
	require.Equal(t, []int{0, 1, 2}, a.Labels())
}

// TestMergeUnsortedPrependsPrefix: sorted {a,b,d,e} ∪ unsorted {h,c,a,b,d,e}.
func TestMergeUnsortedPrependsPrefix(t *testing.T) {
	a := abde()
	b := axis.New([]string{"h", "c", "a", "b", "d", "e"})
	require.False(t, b.IsSorted())

	same := a.Merge(b)
	require.False(t, same)
	require.Equal(t, 6, a.Size())
	require.False(t, a.IsSorted())
	for _, l := range []string{"a", "b", "c", "d", "e", "h"} {
		require.True(t, a.Contains(l), l)
	}
	require.Equal(t, []string{"h", "c", "a", "b", "d", "e"}, a.Labels())
	requireBijection(t, a)
}

// TestMergeUnsortedNoOverlapAppends covers the append side of the policy.
func TestMergeUnsortedNoOverlapAppends(t *testing.T) {
	a := axis.New([]string{"y", "x"})
	same := a.Merge(axis.Labels("z", "w"))
	require.False(t, same)
	require.Equal(t, []string{"y", "x", "z", "w"}, a.Labels())
	requireBijection(t, a)
}

// TestMergeUnsortedPartialOverlapPrepends covers the prepend side of the policy.
func TestMergeUnsortedPartialOverlapPrepends(t *testing.T) {
	a := axis.New([]string{"c", "a", "b"})
	same := a.Merge(axis.Labels("d", "a", "b"))
	require.False(t, same)
	require.Equal(t, []string{"d", "c", "a", "b"}, a.Labels())
	requireBijection(t, a)
}

// TestMergeUnsortedRightToLeft: the last argument is merged first.
func TestMergeUnsortedRightToLeft(t *testing.T) {
	a := axis.New([]string{"b", "a"})
	a.Merge(axis.Labels("c"), axis.Labels("d"))
	require.Equal(t, []string{"b", "a", "d", "c"}, a.Labels())
}

// TestMergeUnsortedSuffixIsNoOp: an argument that is a suffix adds nothing.
func TestMergeUnsortedSuffixIsNoOp(t *testing.T) {
	a := axis.New([]string{"z", "a", "b"})
	require.True(t, a.Merge(axis.Labels("a", "b")))
	require.True(t, a.Merge(axis.Labels("b", "z"))) // reordered subset
	require.Equal(t, []string{"z", "a", "b"}, a.Labels())
	require.False(t, a.IsSorted())
}

// TestUnsortedIsOneWay: a sorted axis touched by the fallback stays unsorted.
func TestUnsortedIsOneWay(t *testing.T) {
	a := axis.New([]int{1, 2, 3})
	a.Merge(axis.Labels(3, 2)) // unsorted argument, no new label
	require.Equal(t, []int{1, 2, 3}, a.Labels())
	require.False(t, a.IsSorted())

	a.Merge(axis.Labels(4, 5)) // sorted argument, but the receiver is unsorted now
	require.False(t, a.IsSorted())
	requireBijection(t, a)
}

// TestIntersectSorted: {a,b,d,e} ∩ {b,c,d} ∩ {a,b,d,f} = {b,d}.
func TestIntersectSorted(t *testing.T) {
	a := abde()
	same := a.Intersect(axis.Labels("b", "c", "d"), axis.Labels("a", "b", "d", "f"))
	require.False(t, same)
	require.Equal(t, []string{"b", "d"}, a.Labels())
	require.True(t, a.IsSorted())
	requireBijection(t, a)
	require.False(t, a.Contains("a"))
}

// TestIntersectWithSelfIsNoOp covers intersect idempotence.
func TestIntersectWithSelfIsNoOp(t *testing.T) {
	a := abde()
	require.True(t, a.Intersect(a))
	require.True(t, a.Intersect(axis.Labels("a", "b", "c", "d", "e")))
	require.Equal(t, []string{"a", "b", "d", "e"}, a.Labels())

	var empty axis.Axis[string]
	require.True(t, empty.Intersect(a))
}

// TestIntersectUnsortedKeepsReceiverOrder covers the positional fallback.
func TestIntersectUnsortedKeepsReceiverOrder(t *testing.T) {
	a := axis.New([]string{"e", "a", "d", "b"})
	same := a.Intersect(axis.Labels("b", "c", "d"))
	require.False(t, same)
	require.Equal(t, []string{"d", "b"}, a.Labels())
	require.False(t, a.IsSorted())
	requireBijection(t, a)

	require.True(t, a.Intersect(axis.Labels("b", "d", "x")))
}

// TestMergeAcceptsDefaultAxisSource: a DefaultAxis can be an argument.
func TestMergeAcceptsDefaultAxisSource(t *testing.T) {
	d, err := axis.NewDefault[int](3)
	require.NoError(t, err)

	a := axis.New([]int{2, 5})
	require.False(t, a.Merge(d))
	require.Equal(t, []int{0, 1, 2, 5}, a.Labels())

	require.False(t, a.Intersect(d))
	require.Equal(t, []int{0, 1, 2}, a.Labels())
}
