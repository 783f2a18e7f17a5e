// SPDX-License-Identifier: MIT

package axis

import (
	"cmp"
	"slices"
)

// positionIndex is the secondary label→position lookup of an Axis.
// Duplicate labels resolve to their first occurrence.
type positionIndex[L cmp.Ordered] interface {
	find(l L) (int, bool)
}

// hashIndex maps each label to its position.
type hashIndex[L cmp.Ordered] map[L]int

func newHashIndex[L cmp.Ordered](labels []L) hashIndex[L] {
	m := make(hashIndex[L], len(labels))
	for i, l := range labels {
		if _, dup := m[l]; !dup {
			m[l] = i
		}
	}

	return m
}

func (h hashIndex[L]) find(l L) (int, bool) {
	p, ok := h[l]

	return p, ok
}

// orderedIndex answers lookups by binary search over labels viewed through
// perm. A nil perm means labels are already sorted.
type orderedIndex[L cmp.Ordered] struct {
	labels []L
	perm   []int
}

func newOrderedIndex[L cmp.Ordered](labels []L, sorted bool) *orderedIndex[L] {
	if sorted {
		return &orderedIndex[L]{labels: labels}
	}
	perm := make([]int, len(labels))
	for i := range perm {
		perm[i] = i
	}
	// Stable: among equal labels the first occurrence sorts first.
	slices.SortStableFunc(perm, func(a, b int) int { return cmp.Compare(labels[a], labels[b]) })

	return &orderedIndex[L]{labels: labels, perm: perm}
}

func (o *orderedIndex[L]) find(l L) (int, bool) {
	if o.perm == nil {
		i, ok := slices.BinarySearch(o.labels, l)
		if !ok {
			return 0, false
		}

		return i, true
	}
	i, ok := slices.BinarySearchFunc(o.perm, l, func(p int, t L) int { return cmp.Compare(o.labels[p], t) })
	if !ok {
		return 0, false
	}

	return o.perm[i], true
}
