// SPDX-License-Identifier: MIT

// Package axis - set algebra (Merge / Intersect).
//
// Algorithm choice is a run-time branch on the stored sortedness of the
// receiver and of every argument:
//   - all sorted: linear sortedseq kernels; the receiver stays sorted.
//   - otherwise:  positional fallback below; the receiver becomes unsorted
//     permanently (labels now carry positional meaning unrelated to order).
//
// Both operations return true iff the receiver's labels were left unchanged,
// and rebuild the index only when they changed.
package axis

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvaxis/sortedseq"
)

// Merge extends the axis with the labels of every source (set union).
//
// Implementation:
//   - Stage 1: snapshot the label lists of the sources once.
//   - Stage 2: an empty receiver adopts the first non-empty source (labels and
//     sortedness) and merges the remaining ones.
//   - Stage 3: all sorted → sortedseq.Merge; else mergeUnsorted.
//   - Stage 4: rebuild the index if anything changed.
//
// Returns:
//   - bool: true iff the receiver already contained the union (no label added).
//
// Complexity:
//   - Sorted: O(n + Σm). Unsorted: O(n + Σm) expected with hashing,
//     plus O(n) per source that grows the axis.
func (a *Axis[L]) Merge(srcs ...Source[L]) bool {
	lists, sorted := snapshot(srcs)

	adopted := false
	if len(a.labels) == 0 {
		for len(lists) > 0 && len(lists[0]) == 0 {
			lists, sorted = lists[1:], sorted[1:]
		}
		if len(lists) == 0 {
			return true
		}
		a.labels = slices.Clone(lists[0])
		a.unsorted = !sorted[0]
		lists, sorted = lists[1:], sorted[1:]
		adopted = true
	}

	var unchanged bool
	if !a.unsorted && !slices.Contains(sorted, false) {
		a.labels, unchanged = sortedseq.Merge(a.labels, lists...)
	} else {
		unchanged = a.mergeUnsorted(lists)
		a.unsorted = true
	}

	if adopted || !unchanged {
		a.populateIndex()
	}

	return unchanged && !adopted
}

// Intersect restricts the axis to the labels present in every source.
// An empty receiver is left as is. Returns true iff no label was removed.
//
// Complexity: sorted O(n + Σm); unsorted O(n + m) per source (hash set of the source).
func (a *Axis[L]) Intersect(srcs ...Source[L]) bool {
	if len(a.labels) == 0 {
		return true
	}
	lists, sorted := snapshot(srcs)

	var unchanged bool
	if !a.unsorted && !slices.Contains(sorted, false) {
		a.labels, unchanged = sortedseq.Intersect(a.labels, lists...)
	} else {
		unchanged = a.intersectUnsorted(lists)
		a.unsorted = true
	}

	if !unchanged {
		a.populateIndex()
	}

	return unchanged
}

func snapshot[L cmp.Ordered](srcs []Source[L]) ([][]L, []bool) {
	lists := make([][]L, len(srcs))
	sorted := make([]bool, len(srcs))
	for i, s := range srcs {
		if s == nil {
			sorted[i] = true
			continue
		}
		lists[i] = s.Labels()
		sorted[i] = s.IsSorted()
	}

	return lists, sorted
}

// mergeUnsorted folds the sources right to left so that earlier sources see
// the result of later ones. Returns true iff no label was added.
func (a *Axis[L]) mergeUnsorted(lists [][]L) bool {
	unchanged := true
	for k := len(lists) - 1; k >= 0; k-- {
		if !a.mergeUnsortedOne(lists[k]) {
			unchanged = false
		}
	}

	return unchanged
}

// mergeUnsortedOne merges a single source by matching the trailing run the
// receiver and the source share.
//
// Cases (i, j = unmatched lengths of receiver and source):
//   - j == 0: the source is a suffix of the receiver; nothing to add.
//   - i == 0: the receiver is a suffix of the source; prepend source[:j].
//   - else:   collect source[:j] labels missing from the receiver, in source
//     order; append them when nothing matched at all, prepend otherwise.
func (a *Axis[L]) mergeUnsortedOne(in []L) bool {
	i, j := len(a.labels), len(in)
	for i > 0 && j > 0 && a.labels[i-1] == in[j-1] {
		i--
		j--
	}

	switch {
	case j == 0:
		return true
	case i == 0:
		a.labels = slices.Concat(in[:j], a.labels)
		return false
	}

	present := make(map[L]struct{}, len(a.labels))
	for _, l := range a.labels {
		present[l] = struct{}{}
	}
	var missing []L
	for _, l := range in[:j] {
		if _, ok := present[l]; ok {
			continue
		}
		present[l] = struct{}{}
		missing = append(missing, l)
	}
	if len(missing) == 0 {
		return true
	}

	if i == len(a.labels) {
		a.labels = append(a.labels, missing...)
	} else {
		a.labels = slices.Concat(missing, a.labels)
	}

	return false
}

// intersectUnsorted erases, per source, every receiver label the source lacks.
// The receiver's relative order is preserved.
func (a *Axis[L]) intersectUnsorted(lists [][]L) bool {
	unchanged := true
	for _, in := range lists {
		keep := make(map[L]struct{}, len(in))
		for _, l := range in {
			keep[l] = struct{}{}
		}
		w := 0
		for _, l := range a.labels {
			if _, ok := keep[l]; ok {
				a.labels[w] = l
				w++
			}
		}
		if w != len(a.labels) {
			clear(a.labels[w:])
			a.labels = a.labels[:w]
			unchanged = false
		}
	}

	return unchanged
}
