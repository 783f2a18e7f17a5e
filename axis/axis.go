// SPDX-License-Identifier: MIT

// Package axis - Axis storage & lookups.
//
// Purpose:
//   - Keep the label sequence authoritative: labels[p] is the label at position p.
//   - Maintain a secondary index (hash or ordered) rebuilt whenever labels change.
//   - Track sortedness so Merge/Intersect can choose the linear algorithm.
//
// Complexity quicksheet:
//   - New/Wrap: O(n) (+O(n log n) for an unsorted OrderedIndex); Contains/Position/Find:
//     O(1) hash, O(log n) ordered; Filter: O(n); Clone: O(n).
package axis

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"fortio.org/safecast"
)

// Axis maps an ordered sequence of labels to the dense positions 0..n-1.
//   - labels is authoritative for positions (labels[p] is at position p).
//   - index is a secondary lookup, rebuilt by populateIndex after every change.
//   - unsorted is stored negated so that the zero Axis (empty) is sorted.
//
// The zero value is an empty, usable axis with a HashIndex.
type Axis[L cmp.Ordered] struct {
	labels   []L
	index    positionIndex[L]
	unsorted bool
	kind     IndexKind
}

// Compile-time assertions.
var (
	_ Source[string] = (*Axis[string])(nil)
	_ fmt.Stringer   = (*Axis[int])(nil)
)

// New builds an axis over a copy of labels.
//
// Implementation:
//   - Stage 1: copy labels (the caller keeps ownership of its slice).
//   - Stage 2: determine sortedness (scan, or trust WithSorted).
//   - Stage 3: build the index selected by WithIndex.
//
// Labels are expected to be unique; duplicates are kept in the sequence and
// the index resolves them to their first occurrence.
//
// Complexity: O(n) time and space (hash index).
func New[L cmp.Ordered](labels []L, opts ...Option) *Axis[L] {
	return Wrap(slices.Clone(labels), opts...)
}

// Wrap builds an axis that takes ownership of labels without copying.
// The caller must not modify labels afterwards.
func Wrap[L cmp.Ordered](labels []L, opts ...Option) *Axis[L] {
	o := gatherOptions(opts...)
	a := &Axis[L]{labels: labels, kind: o.index}
	if o.sortedKnown {
		a.unsorted = !o.sorted
	} else {
		a.unsorted = !slices.IsSorted(labels)
	}
	a.populateIndex()

	return a
}

// FromSeq builds an axis from the labels yielded by seq, in order.
func FromSeq[L cmp.Ordered](seq iter.Seq[L], opts ...Option) *Axis[L] {
	return Wrap(slices.Collect(seq), opts...)
}

// NewRange builds an integer axis start, start+step, ... up to stop (exclusive).
// A positive step walks upwards and produces a sorted axis; a negative step
// walks downwards and produces an unsorted one (unless it has <2 labels).
// Generation stops before the label type would overflow.
//
// Errors: ErrInvalidStep when step == 0.
//
// Complexity: O(n) where n = |stop-start| / |step|.
func NewRange[L safecast.Integer](start, stop, step L, opts ...Option) (*Axis[L], error) {
	var zero L
	if step == zero {
		return nil, axisErrorf("NewRange", step, ErrInvalidStep)
	}

	var labels []L
	for v := start; (step > zero && v < stop) || (step < zero && v > stop); {
		labels = append(labels, v)
		next := v + step
		if (step > zero && next < v) || (step < zero && next > v) {
			break // wrapped around the label type
		}
		v = next
	}

	// Sortedness is known by construction; user options still choose the index.
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithSorted(step > zero || len(labels) < 2))

	return Wrap(labels, all...), nil
}

// populateIndex rebuilds the secondary index from labels.
func (a *Axis[L]) populateIndex() {
	switch a.kind {
	case OrderedIndex:
		a.index = newOrderedIndex(a.labels, !a.unsorted)
	default:
		a.index = newHashIndex(a.labels)
	}
}

// Size returns the number of labels. Complexity: O(1).
func (a *Axis[L]) Size() int {
	if a == nil {
		return 0
	}

	return len(a.labels)
}

// Empty reports whether the axis has no labels.
func (a *Axis[L]) Empty() bool { return a.Size() == 0 }

// Labels returns the label sequence in position order.
// The slice is borrowed: it stays valid until the next Merge/Intersect on
// the axis and must not be modified.
func (a *Axis[L]) Labels() []L {
	if a == nil {
		return nil
	}

	return a.labels
}

// Label returns the label at position i, or ErrOutOfRange.
func (a *Axis[L]) Label(i int) (L, error) {
	if i < 0 || i >= a.Size() {
		var zero L
		return zero, axisErrorf("Axis.Label", i, ErrOutOfRange)
	}

	return a.labels[i], nil
}

// IsSorted reports whether labels are non-decreasing. Once an unsorted
// Merge/Intersect touched the axis this stays false.
func (a *Axis[L]) IsSorted() bool {
	return a == nil || !a.unsorted
}

// IndexKind returns the kind of secondary index backing the axis.
func (a *Axis[L]) IndexKind() IndexKind { return a.kind }

// Find returns the position of l and whether it is present.
func (a *Axis[L]) Find(l L) (int, bool) {
	if a.Size() == 0 || a.index == nil {
		return 0, false
	}

	return a.index.find(l)
}

// Contains reports whether l is a label of the axis.
// Complexity: O(1) for HashIndex, O(log n) for OrderedIndex.
func (a *Axis[L]) Contains(l L) bool {
	_, ok := a.Find(l)

	return ok
}

// Position returns the position of l.
// Use it where presence is already established; absence is reported as
// ErrKeyNotFound, never as a sentinel position.
func (a *Axis[L]) Position(l L) (int, error) {
	p, ok := a.Find(l)
	if !ok {
		return 0, axisErrorf("Axis.Position", l, ErrKeyNotFound)
	}

	return p, nil
}

// Filter returns a new axis with the labels satisfying pred, in their
// original relative order. The result inherits the sortedness flag and the
// index kind of the receiver. The buffer grows as labels are accepted.
func (a *Axis[L]) Filter(pred func(L) bool) *Axis[L] {
	return a.filter(pred, 0)
}

// FilterN is Filter with a known result size: the buffer is allocated once
// with capacity n. The observable result is identical to Filter.
func (a *Axis[L]) FilterN(pred func(L) bool, n int) *Axis[L] {
	return a.filter(pred, max(n, 0))
}

func (a *Axis[L]) filter(pred func(L) bool, capacity int) *Axis[L] {
	out := make([]L, 0, capacity)
	for _, l := range a.Labels() {
		if pred(l) {
			out = append(out, l)
		}
	}

	return Wrap(out, WithIndex(a.kind), WithSorted(a.IsSorted()))
}

// All yields (label, position) pairs in position order.
func (a *Axis[L]) All() iter.Seq2[L, int] {
	return func(yield func(L, int) bool) {
		for p, l := range a.Labels() {
			if !yield(l, p) {
				return
			}
		}
	}
}

// Equal reports whether both axes hold the same label sequence (and hence
// the same label→position mapping). Index kind is not compared.
func (a *Axis[L]) Equal(o *Axis[L]) bool {
	return slices.Equal(a.Labels(), o.Labels())
}

// Clone returns an independent deep copy.
func (a *Axis[L]) Clone() *Axis[L] {
	if a == nil {
		return nil
	}

	return Wrap(slices.Clone(a.labels), WithIndex(a.kind), WithSorted(!a.unsorted))
}

// String renders the labels as "[l0, l1, ...]".
func (a *Axis[L]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, l := range a.Labels() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, l)
	}
	sb.WriteByte(']')

	return sb.String()
}
