// SPDX-License-Identifier: MIT

package variant

import (
	"iter"
	"strings"
)

// LabelList is a read-only, type-erased view of an axis' labels.
//
// It presents one of []int, []uint, []rune, []string, or the virtual range
// 0..n-1 of a default axis, behind one vector-like interface. Stored lists
// are borrowed from the source axis (no copy) and are valid until that axis
// is next merged or intersected. The zero LabelList is empty.
type LabelList struct {
	seq labelSeq
}

type labelSeq interface {
	kind() LabelKind
	len() int
	at(i int) Label
}

type sliceSeq[L LabelType] []L

func (s sliceSeq[L]) kind() LabelKind { return kindOf[L]() }
func (s sliceSeq[L]) len() int        { return len(s) }
func (s sliceSeq[L]) at(i int) Label  { return LabelOf(s[i]) }

// rangeSeq is the label list of a default axis: 0..n-1, never materialized.
type rangeSeq int

func (r rangeSeq) kind() LabelKind { return IntLabel }
func (r rangeSeq) len() int        { return int(r) }
func (r rangeSeq) at(i int) Label  { return Int(i) }

func listOf[L LabelType](labels []L) LabelList { return LabelList{seq: sliceSeq[L](labels)} }

// Len returns the number of labels.
func (ll LabelList) Len() int {
	if ll.seq == nil {
		return 0
	}

	return ll.seq.len()
}

// Kind returns the label kind, NoLabel for the zero list.
func (ll LabelList) Kind() LabelKind {
	if ll.seq == nil {
		return NoLabel
	}

	return ll.seq.kind()
}

// IsRange reports whether the list is the virtual range of a default axis.
func (ll LabelList) IsRange() bool {
	_, ok := ll.seq.(rangeSeq)

	return ok
}

// At returns the label at position i, or ErrOutOfRange.
func (ll LabelList) At(i int) (Label, error) {
	if i < 0 || i >= ll.Len() {
		return Label{}, variantErrorf("LabelList.At", ErrOutOfRange)
	}

	return ll.seq.at(i), nil
}

// All yields (position, label) pairs in order.
func (ll LabelList) All() iter.Seq2[int, Label] {
	return func(yield func(int, Label) bool) {
		for i := 0; i < ll.Len(); i++ {
			if !yield(i, ll.seq.at(i)) {
				return
			}
		}
	}
}

// String renders the list as "[l0, l1, ...]".
func (ll LabelList) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, l := range ll.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

// Slice returns the labels as a typed slice.
// Stored lists are returned as-is (borrowed, do not modify); the range of a
// default axis is materialized. ok is false when L is not the list's kind.
func Slice[L LabelType](ll LabelList) ([]L, bool) {
	switch s := ll.seq.(type) {
	case sliceSeq[L]:
		return []L(s), true
	case rangeSeq:
		if kindOf[L]() != IntLabel {
			return nil, false
		}
		out := make([]L, int(s))
		for i := range out {
			out[i], _ = Value[L](Int(i))
		}
		return out, true
	}

	return nil, false
}
