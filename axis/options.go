// SPDX-License-Identifier: MIT

// Package axis: functional configuration for axis construction.
//
// Options only influence how an axis is built (index kind, sortedness
// pre-declaration); they never change the observable label→position mapping.
package axis

import "fmt"

// IndexKind selects the secondary label→position index of an Axis.
type IndexKind uint8

const (
	// HashIndex backs the axis with a Go map: O(1) lookups, one hash entry per label.
	HashIndex IndexKind = iota

	// OrderedIndex keeps a position permutation ordered by label and answers
	// lookups by binary search: O(log n), no hashing. For sorted axes the
	// permutation is the identity and is not materialized.
	OrderedIndex
)

// DefaultIndexKind is the index used when WithIndex is not given.
const DefaultIndexKind = HashIndex

const panicIndexKindInvalid = "axis: WithIndex: unknown index kind"

// String returns the index kind name.
func (k IndexKind) String() string {
	switch k {
	case HashIndex:
		return "hash"
	case OrderedIndex:
		return "ordered"
	default:
		return fmt.Sprintf("IndexKind(%d)", uint8(k))
	}
}

// Option configures axis construction.
type Option func(*options)

type options struct {
	index       IndexKind
	sortedKnown bool // caller pre-declared sortedness; skip the O(n) scan
	sorted      bool
}

// WithIndex selects the index kind. Panics on an unknown kind (programmer error).
func WithIndex(kind IndexKind) Option {
	if kind != HashIndex && kind != OrderedIndex {
		panic(panicIndexKindInvalid)
	}

	return func(o *options) { o.index = kind }
}

// WithSorted pre-declares whether the labels are non-decreasing.
// It is the construction fast path: the sortedness scan is skipped and the
// flag is trusted. Declaring sorted=true for unsorted labels breaks Merge
// and Intersect; only use it when the order is known by construction.
func WithSorted(sorted bool) Option {
	return func(o *options) {
		o.sortedKnown = true
		o.sorted = sorted
	}
}

// gatherOptions applies opts left to right over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{index: DefaultIndexKind}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
