// SPDX-License-Identifier: MIT

// Package axis implements the label→position mapping of a single dimension.
//
// An Axis[L] is an ordered sequence of unique labels together with a
// secondary index answering "at which position is label l?". Positions are
// dense: an axis of n labels uses exactly the positions 0..n-1, and the
// label sequence (not the lexical order of labels) is authoritative for them.
//
// What & Why:
//
//	Labeled arrays align their operands by label, not by position. Aligning
//	is set algebra over axes: the union (Merge) when broadcasting with an
//	outer join, the intersection (Intersect) for an inner join. Both are
//	linear when every participant keeps its labels sorted, so the axis tracks
//	sortedness and picks the algorithm at run time:
//
//	  - all sorted   → sortedseq.Merge / sortedseq.Intersect, result stays sorted;
//	  - any unsorted → positional fallback, result is flagged unsorted for good.
//
// Two concrete kinds:
//
//	Axis[L]        — explicit labels + HashIndex (map) or OrderedIndex (binary search).
//	DefaultAxis[L] — implicit labels 0..n-1 for an integer type; no storage,
//	                 O(1) membership, read-only with respect to set algebra.
//
// Both implement Source[L], the narrow adaptor through which axes are passed
// as arguments to Merge and Intersect.
//
// Errors:
//
//	ErrKeyNotFound — Position of an absent label.
//	ErrOutOfRange  — Label at a position outside [0,n).
//	ErrUnsupported — Merge/Intersect on a DefaultAxis (state left untouched).
//	ErrInvalidStep — NewRange with step 0.
//	ErrInvalidSize — NewDefault with a size the label type cannot represent.
//
// Concurrency: none. Axes have plain value semantics (see Clone); callers
// sharing an axis across goroutines must synchronize externally.
package axis
