// SPDX-License-Identifier: MIT

// Package sortedseq provides set algebra over sorted slices.
//
// The primitives here are the fast path of axis alignment: when every axis
// taking part in a merge or an intersection keeps its labels in ascending
// order, union and intersection reduce to a single linear walk per operand.
//
//   - Merge     — sorted union, applied pairwise left to right.
//   - Intersect — sorted intersection, compacting the receiver in place.
//
// Both return a "no-op" flag: true when the receiver already equaled the
// result, so callers can skip rebuilding secondary structures (indexes,
// position maps) that depend on it.
//
// Preconditions are NOT checked: every slice must be ascending and free of
// duplicates. Use IsStrictlySorted when the inputs come from an untrusted
// source; axis.Axis tracks sortedness itself and only reaches this package
// when the precondition holds.
//
// Complexity: O(m+n) time per operand pair; Merge allocates only when a new
// element must be inserted before the end of the receiver.
package sortedseq
