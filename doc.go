// Package lvaxis is an in-memory toolkit for labeled, axis-indexed arrays:
// named dimensions whose labels map to dense positions, aligned by label when
// arrays are combined.
//
// 🚀 What is in lvaxis?
//
//	• Sorted-set kernels: linear merge/intersect of sorted sequences
//	• Axes: label→position maps with hash or ordered index, sortedness tracking
//	• Default axes: zero-storage 0..n-1 dimensions
//	• Axis variant: one type over int, uint, rune and string labeled axes
//	• Named axes & expressions: lazy predicates over the labels of a cell
//	• Coordinate systems: outer/inner alignment of named axes
//	• Labeled arrays: label-aligned arithmetic over a dense n-d store
//
// Under the hood the packages build on each other, leaf first:
//
//	sortedseq/ — Merge / Intersect of sorted unique slices with a no-op flag
//	axis/      — Axis[L], DefaultAxis[L], Source adaptor, set algebra
//	variant/   — type-erased Axis, Label, LabelList, Visitor
//	named/     — immutable {name, axis} pairs
//	expr/      — expression trees evaluated against selectors
//	coords/    — coordinate systems, Broadcast / Intersect
//	dense/     — row-major n-d float64 storage
//	xarray/    — labeled arrays, aligned Add/Sub/Mul/Div/Compare, masks
//
// Quick ASCII example (outer join of two x axes):
//
//	a: x = [a b d e]
//	b: x =   [b c d]
//	       ─────────────
//	   x = [a b c d e]     positions 0..4, a and b re-indexed by label
//
// The axisctl command (cmd/axisctl) aligns coordinate systems described in
// YAML from the shell.
//
//	go get github.com/katalvlaran/lvaxis
package lvaxis
