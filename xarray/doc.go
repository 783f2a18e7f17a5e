// SPDX-License-Identifier: MIT

// Package xarray provides labeled arrays: a dense float64 store addressed
// through a coordinate system of named axes.
//
// Binary operations align their operands by label, not by position:
//
//	a: x=[a b c]      b: x=[b c d]
//	Add(a, b)                     -> x=[a b c d], NaN where a side is missing
//	Add(a, b, WithJoin(Inner))    -> x=[b c]
//
// Dimensions present in only one operand are broadcast. When both operands
// already share the result's coordinates (a trivial broadcast) values are
// combined position by position without any label lookup.
//
// Selection predicates are expr trees evaluated at every cell; Mask returns
// the matching flat offsets as a roaring bitmap.
package xarray
