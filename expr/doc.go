// SPDX-License-Identifier: MIT

// Package expr builds lazily evaluated boolean and comparison expressions over
// the labels of named axes.
//
// An expression is a tree of Nodes. Nothing is computed when it is built; a
// tree is evaluated against a Selector, the list of (dimension, position)
// pairs identifying one cell of a labeled array:
//
//	year, _ := named.New("year", variant.NewInts([]int{2023, 2024, 2025}))
//	city, _ := named.New("city", variant.NewStrings([]string{"ams", "ber"}))
//	e := expr.And(expr.Ge(expr.Leaf(year), expr.Const(variant.Int(2024))),
//		expr.In(expr.Leaf(city), variant.Str("ber")))
//	ok, err := expr.Evaluate(e, expr.Selector{{"year", 1}, {"city", 1}}) // true, nil
//
// A Leaf scans the selector for its own dimension name and reads the label
// at the given position; a missing dimension is ErrMissingAxis. Comparisons
// between labels of different types fail with variant.ErrLabelTypeMismatch.
//
// Selectors are plain slices: a caller evaluating many cells can back one
// with a fixed array (no allocation) and rewrite positions in place.
package expr
