// SPDX-License-Identifier: MIT

// Package dense provides the n-dimensional float64 store behind labeled
// arrays.
//
// Storage is a single row-major buffer with explicit strides: the offset of
// index (i0, i1, ..., ik) is Σ i_d * stride_d, with the last dimension
// contiguous. The store knows nothing about labels; it is addressed purely
// by integer positions, which the axis layer computes.
//
// Safety at the public surface: At/Set/Offset return sentinel errors instead
// of panicking on bad indices. NaN is a legal value and marks a missing cell
// in aligned arithmetic.
//
// Zero-length dimensions are allowed (an empty intersection yields one).
// A zero-dimensional Dense is a scalar holding one value.
//
// Complexity quicksheet:
//   - New/Full: O(n); At/Set/Offset: O(d); Unravel: O(d); Clone/Fill/Apply: O(n).
package dense
