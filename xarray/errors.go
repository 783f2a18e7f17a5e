// SPDX-License-Identifier: MIT

package xarray

import "errors"

var (
	// ErrShapeMismatch indicates data whose shape differs from the coordinates.
	ErrShapeMismatch = errors.New("xarray: data shape does not match coordinates")

	// ErrTooLarge indicates an array too large to index with a 32-bit mask.
	ErrTooLarge = errors.New("xarray: array too large for a mask")
)
