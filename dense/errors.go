// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
// Public accessors return these sentinels, wrapped with the method and the
// offending index; callers match them with errors.Is.

package dense

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned when a dimension length is negative or the
	// element count overflows int.
	ErrInvalidShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates an index outside its dimension's bounds.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates an index or buffer whose length does not
	// match the shape.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")
)

// denseErrorf wraps an error with the method context and the index involved.
func denseErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Dense.%s(%v): %w", method, idx, err)
}
