// SPDX-License-Identifier: MIT
// Package axis: sentinel error set.
// Public operations return these sentinels, wrapped with the operation name
// and the offending label or position; tests match them via errors.Is.

package axis

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound indicates that a label is not present on the axis.
	// Returned by Position; Contains and Find report absence without an error.
	ErrKeyNotFound = errors.New("axis: label not found")

	// ErrOutOfRange indicates a position outside [0, Size()).
	ErrOutOfRange = errors.New("axis: position out of range")

	// ErrUnsupported marks set algebra requested on a DefaultAxis.
	// The receiver is never modified when this error is returned.
	ErrUnsupported = errors.New("axis: operation not supported on a default axis")

	// ErrInvalidStep is returned by NewRange when step is zero.
	ErrInvalidStep = errors.New("axis: range step must be non-zero")

	// ErrInvalidSize is returned by NewDefault for a negative size or a size
	// whose labels do not fit the label type.
	ErrInvalidSize = errors.New("axis: invalid default axis size")
)

// axisErrorf wraps err with the method name and the offending argument.
func axisErrorf(method string, arg any, err error) error {
	return fmt.Errorf("%s(%v): %w", method, arg, err)
}
