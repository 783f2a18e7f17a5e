// SPDX-License-Identifier: MIT

package variant

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvaxis/axis"
)

var (
	// ErrLabelTypeMismatch indicates labels or axes of different label kinds
	// were combined (lookup, comparison, merge, intersect).
	ErrLabelTypeMismatch = errors.New("variant: label type mismatch")

	// ErrEmptyVariant indicates an operation on an Axis with no active alternative.
	ErrEmptyVariant = errors.New("variant: no active axis")
)

// Re-exported axis sentinels, so callers of this package can match every
// failure without importing axis.
var (
	ErrKeyNotFound = axis.ErrKeyNotFound
	ErrOutOfRange  = axis.ErrOutOfRange
	ErrUnsupported = axis.ErrUnsupported
)

func variantErrorf(method string, err error) error {
	return fmt.Errorf("variant.%s: %w", method, err)
}

func mismatchErrorf(method string, want, got LabelKind) error {
	return fmt.Errorf("variant.%s: %w (want %s, got %s)", method, ErrLabelTypeMismatch, want, got)
}

func fmtKey(l Label) error {
	return fmt.Errorf("%w: %s", ErrKeyNotFound, l)
}
