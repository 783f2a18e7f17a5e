// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAxis indicates a leaf's dimension is absent from the selector.
	ErrMissingAxis = errors.New("expr: missing label for axis")

	// ErrNotBoolean indicates a logical operator received a label operand.
	ErrNotBoolean = errors.New("expr: operand is not boolean")

	// ErrNotLabel indicates an ordering comparison received a boolean operand.
	ErrNotLabel = errors.New("expr: operand is not a label")

	// ErrUnknownOp indicates a comparison with an operator outside Op.
	ErrUnknownOp = errors.New("expr: unknown operator")
)

func exprErrorf(node string, err error) error {
	return fmt.Errorf("expr.%s: %w", node, err)
}
