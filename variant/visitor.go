// SPDX-License-Identifier: MIT

package variant

import "github.com/katalvlaran/lvaxis/axis"

// Visitor receives the active alternative of an Axis with its concrete type.
// Implementations must handle every alternative; adding a label type to the
// closed set adds a method here, so the compiler lists every site to update.
type Visitor interface {
	VisitInt(*axis.Axis[int]) error
	VisitSize(*axis.Axis[uint]) error
	VisitChar(*axis.Axis[rune]) error
	VisitString(*axis.Axis[string]) error
	VisitDefault(*axis.DefaultAxis[int]) error
}

// Visit dispatches the active alternative to vis.
// Errors: ErrEmptyVariant for the zero Axis; otherwise whatever vis returns.
func (v Axis) Visit(vis Visitor) error {
	if v.alt == nil {
		return variantErrorf("Visit", ErrEmptyVariant)
	}

	return v.alt.visit(vis)
}
