// SPDX-License-Identifier: MIT

package named

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvaxis/variant"
)

// ErrEmptyName is returned by New for an empty dimension name.
var ErrEmptyName = errors.New("named: empty dimension name")

// Axis is an immutable {name, axis variant} pair.
type Axis struct {
	name string
	axis variant.Axis
}

// New binds name to a clone of v.
// Errors: ErrEmptyName; variant.ErrEmptyVariant when v holds no axis.
func New(name string, v variant.Axis) (Axis, error) {
	if name == "" {
		return Axis{}, fmt.Errorf("named.New(%q): %w", name, ErrEmptyName)
	}
	if !v.Valid() {
		return Axis{}, fmt.Errorf("named.New(%q): %w", name, variant.ErrEmptyVariant)
	}

	return Axis{name: name, axis: v.Clone()}, nil
}

// Name returns the dimension name.
func (a Axis) Name() string { return a.name }

// Axis returns an independent copy of the axis variant.
func (a Axis) Axis() variant.Axis { return a.axis.Clone() }

// Size returns the number of labels.
func (a Axis) Size() int { return a.axis.Size() }

// Label returns the label at position i.
func (a Axis) Label(i int) (variant.Label, error) {
	l, err := a.axis.Label(i)
	if err != nil {
		return variant.Label{}, fmt.Errorf("named.Label(%s, %d): %w", a.name, i, err)
	}

	return l, nil
}

// Position returns the position of l along the dimension.
func (a Axis) Position(l variant.Label) (int, error) {
	p, err := a.axis.Position(l)
	if err != nil {
		return 0, fmt.Errorf("named.Position(%s): %w", a.name, err)
	}

	return p, nil
}

// Find returns the position of l without failing.
func (a Axis) Find(l variant.Label) (int, bool) { return a.axis.Find(l) }

// Contains reports whether l labels the dimension.
func (a Axis) Contains(l variant.Label) bool { return a.axis.Contains(l) }

// Labels returns a borrowed view of the labels.
func (a Axis) Labels() variant.LabelList { return a.axis.Labels() }

// WithAxis returns a new named axis with the same name and a clone of v.
func (a Axis) WithAxis(v variant.Axis) (Axis, error) { return New(a.name, v) }

// Equal reports whether names and axes are equal.
func (a Axis) Equal(o Axis) bool { return a.name == o.name && a.axis.Equal(o.axis) }

// String renders "name: axis".
func (a Axis) String() string { return a.name + ": " + a.axis.String() }
