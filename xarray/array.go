// SPDX-License-Identifier: MIT

package xarray

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvaxis/coords"
	"github.com/katalvlaran/lvaxis/dense"
	"github.com/katalvlaran/lvaxis/variant"
)

// Array is a dense array with labeled dimensions.
type Array struct {
	cs   *coords.System
	data *dense.Dense
}

// New pairs a coordinate system with data of the same shape. data is not
// copied.
// Errors: ErrShapeMismatch.
func New(cs *coords.System, data *dense.Dense) (*Array, error) {
	if data == nil || !slices.Equal(cs.Shape(), data.Shape()) {
		var got []int
		if data != nil {
			got = data.Shape()
		}
		return nil, fmt.Errorf("xarray.New(%v, %v): %w", cs.Shape(), got, ErrShapeMismatch)
	}

	return &Array{cs: cs, data: data}, nil
}

// Full returns an array over cs with every value set to v.
func Full(cs *coords.System, v float64) (*Array, error) {
	d, err := dense.Full(v, cs.Shape()...)
	if err != nil {
		return nil, err
	}

	return &Array{cs: cs, data: d}, nil
}

// Zeros returns a zero-filled array over cs.
func Zeros(cs *coords.System) (*Array, error) { return Full(cs, 0) }

// Coords returns the coordinate system.
func (a *Array) Coords() *coords.System { return a.cs }

// Data returns the underlying store (borrowed).
func (a *Array) Data() *dense.Dense { return a.data }

// Sel returns the value at the cell identified by one label per dimension.
func (a *Array) Sel(labels map[string]variant.Label) (float64, error) {
	pos, err := a.cs.Locate(labels)
	if err != nil {
		return 0, fmt.Errorf("xarray.Sel: %w", err)
	}

	return a.data.At(pos...)
}

// SetSel stores v at the cell identified by one label per dimension.
func (a *Array) SetSel(v float64, labels map[string]variant.Label) error {
	pos, err := a.cs.Locate(labels)
	if err != nil {
		return fmt.Errorf("xarray.SetSel: %w", err)
	}

	return a.data.Set(v, pos...)
}

// Clone returns a deep copy of the values; the coordinates are shared.
func (a *Array) Clone() *Array { return &Array{cs: a.cs, data: a.data.Clone()} }

// String renders the coordinates and the values on two lines.
func (a *Array) String() string { return a.cs.String() + "\n" + a.data.String() }
