// SPDX-License-Identifier: MIT

// Package xarray - aligned binary operations.

package xarray

import (
	"cmp"
	"fmt"
	"math"

	"github.com/katalvlaran/lvaxis/coords"
	"github.com/katalvlaran/lvaxis/dense"
	"github.com/katalvlaran/lvaxis/expr"
)

// Add returns a + b aligned by label.
func Add(a, b *Array, opts ...Option) (*Array, error) {
	return binary("Add", a, b, func(x, y float64) float64 { return x + y }, opts)
}

// Sub returns a - b aligned by label.
func Sub(a, b *Array, opts ...Option) (*Array, error) {
	return binary("Sub", a, b, func(x, y float64) float64 { return x - y }, opts)
}

// Mul returns a * b aligned by label.
func Mul(a, b *Array, opts ...Option) (*Array, error) {
	return binary("Mul", a, b, func(x, y float64) float64 { return x * y }, opts)
}

// Div returns a / b aligned by label (IEEE division: x/0 is ±Inf or NaN).
func Div(a, b *Array, opts ...Option) (*Array, error) {
	return binary("Div", a, b, func(x, y float64) float64 { return x / y }, opts)
}

// Compare returns 1 where a op b holds and 0 where it does not, aligned by
// label. Cells where either value is NaN (including missing labels) are NaN.
func Compare(op expr.Op, a, b *Array, opts ...Option) (*Array, error) {
	if _, err := op.Holds(0); err != nil {
		return nil, err
	}

	return binary("Compare", a, b, func(x, y float64) float64 {
		if math.IsNaN(x) || math.IsNaN(y) {
			return math.NaN()
		}
		if ok, _ := op.Holds(cmp.Compare(x, y)); ok {
			return 1
		}
		return 0
	}, opts)
}

// binary aligns a and b and applies fn cell by cell.
//
// Implementation:
//   - Stage 1: align the coordinate systems (outer or inner join).
//   - Stage 2: trivial alignment → combine the flat buffers directly.
//   - Stage 3: otherwise project every output cell onto each operand; a
//     label missing from an operand reads as NaN.
//
// Complexity:
//   - Trivial: O(n). Otherwise O(n·d) plus O(Σ axis sizes) lookups.
func binary(name string, a, b *Array, fn func(x, y float64) float64, opts []Option) (*Array, error) {
	o := gatherOptions(opts...)

	align := coords.Broadcast
	if o.join == Inner {
		align = coords.Intersect
	}
	cs, trivial, err := align([]*coords.System{a.cs, b.cs}, o.coordsOptions()...)
	if err != nil {
		return nil, fmt.Errorf("xarray.%s: %w", name, err)
	}

	out, err := dense.New(cs.Shape()...)
	if err != nil {
		return nil, fmt.Errorf("xarray.%s: %w", name, err)
	}
	dst := out.Data()

	if trivial {
		xs, ys := a.data.Data(), b.data.Data()
		for i := range dst {
			dst[i] = fn(xs[i], ys[i])
		}
		return &Array{cs: cs, data: out}, nil
	}

	pa := newProjection(cs, a)
	pb := newProjection(cs, b)
	off := 0
	for idx := range out.All() {
		dst[off] = fn(pa.value(idx), pb.value(idx))
		off++
	}

	return &Array{cs: cs, data: out}, nil
}

// projection maps output indices onto one operand's storage.
//   - present[d]: the operand has output dimension d.
//   - remap[d]: output position → operand position (-1 missing); nil when
//     both axes are equal and positions coincide.
type projection struct {
	data    []float64
	present []bool
	remap   [][]int
	strides []int
}

func newProjection(out *coords.System, in *Array) projection {
	n := out.Len()
	p := projection{
		data:    in.data.Data(),
		present: make([]bool, n),
		remap:   make([][]int, n),
		strides: make([]int, n),
	}
	inStrides := in.data.Strides()
	for d := range n {
		outAx := out.AxisAt(d)
		j, ok := in.cs.Index(outAx.Name())
		if !ok {
			continue // broadcast along d
		}
		p.present[d] = true
		p.strides[d] = inStrides[j]

		inAx := in.cs.AxisAt(j)
		if inAx.Equal(outAx) {
			continue
		}
		m := make([]int, outAx.Size())
		for i, l := range outAx.Labels().All() {
			pos, ok := inAx.Find(l)
			if !ok {
				pos = -1
			}
			m[i] = pos
		}
		p.remap[d] = m
	}

	return p
}

func (p projection) value(idx []int) float64 {
	off := 0
	for d, i := range idx {
		if !p.present[d] {
			continue
		}
		if p.remap[d] != nil {
			i = p.remap[d][i]
			if i < 0 {
				return math.NaN()
			}
		}
		off += i * p.strides[d]
	}

	return p.data[off]
}
