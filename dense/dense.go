// SPDX-License-Identifier: MIT

// Package dense - row-major n-d storage & safe accessors.

package dense

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxOffset  = "Offset"
	ctxUnravel = "Unravel"
	ctxNew     = "New"
	ctxFrom    = "FromData"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Dense is a row-major n-d float64 array.
//   - shape holds the dimension lengths (>= 0).
//   - strides[d] is the offset step of dimension d (last stride is 1).
//   - data has length Π shape.
type Dense struct {
	shape   []int
	strides []int
	data    []float64
}

var _ fmt.Stringer = (*Dense)(nil)

// New creates a zero-filled array of the given shape.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate every length >= 0 and the total count fits in int.
//   - Stage 2: compute row-major strides.
//   - Stage 3: allocate the zero-filled buffer.
//
// Errors:
//   - ErrInvalidShape.
//
// Complexity:
//   - Time O(n + d), Space O(n).
func New(shape ...int) (*Dense, error) {
	strides, n, err := layout(shape)
	if err != nil {
		return nil, denseErrorf(ctxNew, shape, err)
	}

	return &Dense{
		shape:   slices.Clone(shape),
		strides: strides,
		data:    make([]float64, n),
	}, nil
}

// Full creates an array of the given shape with every element set to v.
func Full(v float64, shape ...int) (*Dense, error) {
	d, err := New(shape...)
	if err != nil {
		return nil, err
	}
	d.Fill(v)

	return d, nil
}

// FromData wraps data (no copy) as an array of the given shape.
// Errors: ErrInvalidShape, ErrDimensionMismatch when len(data) != Π shape.
func FromData(data []float64, shape ...int) (*Dense, error) {
	strides, n, err := layout(shape)
	if err != nil {
		return nil, denseErrorf(ctxFrom, shape, err)
	}
	if len(data) != n {
		return nil, denseErrorf(ctxFrom, shape, fmt.Errorf("%w: %d values for %d cells", ErrDimensionMismatch, len(data), n))
	}

	return &Dense{shape: slices.Clone(shape), strides: strides, data: data}, nil
}

// layout validates shape and returns its row-major strides and element count.
func layout(shape []int) ([]int, int, error) {
	strides := make([]int, len(shape))
	n := 1
	for d := len(shape) - 1; d >= 0; d-- {
		if shape[d] < 0 {
			return nil, 0, ErrInvalidShape
		}
		strides[d] = n
		if shape[d] > 0 && n > math.MaxInt/shape[d] {
			return nil, 0, ErrInvalidShape
		}
		n *= shape[d]
	}

	return strides, n, nil
}

// Shape returns a copy of the dimension lengths.
func (m *Dense) Shape() []int { return slices.Clone(m.shape) }

// Dims returns the number of dimensions.
func (m *Dense) Dims() int { return len(m.shape) }

// Len returns the number of elements.
func (m *Dense) Len() int { return len(m.data) }

// Strides returns a copy of the row-major strides.
func (m *Dense) Strides() []int { return slices.Clone(m.strides) }

// Data returns the flat row-major buffer. It is borrowed: writes are visible
// through the array.
func (m *Dense) Data() []float64 { return m.data }

// Offset computes the flat row-major offset of idx.
// MAIN DESCRIPTION:
//   - Single bounds-checked index formula shared by At and Set.
//
// Errors:
//   - ErrDimensionMismatch when len(idx) != Dims().
//   - ErrOutOfRange when any idx[d] is outside [0, shape[d]).
//
// Complexity:
//   - Time O(d).
func (m *Dense) Offset(idx ...int) (int, error) {
	off, err := m.offset(idx)
	if err != nil {
		return 0, denseErrorf(ctxOffset, idx, err)
	}

	return off, nil
}

// offset returns the bare sentinel; public methods wrap with their context.
func (m *Dense) offset(idx []int) (int, error) {
	if len(idx) != len(m.shape) {
		return 0, ErrDimensionMismatch
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= m.shape[d] {
			return 0, ErrOutOfRange
		}
		off += i * m.strides[d] // row-major: Σ i_d * stride_d
	}

	return off, nil
}

// Unravel converts a flat offset back into an index.
// Errors: ErrOutOfRange when off is outside [0, Len()).
func (m *Dense) Unravel(off int) ([]int, error) {
	if off < 0 || off >= len(m.data) {
		return nil, denseErrorf(ctxUnravel, []int{off}, ErrOutOfRange)
	}
	idx := make([]int, len(m.shape))
	m.unravelInto(off, idx)

	return idx, nil
}

// unravelInto writes the index of a valid offset into idx (len == Dims()).
func (m *Dense) unravelInto(off int, idx []int) {
	for d, s := range m.strides {
		idx[d] = off / s
		off %= s
	}
}

// At returns the value at idx or an error (see Offset).
func (m *Dense) At(idx ...int) (float64, error) {
	off, err := m.offset(idx)
	if err != nil {
		return 0, denseErrorf(ctxAt, idx, err)
	}

	return m.data[off], nil
}

// Set stores v at idx or returns an error (see Offset).
func (m *Dense) Set(v float64, idx ...int) error {
	off, err := m.offset(idx)
	if err != nil {
		return denseErrorf(ctxSet, idx, err)
	}
	m.data[off] = v

	return nil
}

// Fill sets every element to v.
func (m *Dense) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Apply replaces every element x with fn(x), in flat order.
func (m *Dense) Apply(fn func(float64) float64) {
	for i, x := range m.data {
		m.data[i] = fn(x)
	}
}

// All yields (index, value) pairs in row-major order. The index slice is
// reused between iterations; copy it to keep it.
func (m *Dense) All() iter.Seq2[[]int, float64] {
	return func(yield func([]int, float64) bool) {
		idx := make([]int, len(m.shape))
		for off, v := range m.data {
			m.unravelInto(off, idx)
			if !yield(idx, v) {
				return
			}
		}
	}
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	return &Dense{
		shape:   slices.Clone(m.shape),
		strides: slices.Clone(m.strides),
		data:    slices.Clone(m.data),
	}
}

// Equal reports whether shapes and values are equal; NaN equals NaN.
func (m *Dense) Equal(o *Dense) bool {
	if !slices.Equal(m.shape, o.shape) {
		return false
	}

	return slices.EqualFunc(m.data, o.data, func(a, b float64) bool {
		return a == b || (math.IsNaN(a) && math.IsNaN(b))
	})
}

// String renders nested brackets, one level per dimension:
// a 2×2 array prints as "[[1, 2], [3, 4]]"; a scalar prints its value.
func (m *Dense) String() string {
	var b strings.Builder
	m.format(&b, 0, 0)

	return b.String()
}

func (m *Dense) format(b *strings.Builder, dim, base int) {
	if dim == len(m.shape) {
		fmt.Fprintf(b, "%g", m.data[base])
		return
	}
	b.WriteString(_fmtOpen)
	for i := 0; i < m.shape[dim]; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		m.format(b, dim+1, base+i*m.strides[dim])
	}
	b.WriteString(_fmtClose)
}
