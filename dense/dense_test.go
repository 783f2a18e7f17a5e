// SPDX-License-Identifier: MIT
package dense_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvaxis/dense"
	"github.com/stretchr/testify/require"
)

func TestNewShapeAndStrides(t *testing.T) {
	m, err := dense.New(2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4}, m.Shape())
	require.Equal(t, []int{12, 4, 1}, m.Strides())
	require.Equal(t, 3, m.Dims())
	require.Equal(t, 24, m.Len())

	_, err = dense.New(2, -1)
	require.ErrorIs(t, err, dense.ErrInvalidShape)

	_, err = dense.New(math.MaxInt, 3)
	require.ErrorIs(t, err, dense.ErrInvalidShape)
}

func TestZeroLengthAndScalar(t *testing.T) {
	empty, err := dense.New(3, 0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())
	require.Equal(t, "[[], [], []]", empty.String())

	s, err := dense.Full(2.5)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	v, err := s.At()
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
	require.Equal(t, "2.5", s.String())
}

func TestAtSetOffset(t *testing.T) {
	m, err := dense.New(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(7, 1, 2))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	off, err := m.Offset(1, 2)
	require.NoError(t, err)
	require.Equal(t, 5, off)
	require.Equal(t, 7.0, m.Data()[5])

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
	err = m.Set(1, 0)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

func TestUnravelInvertsOffset(t *testing.T) {
	m, err := dense.New(3, 2, 4)
	require.NoError(t, err)
	for off := range m.Len() {
		idx, err := m.Unravel(off)
		require.NoError(t, err)
		back, err := m.Offset(idx...)
		require.NoError(t, err)
		require.Equal(t, off, back)
	}
	_, err = m.Unravel(m.Len())
	require.ErrorIs(t, err, dense.ErrOutOfRange)
}

func TestFromData(t *testing.T) {
	buf := []float64{1, 2, 3, 4}
	m, err := dense.FromData(buf, 2, 2)
	require.NoError(t, err)
	require.Equal(t, "[[1, 2], [3, 4]]", m.String())

	buf[0] = 9
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)

	_, err = dense.FromData(buf, 3)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

func TestFillApplyCloneEqual(t *testing.T) {
	m, err := dense.Full(1, 2, 2)
	require.NoError(t, err)
	m.Apply(func(x float64) float64 { return x * 3 })
	require.Equal(t, []float64{3, 3, 3, 3}, m.Data())

	c := m.Clone()
	c.Fill(math.NaN())
	require.Equal(t, 3.0, m.Data()[0])
	require.False(t, m.Equal(c))
	require.True(t, c.Equal(c.Clone()))

	other, err := dense.New(4)
	require.NoError(t, err)
	require.False(t, other.Equal(m))
}

func TestAllRowMajor(t *testing.T) {
	m, err := dense.FromData([]float64{0, 1, 2, 3, 4, 5}, 2, 3)
	require.NoError(t, err)

	var idxs [][]int
	var vals []float64
	for idx, v := range m.All() {
		idxs = append(idxs, append([]int(nil), idx...))
		vals = append(vals, v)
	}
	require.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, idxs)
	require.Equal(t, []float64{0, 1, 2, 3, 4, 5}, vals)
}
