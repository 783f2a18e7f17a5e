// SPDX-License-Identifier: MIT
package coords_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/lvaxis/coords"
	"github.com/katalvlaran/lvaxis/named"
	"github.com/katalvlaran/lvaxis/variant"
	"github.com/stretchr/testify/require"
)

func dim(t *testing.T, name string, v variant.Axis) named.Axis {
	t.Helper()
	n, err := named.New(name, v)
	require.NoError(t, err)

	return n
}

func defaultDim(t *testing.T, name string, size int) named.Axis {
	t.Helper()
	v, err := variant.NewDefault(size)
	require.NoError(t, err)

	return dim(t, name, v)
}

func system(t *testing.T, axes ...named.Axis) *coords.System {
	t.Helper()
	s, err := coords.New(axes...)
	require.NoError(t, err)

	return s
}

func TestNewAndAccessors(t *testing.T) {
	s := system(t,
		dim(t, "city", variant.NewStrings([]string{"ams", "ber"})),
		defaultDim(t, "t", 3),
	)
	require.Equal(t, 2, s.Len())
	require.Equal(t, []string{"city", "t"}, s.Dims())
	require.Equal(t, []int{2, 3}, s.Shape())
	require.Equal(t, 6, s.Size())

	i, ok := s.Index("t")
	require.True(t, ok)
	require.Equal(t, 1, i)
	require.Equal(t, "city", s.AxisAt(0).Name())

	_, ok = s.Axis("x")
	require.False(t, ok)
	require.Equal(t, "{city: [ams, ber], t: default[0..3)}", s.String())
	require.True(t, s.Equal(s.Clone()))

	_, err := coords.New(defaultDim(t, "t", 1), defaultDim(t, "t", 2))
	require.ErrorIs(t, err, coords.ErrDuplicateDimension)
}

func TestLocate(t *testing.T) {
	s := system(t,
		dim(t, "city", variant.NewStrings([]string{"ams", "ber"})),
		defaultDim(t, "t", 3),
	)

	pos, err := s.Locate(map[string]variant.Label{"city": variant.Str("ber"), "t": variant.Int(2)})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, pos)

	_, err = s.Locate(map[string]variant.Label{"city": variant.Str("ber")})
	require.ErrorIs(t, err, coords.ErrMissingDimension)

	_, err = s.Locate(map[string]variant.Label{"city": variant.Str("ber"), "t": variant.Int(0), "z": variant.Int(0)})
	require.ErrorIs(t, err, coords.ErrUnknownDimension)

	_, err = s.Locate(map[string]variant.Label{"city": variant.Str("cph"), "t": variant.Int(0)})
	require.ErrorIs(t, err, variant.ErrKeyNotFound)

	_, err = s.Locate(map[string]variant.Label{"city": variant.Int(1), "t": variant.Int(0)})
	require.ErrorIs(t, err, variant.ErrLabelTypeMismatch)
}

func TestBroadcastIdenticalIsTrivial(t *testing.T) {
	a := system(t, dim(t, "x", variant.NewInts([]int{1, 2})), defaultDim(t, "t", 2))
	b := system(t, dim(t, "x", variant.NewInts([]int{1, 2})), defaultDim(t, "t", 2))

	out, trivial, err := coords.Broadcast([]*coords.System{a, b})
	require.NoError(t, err)
	require.True(t, trivial)
	require.True(t, out.Equal(a))

	tAxis, ok := out.Axis("t")
	require.True(t, ok)
	require.True(t, tAxis.Axis().IsDefault())
}

func TestBroadcastUnionOfDims(t *testing.T) {
	a := system(t, dim(t, "x", variant.NewStrings([]string{"a", "b", "d", "e"})))
	b := system(t,
		dim(t, "y", variant.NewInts([]int{7})),
		dim(t, "x", variant.NewStrings([]string{"b", "c", "d"})),
	)

	out, trivial, err := coords.Broadcast([]*coords.System{a, b})
	require.NoError(t, err)
	require.False(t, trivial)
	require.Equal(t, []string{"x", "y"}, out.Dims())
	require.Equal(t, "{x: [a, b, c, d, e], y: [7]}", out.String())

	// Inputs are untouched.
	require.Equal(t, []int{4}, a.Shape())
}

func TestBroadcastNormalizesDefault(t *testing.T) {
	a := system(t, defaultDim(t, "t", 3))
	b := system(t, dim(t, "t", variant.NewInts([]int{2, 5})))

	out, trivial, err := coords.Broadcast([]*coords.System{a, b})
	require.NoError(t, err)
	require.False(t, trivial)

	tAxis, _ := out.Axis("t")
	require.Equal(t, variant.KindInt, tAxis.Axis().Kind())
	require.Equal(t, "t: [0, 1, 2, 5]", tAxis.String())
}

func TestIntersect(t *testing.T) {
	a := system(t, dim(t, "x", variant.NewStrings([]string{"a", "b", "d", "e"})))
	b := system(t, dim(t, "x", variant.NewStrings([]string{"b", "c", "d"})))
	c := system(t, dim(t, "x", variant.NewStrings([]string{"a", "b", "d", "f"})))

	out, trivial, err := coords.Intersect([]*coords.System{a, b, c})
	require.NoError(t, err)
	require.False(t, trivial)
	require.Equal(t, "{x: [b, d]}", out.String())
}

func TestAlignMismatch(t *testing.T) {
	a := system(t, dim(t, "x", variant.NewStrings([]string{"a"})))
	b := system(t, dim(t, "x", variant.NewInts([]int{1})))

	_, _, err := coords.Broadcast([]*coords.System{a, b})
	require.ErrorIs(t, err, variant.ErrLabelTypeMismatch)
	require.ErrorContains(t, err, "coords.merge(x)")
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	a := system(t, dim(t, "x", variant.NewInts([]int{1})))
	b := system(t, dim(t, "x", variant.NewInts([]int{2})))
	_, _, err := coords.Broadcast([]*coords.System{a, b}, coords.WithLogger(logger))
	require.NoError(t, err)

	require.Contains(t, buf.String(), "aligned dimension")
	require.Contains(t, buf.String(), "dim=x")
	require.Contains(t, buf.String(), "size=2")

	require.Panics(t, func() { coords.WithLogger(nil) })
}
