// SPDX-License-Identifier: MIT

package coords

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvaxis/named"
	"github.com/katalvlaran/lvaxis/variant"
)

// System is an ordered set of named axes with unique names.
// A System is immutable once built.
type System struct {
	axes  []named.Axis
	index map[string]int
}

// New builds a system from axes, in order.
// Errors: ErrDuplicateDimension.
func New(axes ...named.Axis) (*System, error) {
	s := &System{
		axes:  make([]named.Axis, len(axes)),
		index: make(map[string]int, len(axes)),
	}
	for i, a := range axes {
		if _, dup := s.index[a.Name()]; dup {
			return nil, fmt.Errorf("coords.New(%s): %w", a.Name(), ErrDuplicateDimension)
		}
		s.index[a.Name()] = i
		s.axes[i] = a
	}

	return s, nil
}

// Len returns the number of dimensions.
func (s *System) Len() int { return len(s.axes) }

// Dims returns the dimension names in order.
func (s *System) Dims() []string {
	out := make([]string, len(s.axes))
	for i, a := range s.axes {
		out[i] = a.Name()
	}

	return out
}

// Shape returns the axis sizes in dimension order.
func (s *System) Shape() []int {
	out := make([]int, len(s.axes))
	for i, a := range s.axes {
		out[i] = a.Size()
	}

	return out
}

// Size returns the number of cells, the product of Shape.
func (s *System) Size() int {
	n := 1
	for _, a := range s.axes {
		n *= a.Size()
	}

	return n
}

// Axis returns the named axis of dimension name.
func (s *System) Axis(name string) (named.Axis, bool) {
	i, ok := s.index[name]
	if !ok {
		return named.Axis{}, false
	}

	return s.axes[i], true
}

// AxisAt returns the i-th named axis. It panics if i is out of range, like
// slice indexing.
func (s *System) AxisAt(i int) named.Axis { return s.axes[i] }

// Index returns the dimension number of name.
func (s *System) Index(name string) (int, bool) {
	i, ok := s.index[name]

	return i, ok
}

// Locate translates one label per dimension into positions, in dimension
// order.
//
// Errors: ErrMissingDimension when a dimension has no label,
// ErrUnknownDimension for a name outside the system, and the lookup errors
// of the axis (variant.ErrKeyNotFound, variant.ErrLabelTypeMismatch).
func (s *System) Locate(labels map[string]variant.Label) ([]int, error) {
	for name := range labels {
		if _, ok := s.index[name]; !ok {
			return nil, fmt.Errorf("coords.Locate(%s): %w", name, ErrUnknownDimension)
		}
	}
	pos := make([]int, len(s.axes))
	for i, a := range s.axes {
		l, ok := labels[a.Name()]
		if !ok {
			return nil, fmt.Errorf("coords.Locate(%s): %w", a.Name(), ErrMissingDimension)
		}
		p, err := a.Position(l)
		if err != nil {
			return nil, fmt.Errorf("coords.Locate: %w", err)
		}
		pos[i] = p
	}

	return pos, nil
}

// Equal reports whether both systems have the same dimensions, in the same
// order, with equal axes.
func (s *System) Equal(o *System) bool {
	if len(s.axes) != len(o.axes) {
		return false
	}
	for i := range s.axes {
		if !s.axes[i].Equal(o.axes[i]) {
			return false
		}
	}

	return true
}

// Clone returns a copy. Named axes are immutable and are shared.
func (s *System) Clone() *System {
	c, _ := New(s.axes...)

	return c
}

// String renders "{name: axis, ...}".
func (s *System) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, a := range s.axes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte('}')

	return sb.String()
}
