// SPDX-License-Identifier: MIT

// Package coords - alignment of coordinate systems (outer / inner join).

package coords

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvaxis/named"
	"github.com/katalvlaran/lvaxis/variant"
)

type joinKind uint8

const (
	outerJoin joinKind = iota
	innerJoin
)

func (j joinKind) String() string {
	if j == innerJoin {
		return "intersect"
	}

	return "merge"
}

// Broadcast aligns systems with an outer join.
//
// Implementation:
//   - Stage 1: collect dimension names in first-appearance order.
//   - Stage 2: per dimension, merge the same-named axes (see alignAxes).
//   - Stage 3: build the result and compare it with every input.
//
// Returns:
//   - *System: the aligned system.
//   - bool: true iff every input equals the result (trivial broadcast).
//
// Errors:
//   - variant.ErrLabelTypeMismatch when same-named axes have different label
//     kinds, wrapped with the dimension name.
func Broadcast(systems []*System, opts ...Option) (*System, bool, error) {
	return align(outerJoin, systems, gatherOptions(opts...))
}

// Intersect aligns systems with an inner join: same as Broadcast, with
// same-named axes intersected instead of merged.
func Intersect(systems []*System, opts ...Option) (*System, bool, error) {
	return align(innerJoin, systems, gatherOptions(opts...))
}

func align(join joinKind, systems []*System, o options) (*System, bool, error) {
	var order []string
	groups := make(map[string][]named.Axis)
	for _, s := range systems {
		if s == nil {
			continue
		}
		for _, a := range s.axes {
			if _, seen := groups[a.Name()]; !seen {
				order = append(order, a.Name())
			}
			groups[a.Name()] = append(groups[a.Name()], a)
		}
	}

	axes := make([]named.Axis, len(order))
	for i, name := range order {
		a, same, err := alignAxes(join, groups[name])
		if err != nil {
			return nil, false, fmt.Errorf("coords.%s(%s): %w", join, name, err)
		}
		axes[i] = a
		o.logger.Debug("aligned dimension",
			slog.String("op", join.String()),
			slog.String("dim", name),
			slog.Int("inputs", len(groups[name])),
			slog.Int("size", a.Size()),
			slog.Bool("equal", same),
		)
	}

	out, err := New(axes...)
	if err != nil {
		return nil, false, err
	}

	trivial := true
	for _, s := range systems {
		if s != nil && !s.Equal(out) {
			trivial = false
			break
		}
	}

	return out, trivial, nil
}

// alignAxes joins same-named axes. When all are equal the first is returned
// as is (a default axis stays default); otherwise its variant is normalized
// with AsAxis and merged or intersected with the others.
func alignAxes(join joinKind, group []named.Axis) (named.Axis, bool, error) {
	first := group[0]
	same := true
	for _, a := range group[1:] {
		if !a.Equal(first) {
			same = false
			break
		}
	}
	if same {
		return first, true, nil
	}

	v := first.Axis().AsAxis()
	args := make([]variant.Axis, 0, len(group)-1)
	for _, a := range group[1:] {
		args = append(args, a.Axis())
	}

	var err error
	if join == innerJoin {
		_, err = v.Intersect(args...)
	} else {
		_, err = v.Merge(args...)
	}
	if err != nil {
		return named.Axis{}, false, err
	}
	out, err := first.WithAxis(v)

	return out, false, err
}
