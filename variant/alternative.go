// SPDX-License-Identifier: MIT

package variant

import (
	"iter"

	"github.com/katalvlaran/lvaxis/axis"
)

// alternative is the sealed dispatch surface of an Axis.
// Argument kinds are validated by Axis before merge/intersect are called.
type alternative interface {
	kind() Kind
	labelKind() LabelKind
	size() int
	sorted() bool
	find(l Label) (int, bool)
	label(i int) (Label, error)
	labels() LabelList
	filter(pred func(Label) bool) alternative
	all() iter.Seq2[Label, int]
	merge(args []alternative) (bool, error)
	intersect(args []alternative) (bool, error)
	toAxis() alternative
	clone() alternative
	equal(o alternative) bool
	visit(vis Visitor) error
	String() string
}

// sortedAlt holds a sorted-form axis of one label type.
type sortedAlt[L LabelType] struct {
	ax *axis.Axis[L]
}

func (s *sortedAlt[L]) kind() Kind {
	switch kindOf[L]() {
	case IntLabel:
		return KindInt
	case SizeLabel:
		return KindSize
	case CharLabel:
		return KindChar
	default:
		return KindString
	}
}

func (s *sortedAlt[L]) labelKind() LabelKind { return kindOf[L]() }
func (s *sortedAlt[L]) size() int            { return s.ax.Size() }
func (s *sortedAlt[L]) sorted() bool         { return s.ax.IsSorted() }
func (s *sortedAlt[L]) labels() LabelList    { return listOf(s.ax.Labels()) }
func (s *sortedAlt[L]) String() string       { return s.ax.String() }

func (s *sortedAlt[L]) find(l Label) (int, bool) {
	v, ok := Value[L](l)
	if !ok {
		return 0, false
	}

	return s.ax.Find(v)
}

func (s *sortedAlt[L]) label(i int) (Label, error) {
	v, err := s.ax.Label(i)
	if err != nil {
		return Label{}, err
	}

	return LabelOf(v), nil
}

func (s *sortedAlt[L]) filter(pred func(Label) bool) alternative {
	return &sortedAlt[L]{ax: s.ax.Filter(func(v L) bool { return pred(LabelOf(v)) })}
}

func (s *sortedAlt[L]) all() iter.Seq2[Label, int] {
	return func(yield func(Label, int) bool) {
		for v, p := range s.ax.All() {
			if !yield(LabelOf(v), p) {
				return
			}
		}
	}
}

func (s *sortedAlt[L]) merge(args []alternative) (bool, error) {
	return s.ax.Merge(sourcesOf[L](args)...), nil
}

func (s *sortedAlt[L]) intersect(args []alternative) (bool, error) {
	return s.ax.Intersect(sourcesOf[L](args)...), nil
}

func (s *sortedAlt[L]) toAxis() alternative { return s.clone() }
func (s *sortedAlt[L]) clone() alternative  { return &sortedAlt[L]{ax: s.ax.Clone()} }

func (s *sortedAlt[L]) equal(o alternative) bool {
	other, ok := o.(*sortedAlt[L])

	return ok && s.ax.Equal(other.ax)
}

func (s *sortedAlt[L]) visit(vis Visitor) error {
	switch ax := any(s.ax).(type) {
	case *axis.Axis[int]:
		return vis.VisitInt(ax)
	case *axis.Axis[uint]:
		return vis.VisitSize(ax)
	case *axis.Axis[rune]:
		return vis.VisitChar(ax)
	case *axis.Axis[string]:
		return vis.VisitString(ax)
	}

	return nil // unreachable: LabelType is closed
}

// sourcesOf re-types validated arguments as axis sources of L.
// A default alternative is a Source[int] and is accepted when L is int.
func sourcesOf[L LabelType](args []alternative) []axis.Source[L] {
	out := make([]axis.Source[L], 0, len(args))
	for _, a := range args {
		switch alt := a.(type) {
		case *sortedAlt[L]:
			out = append(out, alt.ax)
		case *defaultAlt:
			if src, ok := any(alt.ax).(axis.Source[L]); ok {
				out = append(out, src)
			}
		}
	}

	return out
}

// defaultAlt holds the int default axis.
type defaultAlt struct {
	ax *axis.DefaultAxis[int]
}

func (d *defaultAlt) kind() Kind           { return KindDefault }
func (d *defaultAlt) labelKind() LabelKind { return IntLabel }
func (d *defaultAlt) size() int            { return d.ax.Size() }
func (d *defaultAlt) sorted() bool         { return true }
func (d *defaultAlt) labels() LabelList    { return LabelList{seq: rangeSeq(d.ax.Size())} }
func (d *defaultAlt) String() string       { return d.ax.String() }

func (d *defaultAlt) find(l Label) (int, bool) {
	v, ok := l.Int()
	if !ok {
		return 0, false
	}

	return d.ax.Find(v)
}

func (d *defaultAlt) label(i int) (Label, error) {
	v, err := d.ax.Label(i)
	if err != nil {
		return Label{}, err
	}

	return Int(v), nil
}

func (d *defaultAlt) filter(pred func(Label) bool) alternative {
	return &sortedAlt[int]{ax: d.ax.Filter(func(v int) bool { return pred(Int(v)) })}
}

func (d *defaultAlt) all() iter.Seq2[Label, int] {
	return func(yield func(Label, int) bool) {
		for v, p := range d.ax.All() {
			if !yield(Int(v), p) {
				return
			}
		}
	}
}

func (d *defaultAlt) merge([]alternative) (bool, error)     { return d.ax.Merge() }
func (d *defaultAlt) intersect([]alternative) (bool, error) { return d.ax.Intersect() }

func (d *defaultAlt) toAxis() alternative { return &sortedAlt[int]{ax: d.ax.ToAxis()} }
func (d *defaultAlt) clone() alternative  { return &defaultAlt{ax: d.ax.Clone()} }

func (d *defaultAlt) equal(o alternative) bool {
	other, ok := o.(*defaultAlt)

	return ok && d.ax.Equal(other.ax)
}

func (d *defaultAlt) visit(vis Visitor) error { return vis.VisitDefault(d.ax) }
