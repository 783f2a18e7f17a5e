// SPDX-License-Identifier: MIT

package variant

import (
	"iter"

	"github.com/katalvlaran/lvaxis/axis"
)

// Kind identifies the active alternative of an Axis.
type Kind uint8

const (
	// KindNone is the kind of the zero Axis.
	KindNone Kind = iota
	// KindInt holds *axis.Axis[int].
	KindInt
	// KindSize holds *axis.Axis[uint].
	KindSize
	// KindChar holds *axis.Axis[rune].
	KindChar
	// KindString holds *axis.Axis[string].
	KindString
	// KindDefault holds *axis.DefaultAxis[int].
	KindDefault
)

// String returns a short lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindSize:
		return "uint"
	case KindChar:
		return "rune"
	case KindString:
		return "string"
	case KindDefault:
		return "default"
	default:
		return "none"
	}
}

// Axis is the type-erased axis. Copying an Axis shares the active concrete
// axis; use Clone for an independent copy before mutating.
type Axis struct {
	alt alternative
}

// Of wraps a sorted-form axis. A nil ax yields the zero Axis.
func Of[L LabelType](ax *axis.Axis[L]) Axis {
	if ax == nil {
		return Axis{}
	}

	return Axis{alt: &sortedAlt[L]{ax: ax}}
}

// OfDefault wraps a default axis. A nil ax yields the zero Axis.
func OfDefault(ax *axis.DefaultAxis[int]) Axis {
	if ax == nil {
		return Axis{}
	}

	return Axis{alt: &defaultAlt{ax: ax}}
}

// NewInts builds an int-labeled axis from a copy of labels.
func NewInts(labels []int, opts ...axis.Option) Axis { return Of(axis.New(labels, opts...)) }

// NewSizes builds a uint-labeled axis from a copy of labels.
func NewSizes(labels []uint, opts ...axis.Option) Axis { return Of(axis.New(labels, opts...)) }

// NewChars builds a rune-labeled axis from a copy of labels.
func NewChars(labels []rune, opts ...axis.Option) Axis { return Of(axis.New(labels, opts...)) }

// NewStrings builds a string-labeled axis from a copy of labels.
func NewStrings(labels []string, opts ...axis.Option) Axis { return Of(axis.New(labels, opts...)) }

// NewDefault builds a default axis of size n.
func NewDefault(n int) (Axis, error) {
	d, err := axis.NewDefault[int](n)
	if err != nil {
		return Axis{}, err
	}

	return OfDefault(d), nil
}

// Get returns the active concrete axis when it is an *axis.Axis[L].
func Get[L LabelType](v Axis) (*axis.Axis[L], bool) {
	s, ok := v.alt.(*sortedAlt[L])
	if !ok {
		return nil, false
	}

	return s.ax, true
}

// GetDefault returns the active default axis, if any.
func GetDefault(v Axis) (*axis.DefaultAxis[int], bool) {
	d, ok := v.alt.(*defaultAlt)
	if !ok {
		return nil, false
	}

	return d.ax, true
}

// Kind returns the active alternative, KindNone for the zero Axis.
func (v Axis) Kind() Kind {
	if v.alt == nil {
		return KindNone
	}

	return v.alt.kind()
}

// LabelKind returns the label type of the active alternative.
func (v Axis) LabelKind() LabelKind {
	if v.alt == nil {
		return NoLabel
	}

	return v.alt.labelKind()
}

// IsDefault reports whether the default alternative is active.
func (v Axis) IsDefault() bool { return v.Kind() == KindDefault }

// Valid reports whether an alternative is active.
func (v Axis) Valid() bool { return v.alt != nil }

// Size returns the number of labels, 0 for the zero Axis.
func (v Axis) Size() int {
	if v.alt == nil {
		return 0
	}

	return v.alt.size()
}

// Empty reports whether Size is 0.
func (v Axis) Empty() bool { return v.Size() == 0 }

// IsSorted reports the sortedness flag of the active alternative.
func (v Axis) IsSorted() bool {
	if v.alt == nil {
		return true
	}

	return v.alt.sorted()
}

// Contains reports whether l is a label of the axis.
// A label of another kind is never contained.
func (v Axis) Contains(l Label) bool {
	_, ok := v.Find(l)

	return ok
}

// Find returns the position of l without failing.
func (v Axis) Find(l Label) (int, bool) {
	if v.alt == nil {
		return 0, false
	}

	return v.alt.find(l)
}

// Position returns the position of l.
// Errors: ErrEmptyVariant, ErrLabelTypeMismatch, ErrKeyNotFound.
func (v Axis) Position(l Label) (int, error) {
	if v.alt == nil {
		return 0, variantErrorf("Position", ErrEmptyVariant)
	}
	if lk := v.alt.labelKind(); lk != l.Kind() {
		return 0, mismatchErrorf("Position", lk, l.Kind())
	}
	p, ok := v.alt.find(l)
	if !ok {
		return 0, variantErrorf("Position", fmtKey(l))
	}

	return p, nil
}

// Label returns the label at position i.
// Errors: ErrEmptyVariant, ErrOutOfRange.
func (v Axis) Label(i int) (Label, error) {
	if v.alt == nil {
		return Label{}, variantErrorf("Label", ErrEmptyVariant)
	}

	return v.alt.label(i)
}

// Labels returns a borrowed view of the labels.
func (v Axis) Labels() LabelList {
	if v.alt == nil {
		return LabelList{}
	}

	return v.alt.labels()
}

// Filter returns a sorted-form axis with the labels satisfying pred, in
// order. Filtering a default axis yields an int-labeled sorted-form axis.
func (v Axis) Filter(pred func(Label) bool) Axis {
	if v.alt == nil {
		return Axis{}
	}

	return Axis{alt: v.alt.filter(pred)}
}

// All yields (label, position) pairs in position order.
func (v Axis) All() iter.Seq2[Label, int] {
	if v.alt == nil {
		return func(func(Label, int) bool) {}
	}

	return v.alt.all()
}

// Equal reports whether both axes hold the same alternative with equal
// labels in the same order. Two zero Axis values are equal.
func (v Axis) Equal(o Axis) bool {
	if v.alt == nil || o.alt == nil {
		return v.alt == nil && o.alt == nil
	}

	return v.alt.equal(o.alt)
}

// Clone returns an independent deep copy.
func (v Axis) Clone() Axis {
	if v.alt == nil {
		return Axis{}
	}

	return Axis{alt: v.alt.clone()}
}

// AsAxis returns a sorted-form copy: a default axis becomes the
// *axis.Axis[int] of its labels, any other alternative is cloned.
func (v Axis) AsAxis() Axis {
	if v.alt == nil {
		return Axis{}
	}

	return Axis{alt: v.alt.toAxis()}
}

// String renders the active axis.
func (v Axis) String() string {
	if v.alt == nil {
		return "<none>"
	}

	return v.alt.String()
}

// Merge unions the labels of others into v, in place.
// It returns true iff v was left unchanged.
//
// Errors (reported before any write): ErrEmptyVariant for a zero receiver or
// argument, ErrUnsupported for a default receiver, ErrLabelTypeMismatch for
// an argument of another label kind.
func (v *Axis) Merge(others ...Axis) (bool, error) {
	args, err := v.checkAlgebra("Merge", others)
	if err != nil {
		return false, err
	}

	return v.alt.merge(args)
}

// Intersect keeps in v only the labels present in every argument.
// It returns true iff v was left unchanged. Errors as for Merge.
func (v *Axis) Intersect(others ...Axis) (bool, error) {
	args, err := v.checkAlgebra("Intersect", others)
	if err != nil {
		return false, err
	}

	return v.alt.intersect(args)
}

func (v *Axis) checkAlgebra(method string, others []Axis) ([]alternative, error) {
	if v.alt == nil {
		return nil, variantErrorf(method, ErrEmptyVariant)
	}
	if v.alt.kind() == KindDefault {
		return nil, variantErrorf(method, ErrUnsupported)
	}
	want := v.alt.labelKind()
	args := make([]alternative, len(others))
	for i, o := range others {
		if o.alt == nil {
			return nil, variantErrorf(method, ErrEmptyVariant)
		}
		if got := o.alt.labelKind(); got != want {
			return nil, mismatchErrorf(method, want, got)
		}
		args[i] = o.alt
	}

	return args, nil
}
