// SPDX-License-Identifier: MIT

package variant

import (
	"cmp"
	"fmt"
	"strconv"
)

// LabelType is the closed set of label types an Axis variant can hold.
type LabelType interface {
	int | uint | rune | string
}

// LabelKind identifies a member of LabelType.
type LabelKind uint8

const (
	// NoLabel is the kind of the zero Label.
	NoLabel LabelKind = iota
	// IntLabel labels of type int.
	IntLabel
	// SizeLabel labels of type uint.
	SizeLabel
	// CharLabel labels of type rune.
	CharLabel
	// StringLabel labels of type string.
	StringLabel
)

// String returns the Go type name of the label kind.
func (k LabelKind) String() string {
	switch k {
	case IntLabel:
		return "int"
	case SizeLabel:
		return "uint"
	case CharLabel:
		return "rune"
	case StringLabel:
		return "string"
	default:
		return "none"
	}
}

// Label is a tagged label value of one of the LabelType members.
// The zero Label has kind NoLabel and compares unequal to everything.
type Label struct {
	kind LabelKind
	i    int // IntLabel, CharLabel
	u    uint
	s    string
}

// Int returns an int label.
func Int(v int) Label { return Label{kind: IntLabel, i: v} }

// Size returns a uint label.
func Size(v uint) Label { return Label{kind: SizeLabel, u: v} }

// Char returns a rune label.
func Char(v rune) Label { return Label{kind: CharLabel, i: int(v)} }

// Str returns a string label.
func Str(v string) Label { return Label{kind: StringLabel, s: v} }

// LabelOf wraps a value of the closed label set.
func LabelOf[L LabelType](v L) Label {
	switch x := any(v).(type) {
	case int:
		return Int(x)
	case uint:
		return Size(x)
	case rune:
		return Char(x)
	case string:
		return Str(x)
	}

	return Label{} // unreachable: LabelType is closed
}

// Value unwraps l as an L; ok is false when the kinds differ.
func Value[L LabelType](l Label) (v L, ok bool) {
	if l.kind != kindOf[L]() {
		return v, false
	}
	switch p := any(&v).(type) {
	case *int:
		*p = l.i
	case *uint:
		*p = l.u
	case *rune:
		*p = rune(l.i)
	case *string:
		*p = l.s
	}

	return v, true
}

// kindOf returns the LabelKind of the type parameter.
func kindOf[L LabelType]() LabelKind {
	var zero L
	switch any(zero).(type) {
	case int:
		return IntLabel
	case uint:
		return SizeLabel
	case rune:
		return CharLabel
	case string:
		return StringLabel
	}

	return NoLabel
}

// Kind returns the label kind.
func (l Label) Kind() LabelKind { return l.kind }

// IsValid reports whether l holds a value.
func (l Label) IsValid() bool { return l.kind != NoLabel }

// Int returns the int value if l is an IntLabel.
func (l Label) Int() (int, bool) { return l.i, l.kind == IntLabel }

// Size returns the uint value if l is a SizeLabel.
func (l Label) Size() (uint, bool) { return l.u, l.kind == SizeLabel }

// Char returns the rune value if l is a CharLabel.
func (l Label) Char() (rune, bool) { return rune(l.i), l.kind == CharLabel }

// Str returns the string value if l is a StringLabel.
func (l Label) Str() (string, bool) { return l.s, l.kind == StringLabel }

// Any returns the wrapped value as an interface, nil for the zero Label.
func (l Label) Any() any {
	switch l.kind {
	case IntLabel:
		return l.i
	case SizeLabel:
		return l.u
	case CharLabel:
		return rune(l.i)
	case StringLabel:
		return l.s
	}

	return nil
}

// Compare orders two labels of the same kind (-1, 0, +1).
// Errors: ErrLabelTypeMismatch when kinds differ or either label is zero.
func (l Label) Compare(o Label) (int, error) {
	if l.kind != o.kind || l.kind == NoLabel {
		return 0, mismatchErrorf("Label.Compare", l.kind, o.kind)
	}
	switch l.kind {
	case SizeLabel:
		return cmp.Compare(l.u, o.u), nil
	case StringLabel:
		return cmp.Compare(l.s, o.s), nil
	default:
		return cmp.Compare(l.i, o.i), nil
	}
}

// Equal reports whether both labels have the same kind and value.
func (l Label) Equal(o Label) bool { return l.kind != NoLabel && l == o }

// String renders the value; runes are quoted.
func (l Label) String() string {
	switch l.kind {
	case IntLabel:
		return strconv.Itoa(l.i)
	case SizeLabel:
		return strconv.FormatUint(uint64(l.u), 10)
	case CharLabel:
		return strconv.QuoteRune(rune(l.i))
	case StringLabel:
		return l.s
	}

	return "<none>"
}

// ParseLabel parses s as a label of the given kind. Runes are taken as the
// single character of s.
func ParseLabel(kind LabelKind, s string) (Label, error) {
	switch kind {
	case IntLabel:
		v, err := strconv.Atoi(s)
		if err != nil {
			return Label{}, variantErrorf("ParseLabel", err)
		}
		return Int(v), nil
	case SizeLabel:
		v, err := strconv.ParseUint(s, 10, strconv.IntSize)
		if err != nil {
			return Label{}, variantErrorf("ParseLabel", err)
		}
		return Size(uint(v)), nil
	case CharLabel:
		r := []rune(s)
		if len(r) != 1 {
			return Label{}, variantErrorf("ParseLabel", fmt.Errorf("%w: %q is not a single character", ErrLabelTypeMismatch, s))
		}
		return Char(r[0]), nil
	case StringLabel:
		return Str(s), nil
	}

	return Label{}, mismatchErrorf("ParseLabel", kind, NoLabel)
}
