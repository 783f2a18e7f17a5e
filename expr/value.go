// SPDX-License-Identifier: MIT

package expr

import (
	"strconv"

	"github.com/katalvlaran/lvaxis/variant"
)

// Value is the result of evaluating a Node: a label or a boolean.
type Value struct {
	label  variant.Label
	b      bool
	isBool bool
}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{b: b, isBool: true} }

// LabelValue wraps a label.
func LabelValue(l variant.Label) Value { return Value{label: l} }

// Bool returns the boolean, ok=false for a label.
func (v Value) Bool() (b, ok bool) { return v.b, v.isBool }

// Label returns the label, ok=false for a boolean.
func (v Value) Label() (variant.Label, bool) { return v.label, !v.isBool }

// IsBool reports whether v holds a boolean.
func (v Value) IsBool() bool { return v.isBool }

// Equal reports whether both values hold the same boolean or the same label.
func (v Value) Equal(o Value) bool {
	if v.isBool || o.isBool {
		return v.isBool && o.isBool && v.b == o.b
	}

	return v.label.Equal(o.label)
}

// String renders the value.
func (v Value) String() string {
	if v.isBool {
		return strconv.FormatBool(v.b)
	}

	return v.label.String()
}
