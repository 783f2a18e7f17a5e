// SPDX-License-Identifier: MIT

package expr

import (
	"strings"

	"github.com/katalvlaran/lvaxis/variant"
)

// Op is a comparison operator.
type Op string

const (
	// OpEqual is ==. Booleans may be compared for equality.
	OpEqual Op = "eq"
	// OpNotEqual is !=.
	OpNotEqual Op = "ne"
	// OpLess is <.
	OpLess Op = "lt"
	// OpLessEqual is <=.
	OpLessEqual Op = "le"
	// OpGreater is >.
	OpGreater Op = "gt"
	// OpGreaterEqual is >=.
	OpGreaterEqual Op = "ge"
)

// Symbol returns the operator in infix notation, e.g. "<=".
func (op Op) Symbol() string {
	switch op {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	}

	return string(op)
}

// Holds reports whether c, the three-way result of comparing a to b,
// satisfies op.
func (op Op) Holds(c int) (bool, error) {
	switch op {
	case OpEqual:
		return c == 0, nil
	case OpNotEqual:
		return c != 0, nil
	case OpLess:
		return c < 0, nil
	case OpLessEqual:
		return c <= 0, nil
	case OpGreater:
		return c > 0, nil
	case OpGreaterEqual:
		return c >= 0, nil
	}

	return false, exprErrorf("Compare", ErrUnknownOp)
}

type compareNode struct {
	op   Op
	a, b Node
}

// Compare applies op to the values of a and b.
func Compare(op Op, a, b Node) Node { return compareNode{op: op, a: a, b: b} }

// Eq is Compare(OpEqual, a, b).
func Eq(a, b Node) Node { return Compare(OpEqual, a, b) }

// Ne is Compare(OpNotEqual, a, b).
func Ne(a, b Node) Node { return Compare(OpNotEqual, a, b) }

// Lt is Compare(OpLess, a, b).
func Lt(a, b Node) Node { return Compare(OpLess, a, b) }

// Le is Compare(OpLessEqual, a, b).
func Le(a, b Node) Node { return Compare(OpLessEqual, a, b) }

// Gt is Compare(OpGreater, a, b).
func Gt(a, b Node) Node { return Compare(OpGreater, a, b) }

// Ge is Compare(OpGreaterEqual, a, b).
func Ge(a, b Node) Node { return Compare(OpGreaterEqual, a, b) }

func (n compareNode) Eval(sel Selector) (Value, error) {
	va, err := n.a.Eval(sel)
	if err != nil {
		return Value{}, err
	}
	vb, err := n.b.Eval(sel)
	if err != nil {
		return Value{}, err
	}

	if va.IsBool() || vb.IsBool() {
		if n.op != OpEqual && n.op != OpNotEqual {
			return Value{}, exprErrorf("Compare", ErrNotLabel)
		}
		return BoolValue(va.Equal(vb) == (n.op == OpEqual)), nil
	}

	la, _ := va.Label()
	lb, _ := vb.Label()
	c, err := la.Compare(lb)
	if err != nil {
		return Value{}, exprErrorf("Compare", err)
	}
	ok, err := n.op.Holds(c)
	if err != nil {
		return Value{}, err
	}

	return BoolValue(ok), nil
}

func (n compareNode) String() string {
	return "(" + n.a.String() + " " + n.op.Symbol() + " " + n.b.String() + ")"
}

func (n compareNode) dims(add func(string)) {
	n.a.dims(add)
	n.b.dims(add)
}

type inNode struct {
	x   Node
	set []variant.Label
}

// In is true when x evaluates to one of labels.
func In(x Node, labels ...variant.Label) Node { return inNode{x: x, set: labels} }

func (n inNode) Eval(sel Selector) (Value, error) {
	v, err := n.x.Eval(sel)
	if err != nil {
		return Value{}, err
	}
	l, ok := v.Label()
	if !ok {
		return Value{}, exprErrorf("In", ErrNotLabel)
	}
	for _, s := range n.set {
		if l.Equal(s) {
			return BoolValue(true), nil
		}
	}

	return BoolValue(false), nil
}

func (n inNode) String() string {
	parts := make([]string, len(n.set))
	for i, s := range n.set {
		parts[i] = s.String()
	}

	return n.x.String() + " in {" + strings.Join(parts, ", ") + "}"
}

func (n inNode) dims(add func(string)) { n.x.dims(add) }
