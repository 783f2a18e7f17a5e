// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvaxis/named"
	"github.com/katalvlaran/lvaxis/variant"
)

// Coord addresses one position along a named dimension.
type Coord struct {
	Name string
	Pos  int
}

// Selector is the evaluation context of an expression.
type Selector []Coord

// Get returns the position selected for name by a linear scan.
func (s Selector) Get(name string) (int, bool) {
	for _, c := range s {
		if c.Name == name {
			return c.Pos, true
		}
	}

	return 0, false
}

// Node is an expression tree node.
// The set of node kinds is closed; build trees with the functions below.
type Node interface {
	// Eval evaluates the subtree at sel.
	Eval(sel Selector) (Value, error)
	fmt.Stringer

	dims(add func(string))
}

// Evaluate evaluates n at sel and requires a boolean result.
func Evaluate(n Node, sel Selector) (bool, error) {
	v, err := n.Eval(sel)
	if err != nil {
		return false, err
	}
	b, ok := v.Bool()
	if !ok {
		return false, exprErrorf("Evaluate", ErrNotBoolean)
	}

	return b, nil
}

// Dims returns the dimension names the leaves of n refer to, in first-use
// order and without duplicates.
func Dims(n Node) []string {
	var out []string
	seen := make(map[string]struct{})
	n.dims(func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	})

	return out
}

// --- leaves -----------------------------------------------------------------

type leafNode struct {
	axis named.Axis
}

// Leaf evaluates to the label of ax at the position the selector gives for
// ax's name.
func Leaf(ax named.Axis) Node { return leafNode{axis: ax} }

func (l leafNode) Eval(sel Selector) (Value, error) {
	pos, ok := sel.Get(l.axis.Name())
	if !ok {
		return Value{}, fmt.Errorf("expr.Leaf(%s): %w", l.axis.Name(), ErrMissingAxis)
	}
	lb, err := l.axis.Label(pos)
	if err != nil {
		return Value{}, exprErrorf("Leaf", err)
	}

	return LabelValue(lb), nil
}

func (l leafNode) String() string        { return l.axis.Name() }
func (l leafNode) dims(add func(string)) { add(l.axis.Name()) }

type constNode struct {
	v Value
}

// Const is a constant label.
func Const(l variant.Label) Node { return constNode{v: LabelValue(l)} }

// True and False are boolean constants.
var (
	True  Node = constNode{v: BoolValue(true)}
	False Node = constNode{v: BoolValue(false)}
)

func (c constNode) Eval(Selector) (Value, error) { return c.v, nil }
func (c constNode) String() string               { return c.v.String() }
func (c constNode) dims(func(string))            {}

// --- logic ------------------------------------------------------------------

type notNode struct {
	x Node
}

// Not negates a boolean node.
func Not(x Node) Node { return notNode{x: x} }

func (n notNode) Eval(sel Selector) (Value, error) {
	b, err := evalBool("Not", n.x, sel)
	if err != nil {
		return Value{}, err
	}

	return BoolValue(!b), nil
}

func (n notNode) String() string        { return "!" + n.x.String() }
func (n notNode) dims(add func(string)) { n.x.dims(add) }

type logicNode struct {
	and  bool
	args []Node
}

// And is true when every argument is true; evaluation stops at the first
// false. And() is true.
func And(args ...Node) Node { return logicNode{and: true, args: args} }

// Or is true when any argument is true; evaluation stops at the first true.
// Or() is false.
func Or(args ...Node) Node { return logicNode{args: args} }

func (n logicNode) Eval(sel Selector) (Value, error) {
	name := "Or"
	if n.and {
		name = "And"
	}
	for _, a := range n.args {
		b, err := evalBool(name, a, sel)
		if err != nil {
			return Value{}, err
		}
		if b != n.and {
			return BoolValue(b), nil
		}
	}

	return BoolValue(n.and), nil
}

func (n logicNode) String() string {
	sep := " || "
	if n.and {
		sep = " && "
	}
	parts := make([]string, len(n.args))
	for i, a := range n.args {
		parts[i] = a.String()
	}

	return "(" + strings.Join(parts, sep) + ")"
}

func (n logicNode) dims(add func(string)) {
	for _, a := range n.args {
		a.dims(add)
	}
}

func evalBool(node string, x Node, sel Selector) (bool, error) {
	v, err := x.Eval(sel)
	if err != nil {
		return false, err
	}
	b, ok := v.Bool()
	if !ok {
		return false, exprErrorf(node, ErrNotBoolean)
	}

	return b, nil
}
