// SPDX-License-Identifier: MIT

package axis

import (
	"fmt"
	"iter"

	"fortio.org/safecast"
)

// DefaultAxis is the axis of an unlabeled dimension of size n: its labels are
// the integers 0..n-1 and a label is its own position.
//
// It stores nothing but its size. Membership and lookups are arithmetic, and
// label↔position conversions are checked with safecast so that negative or
// oversized labels of any integer type are simply "not contained".
//
// Set algebra is refused (ErrUnsupported): the identity of a DefaultAxis is
// its size, and any structural change must go through ToAxis first.
type DefaultAxis[L safecast.Integer] struct {
	size int
}

var _ Source[int] = (*DefaultAxis[int])(nil)

// NewDefault returns the default axis 0..size-1.
// Errors: ErrInvalidSize when size < 0 or size-1 does not fit in L.
func NewDefault[L safecast.Integer](size int) (*DefaultAxis[L], error) {
	if size < 0 {
		return nil, axisErrorf("NewDefault", size, ErrInvalidSize)
	}
	if size > 0 {
		if _, err := safecast.Conv[L](size - 1); err != nil {
			return nil, axisErrorf("NewDefault", size, fmt.Errorf("%w: %w", ErrInvalidSize, err))
		}
	}

	return &DefaultAxis[L]{size: size}, nil
}

// Size returns n.
func (d *DefaultAxis[L]) Size() int {
	if d == nil {
		return 0
	}

	return d.size
}

// Empty reports whether n == 0.
func (d *DefaultAxis[L]) Empty() bool { return d.Size() == 0 }

// IsSorted is always true.
func (d *DefaultAxis[L]) IsSorted() bool { return true }

// Find returns (k, true) when 0 <= k < n. Complexity: O(1), no storage.
func (d *DefaultAxis[L]) Find(k L) (int, bool) {
	p, err := safecast.Conv[int](k)
	if err != nil || p < 0 || p >= d.Size() {
		return 0, false
	}

	return p, true
}

// Contains reports 0 <= k < n.
func (d *DefaultAxis[L]) Contains(k L) bool {
	_, ok := d.Find(k)

	return ok
}

// Position returns k, or ErrKeyNotFound when k is outside [0, n).
func (d *DefaultAxis[L]) Position(k L) (int, error) {
	p, ok := d.Find(k)
	if !ok {
		return 0, axisErrorf("DefaultAxis.Position", k, ErrKeyNotFound)
	}

	return p, nil
}

// Label returns the label at position i (which is i itself).
func (d *DefaultAxis[L]) Label(i int) (L, error) {
	if i < 0 || i >= d.Size() {
		var zero L
		return zero, axisErrorf("DefaultAxis.Label", i, ErrOutOfRange)
	}

	return safecast.Conv[L](i)
}

// Labels materializes 0..n-1. Each call allocates; prefer All or Label for
// read-only walks.
func (d *DefaultAxis[L]) Labels() []L {
	out := make([]L, d.Size())
	for i := range out {
		out[i] = L(i) // fits: checked against size-1 by NewDefault
	}

	return out
}

// Filter materializes the labels satisfying pred into an ordinary sorted Axis.
// The result is not necessarily contiguous from zero, hence not a DefaultAxis.
func (d *DefaultAxis[L]) Filter(pred func(L) bool, opts ...Option) *Axis[L] {
	return d.filter(pred, 0, opts)
}

// FilterN is Filter with a known result size n (single allocation).
func (d *DefaultAxis[L]) FilterN(pred func(L) bool, n int, opts ...Option) *Axis[L] {
	return d.filter(pred, max(n, 0), opts)
}

func (d *DefaultAxis[L]) filter(pred func(L) bool, capacity int, opts []Option) *Axis[L] {
	out := make([]L, 0, capacity)
	for i := 0; i < d.Size(); i++ {
		if l := L(i); pred(l) {
			out = append(out, l)
		}
	}

	return Wrap(out, append(opts[:len(opts):len(opts)], WithSorted(true))...)
}

// Merge always fails with ErrUnsupported and leaves the axis untouched.
func (d *DefaultAxis[L]) Merge(...Source[L]) (bool, error) {
	return false, fmt.Errorf("DefaultAxis.Merge: %w", ErrUnsupported)
}

// Intersect always fails with ErrUnsupported and leaves the axis untouched.
func (d *DefaultAxis[L]) Intersect(...Source[L]) (bool, error) {
	return false, fmt.Errorf("DefaultAxis.Intersect: %w", ErrUnsupported)
}

// ToAxis converts to an ordinary, mutable Axis holding 0..n-1.
func (d *DefaultAxis[L]) ToAxis(opts ...Option) *Axis[L] {
	return Wrap(d.Labels(), append(opts[:len(opts):len(opts)], WithSorted(true))...)
}

// All yields (label, position) pairs; label == position.
func (d *DefaultAxis[L]) All() iter.Seq2[L, int] {
	return func(yield func(L, int) bool) {
		for i := 0; i < d.Size(); i++ {
			if !yield(L(i), i) {
				return
			}
		}
	}
}

// Equal reports whether both axes have the same size.
func (d *DefaultAxis[L]) Equal(o *DefaultAxis[L]) bool { return d.Size() == o.Size() }

// Clone returns a copy.
func (d *DefaultAxis[L]) Clone() *DefaultAxis[L] {
	if d == nil {
		return nil
	}

	return &DefaultAxis[L]{size: d.size}
}

// String renders the axis as "default[0..n)".
func (d *DefaultAxis[L]) String() string {
	return fmt.Sprintf("default[0..%d)", d.Size())
}
