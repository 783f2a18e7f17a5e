// SPDX-License-Identifier: MIT

package axis

import "cmp"

// Source is the read-only view of an axis used as an argument of Merge and
// Intersect: its labels in position order and whether they are sorted.
// *Axis[L] and *DefaultAxis[L] implement it; any other label container can
// take part in alignment by implementing these two methods.
type Source[L cmp.Ordered] interface {
	// Labels returns the labels in position order. Borrowed; not modified by callers.
	Labels() []L

	// IsSorted reports whether Labels is non-decreasing.
	IsSorted() bool
}

// Labels adapts a plain slice into a Source, scanning it for sortedness.
func Labels[L cmp.Ordered](labels ...L) Source[L] {
	return New(labels)
}
