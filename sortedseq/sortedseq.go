// SPDX-License-Identifier: MIT

package sortedseq

import (
	"cmp"
	"slices"
)

// Merge returns the sorted union of out and every input.
// Inputs are folded into out pairwise, left to right: the result of merging
// with inputs[i] becomes the receiver for inputs[i+1].
//
// Implementation:
//   - Stage 1: walk out and one input simultaneously by comparison.
//   - Stage 2: equal heads advance both; a smaller input head is inserted.
//   - Stage 3: the input tail (if any) is appended.
//
// Behavior highlights:
//   - Like append, out may be reused; always use the returned slice.
//   - No allocation happens while the result stays equal to out.
//
// Returns:
//   - []T: the union.
//   - bool: true iff the union equals the original out.
//
// Complexity:
//   - Time O(len(out)+len(in)) per input, Space O(len(out)+len(in)) on insertion.
func Merge[T cmp.Ordered](out []T, inputs ...[]T) ([]T, bool) {
	unchanged := true
	for _, in := range inputs {
		var same bool
		out, same = mergeTo(out, in)
		unchanged = unchanged && same
	}

	return out, unchanged
}

// mergeTo merges a single sorted input into out.
func mergeTo[T cmp.Ordered](out, in []T) ([]T, bool) {
	if len(in) == 0 {
		return out, true
	}

	var (
		i, j int
		buf  []T // stays nil until the first insertion before the tail
	)
	for i < len(out) && j < len(in) {
		c := cmp.Compare(out[i], in[j])
		switch {
		case c < 0:
			if buf != nil {
				buf = append(buf, out[i])
			}
			i++
		case c == 0:
			if buf != nil {
				buf = append(buf, out[i])
			}
			i++
			j++
		default:
			if buf == nil {
				buf = make([]T, i, len(out)+len(in)-j)
				copy(buf, out[:i])
			}
			buf = append(buf, in[j])
			j++
		}
	}

	if buf == nil {
		if j == len(in) {
			return out, true
		}

		return append(out, in[j:]...), false
	}
	buf = append(buf, out[i:]...)
	buf = append(buf, in[j:]...)

	return buf, false
}

// Intersect returns the sorted intersection of out and every input.
// out is compacted in place; the dropped tail is cleared so that removed
// elements do not stay reachable through the backing array.
//
// Returns true iff nothing was removed from out.
//
// Complexity: O(len(out)+len(in)) per input, no allocation.
func Intersect[T cmp.Ordered](out []T, inputs ...[]T) ([]T, bool) {
	unchanged := true
	for _, in := range inputs {
		var same bool
		out, same = intersectWith(out, in)
		unchanged = unchanged && same
	}

	return out, unchanged
}

func intersectWith[T cmp.Ordered](out, in []T) ([]T, bool) {
	var w, i, j int
	for i < len(out) && j < len(in) {
		c := cmp.Compare(out[i], in[j])
		switch {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			out[w] = out[i]
			w++
			i++
			j++
		}
	}
	clear(out[w:])

	return out[:w], w == len(out)
}

// IsSorted reports whether s is non-decreasing. Adjacent duplicates are allowed.
func IsSorted[T cmp.Ordered](s []T) bool {
	return slices.IsSorted(s)
}

// IsStrictlySorted reports whether s is ascending with no duplicates,
// which is the precondition of Merge and Intersect.
func IsStrictlySorted[T cmp.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if cmp.Compare(s[i-1], s[i]) >= 0 {
			return false
		}
	}

	return true
}
