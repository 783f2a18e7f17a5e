// SPDX-License-Identifier: MIT

package xarray

import (
	"fmt"
	"math"

	"fortio.org/safecast"
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvaxis/expr"
)

// Mask evaluates node at every cell and returns the flat offsets where it
// holds.
//
// One selector buffer is reused for all cells. Errors from the expression
// (expr.ErrMissingAxis for a dimension the array lacks, label type
// mismatches) abort the scan; ErrTooLarge when the array has more than 2^32
// cells.
func (a *Array) Mask(node expr.Node) (*roaring.Bitmap, error) {
	if _, err := safecast.Conv[uint32](max(a.data.Len()-1, 0)); err != nil {
		return nil, fmt.Errorf("xarray.Mask: %w: %w", ErrTooLarge, err)
	}

	bm := roaring.New()
	sel := make(expr.Selector, a.cs.Len())
	for d, name := range a.cs.Dims() {
		sel[d].Name = name
	}

	off := 0
	for idx := range a.data.All() {
		for d, i := range idx {
			sel[d].Pos = i
		}
		ok, err := expr.Evaluate(node, sel)
		if err != nil {
			return nil, fmt.Errorf("xarray.Mask(%s): %w", node, err)
		}
		if ok {
			bm.Add(uint32(off))
		}
		off++
	}

	return bm, nil
}

// Where returns a copy of a with NaN in every cell where node does not hold.
func (a *Array) Where(node expr.Node) (*Array, error) {
	bm, err := a.Mask(node)
	if err != nil {
		return nil, err
	}
	out := a.Clone()
	vals := out.data.Data()
	for i := range vals {
		if !bm.Contains(uint32(i)) {
			vals[i] = math.NaN()
		}
	}

	return out, nil
}
