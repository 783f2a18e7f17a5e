// SPDX-License-Identifier: MIT
package xarray_test

import (
	"fmt"

	"github.com/katalvlaran/lvaxis/coords"
	"github.com/katalvlaran/lvaxis/dense"
	"github.com/katalvlaran/lvaxis/named"
	"github.com/katalvlaran/lvaxis/variant"
	"github.com/katalvlaran/lvaxis/xarray"
)

func exampleArray(values []float64, labels ...string) *xarray.Array {
	x, _ := named.New("x", variant.NewStrings(labels))
	cs, _ := coords.New(x)
	d, _ := dense.FromData(values, len(labels))
	a, _ := xarray.New(cs, d)

	return a
}

// ExampleAdd aligns two arrays by label with both joins.
func ExampleAdd() {
	a := exampleArray([]float64{1, 2, 3}, "a", "b", "c")
	b := exampleArray([]float64{10, 20, 30}, "b", "c", "d")

	outer, _ := xarray.Add(a, b)
	fmt.Println(outer)

	inner, _ := xarray.Add(a, b, xarray.WithJoin(xarray.Inner))
	fmt.Println(inner)

	// Output:
	// {x: [a, b, c, d]}
	// [NaN, 12, 23, NaN]
	// {x: [b, c]}
	// [12, 23]
}
