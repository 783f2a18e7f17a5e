// SPDX-License-Identifier: MIT
package expr_test

import (
	"fmt"

	"github.com/katalvlaran/lvaxis/expr"
	"github.com/katalvlaran/lvaxis/named"
	"github.com/katalvlaran/lvaxis/variant"
)

// ExampleEvaluate evaluates one predicate at every position of a dimension.
func ExampleEvaluate() {
	year, _ := named.New("year", variant.NewInts([]int{2023, 2024, 2025}))
	e := expr.Ge(expr.Leaf(year), expr.Const(variant.Int(2024)))
	fmt.Println(e)

	for p := range year.Size() {
		ok, _ := expr.Evaluate(e, expr.Selector{{Name: "year", Pos: p}})
		fmt.Println(p, ok)
	}

	// Output:
	// (year >= 2024)
	// 0 false
	// 1 true
	// 2 true
}
