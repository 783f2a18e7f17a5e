// SPDX-License-Identifier: MIT
package variant_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvaxis/variant"
)

// ExampleAxis_Merge merges type-erased axes and rejects mixed label kinds.
func ExampleAxis_Merge() {
	v := variant.NewStrings([]string{"a", "b", "d", "e"})
	same, err := v.Merge(variant.NewStrings([]string{"b", "c", "d"}))
	fmt.Println(v, same, err)

	_, err = v.Merge(variant.NewInts([]int{1}))
	fmt.Println(errors.Is(err, variant.ErrLabelTypeMismatch))

	// Output:
	// [a, b, c, d, e] false <nil>
	// true
}

// ExampleAxis_Labels reads labels through the type-erased list.
func ExampleAxis_Labels() {
	v := variant.NewChars([]rune{'x', 'y'})
	fmt.Println(v.Labels(), v.Labels().Kind())

	d, _ := variant.NewDefault(3)
	fmt.Println(d, d.Labels(), d.Labels().IsRange())

	// Output:
	// ['x', 'y'] rune
	// default[0..3) [0, 1, 2] true
}
