package treemap_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/minkowski/treemap"
)

// ExampleBuild evaluates generator A of Thompson's group F on its cells.
//
//	00 → 0  : [0,¼] → [0,½]   slope 2
//	01 → 10 : [¼,½] → [½,¾]   slope 1
//	1  → 11 : [½,1] → [¾,1]   slope ½
func ExampleBuild() {
	a, err := treemap.Build(treemap.GeneratorA())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, x := range []float64{0, 0.125, 0.25, 0.5, 0.75, 1} {
		y, _ := a.Apply(x)
		fmt.Printf("A(%.3f) = %.4f\n", x, y)
	}
	// Output:
	// A(0.000) = 0.0000
	// A(0.125) = 0.2500
	// A(0.250) = 0.5000
	// A(0.500) = 0.7500
	// A(0.750) = 0.8750
	// A(1.000) = 1.0000
}

// ExampleValidate shows an incomplete prefix code being rejected.
func ExampleValidate() {
	d := treemap.Dictionary{
		{Source: "00", Target: "0"},
		{Source: "1", Target: "1"},
	}
	err := treemap.Validate(d)
	fmt.Println(errors.Is(err, treemap.ErrIncompleteCode))
	// Output:
	// true
}

// ExampleDictionary_Inverse builds A⁻¹ and undoes A.
func ExampleDictionary_Inverse() {
	a := treemap.MustBuild(treemap.GeneratorA())
	aInv := treemap.MustBuild(treemap.GeneratorA().Inverse())

	y, _ := a.Apply(0.375)
	x, _ := aInv.Apply(y)
	fmt.Println(y, x)
	// Output:
	// 0.625 0.375
}
