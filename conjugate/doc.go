// SPDX-License-Identifier: MIT

// Package conjugate conjugates a map of [0,1] by the Minkowski
// question-mark function:
//
//	C(x) = ?⁻¹( f( ?(x) ) )
//
// For a tree map f of Thompson's group F the result is no longer
// piecewise linear: ? carries dyadic breakpoints to rational ones and the
// linear pieces to Möbius pieces whose slopes agree at the joins, giving a
// smooth automorphism of [0,1]. The package only composes; all numerics
// live in question and treemap.
//
// ⚙️ Usage:
//
//	a := treemap.MustBuild(treemap.GeneratorA())
//	c := conjugate.New(a, conjugate.WithDepth(20))
//	y, err := c.Apply(0.5) // ≈ 2/3
package conjugate
