// SPDX-License-Identifier: MIT

// Package sample evaluates maps of [0,1] over a uniform dyadic grid and
// measures how their finite-difference slopes behave.
//
// Element-wise application is explicit: Map walks the ordered points and
// stops at the first failure; there is no broadcasting.
//
// ✨ What is here:
//   - Grid(n): the 2^n+1 points k·2^-n, k = 0..2^n
//   - Map: ordered element-wise evaluation of a fallible function
//   - Slopes / MaxSlopeJump: the smoothness metric used to compare a tree
//     map (slopes jump at cell boundaries) with its conjugate (slopes vary
//     continuously)
//   - Table: named columns written as CSV
package sample
