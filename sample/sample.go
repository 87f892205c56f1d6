// SPDX-License-Identifier: MIT

package sample

import (
	"fmt"
	"math"
)

// MaxGridDepth bounds Grid so the point count stays reasonable (2^24+1).
const MaxGridDepth = 24

// Func is a map of [0,1] that may fail for some inputs.
type Func func(x float64) (float64, error)

// Grid returns the uniform dyadic grid k·2^-n for k = 0..2^n, ascending.
// Every point is exact in float64.
//
// Errors:
//   - ErrBadDepth if n < 0 or n > MaxGridDepth.
func Grid(n int) ([]float64, error) {
	if n < 0 || n > MaxGridDepth {
		return nil, fmt.Errorf("%w: %d", ErrBadDepth, n)
	}

	size := 1 << n
	xs := make([]float64, size+1)
	for k := 0; k <= size; k++ {
		xs[k] = math.Ldexp(float64(k), -n)
	}

	return xs, nil
}

// Map applies f to every point of xs in order and returns the results.
// The first failure aborts and is returned with its index and input.
func Map(xs []float64, f Func) ([]float64, error) {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		y, err := f(x)
		if err != nil {
			return nil, fmt.Errorf("sample: point %d (x=%v): %w", i, x, err)
		}
		ys[i] = y
	}

	return ys, nil
}

// Slopes returns the forward differences (ys[i+1]−ys[i])/(xs[i+1]−xs[i]),
// one per interval.
//
// Errors:
//   - ErrLengthMismatch if len(xs) != len(ys).
//   - ErrTooFewPoints if fewer than two points.
//   - ErrNotIncreasing if xs is not strictly increasing.
func Slopes(xs, ys []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d points, %d values", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, ErrTooFewPoints
	}

	out := make([]float64, len(xs)-1)
	for i := 0; i+1 < len(xs); i++ {
		dx := xs[i+1] - xs[i]
		if !(dx > 0) {
			return nil, fmt.Errorf("%w: at index %d", ErrNotIncreasing, i)
		}
		out[i] = (ys[i+1] - ys[i]) / dx
	}

	return out, nil
}

// MaxSlopeJump returns the largest |s[i+1] − s[i]| over adjacent slopes and
// the index i where it occurs. With fewer than two slopes it returns (0, -1).
// A piecewise-linear map shows a jump of the size of its slope change at
// each breakpoint; a smooth map's jumps shrink with the grid spacing.
func MaxSlopeJump(slopes []float64) (jump float64, at int) {
	at = -1
	for i := 0; i+1 < len(slopes); i++ {
		d := math.Abs(slopes[i+1] - slopes[i])
		if d > jump || at < 0 {
			jump, at = d, i
		}
	}

	return jump, at
}
