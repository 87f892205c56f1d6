// SPDX-License-Identifier: MIT

package question

import (
	"strings"

	"github.com/katalvlaran/minkowski/bincode"
)

// half is the branch threshold shared by both directions.
const half = 0.5

// Forward returns the question-mark function ?(x) truncated to n steps.
//
// Steps (while n > 0 and x ≠ 0):
//   - x ≥ 1/2: digit 1, x ← 2 − 1/x
//   - x < 1/2: digit 0, x ← 1/(1−x) − 1
//
// The recorded digits d1…dk and the final argument r are folded
// innermost-first as (y+1)/2 or y/2 starting from y = r, i.e.
// bincode.DecodeTail(d1…dk, r).
//
// Edge cases:
//   - x == 0 or n ≤ 0 returns x unchanged.
//   - Forward(1, n) == 1 for every n.
//
// Complexity: O(n) time, O(n) space.
func Forward(x float64, n int) float64 {
	digits, r := forwardDigits(x, n)

	return bincode.DecodeTail(digits, r)
}

// Digits returns the binary digits of ?(x) produced by the first n steps
// of Forward: the run-length encoding of the continued fraction of x.
// Evaluation stops early once the argument reaches 0 (x rational).
func Digits(x float64, n int) bincode.Bits {
	digits, _ := forwardDigits(x, n)

	return digits
}

// forwardDigits runs the contraction loop and returns the digits together
// with the remaining argument.
func forwardDigits(x float64, n int) (bincode.Bits, float64) {
	var sb strings.Builder
	for ; n > 0 && x != 0; n-- {
		if x >= half {
			sb.WriteByte(bincode.One)
			x = 2 - 1/x
		} else {
			sb.WriteByte(bincode.Zero)
			x = 1/(1-x) - 1
		}
	}

	return bincode.Bits(sb.String()), x
}

// Inverse returns the inverse question-mark function ?⁻¹(x) truncated to n
// steps.
//
// Steps (while n > 0 and x ≠ 0):
//   - x ≥ 1/2: digit 1, x ← 2x − 1
//   - x < 1/2: digit 0, x ← 2x
//
// The digits are then folded innermost-first from y = final x:
// digit 1 maps y to 1/(2−y), digit 0 maps y to y/(1+y).
//
// Edge cases:
//   - x == 0 or n ≤ 0 returns x unchanged.
//   - Inverse(1, n) == 1 for every n.
//
// Complexity: O(n) time, O(n) space.
func Inverse(x float64, n int) float64 {
	if n <= 0 || x == 0 {
		return x
	}

	digits := make([]bool, 0, n)
	for ; n > 0 && x != 0; n-- {
		if x >= half {
			digits = append(digits, true)
			x = 2*x - 1
		} else {
			digits = append(digits, false)
			x = 2 * x
		}
	}

	y := x
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] {
			y = 1 / (2 - y)
		} else {
			y /= 1 + y
		}
	}

	return y
}
