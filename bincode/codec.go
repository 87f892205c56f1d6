// SPDX-License-Identifier: MIT

package bincode

import "strings"

// Encode returns the first n digits of the binary expansion of x.
//
// Algorithm:
//  1. r := x.
//  2. Repeat n times: if r ≥ 1/2 emit '1' and set r = 2r − 1,
//     otherwise emit '0' and set r = 2r.
//
// Both updates are exact in binary floating point for r ∈ [0,1], so the
// result is a truncation, not a rounding. x = 1 encodes as "11…1".
// n ≤ 0 yields the empty string. Inputs outside [0,1] are not validated.
//
// Complexity: O(n).
func Encode(x float64, n int) Bits {
	if n <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(n)
	r := x
	for i := 0; i < n; i++ {
		if r >= half {
			sb.WriteByte(One)
			r = 2*r - 1
		} else {
			sb.WriteByte(Zero)
			r = 2 * r
		}
	}

	return Bits(sb.String())
}

// Decode returns the value of the finite expansion 0.b1b2…bn.
// It undershoots the encoded real by at most 2^-len(s).
//
// Complexity: O(n).
func Decode(s Bits) float64 {
	return DecodeTail(s, 0)
}

// DecodeTail returns 0.b1b2…bn + tail·2^-n: the digits of s followed by
// an arbitrary innermost value tail (normally in [0,1]).
//
// The sum is folded innermost-first, v = (b + v)/2, which is the
// arithmetic of the recursive definition decode(b·rest) = (b+decode(rest))/2.
// Any symbol other than '1' counts as 0; use ParseBits to reject them.
//
// Complexity: O(n).
func DecodeTail(s Bits, tail float64) float64 {
	v := tail
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == One {
			v = (1 + v) / 2
		} else {
			v /= 2
		}
	}

	return v
}
