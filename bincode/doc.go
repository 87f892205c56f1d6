// SPDX-License-Identifier: MIT

// Package bincode converts real numbers in [0,1] to truncated binary
// expansions and back.
//
// 🚀 What is it for?
//
//	Every other package in this module reasons about points of [0,1]
//	through their binary digits:
//	  • treemap matches source prefixes against Encode(x, maxLen)
//	  • question folds its branch digits with DecodeTail
//
// ✨ Key facts:
//   - Encode is exact bit-truncation by repeated doubling (never rounds).
//   - Decode is the finite partial sum 0.b1b2…bn, evaluated innermost-first.
//   - Decode(Encode(x, n)) ∈ [x − 2^-n, x] for every x ∈ [0,1], n ≥ 0.
//
// ⚙️ Usage:
//
//	bits := bincode.Encode(0.625, 4) // "1010"
//	x := bincode.Decode(bits)        // 0.625
//
// Complexity: O(n) time and O(n) space for both directions.
package bincode
