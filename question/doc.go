// SPDX-License-Identifier: MIT

// Package question evaluates the Minkowski question-mark function ? and its
// inverse on [0,1] to a bounded number of recursive steps.
//
// 🚀 What is ?(x)?
//
//	? maps the continued fraction of x to a run-length binary expansion:
//	  ?([0; a1, a2, a3, …]) = 0.0…01…10…0…  (a1−1 zeros, a2 ones, a3 zeros, …)
//	It is continuous, strictly increasing and singular, and satisfies
//	  ?(x/(1+x)) = ?(x)/2        ?(1−x) = 1 − ?(x)
//
// ✨ Evaluation:
//   - Forward contracts its argument with the inverted recurrences, one
//     binary digit of the result per step; after n steps the remaining
//     argument is kept linearly, so |Forward(x, n) − ?(x)| ≤ 2^-n.
//   - Inverse reads one binary digit of x per step and rebuilds the
//     continued fraction with the Möbius maps y/(1+y) and 1/(2−y).
//   - Both are a bounded loop plus an innermost-first fold; there is no
//     recursion and no allocation beyond the n recorded digits.
//
// ⚙️ Usage:
//
//	q := question.Forward(1.0/3, 20)    // ≈ 0.25
//	x := question.Inverse(0.75, 20)     // ≈ 2/3
//
// Inputs outside [0,1] are not validated; the result is then unspecified.
package question
