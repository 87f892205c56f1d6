// SPDX-License-Identifier: MIT

// Package treemap builds the piecewise-linear maps of [0,1] defined by
// prefix-substitution rules on binary expansions ("tree maps").
//
// 🚀 What is a tree map?
//
//	Take two complete prefix codes A and B (every infinite binary string
//	has exactly one prefix in A, and exactly one in B) and a bijection
//	σ: A → B. The tree map replaces the prefix a of a binary expansion
//	by σ(a) and keeps the tail. On [0,1] this sends the dyadic cell of a
//	linearly onto the dyadic cell of σ(a). When σ preserves lexicographic
//	order the result is an element of Thompson's group F.
//
//	  GeneratorA: 00→0   01→10   1→11
//
//	  0        ¼        ½                 1
//	  ├── 00 ──┼── 01 ──┼────── 1 ────────┤
//	  ├─────── 0 ───────┼── 10 ──┼── 11 ──┤
//
// ✨ Key features:
//   - ordered Dictionary with first-match-wins lookup
//   - validation of both prefix codes (antichain + completeness) ON by
//     default, all violations reported at once; WithoutValidation()
//     keeps the permissive behaviour for experiments
//   - WithOrderPreserving() restricts to Thompson's group F
//   - Dictionary.Inverse for the inverse tree map
//   - YAML decoding in mapping form (document order kept) or list form
//
// ⚙️ Usage:
//
//	m, err := treemap.Build(treemap.GeneratorA())
//	if err != nil { … }
//	y, err := m.Apply(0.125) // 0.25
//
// Complexity: Build O(R·L + R log R), Apply O(L + R·L) for R rules with
// longest source prefix L.
package treemap
