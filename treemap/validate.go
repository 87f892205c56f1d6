// SPDX-License-Identifier: MIT
// Package treemap - dictionary validation.
//
// A dictionary is valid when:
//  1. it is non-empty and every prefix uses only '0' and '1';
//  2. no two rules share a source;
//  3. sources and targets are each an antichain (no prefix of another);
//  4. sources and targets are each complete (Kraft sum Σ 2^-len = 1).
//
// For an antichain, a Kraft sum of exactly 1 is equivalent to every
// infinite binary string having a prefix in the code, so (3)+(4) make the
// code a partition of Cantor space. Order preservation is checked only
// when requested.

package treemap

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/katalvlaran/minkowski/bincode"
	"go.uber.org/multierr"
)

// Code side labels used in error context.
const (
	sideSource = "source"
	sideTarget = "target"
)

// Validate checks d against the prefix-code requirements and returns every
// violation found, combined into one error (nil when d is valid).
// Options other than WithOrderPreserving are ignored.
//
// Errors (match with errors.Is):
//   - ErrEmptyDictionary, ErrInvalidPrefix, ErrDuplicateSource,
//     ErrOverlappingPrefix, ErrIncompleteCode, ErrOrderReversed.
//
// Complexity: O(R·L + R log R) for R rules with longest prefix L.
func Validate(d Dictionary, opts ...Option) error {
	o := gatherOptions(opts...)
	if len(d) == 0 {
		return ErrEmptyDictionary
	}

	var err error

	// Stage 1: alphabet.
	for i, r := range d {
		if _, perr := bincode.ParseBits(string(r.Source)); perr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: rule %d %s %q: %w", ErrInvalidPrefix, i, sideSource, r.Source, perr))
		}
		if _, perr := bincode.ParseBits(string(r.Target)); perr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: rule %d %s %q: %w", ErrInvalidPrefix, i, sideTarget, r.Target, perr))
		}
	}
	if err != nil {
		return err
	}

	// Stage 2: duplicate sources (the map must be a function).
	seen := make(map[bincode.Bits]int, len(d))
	for i, r := range d {
		if j, ok := seen[r.Source]; ok {
			err = multierr.Append(err, fmt.Errorf("%w: %q in rules %d and %d", ErrDuplicateSource, r.Source, j, i))
			continue
		}
		seen[r.Source] = i
	}

	// Stage 3+4: each side is a complete antichain.
	err = multierr.Append(err, validateCode(sideSource, d.Sources()))
	err = multierr.Append(err, validateCode(sideTarget, d.Targets()))

	// Stage 5: optional order preservation.
	if o.orderPreserved && err == nil && !IsOrderPreserving(d) {
		err = multierr.Append(err, ErrOrderReversed)
	}

	return err
}

// validateCode checks one side of a dictionary: antichain first, then
// completeness. Completeness is only meaningful for an antichain.
func validateCode(side string, code []bincode.Bits) error {
	sorted := make([]bincode.Bits, len(code))
	copy(sorted, code)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	// In lexicographic order an extension of p, if any, directly follows p.
	var err error
	for i := 0; i+1 < len(sorted); i++ {
		if sorted[i+1].HasPrefix(sorted[i]) {
			err = multierr.Append(err, fmt.Errorf("%w: %s %q is a prefix of %q", ErrOverlappingPrefix, side, sorted[i], sorted[i+1]))
		}
	}
	if err != nil {
		return err
	}

	if !kraftComplete(sorted) {
		return fmt.Errorf("%w: %s prefixes %v", ErrIncompleteCode, side, code)
	}

	return nil
}

// kraftComplete reports whether Σ 2^-len(p) == 1, using exact integers:
// Σ 2^(L-len(p)) == 2^L with L the longest length.
func kraftComplete(code []bincode.Bits) bool {
	maxLen := 0
	for _, p := range code {
		if p.Len() > maxLen {
			maxLen = p.Len()
		}
	}

	var (
		sum  big.Int
		term big.Int
		one  = big.NewInt(1)
	)
	for _, p := range code {
		term.Lsh(one, uint(maxLen-p.Len()))
		sum.Add(&sum, &term)
	}
	var total big.Int
	total.Lsh(one, uint(maxLen))

	return sum.Cmp(&total) == 0
}

// IsOrderPreserving reports whether sorting the rules by source also sorts
// their targets strictly, i.e. the tree map is monotone on [0,1].
// The result is only meaningful for a dictionary that passes Validate.
func IsOrderPreserving(d Dictionary) bool {
	rules := make(Dictionary, len(d))
	copy(rules, d)
	sort.Slice(rules, func(i, j int) bool { return rules[i].Source.Less(rules[j].Source) })
	for i := 0; i+1 < len(rules); i++ {
		if !rules[i].Target.Less(rules[i+1].Target) {
			return false
		}
	}

	return true
}
