// SPDX-License-Identifier: MIT

package treemap

import "github.com/katalvlaran/minkowski/bincode"

// Rule substitutes the Source prefix of a binary expansion by Target.
type Rule struct {
	Source bincode.Bits `yaml:"source" toml:"source"`
	Target bincode.Bits `yaml:"target" toml:"target"`
}

// Dictionary is an ordered list of rules. Lookup scans it front to back
// and the first rule whose source prefixes the input wins; for a valid
// dictionary exactly one rule can match, so order only matters for
// dictionaries built WithoutValidation.
type Dictionary []Rule

// MaxSourceLen returns the length of the longest source prefix (0 for an
// empty dictionary). Apply encodes its input to this many digits.
func (d Dictionary) MaxSourceLen() int {
	n := 0
	for _, r := range d {
		if r.Source.Len() > n {
			n = r.Source.Len()
		}
	}

	return n
}

// Inverse returns the dictionary with sources and targets swapped, in the
// same order. For a valid dictionary it defines the inverse tree map.
func (d Dictionary) Inverse() Dictionary {
	inv := make(Dictionary, len(d))
	for i, r := range d {
		inv[i] = Rule{Source: r.Target, Target: r.Source}
	}

	return inv
}

// Sources returns the source prefixes in dictionary order.
func (d Dictionary) Sources() []bincode.Bits {
	out := make([]bincode.Bits, len(d))
	for i, r := range d {
		out[i] = r.Source
	}

	return out
}

// Targets returns the target prefixes in dictionary order.
func (d Dictionary) Targets() []bincode.Bits {
	out := make([]bincode.Bits, len(d))
	for i, r := range d {
		out[i] = r.Target
	}

	return out
}

// GeneratorA returns the dictionary of the generator A of Thompson's group F:
//
//	00 → 0, 01 → 10, 1 → 11
func GeneratorA() Dictionary {
	return Dictionary{
		{Source: "00", Target: "0"},
		{Source: "01", Target: "10"},
		{Source: "1", Target: "11"},
	}
}

// GeneratorB returns the dictionary of the generator B of Thompson's group F,
// which acts as A on the right half and fixes the left half:
//
//	000 → 00, 001 → 010, 01 → 011, 1 → 1
func GeneratorB() Dictionary {
	return Dictionary{
		{Source: "000", Target: "00"},
		{Source: "001", Target: "010"},
		{Source: "01", Target: "011"},
		{Source: "1", Target: "1"},
	}
}
