// SPDX-License-Identifier: MIT

package treemap

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/minkowski/bincode"
	"go.uber.org/zap"
)

// cell is a rule compiled to the affine map between its two dyadic cells.
type cell struct {
	source    bincode.Bits
	sourceLo  float64 // Decode(source), left end of the source cell
	sourceInv float64 // 2^len(source), rescales the source cell to [0,1]
	targetLo  float64 // Decode(target), left end of the target cell
	targetLen float64 // 2^-len(target), width of the target cell
}

// Map is a tree map closed over one Dictionary. It is immutable and safe
// for concurrent use.
type Map struct {
	dict   Dictionary
	cells  []cell
	maxLen int
}

// Build captures a copy of d and returns its tree map.
//
// Implementation:
//   - Stage 1: resolve options; unless WithoutValidation, run Validate.
//   - Stage 2: compute maxLen = d.MaxSourceLen().
//   - Stage 3: compile every rule to its cell bounds, in dictionary order.
//
// Errors:
//   - any error of Validate (validation is on by default).
func Build(d Dictionary, opts ...Option) (*Map, error) {
	o := gatherOptions(opts...)
	if o.validate {
		if err := Validate(d, opts...); err != nil {
			return nil, fmt.Errorf("treemap: build: %w", err)
		}
	} else {
		Logger().Debug("building tree map without validation", zap.Int("rules", len(d)))
	}

	m := &Map{
		dict:   make(Dictionary, len(d)),
		cells:  make([]cell, len(d)),
		maxLen: d.MaxSourceLen(),
	}
	copy(m.dict, d)
	for i, r := range m.dict {
		m.cells[i] = cell{
			source:    r.Source,
			sourceLo:  bincode.Decode(r.Source),
			sourceInv: math.Ldexp(1, r.Source.Len()),
			targetLo:  bincode.Decode(r.Target),
			targetLen: math.Ldexp(1, -r.Target.Len()),
		}
	}

	Logger().Debug("tree map built",
		zap.Int("rules", len(m.cells)),
		zap.Int("max_len", m.maxLen))

	return m, nil
}

// MustBuild is like Build but panics on error. Intended for package-level
// fixtures with known-good dictionaries such as GeneratorA.
func MustBuild(d Dictionary, opts ...Option) *Map {
	m, err := Build(d, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Apply evaluates the tree map at x ∈ [0,1].
//
// Steps:
//  1. s := bincode.Encode(x, maxLen).
//  2. Pick the first rule whose source is a prefix of s.
//  3. y := (x − Decode(source)) · 2^len(source)   (position inside the cell)
//  4. return Decode(target) + y · 2^-len(target)  (same position in the target cell)
//
// Errors:
//   - ErrNoMatchingRule when no source matches; only possible for
//     dictionaries built WithoutValidation.
//
// Complexity: O(L + R·L).
func (m *Map) Apply(x float64) (float64, error) {
	s := bincode.Encode(x, m.maxLen)
	for _, c := range m.cells {
		if !s.HasPrefix(c.source) {
			continue
		}
		y := (x - c.sourceLo) * c.sourceInv

		return c.targetLo + y*c.targetLen, nil
	}

	return math.NaN(), fmt.Errorf("%w: x=%v (digits %q)", ErrNoMatchingRule, x, s)
}

// Func adapts m to a plain function for element-wise use; inputs without a
// matching rule map to NaN.
func (m *Map) Func() func(float64) float64 {
	return func(x float64) float64 {
		y, err := m.Apply(x)
		if err != nil {
			return math.NaN()
		}

		return y
	}
}

// Dictionary returns a copy of the rules the map was built from.
func (m *Map) Dictionary() Dictionary {
	d := make(Dictionary, len(m.dict))
	copy(d, m.dict)

	return d
}

// MaxLen returns the number of digits Apply encodes its input to.
func (m *Map) MaxLen() int { return m.maxLen }

// Breakpoints returns the left ends of the source cells in ascending order,
// followed by 1: the points where the slope of the map may change.
func (m *Map) Breakpoints() []float64 {
	pts := make([]float64, 0, len(m.cells)+1)
	for _, c := range m.cells {
		pts = append(pts, c.sourceLo)
	}
	sort.Float64s(pts)

	return append(pts, 1)
}

// Slopes returns the slope of every rule in dictionary order:
// 2^(len(source) − len(target)). Thompson's group F has slopes that are
// powers of two.
func (m *Map) Slopes() []float64 {
	out := make([]float64, len(m.cells))
	for i, c := range m.cells {
		out[i] = c.sourceInv * c.targetLen
	}

	return out
}
