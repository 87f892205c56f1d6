// SPDX-License-Identifier: MIT

package conjugate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/minkowski/question"
)

// DefaultDepth is the number of recursive steps used for ? and ?⁻¹.
const DefaultDepth = 20

// panicDepthInvalid is the WithDepth panic message.
const panicDepthInvalid = "conjugate: WithDepth: depth must be non-negative"

// Mapper is a map of [0,1] that may fail for some inputs.
// *treemap.Map satisfies it.
type Mapper interface {
	Apply(x float64) (float64, error)
}

// MapperFunc adapts a plain function to Mapper.
type MapperFunc func(float64) float64

// Apply calls f(x).
func (f MapperFunc) Apply(x float64) (float64, error) { return f(x), nil }

// Option configures New.
type Option func(*Conjugate)

// WithDepth sets the number of steps for both ? and ?⁻¹.
// Panics if depth < 0.
func WithDepth(depth int) Option {
	if depth < 0 {
		panic(panicDepthInvalid)
	}

	return func(c *Conjugate) { c.depth = depth }
}

// Conjugate is the composite ?⁻¹ ∘ f ∘ ?. It holds no mutable state.
type Conjugate struct {
	f     Mapper
	depth int
}

// New returns the conjugate of f by the question-mark function.
func New(f Mapper, opts ...Option) *Conjugate {
	c := &Conjugate{f: f, depth: DefaultDepth}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// Apply returns Inverse(f(Forward(x, n)), n).
//
// Errors:
//   - any error of f, wrapped with the input and ?(x); the value is NaN.
func (c *Conjugate) Apply(x float64) (float64, error) {
	q := question.Forward(x, c.depth)
	y, err := c.f.Apply(q)
	if err != nil {
		return math.NaN(), fmt.Errorf("conjugate: x=%v ?(x)=%v: %w", x, q, err)
	}

	return question.Inverse(y, c.depth), nil
}

// Depth returns the number of steps used for ? and ?⁻¹.
func (c *Conjugate) Depth() int { return c.depth }
