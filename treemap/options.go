// SPDX-License-Identifier: MIT

package treemap

// Option configures Build and Validate.
type Option func(*options)

// options holds the resolved configuration.
type options struct {
	validate       bool // check both prefix codes before building
	orderPreserved bool // additionally require lexicographic order preservation
}

// Deterministic defaults.
const (
	// DefaultValidate enables prefix-code validation in Build.
	DefaultValidate = true

	// DefaultOrderPreserving leaves order-reversing tree maps allowed.
	DefaultOrderPreserving = false
)

// WithoutValidation skips all dictionary checks in Build. Inputs whose
// expansion matches no source prefix then fail in Apply with
// ErrNoMatchingRule, and overlapping sources resolve first-match-wins.
func WithoutValidation() Option {
	return func(o *options) { o.validate = false }
}

// WithValidation enables dictionary checks (the default).
func WithValidation() Option {
	return func(o *options) { o.validate = true }
}

// WithOrderPreserving requires the rules to preserve lexicographic order,
// restricting tree maps to Thompson's group F. It implies WithValidation.
func WithOrderPreserving() Option {
	return func(o *options) {
		o.validate = true
		o.orderPreserved = true
	}
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		validate:       DefaultValidate,
		orderPreserved: DefaultOrderPreserving,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
