// SPDX-License-Identifier: MIT
// Package treemap: sentinel errors.
//
// Callers branch with errors.Is. Validation reports every violation it
// finds, combined with multierr; errors.Is matches any of them.

package treemap

import "errors"

var (
	// ErrEmptyDictionary is returned when a dictionary has no rules.
	ErrEmptyDictionary = errors.New("treemap: empty dictionary")

	// ErrInvalidPrefix indicates a source or target with a symbol outside {0,1}.
	ErrInvalidPrefix = errors.New("treemap: invalid prefix")

	// ErrDuplicateSource indicates two rules share the same source prefix.
	ErrDuplicateSource = errors.New("treemap: duplicate source prefix")

	// ErrOverlappingPrefix indicates one prefix of a code is a prefix of another
	// (the code is not an antichain).
	ErrOverlappingPrefix = errors.New("treemap: overlapping prefixes")

	// ErrIncompleteCode indicates some infinite binary strings have no prefix
	// in the code (Kraft sum below 1).
	ErrIncompleteCode = errors.New("treemap: prefix code is not complete")

	// ErrOrderReversed indicates the rules do not preserve lexicographic order,
	// so the map is not an element of Thompson's group F.
	ErrOrderReversed = errors.New("treemap: rules do not preserve order")

	// ErrMalformedDictionary indicates a serialized dictionary of the wrong shape.
	ErrMalformedDictionary = errors.New("treemap: malformed dictionary")

	// ErrNoMatchingRule is returned by Apply when no source prefix matches the
	// input. It only occurs for dictionaries built WithoutValidation.
	ErrNoMatchingRule = errors.New("treemap: no rule matches input")
)
