// SPDX-License-Identifier: MIT

package sample

import "errors"

var (
	// ErrBadDepth indicates a grid depth outside [0, MaxGridDepth].
	ErrBadDepth = errors.New("sample: grid depth out of range")

	// ErrLengthMismatch indicates two sequences that must align do not.
	ErrLengthMismatch = errors.New("sample: length mismatch")

	// ErrTooFewPoints indicates fewer than two points for a difference.
	ErrTooFewPoints = errors.New("sample: need at least two points")

	// ErrNotIncreasing indicates sample points that are not strictly increasing.
	ErrNotIncreasing = errors.New("sample: points must be strictly increasing")

	// ErrDuplicateColumn indicates a table column name used twice.
	ErrDuplicateColumn = errors.New("sample: duplicate column")
)
