// SPDX-License-Identifier: MIT

package bincode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDigit indicates a symbol other than '0' or '1' in a binary string.
var ErrInvalidDigit = errors.New("bincode: invalid binary digit")

// Binary digit symbols.
const (
	Zero = '0'
	One  = '1'
)

// half is the branch threshold of the doubling map.
const half = 0.5

// Bits is an ordered sequence of binary digits, most significant first.
// The zero value is the empty string and denotes the whole interval [0,1].
type Bits string

// ParseBits validates s and returns it as Bits.
//
// Errors:
//   - ErrInvalidDigit (wrapped with the offending position) for any rune
//     outside {'0','1'}.
func ParseBits(s string) (Bits, error) {
	for i := 0; i < len(s); i++ {
		if s[i] != Zero && s[i] != One {
			return "", fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, s[i], i)
		}
	}

	return Bits(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so text-based config
// decoders reject symbols outside {'0','1'}.
func (b *Bits) UnmarshalText(text []byte) error {
	v, err := ParseBits(string(text))
	if err != nil {
		return err
	}
	*b = v

	return nil
}

// Len returns the number of digits.
func (b Bits) Len() int { return len(b) }

// HasPrefix reports whether p is a prefix of b.
func (b Bits) HasPrefix(p Bits) bool { return strings.HasPrefix(string(b), string(p)) }

// Less orders Bits lexicographically with '0' < '1'. A proper prefix sorts
// before its extensions.
func (b Bits) Less(o Bits) bool { return b < o }

// String implements fmt.Stringer.
func (b Bits) String() string { return string(b) }
