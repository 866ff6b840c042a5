package levdict

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidEncoding is returned by decode when a code point sequence
// holds a value that is not a valid Unicode scalar value.
var ErrInvalidEncoding = errors.New("levdict: invalid encoding")

// encode turns a Go string into the sequence of code points levdict
// operates on internally. A rune already is a 32-bit Unicode code point,
// so encode is just a decode pass over the string's UTF-8 bytes.
func encode(s string) []rune {
	rs := make([]rune, 0, len(s))
	for i, w := 0, 0; i < len(s); i += w {
		r, width := utf8.DecodeRuneInString(s[i:])
		w = width
		rs = append(rs, r)
	}
	return rs
}

// decode is the inverse of encode. It fails with ErrInvalidEncoding if
// any code point is not a valid Unicode scalar value (e.g. a lone UTF-16
// surrogate smuggled in as a rune).
func decode(rs []rune) (string, error) {
	for _, r := range rs {
		if !validScalar(r) {
			return "", errors.Wrapf(ErrInvalidEncoding, "decode: code point %U is not a valid Unicode scalar value", r)
		}
	}
	return string(rs), nil
}

// validScalar reports whether r is a valid Unicode scalar value: in
// range and not a surrogate half. Go's string(rune) conversion silently
// substitutes utf8.RuneError for invalid scalars instead of failing, so
// levdict checks explicitly rather than inheriting that behavior (see
// Open Question (b) in DESIGN.md).
func validScalar(r rune) bool {
	if r < 0 || r > unicode.MaxRune {
		return false
	}
	if r >= 0xD800 && r <= 0xDFFF {
		return false
	}
	return true
}

// commonPrefixLength returns the length of the longest common prefix of
// a and b.
func commonPrefixLength(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// reverseRunes returns a new slice holding rs in reverse order.
func reverseRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[len(rs)-1-i] = r
	}
	return out
}
