// FILE: lixenwraith/radix/digit.go
package radix

import "strings"

// Radix bounds supported by the formatter and the parser.
const (
	MinRadix = 2
	MaxRadix = 36
)

// MaxDigits is the digit count of the largest uint64 in the smallest radix.
const MaxDigits = 64

// Case selects the letter case used for digit values 10 through 35.
type Case string

const (
	// CaseUpper emits 'A'-'Z' (default)
	CaseUpper Case = "upper"
	// CaseLower emits 'a'-'z'
	CaseLower Case = "lower"
)

// Valid reports whether c names a known letter case.
func (c Case) Valid() bool {
	return c == CaseUpper || c == CaseLower
}

// ParseCase converts a case name to a Case, ignoring letter case and
// surrounding spaces. An empty name maps to CaseUpper.
func ParseCase(s string) (Case, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "upper", "uppercase":
		return CaseUpper, true
	case "lower", "lowercase":
		return CaseLower, true
	}
	return "", false
}

const (
	upperDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// digitTable returns the digit alphabet for c. Anything other than
// CaseLower uses uppercase letters.
func digitTable(c Case) string {
	if c == CaseLower {
		return lowerDigits
	}
	return upperDigits
}

// DigitToChar maps a digit value in [0,35] to its character.
func DigitToChar(d int, c Case) (byte, bool) {
	if d < 0 || d >= MaxRadix {
		return 0, false
	}
	return digitTable(c)[d], true
}

// CharToDigit maps '0'-'9', 'A'-'Z' and 'a'-'z' to digit values 0-35.
// Any other byte reports false.
func CharToDigit(ch byte) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 10, true
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 10, true
	}
	return 0, false
}

// ValidRadix reports whether r is within [MinRadix, MaxRadix].
func ValidRadix(r int) bool {
	return r >= MinRadix && r <= MaxRadix
}

// Len returns the number of digits needed to write value in radix without
// padding. Zero needs one digit. Len returns 0 for an invalid radix.
func Len(value uint64, radix int) int {
	if !ValidRadix(radix) {
		return 0
	}
	n := 1
	for b := uint64(radix); value >= b; value /= b {
		n++
	}
	return n
}
