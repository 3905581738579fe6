// FILE: lixenwraith/radix/parse.go
package radix

import "math"

// isSpace reports the separators the parser skips and stops at.
func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}

// Parse converts the leading digit run of text in the given radix.
//
// Leading spaces, tabs and newlines are skipped. Parsing ends at the next
// such separator or at the end of text; anything after the separator is
// ignored, so Parse("FF extra", 16) is 255. Letters of either case are
// accepted.
//
// On a bad character the returned error is a *ParseError and the value is
// the accumulation of the digits before it. On overflow the value is
// math.MaxUint64 and the error wraps ErrOverflow.
func Parse(text string, radix int) (uint64, error) {
	if !ValidRadix(radix) {
		return 0, &ParseError{Text: text, Radix: radix, Pos: -1, Err: ErrInvalidRadix}
	}

	i := 0
	for i < len(text) && isSpace(text[i]) {
		i++
	}

	b := uint64(radix)
	cutoff := math.MaxUint64/b + 1 // first value whose product with b overflows

	var n uint64
	start := i
	for ; i < len(text); i++ {
		ch := text[i]
		if isSpace(ch) {
			break
		}
		d, ok := CharToDigit(ch)
		if !ok {
			return n, &ParseError{Text: text, Radix: radix, Pos: i, Char: ch, Err: ErrInvalidCharacter}
		}
		if d >= radix {
			return n, &ParseError{Text: text, Radix: radix, Pos: i, Char: ch, Err: ErrDigitOutOfRange}
		}
		if n >= cutoff {
			return math.MaxUint64, &ParseError{Text: text, Radix: radix, Pos: i, Char: ch, Err: ErrOverflow}
		}
		n *= b
		n1 := n + uint64(d)
		if n1 < n {
			return math.MaxUint64, &ParseError{Text: text, Radix: radix, Pos: i, Char: ch, Err: ErrOverflow}
		}
		n = n1
	}

	if i == start {
		return 0, &ParseError{Text: text, Radix: radix, Pos: -1, Err: ErrNoDigits}
	}
	return n, nil
}
