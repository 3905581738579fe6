// FILE: lixenwraith/radix/format.go
package radix

import "slices"

// Format writes value in the given radix using uppercase letters, zero-padded
// on the left to at least width digits.
//
// Digits are produced while value is non-zero or fewer than width digits
// exist, so Format(0, r, 1) is "0" and Format(0, r, 0) is "".
func Format(value uint64, radix, width int) (string, error) {
	return FormatCase(value, radix, width, CaseUpper)
}

// FormatCase is Format with a selectable letter case.
func FormatCase(value uint64, radix, width int, c Case) (string, error) {
	if err := checkFormat(radix, width); err != nil {
		return "", err
	}
	return string(appendDigits(outputBuffer(value, radix, width), value, radix, width, c)), nil
}

// AppendFormat appends the formatted value to dst and returns the extended slice.
// dst is returned unchanged on error.
func AppendFormat(dst []byte, value uint64, radix, width int, c Case) ([]byte, error) {
	if err := checkFormat(radix, width); err != nil {
		return dst, err
	}
	return appendDigits(dst, value, radix, width, c), nil
}

// FormatInto writes the formatted value to the start of buf and returns the
// number of bytes written. Nothing is written when the radix or width is
// invalid or buf cannot hold the whole result.
func FormatInto(buf []byte, value uint64, radix, width int, c Case) (int, error) {
	if err := checkFormat(radix, width); err != nil {
		return 0, err
	}
	n := formattedLen(value, radix, width)
	if n > len(buf) {
		return 0, ErrBufferTooSmall
	}
	appendDigits(buf[:0], value, radix, width, c)
	return n, nil
}

func checkFormat(radix, width int) error {
	if !ValidRadix(radix) {
		return ErrInvalidRadix
	}
	if width < 0 {
		return ErrInvalidWidth
	}
	return nil
}

// formattedLen is the output length of appendDigits for valid arguments.
func formattedLen(value uint64, radix, width int) int {
	n := 0
	if value != 0 {
		n = Len(value, radix)
	}
	return max(n, width)
}

// outputBuffer returns an empty slice with room for the whole result.
func outputBuffer(value uint64, radix, width int) []byte {
	return make([]byte, 0, formattedLen(value, radix, width))
}

// appendDigits runs the division loop into a scratch array, least significant
// digit last, then pads and copies into dst.
func appendDigits(dst []byte, value uint64, radix, width int, c Case) []byte {
	table := digitTable(c)
	b := uint64(radix)

	var scratch [MaxDigits]byte
	i := len(scratch)
	for value != 0 {
		i--
		scratch[i] = table[value%b]
		value /= b
	}

	if pad := width - (len(scratch) - i); pad > 0 {
		dst = slices.Grow(dst, pad+len(scratch)-i)
		for ; pad > 0; pad-- {
			dst = append(dst, '0')
		}
	}
	return append(dst, scratch[i:]...)
}
