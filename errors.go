// FILE: lixenwraith/radix/errors.go
package radix

import (
	"errors"
	"fmt"
	"strconv"
)

// Conversion errors
var (
	ErrInvalidRadix     = errors.New("radix out of range [2,36]")
	ErrInvalidWidth     = errors.New("minimum width out of range")
	ErrBufferTooSmall   = errors.New("buffer too small for formatted value")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrDigitOutOfRange  = errors.New("digit out of range for radix")
	ErrOverflow         = errors.New("value out of range for uint64")
	ErrNoDigits         = errors.New("no digits")
)

// Configuration errors
var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrCLIParse       = errors.New("failed to parse command-line arguments")
	ErrValueSize      = errors.New("value size exceeds maximum")
)

// MaxValueSize caps the length of a single environment value.
const MaxValueSize = 1024 * 1024

// Legacy status codes of the bounded-buffer formatter.
const (
	StatusOK             = 0
	StatusInvalidRadix   = -1
	StatusBufferTooSmall = -2
	StatusOther          = -3
)

// StatusCode maps an error returned by the formatter to its legacy status code.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrInvalidRadix):
		return StatusInvalidRadix
	case errors.Is(err, ErrBufferTooSmall):
		return StatusBufferTooSmall
	default:
		return StatusOther
	}
}

// ParseError records a failed conversion from text.
type ParseError struct {
	Text  string // input text
	Radix int    // radix in effect
	Pos   int    // byte offset of the offending character, -1 when not positional
	Char  byte   // offending character, zero when not positional
	Err   error  // underlying sentinel
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return "radix: parsing " + strconv.Quote(e.Text) + ": " + e.Err.Error()
	}
	return fmt.Sprintf("radix: parsing %q: %v %q at offset %d (radix %d)",
		e.Text, e.Err, e.Char, e.Pos, e.Radix)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports a digit out of range as an invalid character as well, since
// the character is not a digit of the radix in use.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidCharacter && e.Err == ErrDigitOutOfRange
}
