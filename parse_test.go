// FILE: lixenwraith/radix/parse_test.go
package radix

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip checks Parse(Format(v)) == v across all radices
func TestRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 2, 35, 36, 12345, 1 << 32, math.MaxUint32, math.MaxUint64 - 1, math.MaxUint64}

	for r := MinRadix; r <= MaxRadix; r++ {
		extra := []uint64{uint64(r - 1), uint64(r), uint64(r * r)}
		for _, v := range append(values, extra...) {
			s, err := Format(v, r, 1)
			require.NoError(t, err)

			got, err := Parse(s, r)
			require.NoError(t, err, "radix %d text %q", r, s)
			assert.Equal(t, v, got, "radix %d text %q", r, s)

			lower, err := FormatCase(v, r, 1, CaseLower)
			require.NoError(t, err)
			got, err = Parse(lower, r)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	}
}

// TestParseWhitespace tests skipping of leading separators and stopping at the next one
func TestParseWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		radix    int
		expected uint64
	}{
		{"TrailingContent", "FF extra", 16, 255},
		{"LeadingMixed", " \t\n7f", 16, 127},
		{"TrailingNewline", "101\n", 2, 5},
		{"TabTerminated", "42\tjunk!", 10, 42},
		{"LeadingZeros", "0000", 10, 0},
		{"GarbageAfterSpace", "10 ???", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text, tt.radix)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestParseErrors tests typed errors and the partial value returned with them
func TestParseErrors(t *testing.T) {
	t.Run("DigitOutOfRange", func(t *testing.T) {
		got, err := Parse("12G", 10)
		require.Error(t, err)
		assert.Equal(t, uint64(12), got)
		assert.ErrorIs(t, err, ErrInvalidCharacter)
		assert.ErrorIs(t, err, ErrDigitOutOfRange)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 2, pe.Pos)
		assert.Equal(t, byte('G'), pe.Char)
		assert.Equal(t, 10, pe.Radix)
		assert.Contains(t, err.Error(), "digit out of range")
	})

	t.Run("BinaryRejectsTwo", func(t *testing.T) {
		got, err := Parse("1012", 2)
		assert.ErrorIs(t, err, ErrDigitOutOfRange)
		assert.Equal(t, uint64(5), got)
	})

	t.Run("NonAlphanumeric", func(t *testing.T) {
		got, err := Parse("12-3", 10)
		assert.Equal(t, uint64(12), got)
		assert.ErrorIs(t, err, ErrInvalidCharacter)
		assert.False(t, errors.Is(err, ErrDigitOutOfRange))

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, byte('-'), pe.Char)
	})

	t.Run("CarriageReturnIsNotSeparator", func(t *testing.T) {
		_, err := Parse("\rFF", 16)
		assert.ErrorIs(t, err, ErrInvalidCharacter)
	})

	t.Run("InvalidRadix", func(t *testing.T) {
		for _, r := range []int{0, 1, 37} {
			got, err := Parse("10", r)
			assert.ErrorIs(t, err, ErrInvalidRadix)
			assert.Zero(t, got)
		}
	})

	t.Run("NoDigits", func(t *testing.T) {
		for _, text := range []string{"", "   ", "\n\t"} {
			_, err := Parse(text, 10)
			assert.ErrorIs(t, err, ErrNoDigits, "text %q", text)
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		got, err := Parse("18446744073709551615", 10)
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxUint64), got)

		got, err = Parse("18446744073709551616", 10)
		assert.ErrorIs(t, err, ErrOverflow)
		assert.Equal(t, uint64(math.MaxUint64), got)

		_, err = Parse("1"+"0000000000000000000000000000000000000000000000000000000000000000", 2)
		assert.ErrorIs(t, err, ErrOverflow)

		_, err = Parse("10000000000000000", 16)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}
