// File: lixenwraith/radix/converter_test.go
package radix_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lixenwraith/radix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter(t *testing.T) {
	t.Run("DefaultSettings", func(t *testing.T) {
		conv, err := radix.NewConverter(radix.DefaultSettings())
		require.NoError(t, err)
		assert.Equal(t, "0", conv.Format(0))
		assert.Equal(t, "42", conv.Format(42))
		assert.Equal(t, 10, conv.Radix())
		assert.Equal(t, 1, conv.Width())
	})

	t.Run("EmptyCaseDefaultsToUpper", func(t *testing.T) {
		conv, err := radix.NewConverter(radix.Settings{Radix: 16, Width: 2})
		require.NoError(t, err)
		assert.Equal(t, radix.CaseUpper, conv.Settings().Case)
		assert.Equal(t, "0A", conv.Format(10))
	})

	t.Run("InvalidSettings", func(t *testing.T) {
		_, err := radix.NewConverter(radix.Settings{Radix: 1, Width: 1})
		assert.ErrorIs(t, err, radix.ErrInvalidRadix)

		_, err = radix.NewConverter(radix.Settings{Radix: 10, Width: -1})
		assert.ErrorIs(t, err, radix.ErrInvalidWidth)

		_, err = radix.NewConverter(radix.Settings{Radix: 10, Width: 1, Case: "title"})
		assert.ErrorContains(t, err, "unknown letter case")

		assert.Panics(t, func() { radix.MustConverter(radix.Settings{Radix: 40}) })
	})

	t.Run("DerivedConvertersLeaveOriginalUntouched", func(t *testing.T) {
		base := radix.MustConverter(radix.Settings{Radix: 10, Width: 3})

		bin, err := base.WithRadix(2)
		require.NoError(t, err)
		wide, err := bin.WithWidth(8)
		require.NoError(t, err)

		assert.Equal(t, "005", base.Format(5))
		assert.Equal(t, "101", bin.Format(5))
		assert.Equal(t, "00000101", wide.Format(5))

		_, err = base.WithRadix(37)
		assert.ErrorIs(t, err, radix.ErrInvalidRadix)
	})

	t.Run("ParseUsesRadix", func(t *testing.T) {
		conv := radix.MustConverter(radix.Settings{Radix: 16, Width: 2, Case: radix.CaseLower})
		assert.Equal(t, "ff", conv.Format(255))

		n, err := conv.Parse("FF tail")
		require.NoError(t, err)
		assert.Equal(t, uint64(255), n)

		n, err = conv.Parse("fg")
		assert.ErrorIs(t, err, radix.ErrDigitOutOfRange)
		assert.Equal(t, uint64(15), n)
	})

	t.Run("Append", func(t *testing.T) {
		conv := radix.MustConverter(radix.Settings{Radix: 8, Width: 4})
		assert.Equal(t, "mode=0755", string(conv.Append([]byte("mode="), 0755)))
	})

	t.Run("ZeroValueUsesDefaults", func(t *testing.T) {
		var zero radix.Converter
		assert.Equal(t, "5", zero.Format(5))
		assert.Equal(t, radix.DefaultSettings(), zero.Settings())

		var nilConv *radix.Converter
		assert.Equal(t, "42", nilConv.Format(42))
		n, err := nilConv.Parse("42")
		require.NoError(t, err)
		assert.Equal(t, uint64(42), n)

		hex, err := zero.WithRadix(16)
		require.NoError(t, err)
		assert.Equal(t, "FF", hex.Format(255))
	})

	t.Run("WideWidth", func(t *testing.T) {
		conv := radix.MustConverter(radix.Settings{Radix: 10, Width: 5000})
		assert.Len(t, conv.Format(42), 5000)
	})
}

// failingWriter rejects every write and is not an io.ByteWriter
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("sink closed") }

// plainWriter records writes without implementing io.ByteWriter
type plainWriter struct{ buf bytes.Buffer }

func (w *plainWriter) Write(p []byte) (int, error) { return w.buf.Write(p) }

func TestEmitter(t *testing.T) {
	hex := radix.MustConverter(radix.Settings{Radix: 16, Width: 2})

	t.Run("Stream", func(t *testing.T) {
		var buf bytes.Buffer
		e := radix.NewEmitter(&buf, hex)

		n, err := e.WriteString("value ")
		require.NoError(t, err)
		assert.Equal(t, 6, n)

		n, err = e.WriteUint(5)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		require.NoError(t, e.WriteByte('\n'))
		require.NoError(t, e.Flush())
		assert.Equal(t, "value 05\n", buf.String())
	})

	t.Run("Buffered", func(t *testing.T) {
		var buf bytes.Buffer
		e := radix.NewBufferedEmitter(&buf, hex)

		_, err := e.WriteUint(255)
		require.NoError(t, err)
		assert.Zero(t, buf.Len(), "nothing reaches the sink before Flush")

		require.NoError(t, e.Flush())
		assert.Equal(t, "FF", buf.String())
	})

	t.Run("WithSharesSink", func(t *testing.T) {
		var buf bytes.Buffer
		e := radix.NewBufferedEmitter(&buf, hex)
		bin := e.With(radix.MustConverter(radix.Settings{Radix: 2, Width: 8}))

		_, _ = bin.WriteUint(5)
		_ = e.WriteByte(' ')
		_, _ = e.WriteUint(5)
		require.NoError(t, e.Flush())

		assert.Equal(t, "00000101 05", buf.String())
		assert.Same(t, hex, e.Converter())
	})

	t.Run("PlainWriterByte", func(t *testing.T) {
		w := &plainWriter{}
		e := radix.NewEmitter(w, hex)
		require.NoError(t, e.WriteByte('x'))
		_, err := e.WriteUint(1)
		require.NoError(t, err)
		assert.Equal(t, "x01", w.buf.String())
	})

	t.Run("NilConverter", func(t *testing.T) {
		var buf bytes.Buffer
		e := radix.NewEmitter(&buf, nil)
		_, err := e.WriteUint(42)
		require.NoError(t, err)
		assert.Equal(t, "42", buf.String())
	})

	t.Run("SinkErrors", func(t *testing.T) {
		e := radix.NewEmitter(failingWriter{}, hex)

		_, err := e.WriteUint(1)
		assert.ErrorContains(t, err, "sink closed")
		_, err = e.WriteString("x")
		assert.Error(t, err)
		assert.Error(t, e.WriteByte('x'))
	})
}
