// FILE: lixenwraith/radix/emit.go
package radix

import (
	"bufio"
	"io"
	"os"
)

// flusher is satisfied by buffered sinks.
type flusher interface {
	Flush() error
}

// Emitter writes strings and formatted integers to a sink.
// An Emitter is not safe for concurrent use.
type Emitter struct {
	w       io.Writer
	conv    *Converter
	scratch []byte
}

// NewEmitter returns an emitter that passes every write straight to w.
// A nil conv formats integers with DefaultSettings.
func NewEmitter(w io.Writer, conv *Converter) *Emitter {
	return &Emitter{w: w, conv: conv, scratch: make([]byte, 0, MaxDigits)}
}

// NewBufferedEmitter returns an emitter that buffers writes to w.
// Flush must be called once writing is done.
func NewBufferedEmitter(w io.Writer, conv *Converter) *Emitter {
	return NewEmitter(bufio.NewWriter(w), conv)
}

// Console returns a stream emitter on standard output.
func Console(conv *Converter) *Emitter {
	return NewEmitter(os.Stdout, conv)
}

// With returns an emitter on the same sink using conv for integers.
func (e *Emitter) With(conv *Converter) *Emitter {
	return &Emitter{w: e.w, conv: conv, scratch: e.scratch[:0]}
}

// Converter returns the converter used by WriteUint.
func (e *Emitter) Converter() *Converter { return e.conv }

// WriteString writes the bytes of s.
func (e *Emitter) WriteString(s string) (int, error) {
	return io.WriteString(e.w, s)
}

// WriteByte writes a single byte.
func (e *Emitter) WriteByte(b byte) error {
	if bw, ok := e.w.(io.ByteWriter); ok {
		return bw.WriteByte(b)
	}
	e.scratch = append(e.scratch[:0], b)
	_, err := e.w.Write(e.scratch)
	return err
}

// WriteUint formats value with the emitter's converter and writes it.
func (e *Emitter) WriteUint(value uint64) (int, error) {
	e.scratch = e.conv.Append(e.scratch[:0], value)
	return e.w.Write(e.scratch)
}

// Flush pushes buffered bytes to the underlying sink. It is a no-op for
// sinks without buffering.
func (e *Emitter) Flush() error {
	if f, ok := e.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
