// FILE: lixenwraith/radix/converter.go
package radix

// Converter formats and parses with a fixed set of validated Settings.
// A Converter is never modified after construction and may be shared.
// The zero value and a nil *Converter behave like DefaultSettings.
type Converter struct {
	settings Settings
}

// NewConverter validates s and returns a Converter bound to it.
func NewConverter(s Settings) (*Converter, error) {
	if s.Case == "" {
		s.Case = CaseUpper
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Converter{settings: s}, nil
}

// MustConverter is like NewConverter but panics on invalid settings.
func MustConverter(s Settings) *Converter {
	c, err := NewConverter(s)
	if err != nil {
		panic("radix: " + err.Error())
	}
	return c
}

// current returns the settings in effect. Only NewConverter sets a radix,
// so a zero radix means the converter was not constructed.
func (c *Converter) current() Settings {
	if c == nil || c.settings.Radix == 0 {
		return DefaultSettings()
	}
	return c.settings
}

// Settings returns a copy of the converter's settings.
func (c *Converter) Settings() Settings {
	return c.current()
}

// Radix returns the radix in use.
func (c *Converter) Radix() int { return c.current().Radix }

// Width returns the minimum width in use.
func (c *Converter) Width() int { return c.current().Width }

// WithRadix returns a new Converter that differs only in radix.
func (c *Converter) WithRadix(radix int) (*Converter, error) {
	s := c.current()
	s.Radix = radix
	return NewConverter(s)
}

// WithWidth returns a new Converter that differs only in minimum width.
func (c *Converter) WithWidth(width int) (*Converter, error) {
	s := c.current()
	s.Width = width
	return NewConverter(s)
}

// Format returns value as a digit string.
func (c *Converter) Format(value uint64) string {
	s := c.current()
	return string(appendDigits(outputBuffer(value, s.Radix, s.Width), value, s.Radix, s.Width, s.Case))
}

// Append appends the digits of value to dst.
func (c *Converter) Append(dst []byte, value uint64) []byte {
	s := c.current()
	return appendDigits(dst, value, s.Radix, s.Width, s.Case)
}

// Parse converts text using the converter's radix. See Parse.
func (c *Converter) Parse(text string) (uint64, error) {
	return Parse(text, c.current().Radix)
}
