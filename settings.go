// FILE: lixenwraith/radix/settings.go
package radix

import "fmt"

// Settings bundles the conversion parameters that callers pass explicitly
// instead of relying on shared state.
type Settings struct {
	Radix int  `toml:"radix"`
	Width int  `toml:"width"`
	Case  Case `toml:"case"`
}

// DefaultSettings returns decimal, minimum width 1, uppercase letters.
func DefaultSettings() Settings {
	return Settings{
		Radix: 10,
		Width: 1,
		Case:  CaseUpper,
	}
}

// Validate checks every field and returns the first problem found.
func (s Settings) Validate() error {
	if !ValidRadix(s.Radix) {
		return fmt.Errorf("%w: %d", ErrInvalidRadix, s.Radix)
	}
	if s.Width < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, s.Width)
	}
	if s.Case != "" && !s.Case.Valid() {
		return fmt.Errorf("unknown letter case %q", s.Case)
	}
	return nil
}

func (s Settings) String() string {
	c := s.Case
	if c == "" {
		c = CaseUpper
	}
	return fmt.Sprintf("radix=%d width=%d case=%s", s.Radix, s.Width, c)
}
