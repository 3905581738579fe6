// FILE: lixenwraith/radix/decode_test.go
package radix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSettingsDecodeHook tests radix aliases and case normalization
func TestSettingsDecodeHook(t *testing.T) {
	tests := []struct {
		name  string
		radix any
		want  int
	}{
		{"Binary", "bin", 2},
		{"OctalUpper", "OCTAL", 8},
		{"Decimal", " dec ", 10},
		{"Hex", "Hex", 16},
		{"Hexadecimal", "hexadecimal", 16},
		{"NumericString", "36", 36},
		{"Int64", int64(12), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader()
			require.NoError(t, l.RegisterStruct("", DefaultSettings()))
			require.NoError(t, l.Set("radix", tt.radix))

			var s Settings
			require.NoError(t, l.Scan("", &s))
			assert.Equal(t, tt.want, s.Radix)
		})
	}

	t.Run("CaseNames", func(t *testing.T) {
		l := NewLoader()
		require.NoError(t, l.RegisterStruct("", DefaultSettings()))
		require.NoError(t, l.Set("case", "Lowercase"))

		var s Settings
		require.NoError(t, l.Scan("", &s))
		assert.Equal(t, CaseLower, s.Case)

		require.NoError(t, l.Set("case", "mixed"))
		err := l.Scan("", &s)
		assert.ErrorContains(t, err, "unknown letter case")
	})

	t.Run("UnknownRadixName", func(t *testing.T) {
		l := NewLoader()
		require.NoError(t, l.RegisterStruct("", DefaultSettings()))
		require.NoError(t, l.Set("radix", "sexagesimal"))

		var s Settings
		assert.Error(t, l.Scan("", &s))
	})
}

// TestScan tests section navigation and target validation
func TestScan(t *testing.T) {
	l := NewLoader()
	require.NoError(t, l.Register("out.hex.radix", 16))
	require.NoError(t, l.Register("out.hex.width", 2))
	require.NoError(t, l.SetSource("out.hex.width", SourceFile, int64(4)))

	t.Run("NestedSection", func(t *testing.T) {
		var s Settings
		require.NoError(t, l.Scan("out.hex", &s))
		assert.Equal(t, Settings{Radix: 16, Width: 4}, s)

		// Trailing dot is accepted
		var again Settings
		require.NoError(t, l.Scan("out.hex.", &again))
		assert.Equal(t, s, again)
	})

	t.Run("MissingSectionDecodesEmpty", func(t *testing.T) {
		var s Settings
		require.NoError(t, l.Scan("nothing.here", &s))
		assert.Equal(t, Settings{}, s)
	})

	t.Run("LeafIsNotASection", func(t *testing.T) {
		var s Settings
		err := l.Scan("out.hex.radix", &s)
		assert.ErrorContains(t, err, "non-map value")
	})

	t.Run("TargetMustBePointer", func(t *testing.T) {
		var s Settings
		assert.Error(t, l.Scan("", s))
		assert.Error(t, l.Scan("", (*Settings)(nil)))
	})

	t.Run("SingleSource", func(t *testing.T) {
		var s Settings
		require.NoError(t, l.ScanSource("out.hex", SourceFile, &s))
		assert.Equal(t, Settings{Width: 4}, s)

		require.NoError(t, l.ScanSource("out.hex", SourceDefault, &s))
		assert.Equal(t, 2, s.Width)
	})

	t.Run("SettingsInsideStruct", func(t *testing.T) {
		var target struct {
			Out struct {
				Hex Settings `toml:"hex"`
			} `toml:"out"`
		}
		require.NoError(t, l.Set("out.hex.radix", "hexadecimal"))
		require.NoError(t, l.Scan("", &target))
		assert.Equal(t, Settings{Radix: 16, Width: 4}, target.Out.Hex)
	})
}
