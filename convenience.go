// File: lixenwraith/radix/convenience.go
package radix

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// LoadSettings loads Settings with the standard precedence CLI > Env > File >
// Default. A missing file is not an error.
func LoadSettings(envPrefix, configFile string, args []string) (Settings, error) {
	s, err := NewBuilder().
		WithEnvPrefix(envPrefix).
		WithFile(configFile).
		WithArgs(args).
		BuildSettings()
	if errors.Is(err, ErrConfigNotFound) {
		err = nil
	}
	return s, err
}

// LoadConverter is LoadSettings followed by NewConverter.
func LoadConverter(envPrefix, configFile string, args []string) (*Converter, error) {
	s, err := LoadSettings(envPrefix, configFile, args)
	if err != nil {
		return nil, err
	}
	return NewConverter(s)
}

// ConverterAt decodes the Settings registered under prefix and returns a
// Converter for them.
func (l *Loader) ConverterAt(prefix string) (*Converter, error) {
	var s Settings
	if err := l.Scan(prefix, &s); err != nil {
		return nil, err
	}
	conv, err := NewConverter(s)
	if err != nil {
		return nil, fmt.Errorf("settings %q: %w", prefix, err)
	}
	return conv, nil
}

// Debug returns every registered path with its effective, default and
// per-source values, sorted by path.
func (l *Loader) Debug() string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	paths := make([]string, 0, len(l.items))
	for path := range l.items {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var b strings.Builder
	fmt.Fprintf(&b, "Precedence: %v\n", l.options.Sources)
	for _, path := range paths {
		item := l.items[path]
		fmt.Fprintf(&b, "  %s:\n", path)
		fmt.Fprintf(&b, "    Current: %v\n", item.currentValue)
		fmt.Fprintf(&b, "    Default: %v\n", item.defaultValue)
		for _, source := range l.options.Sources {
			if value, ok := item.values[source]; ok {
				fmt.Fprintf(&b, "    %s: %v\n", source, value)
			}
		}
	}

	return b.String()
}
