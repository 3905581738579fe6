// FILE: lixenwraith/radix/decode.go
package radix

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// radixAliases maps radix names accepted in configuration to their value.
var radixAliases = map[string]int{
	"bin":         2,
	"binary":      2,
	"oct":         8,
	"octal":       8,
	"dec":         10,
	"decimal":     10,
	"hex":         16,
	"hexadecimal": 16,
}

var settingsType = reflect.TypeOf(Settings{})

// Scan decodes the merged configuration under basePath into target, which
// must be a non-nil pointer to a struct or map. Fields are matched by `toml` tag.
func (l *Loader) Scan(basePath string, target any) error {
	return l.unmarshal(basePath, "", target)
}

// ScanSource is like Scan but only sees values from one source.
func (l *Loader) ScanSource(basePath string, source Source, target any) error {
	return l.unmarshal(basePath, source, target)
}

// unmarshal is the single decoding path behind Scan and ScanSource.
func (l *Loader) unmarshal(basePath string, source Source, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("unmarshal target must be non-nil pointer, got %T", target)
	}

	l.mutex.RLock()
	nestedMap := make(map[string]any)
	for path, item := range l.items {
		switch source {
		case "":
			setNestedValue(nestedMap, path, item.currentValue)
		case SourceDefault:
			setNestedValue(nestedMap, path, item.defaultValue)
		default:
			if val, exists := item.values[source]; exists {
				setNestedValue(nestedMap, path, val)
			}
		}
	}
	l.mutex.RUnlock()

	sectionData := navigateToPath(nestedMap, basePath)

	sectionMap, ok := sectionData.(map[string]any)
	if !ok {
		if sectionData != nil {
			return fmt.Errorf("path %q refers to non-map value (type %T)", basePath, sectionData)
		}
		sectionMap = make(map[string]any)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook:       settingsHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("decode failed for path %q: %w", basePath, err)
	}

	return nil
}

// settingsHookFunc normalizes the raw table decoded into a Settings value:
// radix names such as "hex" become numbers and case names are canonicalized.
func settingsHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != settingsType || f.Kind() != reflect.Map {
			return data, nil
		}
		raw, ok := data.(map[string]any)
		if !ok {
			return data, nil
		}

		out := make(map[string]any, len(raw))
		for k, v := range raw {
			out[k] = v
		}

		if s, ok := out["radix"].(string); ok {
			if r, known := radixAliases[strings.ToLower(strings.TrimSpace(s))]; known {
				out["radix"] = r
			}
		}

		switch v := out["case"].(type) {
		case string:
			c, ok := ParseCase(v)
			if !ok {
				return nil, fmt.Errorf("unknown letter case %q", v)
			}
			out["case"] = string(c)
		case Case:
			out["case"] = string(v)
		}

		return out, nil
	}
}
