// FILE: lixenwraith/radix/register.go
package radix

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// configItem holds the default, per-source and effective value of a path
type configItem struct {
	defaultValue any
	currentValue any
	values       map[Source]any
}

// Loader gathers settings from defaults, files, environment variables and
// command-line arguments, and decodes the merged result into structs.
type Loader struct {
	items      map[string]configItem
	options    LoadOptions
	fileFormat string
	filePath   string
	fileOrigin FileOrigin
	mutex      sync.RWMutex
}

// NewLoader creates a Loader with the default load options.
func NewLoader() *Loader {
	return NewLoaderWithOptions(DefaultLoadOptions())
}

// NewLoaderWithOptions creates a Loader with custom load options.
func NewLoaderWithOptions(opts LoadOptions) *Loader {
	return &Loader{
		items:      make(map[string]configItem),
		options:    opts,
		fileFormat: "auto",
	}
}

// Register makes a configuration path known to the Loader.
// The path should be dot-separated (e.g., "hex.radix", "limit").
// Each segment of the path must be a valid TOML key identifier.
func (l *Loader) Register(path string, defaultValue any) error {
	if path == "" {
		return fmt.Errorf("registration path cannot be empty")
	}

	for _, segment := range strings.Split(path, ".") {
		if !isValidKeySegment(segment) {
			return fmt.Errorf("invalid path segment %q in path %q", segment, path)
		}
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.items[path] = configItem{
		defaultValue: defaultValue,
		currentValue: defaultValue,
	}

	return nil
}

// RegisterStruct registers every exported field of a struct as a path, using
// the `toml` tag (or the field name) as the key. Nested structs are walked and
// their fields registered under "<key>.". The prefix is prepended to all paths.
func (l *Loader) RegisterStruct(prefix string, structWithDefaults any) error {
	v := reflect.ValueOf(structWithDefaults)

	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fmt.Errorf("RegisterStruct requires a non-nil struct pointer or value")
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return fmt.Errorf("RegisterStruct requires a struct or struct pointer, got %T", structWithDefaults)
	}

	var errs []string
	l.registerFields(v, prefix, &errs)

	if len(errs) > 0 {
		return fmt.Errorf("failed to register %d field(s): %s", len(errs), strings.Join(errs, "; "))
	}

	return nil
}

func (l *Loader) registerFields(v reflect.Value, pathPrefix string, errs *[]string) {
	t := v.Type()

	if pathPrefix != "" && !strings.HasSuffix(pathPrefix, ".") {
		pathPrefix += "."
	}

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("toml")
		if tag == "-" {
			continue
		}

		key := field.Name
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			key = name
		}
		currentPath := pathPrefix + key

		if fieldValue.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct {
			if fieldValue.IsNil() {
				continue
			}
			fieldValue = fieldValue.Elem()
		}
		if fieldValue.Kind() == reflect.Struct {
			l.registerFields(fieldValue, currentPath, errs)
			continue
		}

		if err := l.Register(currentPath, fieldValue.Interface()); err != nil {
			*errs = append(*errs, fmt.Sprintf("field %s (path %s): %v", field.Name, currentPath, err))
		}
	}
}

// RegisteredPaths returns all registered paths with the given prefix.
func (l *Loader) RegisteredPaths(prefix string) map[string]bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	result := make(map[string]bool)
	for path := range l.items {
		if strings.HasPrefix(path, prefix) {
			result[path] = true
		}
	}

	return result
}

// Get returns the effective value of a path and whether it is registered.
func (l *Loader) Get(path string) (any, bool) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	item, registered := l.items[path]
	if !registered {
		return nil, false
	}

	return item.currentValue, true
}

// Set stores a value for a path as if it came from the command line.
func (l *Loader) Set(path string, value any) error {
	return l.SetSource(path, SourceCLI, value)
}

// SetSource stores a value for a path under a specific source and
// recomputes the effective value.
func (l *Loader) SetSource(path string, source Source, value any) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	item, registered := l.items[path]
	if !registered {
		return fmt.Errorf("path %s is not registered", path)
	}

	if source == SourceDefault {
		item.defaultValue = value
	} else {
		if item.values == nil {
			item.values = make(map[Source]any)
		}
		item.values[source] = value
	}
	item.currentValue = l.computeValue(item)
	l.items[path] = item

	return nil
}

// Sources returns the values a path received from each non-default source.
func (l *Loader) Sources(path string) map[Source]any {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	result := make(map[Source]any)
	for source, value := range l.items[path].values {
		result[source] = value
	}
	return result
}

// computeValue picks the value of the highest-precedence source that has one.
// Caller must hold the write lock.
func (l *Loader) computeValue(item configItem) any {
	for _, source := range l.options.Sources {
		if source == SourceDefault {
			return item.defaultValue
		}
		if value, ok := item.values[source]; ok {
			return value
		}
	}
	return item.defaultValue
}
