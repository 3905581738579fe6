// FILE: lixenwraith/radix/loader.go
package radix

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Source represents a configuration source, used to define load precedence
type Source string

const (
	// SourceDefault represents use of registered default values
	SourceDefault Source = "default"
	// SourceFile represents values loaded from a configuration file
	SourceFile Source = "file"
	// SourceEnv represents values loaded from environment variables
	SourceEnv Source = "env"
	// SourceCLI represents values loaded from command-line arguments
	SourceCLI Source = "cli"
)

// EnvTransformFunc converts a configuration path to an environment variable name
type EnvTransformFunc func(path string) string

// LoadOptions configures how configuration is loaded from multiple sources
type LoadOptions struct {
	// Sources defines the precedence order (first = highest priority)
	// Default: [SourceCLI, SourceEnv, SourceFile, SourceDefault]
	Sources []Source

	// EnvPrefix is prepended to environment variable names
	// Example: "RADIX_" transforms "hex.width" to "RADIX_HEX_WIDTH"
	EnvPrefix string

	// EnvTransform customizes how paths map to environment variables
	// If nil, uses default transformation (dots to underscores, uppercase)
	EnvTransform EnvTransformFunc
}

// DefaultLoadOptions returns the standard load options
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Sources: []Source{SourceCLI, SourceEnv, SourceFile, SourceDefault},
	}
}

// SetLoadOptions replaces the precedence options and recomputes every value.
func (l *Loader) SetLoadOptions(opts LoadOptions) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.options = opts
	for path, item := range l.items {
		item.currentValue = l.computeValue(item)
		l.items[path] = item
	}
}

// SetFileFormat forces the file format ("toml", "json", "yaml") or restores
// detection with "auto".
func (l *Loader) SetFileFormat(format string) error {
	switch format {
	case "", "auto", "toml", "json", "yaml":
	default:
		return fmt.Errorf("unsupported config file format %q", format)
	}

	l.mutex.Lock()
	l.fileFormat = format
	l.mutex.Unlock()
	return nil
}

// LoadWithOptions loads configuration from every source in opts.
// A missing file is reported as ErrConfigNotFound alongside any other
// non-fatal errors; parse failures of an existing file are fatal.
func (l *Loader) LoadWithOptions(filePath string, args []string, opts LoadOptions) error {
	l.SetLoadOptions(opts)

	var loadErrors []error

	// Lowest precedence first so higher sources layer on top
	for i := len(opts.Sources) - 1; i >= 0; i-- {
		switch opts.Sources[i] {
		case SourceDefault:
			// Defaults are already in place from Register calls
			continue

		case SourceFile:
			if filePath != "" {
				if err := l.LoadFile(filePath); err != nil {
					if errors.Is(err, ErrConfigNotFound) {
						loadErrors = append(loadErrors, err)
					} else {
						return err
					}
				}
			}

		case SourceEnv:
			if err := l.loadEnv(opts); err != nil {
				loadErrors = append(loadErrors, err)
			}

		case SourceCLI:
			if len(args) > 0 {
				if err := l.LoadCLI(args); err != nil {
					loadErrors = append(loadErrors, err)
				}
			}
		}
	}

	return errors.Join(loadErrors...)
}

// LoadEnv loads values from environment variables named with prefix.
func (l *Loader) LoadEnv(prefix string) error {
	l.mutex.RLock()
	opts := l.options
	l.mutex.RUnlock()

	opts.EnvPrefix = prefix
	return l.loadEnv(opts)
}

// LoadFile reads a TOML, JSON or YAML file and applies values for registered paths.
func (l *Loader) LoadFile(path string) error {
	fileData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	l.mutex.RLock()
	format := l.fileFormat
	l.mutex.RUnlock()

	if format == "" || format == "auto" {
		format = detectFileFormat(path)
		if format == "" {
			format = detectFormatFromContent(fileData)
		}
	}

	fileConfig := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(fileData, &fileConfig); err != nil {
			return fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(fileData))
		decoder.UseNumber()
		if err := decoder.Decode(&fileConfig); err != nil {
			return fmt.Errorf("failed to parse JSON config file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(fileData, &fileConfig); err != nil {
			return fmt.Errorf("failed to parse YAML config file '%s': %w", path, err)
		}
	default:
		return fmt.Errorf("unable to determine config format for file '%s'", path)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.filePath = path
	l.applySource(SourceFile, l.collectRegistered(fileConfig))
	return nil
}

// collectRegistered walks nested file data and keeps registered paths. A
// registered path holding a table keeps the table as its value.
// Caller must hold the lock.
func (l *Loader) collectRegistered(data map[string]any) map[string]any {
	found := make(map[string]any)

	var walk func(prefix string, data map[string]any)
	walk = func(prefix string, data map[string]any) {
		for key, value := range data {
			fullPath := key
			if prefix != "" {
				fullPath = prefix + "." + key
			}
			if _, registered := l.items[fullPath]; registered {
				found[fullPath] = value
			} else if subMap, isMap := value.(map[string]any); isMap {
				walk(fullPath, subMap)
			}
		}
	}
	walk("", data)

	return found
}

// applySource replaces every value of source with the given set.
// Caller must hold the write lock.
func (l *Loader) applySource(source Source, values map[string]any) {
	for path, item := range l.items {
		if value, exists := values[path]; exists {
			if item.values == nil {
				item.values = make(map[Source]any)
			}
			item.values[source] = value
		} else {
			delete(item.values, source)
		}
		item.currentValue = l.computeValue(item)
		l.items[path] = item
	}
}

// loadEnv loads configuration from environment variables
func (l *Loader) loadEnv(opts LoadOptions) error {
	transform := opts.EnvTransform
	if transform == nil {
		transform = defaultEnvTransform(opts.EnvPrefix)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	found := make(map[string]any)
	for path := range l.items {
		if value, exists := os.LookupEnv(transform(path)); exists {
			if len(value) > MaxValueSize {
				return fmt.Errorf("%w: environment variable %s", ErrValueSize, transform(path))
			}
			// Raw string, decoding handles conversion
			found[path] = value
		}
	}

	l.applySource(SourceEnv, found)
	return nil
}

// LoadCLI loads values from "--key=value", "--key value" and "--flag" arguments.
// Arguments for unregistered paths are ignored.
func (l *Loader) LoadCLI(args []string) error {
	parsed, err := parseArgs(args)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCLIParse, err)
	}

	flattened := flattenMap(parsed, "")

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.applySource(SourceCLI, flattened)
	return nil
}

// DiscoverEnv returns path -> env var name for every registered path whose
// variable is set.
func (l *Loader) DiscoverEnv(prefix string) map[string]string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	transform := l.options.EnvTransform
	if transform == nil {
		transform = defaultEnvTransform(prefix)
	}

	discovered := make(map[string]string)
	for path := range l.items {
		envVar := transform(path)
		if _, exists := os.LookupEnv(envVar); exists {
			discovered[path] = envVar
		}
	}

	return discovered
}

// defaultEnvTransform creates the default environment variable transformer
func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(path string) string {
		env := strings.ToUpper(strings.ReplaceAll(path, ".", "_"))
		return prefix + env
	}
}

// parseArgs processes command-line arguments into a nested map structure.
func parseArgs(args []string) (map[string]any, error) {
	result := make(map[string]any)
	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			// Skip non-flag arguments
			i++
			continue
		}

		argContent := strings.TrimPrefix(arg, "--")
		if argContent == "" {
			// Bare "--" separator
			i++
			continue
		}

		var keyPath, valueStr string
		if key, value, ok := strings.Cut(argContent, "="); ok {
			// "--key=value"
			keyPath, valueStr = key, value
			i++
		} else {
			// "--key value" or "--flag"
			keyPath = argContent
			// Boolean flag when followed by another flag or nothing
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
				valueStr = "true"
				i++
			} else {
				valueStr = args[i+1]
				i += 2
			}
		}

		if keyPath == "" {
			// Skip invalid flags like --=value
			continue
		}

		// Validate keyPath segments
		for _, segment := range strings.Split(keyPath, ".") {
			if !isValidKeySegment(segment) {
				return nil, fmt.Errorf("invalid command-line key segment %q in path %q", segment, keyPath)
			}
		}

		// Always store as a string, Scan handles type conversion
		setNestedValue(result, keyPath, valueStr)
	}

	return result, nil
}

// fileFormats maps recognized extensions to formats, in discovery order.
var fileFormats = []struct{ ext, format string }{
	{".toml", "toml"},
	{".tml", "toml"},
	{".yaml", "yaml"},
	{".yml", "yaml"},
	{".json", "json"},
}

// FileExtensions returns the extensions LoadFile maps to a format without
// inspecting content.
func FileExtensions() []string {
	exts := make([]string, len(fileFormats))
	for i, f := range fileFormats {
		exts[i] = f.ext
	}
	return exts
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range fileFormats {
		if f.ext == ext {
			return f.format
		}
	}
	return ""
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// JSON is the strictest, try it first
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	// YAML accepts almost anything, so it goes last
	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
