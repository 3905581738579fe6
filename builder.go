// File: lixenwraith/radix/builder.go
package radix

import (
	"errors"
	"fmt"
	"os"
)

// ValidatorFunc defines the signature for a function that can validate a Loader.
// It receives the fully loaded *Loader and should return an error if validation fails.
type ValidatorFunc func(l *Loader) error

// Builder provides a fluent interface for loading configuration
type Builder struct {
	loader     *Loader
	opts       LoadOptions
	defaults   any
	prefix     string
	file       string
	origin     FileOrigin
	fileFormat string
	args       []string
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a new configuration builder reading os.Args[1:]
func NewBuilder() *Builder {
	return &Builder{
		loader: NewLoader(),
		opts:   DefaultLoadOptions(),
		args:   os.Args[1:],
	}
}

// WithDefaults sets the struct containing default values
func (b *Builder) WithDefaults(defaults any) *Builder {
	b.defaults = defaults
	return b
}

// WithPrefix sets the path prefix for struct registration and scanning
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

// WithEnvPrefix sets the environment variable prefix
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.opts.EnvPrefix = prefix
	return b
}

// WithFile sets the configuration file path
func (b *Builder) WithFile(path string) *Builder {
	b.file, b.origin = path, OriginExplicit
	return b
}

// WithFileFormat forces the configuration file format
func (b *Builder) WithFileFormat(format string) *Builder {
	b.fileFormat = format
	return b
}

// WithArgs sets the command-line arguments
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithSources sets the precedence order for configuration sources
func (b *Builder) WithSources(sources ...Source) *Builder {
	if len(sources) == 0 {
		b.err = fmt.Errorf("at least one configuration source is required")
		return b
	}
	b.opts.Sources = sources
	return b
}

// WithEnvTransform sets a custom environment variable transformer
func (b *Builder) WithEnvTransform(fn EnvTransformFunc) *Builder {
	b.opts.EnvTransform = fn
	return b
}

// WithValidator adds a validation function that runs at the end of the build process.
// Validators run in the order they were added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the Loader with all specified options.
// ErrConfigNotFound is returned together with a usable Loader.
func (b *Builder) Build() (*Loader, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.fileFormat != "" {
		if err := b.loader.SetFileFormat(b.fileFormat); err != nil {
			return nil, err
		}
	}

	if b.defaults != nil {
		if err := b.loader.RegisterStruct(b.prefix, b.defaults); err != nil {
			return nil, fmt.Errorf("failed to register defaults: %w", err)
		}
	}

	loadErr := b.loader.LoadWithOptions(b.file, b.args, b.opts)
	if loadErr != nil && !errors.Is(loadErr, ErrConfigNotFound) {
		return nil, loadErr
	}
	if loadErr == nil && b.file != "" {
		b.loader.setFileOrigin(b.origin)
	}

	for _, validator := range b.validators {
		if err := validator(b.loader); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return b.loader, loadErr
}

// BuildAndScan builds and decodes the final configuration into target
func (b *Builder) BuildAndScan(target any) error {
	loader, err := b.Build()
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return err
	}

	if err := loader.Scan(b.prefix, target); err != nil {
		return fmt.Errorf("failed to scan final config into target: %w", err)
	}

	return err
}

// BuildSettings registers DefaultSettings unless other defaults were given,
// builds, and returns the validated Settings under the builder's prefix.
func (b *Builder) BuildSettings() (Settings, error) {
	if b.defaults == nil {
		b.defaults = DefaultSettings()
	}

	var s Settings
	err := b.BuildAndScan(&s)
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return Settings{}, err
	}
	if verr := s.Validate(); verr != nil {
		return Settings{}, fmt.Errorf("configuration validation failed: %w", verr)
	}
	return s, err
}
