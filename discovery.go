// FILE: lixenwraith/radix/discovery.go
package radix

import (
	"os"
	"path/filepath"
	"strings"
)

// FileOrigin tells which step selected the configuration file.
type FileOrigin string

const (
	OriginNone     FileOrigin = ""
	OriginExplicit FileOrigin = "explicit" // Builder.WithFile
	OriginFlag     FileOrigin = "flag"
	OriginEnv      FileOrigin = "env"
	OriginSearch   FileOrigin = "search"
)

// FileDiscoveryOptions configures automatic config file discovery
type FileDiscoveryOptions struct {
	// Base name of the settings file, without extension
	Name string

	// Extensions tried in each directory, in order
	Extensions []string

	// Directories searched before the current and XDG directories
	Paths []string

	// Environment variable holding an explicit path
	EnvVar string

	// Command-line flag holding an explicit path (e.g., "--config")
	CLIFlag string

	UseXDG        bool
	UseCurrentDir bool
}

// Discovery is the outcome of DiscoverFile. The zero value means no file.
type Discovery struct {
	Path   string
	Origin FileOrigin
}

// DefaultDiscoveryOptions looks for appName with every extension LoadFile
// recognizes, honoring --config and APPNAME_CONFIG.
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          appName,
		Extensions:    FileExtensions(),
		EnvVar:        envVarName(appName) + "_CONFIG",
		CLIFlag:       "--config",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// DiscoverFile selects a settings file from args, the environment and the
// search directories, in that order.
func DiscoverFile(opts FileDiscoveryOptions, args []string) Discovery {
	// Explicit flag wins
	if path, ok := flagValue(args, opts.CLIFlag); ok {
		return Discovery{Path: path, Origin: OriginFlag}
	}

	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return Discovery{Path: path, Origin: OriginEnv}
		}
	}

	for _, dir := range searchDirs(opts) {
		for _, ext := range opts.Extensions {
			path := filepath.Join(dir, opts.Name+ext)
			// Directories named like the file are skipped
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return Discovery{Path: path, Origin: OriginSearch}
			}
		}
	}

	return Discovery{}
}

// WithFileDiscovery sets the file found by DiscoverFile over b's arguments.
// Finding nothing is not an error and keeps any file set earlier.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	if d := DiscoverFile(opts, b.args); d.Path != "" {
		b.file, b.origin = d.Path, d.Origin
	}
	return b
}

// flagValue finds "--flag value" or "--flag=value" in args. An empty value
// or a flag followed by another flag does not count.
func flagValue(args []string, flag string) (string, bool) {
	if flag == "" {
		return "", false
	}
	for i, arg := range args {
		if value, ok := strings.CutPrefix(arg, flag+"="); ok && value != "" {
			return value, true
		}
		if arg == flag && i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
			return args[i+1], true
		}
	}
	return "", false
}

// searchDirs lists directories in search order: custom paths, the working
// directory, then XDG locations.
func searchDirs(opts FileDiscoveryOptions) []string {
	dirs := append([]string{}, opts.Paths...)
	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			dirs = append(dirs, cwd)
		}
	}
	if opts.UseXDG {
		dirs = append(dirs, xdgConfigDirs(opts.Name)...)
	}
	return dirs
}

// xdgConfigDirs returns the per-application XDG config directories, user
// directory first.
func xdgConfigDirs(appName string) []string {
	var dirs []string

	// XDG_CONFIG_HOME, falling back to ~/.config
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", appName))
	}

	// XDG_CONFIG_DIRS, falling back to the system defaults
	system := filepath.SplitList(os.Getenv("XDG_CONFIG_DIRS"))
	if len(system) == 0 {
		system = []string{"/etc/xdg", "/etc"}
	}
	for _, dir := range system {
		dirs = append(dirs, filepath.Join(dir, appName))
	}

	return dirs
}

// envVarName upper-cases name and replaces characters not allowed in
// environment variable names with underscores.
func envVarName(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || r == ' ' {
			return '_'
		}
		return r
	}, strings.ToUpper(name))
}
