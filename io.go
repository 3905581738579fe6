// File: lixenwraith/radix/io.go
package radix

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SaveFile writes the merged configuration to a TOML file atomically.
// Only registered paths are saved.
func (l *Loader) SaveFile(path string) error {
	return l.save(path, "")
}

// SaveSource writes only the values of one source to a TOML file.
func (l *Loader) SaveSource(path string, source Source) error {
	return l.save(path, source)
}

func (l *Loader) save(path string, source Source) error {
	l.mutex.RLock()
	nestedData := make(map[string]any)
	for itemPath, item := range l.items {
		switch source {
		case "":
			setNestedValue(nestedData, itemPath, item.currentValue)
		case SourceDefault:
			setNestedValue(nestedData, itemPath, item.defaultValue)
		default:
			if val, exists := item.values[source]; exists {
				setNestedValue(nestedData, itemPath, val)
			}
		}
	}
	l.mutex.RUnlock()

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(nestedData); err != nil {
		return fmt.Errorf("failed to marshal config data to TOML: %w", err)
	}

	return atomicWriteFile(path, buf.Bytes())
}

// FilePath returns the path of the last configuration file loaded, if any.
func (l *Loader) FilePath() string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.filePath
}

// FileOrigin returns how the Builder selected the loaded file. It is
// OriginNone when no file was loaded or the Loader was driven directly.
func (l *Loader) FileOrigin() FileOrigin {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	if l.filePath == "" {
		return OriginNone
	}
	return l.fileOrigin
}

func (l *Loader) setFileOrigin(origin FileOrigin) {
	l.mutex.Lock()
	l.fileOrigin = origin
	l.mutex.Unlock()
}

// atomicWriteFile writes data to a temporary file in the target directory
// and renames it over path.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // no-op after a successful rename

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
