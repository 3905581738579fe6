// FILE: lixenwraith/radix/cmd/radixdump/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/radix"
)

// dumpConfig is the configuration of the table printer. Each column is a
// radix.Settings table so it can be overridden from file, env or CLI, e.g.
// --hex.width=4 or RADIXDUMP_BINARY_RADIX=oct.
type dumpConfig struct {
	Limit      string         `toml:"limit"` // exclusive, read in LimitRadix
	LimitRadix int            `toml:"limit_radix"`
	Buffered   bool           `toml:"buffered"`
	Save       string         `toml:"save"`
	Binary     radix.Settings `toml:"binary"`
	Hex        radix.Settings `toml:"hex"`
	Decimal    radix.Settings `toml:"decimal"`
}

func defaultConfig() dumpConfig {
	return dumpConfig{
		Limit:      "100",
		LimitRadix: 16,
		Buffered:   true,
		Binary:     radix.Settings{Radix: 2, Width: 8, Case: radix.CaseUpper},
		Hex:        radix.Settings{Radix: 16, Width: 2, Case: radix.CaseUpper},
		Decimal:    radix.Settings{Radix: 10, Width: 3, Case: radix.CaseUpper},
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("radixdump: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run loads configuration from args, environment and an optional
// radixdump.toml, then writes the table to out.
func run(args []string, out io.Writer) error {
	loader, err := radix.NewBuilder().
		WithDefaults(defaultConfig()).
		WithEnvPrefix("RADIXDUMP_").
		WithArgs(args).
		WithFileDiscovery(radix.DefaultDiscoveryOptions("radixdump")).
		Build()
	if err != nil && !errors.Is(err, radix.ErrConfigNotFound) {
		return fmt.Errorf("load configuration: %w", err)
	}
	if path := loader.FilePath(); path != "" {
		log.Printf("using configuration file %s (%s)", path, loader.FileOrigin())
	}

	var cfg dumpConfig
	if err := loader.Scan("", &cfg); err != nil {
		return fmt.Errorf("decode configuration: %w", err)
	}

	limit, err := radix.Parse(cfg.Limit, cfg.LimitRadix)
	if err != nil {
		return fmt.Errorf("invalid limit: %w", err)
	}

	columns := make([]*radix.Converter, 0, 3)
	for _, col := range []struct {
		name string
		s    radix.Settings
	}{
		{"binary", cfg.Binary},
		{"hex", cfg.Hex},
		{"decimal", cfg.Decimal},
	} {
		conv, err := radix.NewConverter(col.s)
		if err != nil {
			return fmt.Errorf("%s column: %w", col.name, err)
		}
		columns = append(columns, conv)
	}

	if cfg.Save != "" {
		if err := loader.SaveFile(cfg.Save); err != nil {
			return fmt.Errorf("save configuration: %w", err)
		}
		log.Printf("configuration written to %s", cfg.Save)
	}

	var e *radix.Emitter
	if cfg.Buffered {
		e = radix.NewBufferedEmitter(out, columns[0])
	} else {
		e = radix.NewEmitter(out, columns[0])
	}

	if err := dump(e, columns, limit); err != nil {
		return err
	}
	return e.Flush()
}

// dump writes one line per value in [0, limit): each column's digits
// separated by spaces, then the character itself when printable ASCII.
func dump(e *radix.Emitter, columns []*radix.Converter, limit uint64) error {
	for i := uint64(0); i < limit; i++ {
		for n, conv := range columns {
			if n > 0 {
				if err := e.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := e.With(conv).WriteUint(i); err != nil {
				return err
			}
		}
		if i >= 0x20 && i <= 0x7E {
			if _, err := e.WriteString(" " + string(rune(i))); err != nil {
				return err
			}
		}
		if err := e.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}
