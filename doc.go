// File: lixenwraith/radix/doc.go

// Package radix converts unsigned integers to and from digit strings in any
// radix from 2 to 36, with zero padding to a minimum width.
//
// Features:
//   - Format, AppendFormat and FormatInto for owned, appended and caller-buffer output
//   - Parse with typed errors that keep the partial value
//   - Immutable Converter values instead of shared radix/width state
//   - Emitter for stream or buffered sinks
//   - Settings loading from TOML, JSON or YAML files, environment variables
//     and command-line arguments with configurable precedence
//
// Quick Start:
//
//	s, _ := radix.Format(5, 2, 8)     // "00000101"
//	n, _ := radix.Parse("FF extra", 16) // 255
//
//	conv, err := radix.NewConverter(radix.Settings{Radix: 16, Width: 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	e := radix.NewBufferedEmitter(os.Stdout, conv)
//	e.WriteUint(5) // "05"
//	e.Flush()
//
// Loading Settings (highest precedence first):
//  1. Command-line arguments (--radix=hex --width=4)
//  2. Environment variables (MYAPP_RADIX=16)
//  3. Configuration file (radix = 16)
//  4. DefaultSettings
//
//	s, err := radix.LoadSettings("MYAPP_", "radix.toml", os.Args[1:])
//
// Thread Safety:
// Format, Parse and Converter are safe for concurrent use. An Emitter is not.
// Loader operations are guarded by a read-write mutex.
package radix
