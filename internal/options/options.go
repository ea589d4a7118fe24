// Package options defines the user-supplied generation options and validates
// them against a resolved chip before anything touches the filesystem.
package options

import (
	"fmt"
	"strings"
)

// PanicHandler selects the panic crate linked into release builds.
type PanicHandler int

const (
	Halt PanicHandler = iota
	Reset
)

// DefaultPanicHandler is the handler used when none is requested.
const DefaultPanicHandler = Halt

// ParsePanicHandler parses "halt" or "reset".
func ParsePanicHandler(s string) (PanicHandler, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "halt":
		return Halt, nil
	case "reset":
		return Reset, nil
	default:
		return 0, fmt.Errorf("invalid panic handler %q (want halt or reset)", s)
	}
}

func (p PanicHandler) String() string {
	switch p {
	case Halt:
		return "halt"
	case Reset:
		return "reset"
	default:
		return fmt.Sprintf("PanicHandler(%d)", int(p))
	}
}

// Crate returns the crate name implementing the handler.
func (p PanicHandler) Crate() string {
	return "panic-" + p.String()
}

// Module returns the crate name as a Rust path segment.
func (p PanicHandler) Module() string {
	return strings.ReplaceAll(p.Crate(), "-", "_")
}

// Softdevice is a Nordic BLE stack variant.
type Softdevice string

const (
	S112 Softdevice = "s112"
	S113 Softdevice = "s113"
	S122 Softdevice = "s122"
	S132 Softdevice = "s132"
	S140 Softdevice = "s140"
)

// Softdevices lists every supported softdevice variant.
func Softdevices() []Softdevice {
	return []Softdevice{S112, S113, S122, S132, S140}
}

// ParseSoftdevice parses a softdevice variant name such as "s140".
func ParseSoftdevice(s string) (Softdevice, error) {
	want := Softdevice(strings.ToLower(strings.TrimSpace(s)))
	for _, sd := range Softdevices() {
		if sd == want {
			return sd, nil
		}
	}
	return "", fmt.Errorf("invalid softdevice %q (want one of s112, s113, s122, s132, s140)", s)
}

func (s Softdevice) String() string {
	return string(s)
}

// Generation holds everything the user chose for a new project.
type Generation struct {
	// ProjectName is the crate and directory name.
	ProjectName string

	PanicHandler PanicHandler

	// Softdevice is nil unless the radio stack was requested.
	Softdevice *Softdevice

	// Commit pins the embassy crates to a git revision when non-empty.
	Commit string

	// VSCode emits a probe-rs debug launch configuration.
	VSCode bool
}
