package chip

import "fmt"

// Family is the vendor/product-line classification of a chip.
// The set of families is closed: only this package can implement it.
type Family interface {
	// String returns the short family tag used in crate names ("stm32", "nrf", "esp").
	String() string

	family()
}

// STM is the STMicroelectronics STM32 line.
type STM struct{}

// NRF is the Nordic nRF52 line.
type NRF struct{}

// ESP is the Espressif ESP32 line. Variant selects the die.
type ESP struct {
	Variant ESPVariant
}

func (STM) String() string { return "stm32" }
func (NRF) String() string { return "nrf" }
func (ESP) String() string { return "esp" }

func (STM) family() {}
func (NRF) family() {}
func (ESP) family() {}

// ESPVariant identifies an ESP32 die.
type ESPVariant int

const (
	C3 ESPVariant = iota
	S2
	S3
)

// String returns the variant as used in esp-hal feature names.
func (v ESPVariant) String() string {
	switch v {
	case C3:
		return "esp32c3"
	case S2:
		return "esp32s2"
	case S3:
		return "esp32s3"
	default:
		return fmt.Sprintf("ESPVariant(%d)", int(v))
	}
}

// Families returns one value of every family, for exhaustive walks.
func Families() []Family {
	return []Family{STM{}, NRF{}, ESP{Variant: C3}, ESP{Variant: S2}, ESP{Variant: S3}}
}

// RequiresMemoryLayout reports whether the family's linker layout must be
// emitted as a literal memory.x instead of coming from the HAL crate.
func RequiresMemoryLayout(f Family) bool {
	switch f.(type) {
	case NRF:
		return true
	case STM, ESP:
		return false
	default:
		panic(fmt.Sprintf("chip: unhandled family %T", f))
	}
}

// OwnsRuntime reports whether the family ships its own startup and panic
// handling, replacing the generic cortex-m runtime crates.
func OwnsRuntime(f Family) bool {
	switch f.(type) {
	case ESP:
		return true
	case STM, NRF:
		return false
	default:
		panic(fmt.Sprintf("chip: unhandled family %T", f))
	}
}

// SupportsSoftdevice reports whether a Nordic softdevice can be combined with the family.
func SupportsSoftdevice(f Family) bool {
	switch f.(type) {
	case NRF:
		return true
	case STM, ESP:
		return false
	default:
		panic(fmt.Sprintf("chip: unhandled family %T", f))
	}
}

// StripsPackageSuffix reports whether identifiers of the family carry a
// package/die suffix after '_' that is not part of the canonical name.
func StripsPackageSuffix(f Family) bool {
	switch f.(type) {
	case NRF:
		return true
	case STM, ESP:
		return false
	default:
		panic(fmt.Sprintf("chip: unhandled family %T", f))
	}
}
