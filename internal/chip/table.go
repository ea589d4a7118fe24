package chip

// Entry is one row of the classification table.
type Entry struct {
	Prefix       string
	Family       Family
	Architecture Architecture
}

// table is scanned in order and the first matching prefix wins.
// A prefix that extends an earlier, shorter prefix must come before it.
var table = []Entry{
	// nRF
	{"nrf52805", NRF{}, Thumbv7f},
	{"nrf52810", NRF{}, Thumbv7f},
	{"nrf52811", NRF{}, Thumbv7f},
	{"nrf52820", NRF{}, Thumbv7f},
	{"nrf52832_xxaa", NRF{}, Thumbv7f},
	{"nrf52832_xxab", NRF{}, Thumbv7f},
	{"nrf52833", NRF{}, Thumbv7f},
	{"nrf52840", NRF{}, Thumbv7f},

	// STM32
	{"stm32c0", STM{}, Thumbv6},
	{"stm32f0", STM{}, Thumbv6},
	{"stm32f1", STM{}, Thumbv7},
	{"stm32f2", STM{}, Thumbv7},
	{"stm32f3", STM{}, Thumbv7e},
	{"stm32f4", STM{}, Thumbv7e},
	{"stm32f7", STM{}, Thumbv7e},
	{"stm32g0", STM{}, Thumbv6},
	{"stm32g4", STM{}, Thumbv7e},
	{"stm32h5", STM{}, Thumbv8},
	{"stm32h7", STM{}, Thumbv7e},
	{"stm32l0", STM{}, Thumbv6},
	{"stm32l1", STM{}, Thumbv7},
	{"stm32l4", STM{}, Thumbv7e},
	{"stm32l5", STM{}, Thumbv8},
	{"stm32u5", STM{}, Thumbv8},
	{"stm32wba", STM{}, Thumbv8},
	{"stm32wb", STM{}, Thumbv7e},
	{"stm32wl", STM{}, Thumbv7e},

	// ESP32
	{"esp32c3", ESP{Variant: C3}, RISCV32IMC},
	{"esp32s2", ESP{Variant: S2}, XtensaS2},
	{"esp32s3", ESP{Variant: S3}, XtensaS3},
}

// ambiguous identifiers name a part sold in several memory/package variants.
var ambiguous = map[string]bool{
	"nrf52832": true,
}

// Entries returns a copy of the classification table in scan order.
func Entries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}
