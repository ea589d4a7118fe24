package chip

import "fmt"

// Architecture is a target instruction-set/ABI profile.
type Architecture int

const (
	Thumbv6 Architecture = iota
	Thumbv7
	Thumbv7e
	Thumbv7f
	Thumbv8
	RISCV32IMC
	XtensaS2
	XtensaS3
)

var triples = map[Architecture]string{
	Thumbv6:    "thumbv6m-none-eabi",
	Thumbv7:    "thumbv7m-none-eabi",
	Thumbv7e:   "thumbv7em-none-eabi",
	Thumbv7f:   "thumbv7em-none-eabihf",
	Thumbv8:    "thumbv8m.main-none-eabihf",
	RISCV32IMC: "riscv32imc-unknown-none-elf",
	XtensaS2:   "xtensa-esp32s2-none-elf",
	XtensaS3:   "xtensa-esp32s3-none-elf",
}

// Triple returns the rustc target triple for the architecture.
func (a Architecture) Triple() string {
	if t, ok := triples[a]; ok {
		return t
	}
	return fmt.Sprintf("Architecture(%d)", int(a))
}

func (a Architecture) String() string {
	return a.Triple()
}

// Architectures returns every architecture in declaration order.
func Architectures() []Architecture {
	return []Architecture{Thumbv6, Thumbv7, Thumbv7e, Thumbv7f, Thumbv8, RISCV32IMC, XtensaS2, XtensaS3}
}
