package chip

// MemoryProfile is a literal linker memory layout.
// Origins are byte addresses; lengths are in KiB.
type MemoryProfile struct {
	FlashOrigin uint
	FlashLength uint
	RAMOrigin   uint
	RAMLength   uint
}

const nrfRAMOrigin = 0x2 << 28

var (
	nrf52805 = MemoryProfile{FlashOrigin: 0, FlashLength: 192, RAMOrigin: nrfRAMOrigin, RAMLength: 24}
	nrf52820 = MemoryProfile{FlashOrigin: 0, FlashLength: 256, RAMOrigin: nrfRAMOrigin, RAMLength: 32}

	nrf52832xxaa = MemoryProfile{FlashOrigin: 0, FlashLength: 512, RAMOrigin: nrfRAMOrigin, RAMLength: 64}
	nrf52833     = MemoryProfile{FlashOrigin: 0, FlashLength: 512, RAMOrigin: nrfRAMOrigin, RAMLength: 128}
	nrf52840     = MemoryProfile{FlashOrigin: 0, FlashLength: 1024, RAMOrigin: nrfRAMOrigin, RAMLength: 256}

	// The 810 and 811 share the 805 layout; the 832 xxAB package shares the 820 layout.
	nrf52810     = nrf52805
	nrf52811     = nrf52805
	nrf52832xxab = nrf52820
)

// memoryTable is keyed on the full normalized identifier, not a prefix.
var memoryTable = map[string]MemoryProfile{
	"nrf52805":      nrf52805,
	"nrf52805_xxaa": nrf52805,
	"nrf52810":      nrf52810,
	"nrf52810_xxaa": nrf52810,
	"nrf52811":      nrf52811,
	"nrf52811_xxaa": nrf52811,
	"nrf52820":      nrf52820,
	"nrf52820_xxaa": nrf52820,
	"nrf52832_xxaa": nrf52832xxaa,
	"nrf52832_xxab": nrf52832xxab,
	"nrf52833":      nrf52833,
	"nrf52833_xxaa": nrf52833,
	"nrf52840":      nrf52840,
	"nrf52840_xxaa": nrf52840,
}

func lookupMemory(id string) (MemoryProfile, bool) {
	m, ok := memoryTable[id]
	return m, ok
}
