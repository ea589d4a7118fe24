// Package manifest composes the ordered dependency list of a generated project.
//
// The order is fixed: baseline crates, one HAL crate, the optional radio stack,
// then the runtime group. Families that own their runtime replace the generic
// cortex-m runtime group with their own; emitting both would link two runtimes.
package manifest

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/embassy-init/internal/chip"
	"github.com/danieljhkim/embassy-init/internal/options"
)

// Compose returns the dependency entries for the chip and options.
// The same inputs always produce the same entries in the same order.
func Compose(c chip.Classified, opts options.Generation) []Entry {
	var entries []Entry
	entries = append(entries, baseline(c.Family)...)
	entries = append(entries, hal(c))
	if opts.Softdevice != nil {
		entries = append(entries, radio(c, *opts.Softdevice)...)
	}
	entries = append(entries, runtime(c.Family, opts)...)
	return entries
}

func baseline(f chip.Family) []Entry {
	executor := NewFeatureSet("arch-cortex-m", "executor-thread", "integrated-timers")
	timer := NewFeatureSet("tick-hz-32_768")
	if chip.OwnsRuntime(f) {
		executor = NewFeatureSet("executor-thread")
		timer = NewFeatureSet()
	}

	return []Entry{
		{Name: "embassy-executor", Features: executor, Group: GroupBaseline},
		{Name: "embassy-sync", Group: GroupBaseline},
		{Name: "embassy-futures", Group: GroupBaseline},
		{Name: "embassy-time", Features: timer, Group: GroupBaseline},
	}
}

func hal(c chip.Classified) Entry {
	switch f := c.Family.(type) {
	case chip.STM:
		return Entry{
			Name:     "embassy-stm32",
			Features: NewFeatureSet("memory-x", c.CanonicalName, "time-driver-any", "exti", "unstable-pac"),
			Group:    GroupHAL,
		}
	case chip.NRF:
		return Entry{
			Name:     "embassy-nrf",
			Features: NewFeatureSet(c.CanonicalName, "gpiote", "time-driver-rtc1"),
			Group:    GroupHAL,
		}
	case chip.ESP:
		return Entry{
			Name:     "esp-hal",
			Features: NewFeatureSet(f.Variant.String()),
			Group:    GroupHAL,
		}
	default:
		panic(fmt.Sprintf("manifest: unhandled family %T", c.Family))
	}
}

func radio(c chip.Classified, sd options.Softdevice) []Entry {
	return []Entry{
		{
			Name: "nrf-softdevice",
			Features: NewFeatureSet(
				c.CanonicalName,
				sd.String(),
				"ble-peripheral",
				"ble-gatt-server",
				"critical-section-impl",
			),
			Group: GroupRadio,
		},
		{Name: "nrf-softdevice-" + sd.String(), Group: GroupRadio},
	}
}

func runtime(f chip.Family, opts options.Generation) []Entry {
	switch f := f.(type) {
	case chip.ESP:
		variant := f.Variant.String()
		return []Entry{
			{Name: "embassy-time-driver", Group: GroupRuntime},
			{
				Name:     "esp-backtrace",
				Features: NewFeatureSet(variant, "exception-handler", "panic-handler", "println"),
				Group:    GroupRuntime,
			},
			{Name: "esp-hal-embassy", Features: NewFeatureSet(variant, "integrated-timers"), Group: GroupRuntime},
			{Name: "esp-println", Features: NewFeatureSet(variant, "log"), Group: GroupRuntime},
			{Name: "log", Group: GroupRuntime},
			{Name: "static_cell", Group: GroupRuntime},
		}
	case chip.STM, chip.NRF:
		cortexM := NewFeatureSet("inline-asm")
		if opts.Softdevice == nil {
			// The softdevice provides its own critical section.
			cortexM.Add("critical-section-single-core")
		}
		return []Entry{
			{Name: "cortex-m", Features: cortexM, Group: GroupRuntime},
			{Name: "cortex-m-rt", Group: GroupRuntime},
			{Name: "defmt", Optional: true, Group: GroupRuntime},
			{Name: "defmt-rtt", Optional: true, Group: GroupRuntime},
			{Name: "panic-probe", Features: NewFeatureSet("print-defmt"), Optional: true, Group: GroupRuntime},
			{Name: opts.PanicHandler.Crate(), Group: GroupRuntime},
		}
	default:
		panic(fmt.Sprintf("manifest: unhandled family %T", f))
	}
}

// Names returns the entry names in order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// PinnedCrates returns the entries that come from the embassy repository
// and can therefore be pinned to a git revision.
func PinnedCrates(entries []Entry) []string {
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name, "embassy-") {
			names = append(names, e.Name)
		}
	}
	return names
}
