package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/embassy-init/internal/chip"
	"github.com/danieljhkim/embassy-init/internal/feature"
	"github.com/danieljhkim/embassy-init/internal/probe"
)

var chipsCmd = &cobra.Command{
	Use:   "chips [chip]",
	Short: "List supported chips or show how one is classified",
	Long: `Without arguments, list the chip prefixes embassy-init recognizes in the
order they are matched. With a chip identifier, show its classification:
family, target triple, memory layout and probe name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return showChip(args[0])
		}
		return listChips()
	},
}

type chipEntryJSON struct {
	Prefix       string `json:"prefix"`
	Family       string `json:"family"`
	Architecture string `json:"architecture"`
	Target       string `json:"target"`
}

func listChips() error {
	entries := chip.Entries()

	if jsonOutput {
		out := make([]chipEntryJSON, 0, len(entries))
		for _, e := range entries {
			out = append(out, chipEntryJSON{
				Prefix:       e.Prefix,
				Family:       e.Family.String(),
				Architecture: e.Architecture.String(),
				Target:       e.Architecture.Triple(),
			})
		}
		return outputJSON(out)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Prefix, e.Family.String(), e.Architecture.Triple()})
	}
	PrintTable([]string{"PREFIX", "FAMILY", "TARGET"}, rows)
	return nil
}

type memoryJSON struct {
	FlashOrigin uint `json:"flash_origin"`
	FlashLength uint `json:"flash_length_kib"`
	RAMOrigin   uint `json:"ram_origin"`
	RAMLength   uint `json:"ram_length_kib"`
}

type chipJSON struct {
	Chip     string      `json:"chip"`
	Family   string      `json:"family"`
	Target   string      `json:"target"`
	Probe    string      `json:"probe,omitempty"`
	Memory   *memoryJSON `json:"memory,omitempty"`
	Features []string    `json:"features"`
}

func showChip(raw string) error {
	c, err := chip.Resolve(chip.Normalize(raw))
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, err := newCatalog(cfg)
	if err != nil {
		return err
	}
	probeName, err := catalog.Lookup(c.Raw)
	if err != nil && !errors.Is(err, probe.ErrNotFound) {
		return err
	}

	var features []string
	for _, ft := range feature.ForFamily(c.Family) {
		features = append(features, ft.Name)
	}

	if jsonOutput {
		out := chipJSON{
			Chip:     c.CanonicalName,
			Family:   c.Family.String(),
			Target:   c.Architecture.Triple(),
			Probe:    probeName,
			Features: features,
		}
		if c.Memory != nil {
			out.Memory = &memoryJSON{
				FlashOrigin: c.Memory.FlashOrigin,
				FlashLength: c.Memory.FlashLength,
				RAMOrigin:   c.Memory.RAMOrigin,
				RAMLength:   c.Memory.RAMLength,
			}
		}
		return outputJSON(out)
	}

	PrintSection(c.CanonicalName)
	PrintLabelValue("Family", c.Family.String())
	PrintLabelValue("Target", c.Architecture.Triple())
	if probeName != "" {
		PrintLabelValue("Probe", probeName)
	} else {
		PrintLabelValue("Probe", "not in catalog")
	}
	if m := c.Memory; m != nil {
		PrintLabelValue("Flash", fmt.Sprintf("0x%08x, %dK", m.FlashOrigin, m.FlashLength))
		PrintLabelValue("RAM", fmt.Sprintf("0x%08x, %dK", m.RAMOrigin, m.RAMLength))
	}
	if len(features) > 0 {
		PrintSubsection("Features:")
		PrintList(features, 2)
	}
	return nil
}
