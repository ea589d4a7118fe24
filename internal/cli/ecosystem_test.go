package cli

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/danieljhkim/embassy-init/internal/chip"
	"github.com/danieljhkim/embassy-init/internal/feature"
)

func TestChipsCommand_List(t *testing.T) {
	stdout, _, err := execute(t, "chips")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	wba := strings.Index(stdout, "stm32wba")
	wb := strings.Index(stdout, "stm32wb ")
	if wba < 0 || wb < 0 || wba > wb {
		t.Errorf("stm32wba should be listed before stm32wb:\n%s", stdout)
	}
}

func TestChipsCommand_ListJSON(t *testing.T) {
	setupConfig(t, "")
	stdout, _, err := execute(t, "chips", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var entries []chipEntryJSON
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(entries) != len(chip.Entries()) {
		t.Errorf("got %d entries, want %d", len(entries), len(chip.Entries()))
	}
}

func TestChipsCommand_Show(t *testing.T) {
	setupConfig(t, "")
	stdout, _, err := execute(t, "chips", "nRF52840-xxAA", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var out chipJSON
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Chip != "nrf52840" || out.Probe != "nRF52840_xxAA" {
		t.Errorf("chip = %+v", out)
	}
	if out.Memory == nil || out.Memory.FlashLength != 1024 || out.Memory.RAMOrigin != 0x20000000 {
		t.Errorf("memory = %+v", out.Memory)
	}

	stdout, _, err = execute(t, "chips", "esp32c3")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "riscv32imc-unknown-none-elf") || strings.Contains(stdout, "Flash") {
		t.Errorf("unexpected esp32c3 output:\n%s", stdout)
	}

	if _, _, err := execute(t, "chips", "nrf52832"); !errors.Is(err, chip.ErrAmbiguousChip) {
		t.Errorf("error = %v, want ErrAmbiguousChip", err)
	}
}

func TestFeatureCommand_List(t *testing.T) {
	stdout, _, err := execute(t, "feature", "list")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "embassy-usb") || !strings.Contains(stdout, "FAMILIES") {
		t.Errorf("unexpected feature list:\n%s", stdout)
	}

	stdout, _, err = execute(t, "feature", "list", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var features []feature.Feature
	if err := json.Unmarshal([]byte(stdout), &features); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(features) != len(feature.List()) {
		t.Errorf("got %d features, want %d", len(features), len(feature.List()))
	}
}

func TestFeatureCommand_Add(t *testing.T) {
	if _, _, err := execute(t, "feature", "add", "usb"); !errors.Is(err, feature.ErrNotImplemented) {
		t.Errorf("error = %v, want ErrNotImplemented", err)
	}
}

func TestDocsCommand(t *testing.T) {
	var opened []string
	old := openURL
	openURL = func(url string) error {
		opened = append(opened, url)
		return nil
	}
	defer func() { openURL = old }()

	setupConfig(t, "")
	if _, _, err := execute(t, "docs"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	setupConfig(t, "docs_url: https://example.com/book\n")
	if _, _, err := execute(t, "docs"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := []string{"https://embassy.dev/book/index.html", "https://example.com/book"}
	if strings.Join(opened, " ") != strings.Join(want, " ") {
		t.Errorf("opened = %v, want %v", opened, want)
	}
}

func TestDocsCommand_OpenFails(t *testing.T) {
	old := openURL
	openURL = func(string) error { return errors.New("no browser") }
	defer func() { openURL = old }()

	setupConfig(t, "")
	if _, _, err := execute(t, "docs"); err == nil || !strings.Contains(err.Error(), "no browser") {
		t.Errorf("error = %v", err)
	}
}
