package feature

import (
	"errors"
	"sort"
	"testing"

	"github.com/danieljhkim/embassy-init/internal/chip"
)

func TestList(t *testing.T) {
	features := List()
	if len(features) == 0 {
		t.Fatal("List() returned no features")
	}
	if !sort.SliceIsSorted(features, func(i, j int) bool { return features[i].Name < features[j].Name }) {
		t.Error("List() should be sorted by name")
	}

	known := make(map[string]bool)
	for _, f := range chip.Families() {
		known[f.String()] = true
	}
	for _, ft := range features {
		if ft.Crate == "" || ft.Description == "" {
			t.Errorf("%s: missing crate or description", ft.Name)
		}
		for _, fam := range ft.Families {
			if !known[fam] {
				t.Errorf("%s: unknown family %q", ft.Name, fam)
			}
		}
	}
}

func TestForFamily(t *testing.T) {
	tests := []struct {
		family  chip.Family
		want    string
		notWant string
	}{
		{chip.NRF{}, "ble", "wifi"},
		{chip.ESP{Variant: chip.C3}, "wifi", "ble"},
		{chip.STM{}, "lora", "wifi"},
	}

	for _, tt := range tests {
		t.Run(tt.family.String(), func(t *testing.T) {
			names := make(map[string]bool)
			for _, ft := range ForFamily(tt.family) {
				names[ft.Name] = true
			}
			if !names[tt.want] {
				t.Errorf("ForFamily() missing %q", tt.want)
			}
			if names[tt.notWant] {
				t.Errorf("ForFamily() should not include %q", tt.notWant)
			}
		})
	}
}

func TestAdd_NotImplemented(t *testing.T) {
	if err := Add("usb"); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Add() error = %v, want ErrNotImplemented", err)
	}
}
