// Package feature lists optional ecosystem features and the chip families
// they support.
package feature

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/embassy-init/internal/chip"
)

//go:embed features.yaml
var defaultFeatures []byte

// ErrNotImplemented is returned by operations that are planned but not built.
var ErrNotImplemented = errors.New("not implemented")

// Feature is an optional crate a project can add.
type Feature struct {
	Name        string   `yaml:"name" json:"name"`
	Crate       string   `yaml:"crate" json:"crate"`
	Description string   `yaml:"description" json:"description"`
	Families    []string `yaml:"families" json:"families"`
}

type catalog struct {
	Features []Feature `yaml:"features"`
}

// List returns every known feature sorted by name.
func List() []Feature {
	var c catalog
	if err := yaml.Unmarshal(defaultFeatures, &c); err != nil {
		panic(fmt.Sprintf("feature: embedded catalog is invalid: %v", err))
	}
	sort.Slice(c.Features, func(i, j int) bool {
		return c.Features[i].Name < c.Features[j].Name
	})
	return c.Features
}

// Supports reports whether the feature works on family f.
func (ft Feature) Supports(f chip.Family) bool {
	for _, name := range ft.Families {
		if strings.EqualFold(name, f.String()) {
			return true
		}
	}
	return false
}

// ForFamily returns the features that work on family f.
func ForFamily(f chip.Family) []Feature {
	var out []Feature
	for _, ft := range List() {
		if ft.Supports(f) {
			out = append(out, ft)
		}
	}
	return out
}

// Add adds a feature to an existing project.
func Add(name string) error {
	return fmt.Errorf("feature add %s: %w", name, ErrNotImplemented)
}
