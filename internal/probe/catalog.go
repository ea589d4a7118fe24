// Package probe maps chip identifiers to the names a debug probe tool knows them by.
//
// The catalog is a YAML registry of target families. An embedded copy covers
// every chip the classifier supports; users can layer extra registries on top
// through the config file.
package probe

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed targets.yaml
var defaultTargets []byte

// ErrNotFound indicates no catalog target matches the chip.
var ErrNotFound = errors.New("chip not found in probe catalog")

// Catalog looks up the probe-recognized name of a chip.
type Catalog interface {
	// Lookup returns the canonical probe target name for chip.
	Lookup(chip string) (string, error)
}

// Family groups targets the way the probe registry does.
type Family struct {
	Name    string   `yaml:"name"`
	Targets []string `yaml:"targets"`
}

// Registry is the on-disk catalog format.
type Registry struct {
	Families []Family `yaml:"families"`
}

// YAMLCatalog implements Catalog over one or more registries.
// Registries added earlier take precedence.
type YAMLCatalog struct {
	targets []string
}

// Load parses a registry from r.
func Load(r io.Reader) (*Registry, error) {
	var reg Registry
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&reg); err != nil {
		if errors.Is(err, io.EOF) {
			return &reg, nil
		}
		return nil, fmt.Errorf("failed to parse probe catalog: %w", err)
	}
	return &reg, nil
}

// LoadFile parses a registry from path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open probe catalog: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Load(f)
}

// DefaultRegistry returns the embedded registry.
func DefaultRegistry() *Registry {
	var reg Registry
	if err := yaml.Unmarshal(defaultTargets, &reg); err != nil {
		panic(fmt.Sprintf("probe: embedded catalog is invalid: %v", err))
	}
	return &reg
}

// NewCatalog builds a catalog from registries in precedence order.
func NewCatalog(regs ...*Registry) *YAMLCatalog {
	c := &YAMLCatalog{}
	for _, reg := range regs {
		if reg == nil {
			continue
		}
		for _, fam := range reg.Families {
			c.targets = append(c.targets, fam.Targets...)
		}
	}
	return c
}

// Default returns a catalog over the embedded registry only.
func Default() *YAMLCatalog {
	return NewCatalog(DefaultRegistry())
}

// Targets returns every target name in precedence order.
func (c *YAMLCatalog) Targets() []string {
	out := make([]string, len(c.targets))
	copy(out, c.targets)
	return out
}

// Lookup returns the catalog spelling of chip.
//
// Matching is case-insensitive with '-' and '_' treated alike, and an 'x' in a
// target name stands for any single character (the registry writes
// STM32F401RETx for every temperature grade). An exact match wins; otherwise
// the longest target that is a prefix of chip (chip carries a package suffix
// the registry omits); otherwise the first target that starts with chip (the
// registry carries a suffix chip omits).
func (c *YAMLCatalog) Lookup(chip string) (string, error) {
	query := fold(chip)
	if query == "" {
		return "", fmt.Errorf("%w: empty chip name", ErrNotFound)
	}

	for _, t := range c.targets {
		if ft := fold(t); len(ft) == len(query) && wildcardPrefix(ft, query) {
			return t, nil
		}
	}

	best := ""
	for _, t := range c.targets {
		if wildcardPrefix(fold(t), query) && len(t) > len(best) {
			best = t
		}
	}
	if best != "" {
		return best, nil
	}

	for _, t := range c.targets {
		if ft := fold(t); len(query) <= len(ft) && wildcardPrefix(ft[:len(query)], query) {
			return t, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrNotFound, chip)
}

// wildcardPrefix reports whether target is a prefix of s, where each 'x' in
// target matches any character.
func wildcardPrefix(target, s string) bool {
	if len(target) > len(s) {
		return false
	}
	for i := 0; i < len(target); i++ {
		if target[i] != 'x' && target[i] != s[i] {
			return false
		}
	}
	return true
}

func fold(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}
