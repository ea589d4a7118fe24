// Package chip classifies microcontroller identifiers.
//
// Resolution is a pure lookup against a static, ordered table:
//   - the identifier is normalized (lower case, '-' unified to '_')
//   - identifiers known to be ambiguous are rejected outright
//   - the prefix table is scanned first-match-wins
//   - only families with a package suffix may contain a separator
//   - families needing a literal linker layout consult an exact-match memory table
package chip

import (
	"fmt"
	"strings"
)

// Classified is the immutable result of resolving a chip identifier.
type Classified struct {
	Family       Family
	Architecture Architecture

	// Memory is set exactly when RequiresMemoryLayout(Family) is true.
	Memory *MemoryProfile

	// CanonicalName is the identifier used as a HAL feature token.
	CanonicalName string

	// Raw is the normalized identifier that was resolved.
	Raw string
}

// Normalize lower-cases the identifier and unifies '-' separators to '_'.
func Normalize(raw string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_")
}

// Resolve classifies a normalized chip identifier.
func Resolve(id string) (Classified, error) {
	if ambiguous[id] {
		return Classified{}, fmt.Errorf("%w: %q exists in several memory variants, add the package suffix (e.g. %s_xxaa)", ErrAmbiguousChip, id, id)
	}

	entry, ok := match(id)
	if !ok {
		return Classified{}, fmt.Errorf("%w: %q", ErrUnknownChip, id)
	}
	// Only nRF names carry a separated package suffix; elsewhere the name is
	// the HAL feature token as-is.
	if !StripsPackageSuffix(entry.Family) && strings.Contains(id, "_") {
		return Classified{}, fmt.Errorf("%w: %q must not contain '-' or '_'", ErrUnknownChip, id)
	}

	c := Classified{
		Family:        entry.Family,
		Architecture:  entry.Architecture,
		CanonicalName: canonicalName(entry.Family, id),
		Raw:           id,
	}

	if RequiresMemoryLayout(entry.Family) {
		mem, ok := lookupMemory(id)
		if !ok {
			return Classified{}, fmt.Errorf("%w: %q has no known memory layout", ErrUnknownChip, id)
		}
		c.Memory = &mem
	}

	return c, nil
}

func match(id string) (Entry, bool) {
	for _, e := range table {
		if strings.HasPrefix(id, e.Prefix) {
			return e, true
		}
	}
	return Entry{}, false
}

func canonicalName(f Family, id string) string {
	if !StripsPackageSuffix(f) {
		return id
	}
	name, _, _ := strings.Cut(id, "_")
	return name
}
