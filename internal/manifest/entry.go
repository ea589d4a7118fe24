package manifest

import "strings"

// Group names the composing rule an entry came from.
type Group string

const (
	GroupBaseline Group = "baseline"
	GroupHAL      Group = "hal"
	GroupRadio    Group = "radio"
	GroupRuntime  Group = "runtime"
)

// FeatureSet is an insertion-ordered set of feature tokens.
type FeatureSet struct {
	items []string
}

// NewFeatureSet returns a set holding tokens in order, skipping duplicates and empties.
func NewFeatureSet(tokens ...string) FeatureSet {
	var fs FeatureSet
	fs.Add(tokens...)
	return fs
}

// Add appends tokens that are not already present.
func (fs *FeatureSet) Add(tokens ...string) {
	for _, t := range tokens {
		if t == "" || fs.Contains(t) {
			continue
		}
		fs.items = append(fs.items, t)
	}
}

// Contains reports whether token is in the set.
func (fs FeatureSet) Contains(token string) bool {
	for _, t := range fs.items {
		if t == token {
			return true
		}
	}
	return false
}

// Len returns the number of tokens.
func (fs FeatureSet) Len() int {
	return len(fs.items)
}

// Slice returns a copy of the tokens in insertion order.
func (fs FeatureSet) Slice() []string {
	out := make([]string, len(fs.items))
	copy(out, fs.items)
	return out
}

// String joins the tokens with commas, as cargo expects.
func (fs FeatureSet) String() string {
	return strings.Join(fs.items, ",")
}

// Entry is one dependency to add to the generated manifest.
type Entry struct {
	Name     string
	Features FeatureSet
	Optional bool
	Group    Group
}
