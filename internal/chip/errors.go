package chip

import "errors"

var (
	// ErrUnknownChip indicates the identifier matched no table entry, or matched
	// a family that needs a memory layout with no layout on record.
	ErrUnknownChip = errors.New("unknown chip")

	// ErrAmbiguousChip indicates the identifier names several memory/package variants.
	ErrAmbiguousChip = errors.New("ambiguous chip")
)
