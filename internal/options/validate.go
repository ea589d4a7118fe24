package options

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/danieljhkim/embassy-init/internal/chip"
)

// ErrErroneousOptionCombination indicates options that cannot be combined with the chip.
var ErrErroneousOptionCombination = errors.New("erroneous option combination")

// Error describes which option was rejected and why.
type Error struct {
	Option string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrErroneousOptionCombination, e.Option, e.Reason)
}

func (e *Error) Is(target error) bool {
	return target == ErrErroneousOptionCombination
}

var (
	crateName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

	// gitRev accepts hashes, tags and branch names; it rejects anything that
	// would need quoting inside Cargo.toml.
	gitRev = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._/-]*$`)
)

// Validate checks opts against the classified chip. It has no side effects.
func Validate(c chip.Classified, opts Generation) error {
	if !crateName.MatchString(opts.ProjectName) {
		return &Error{Option: "name", Reason: fmt.Sprintf("%q is not a valid crate name", opts.ProjectName)}
	}

	if opts.Commit != "" && !gitRev.MatchString(opts.Commit) {
		return &Error{Option: "commit", Reason: fmt.Sprintf("%q is not a git revision", opts.Commit)}
	}

	if opts.Softdevice != nil && !chip.SupportsSoftdevice(c.Family) {
		return &Error{
			Option: "softdevice",
			Reason: fmt.Sprintf("softdevice %s is only available for nrf chips, not %s", *opts.Softdevice, c.Family),
		}
	}

	if chip.OwnsRuntime(c.Family) && opts.PanicHandler != DefaultPanicHandler {
		return &Error{
			Option: "panic-handler",
			Reason: fmt.Sprintf("%s chips use their own panic handler, %s cannot be selected", c.Family, opts.PanicHandler),
		}
	}

	return nil
}
