package cli

import (
	"fmt"
	"io"

	"github.com/danieljhkim/embassy-init/internal/planner"
)

// statusReporter prints pipeline progress. On a terminal the current step is
// redrawn in place; otherwise every step gets its own line.
type statusReporter struct {
	w     io.Writer
	tty   bool
	drawn bool
}

func newStatusReporter(w io.Writer, tty bool) *statusReporter {
	return &statusReporter{w: w, tty: tty}
}

// Step implements engine.Reporter.
func (r *statusReporter) Step(op planner.Operation) {
	line := fmt.Sprintf("  %-22s %s", op.Stage, op)
	if r.tty {
		_, _ = fmt.Fprintf(r.w, "\r\033[K%s", dimColor.Sprint(line))
		r.drawn = true
		return
	}
	_, _ = fmt.Fprintln(r.w, dimColor.Sprint(line))
}

// Finish implements engine.Reporter. It removes the in-place status line.
func (r *statusReporter) Finish() {
	if r.tty && r.drawn {
		_, _ = fmt.Fprint(r.w, "\r\033[K")
		r.drawn = false
	}
}
