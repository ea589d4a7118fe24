package engine

import (
	"time"

	"github.com/danieljhkim/embassy-init/internal/chip"
	"github.com/danieljhkim/embassy-init/internal/options"
	"github.com/danieljhkim/embassy-init/internal/planner"
)

// InitRequest represents a request to generate a new project.
type InitRequest struct {
	// CWD is the directory the project directory is created in.
	CWD string

	// Chip is the raw chip identifier as typed by the user.
	Chip string

	Options options.Generation

	// DryRun performs planning only without making changes
	DryRun bool
}

// InitResult represents the outcome of a generation run.
type InitResult struct {
	// Chip is the classification the project was generated for.
	Chip chip.Classified

	// ProbeName is the probe catalog's spelling of the chip.
	ProbeName string

	// Root is the absolute project directory.
	Root string

	// Plan is the generated plan
	Plan *planner.Plan

	// Applied is the list of operations that were executed (empty if DryRun)
	Applied []planner.Operation

	// Stage is the last pipeline stage completed. StageDone on success.
	Stage planner.Stage

	// Notices are follow-up actions the user has to take by hand.
	Notices []string

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}
