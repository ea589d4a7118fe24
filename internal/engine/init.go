package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/embassy-init/internal/chip"
	"github.com/danieljhkim/embassy-init/internal/clock"
	"github.com/danieljhkim/embassy-init/internal/manifest"
	"github.com/danieljhkim/embassy-init/internal/options"
	"github.com/danieljhkim/embassy-init/internal/planner"
	"github.com/danieljhkim/embassy-init/internal/probe"
)

// Init generates a project.
//
// Algorithm steps:
// 1. Normalize and classify the chip identifier
// 2. Validate the options against the classification
// 3. Look up the probe name of the chip
// 4. Compose the manifest and build the plan
// 5. Check the project root is free
// 6. Execute the plan (if not DryRun), failing fast
// 7. Return the result with the last stage reached
//
// Steps 1 to 5 never touch the filesystem beyond read-only checks, so a
// rejected request leaves no files behind. A failure during step 6 leaves
// whatever was already written in place.
func (e *Engine) Init(ctx context.Context, req *InitRequest) (*InitResult, error) {
	sw := clock.Start(e.clock)

	c, err := chip.Resolve(chip.Normalize(req.Chip))
	if err != nil {
		return nil, err
	}

	if err := options.Validate(c, req.Options); err != nil {
		return nil, err
	}

	probeName, err := e.catalog.Lookup(c.Raw)
	if err != nil {
		if errors.Is(err, probe.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q is not known to the probe catalog", chip.ErrUnknownChip, c.Raw)
		}
		return nil, fmt.Errorf("failed to look up probe target: %w", err)
	}

	entries := manifest.Compose(c, req.Options)
	plan, err := planner.Build(planner.Input{
		Parent:    req.CWD,
		Chip:      c,
		Options:   req.Options,
		Entries:   entries,
		ProbeName: probeName,
	}, e.composer)
	if err != nil {
		return nil, fmt.Errorf("failed to build plan: %w", err)
	}

	root := filepath.Join(req.CWD, req.Options.ProjectName)
	result := &InitResult{
		Chip:      c,
		ProbeName: probeName,
		Root:      root,
		Plan:      plan,
		Applied:   []planner.Operation{},
		Stage:     planner.StageNone,
		Notices:   notices(c, req.Options, probeName),
	}

	planner.NewConflictChecker(e.fs).Check(plan, root)
	if plan.HasConflicts() {
		result.Elapsed = sw.Elapsed()
		return result, fmt.Errorf("%w: %s: %s", ErrProjectCreation, plan.Conflicts[0].Path, plan.Conflicts[0].Reason)
	}

	if req.DryRun {
		result.Elapsed = sw.Elapsed()
		return result, nil
	}

	defer e.reporter.Finish()

	ops := plan.Operations
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			result.Elapsed = sw.Elapsed()
			return result, err
		}

		e.reporter.Step(op)
		if err := e.executeOperation(ctx, plan, root, op); err != nil {
			result.Elapsed = sw.Elapsed()
			return result, err
		}
		result.Applied = append(result.Applied, op)

		// A stage is reached once its last operation has run.
		if i == len(ops)-1 || ops[i+1].Stage != op.Stage {
			result.Stage = op.Stage
		}
	}

	result.Stage = planner.StageDone
	result.Elapsed = sw.Elapsed()
	return result, nil
}

// notices lists the manual follow-up steps for a generated project.
func notices(c chip.Classified, opts options.Generation, probeName string) []string {
	var out []string
	if opts.Softdevice != nil {
		sd := *opts.Softdevice
		out = append(out, fmt.Sprintf(
			"The %s softdevice must be flashed before the firmware: download it from Nordic and run "+
				"`probe-rs download --verify --binary-format hex --chip %s %s_<version>_softdevice.hex`",
			sd, probeName, sd))
	}
	if chip.OwnsRuntime(c.Family) {
		out = append(out, fmt.Sprintf(
			"%s projects use esp-backtrace as their panic handler; the --panic-handler option does not apply",
			c.Family))
	}
	return out
}
