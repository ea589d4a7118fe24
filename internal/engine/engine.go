// Package engine generates embassy projects.
//
// The engine is the orchestration layer between CLI commands and the
// lower-level components. It classifies the chip, validates the options,
// composes the manifest, asks the planner for an ordered plan and executes
// that plan against the filesystem and the package manager.
//
// Key components:
//   - Engine: Main orchestrator, the API surface called by the CLI
//   - Init: The generation pipeline and its stage tracking
//   - Reporter: Progress callback for the executed operations
package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/embassy-init/internal/cargo"
	"github.com/danieljhkim/embassy-init/internal/clock"
	"github.com/danieljhkim/embassy-init/internal/fsops"
	"github.com/danieljhkim/embassy-init/internal/planner"
	"github.com/danieljhkim/embassy-init/internal/probe"
	"github.com/danieljhkim/embassy-init/internal/templates"
)

// Reporter receives progress as operations run.
type Reporter interface {
	// Step is called before op is executed.
	Step(op planner.Operation)

	// Finish is called once execution stops, whether or not it succeeded.
	Finish()
}

// NopReporter discards progress.
type NopReporter struct{}

func (NopReporter) Step(planner.Operation) {}
func (NopReporter) Finish()                {}

// Engine orchestrates project generation.
// It is the main API surface called by the CLI.
type Engine struct {
	fs       fsops.FS
	pkg      cargo.PackageManager
	catalog  probe.Catalog
	composer *templates.Composer
	clock    clock.Clock
	reporter Reporter
}

// New creates a new Engine with the given dependencies.
// A nil reporter discards progress.
func New(
	fs fsops.FS,
	pkg cargo.PackageManager,
	catalog probe.Catalog,
	composer *templates.Composer,
	clk clock.Clock,
	reporter Reporter,
) *Engine {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Engine{
		fs:       fs,
		pkg:      pkg,
		catalog:  catalog,
		composer: composer,
		clock:    clk,
		reporter: reporter,
	}
}

// executeOperation executes a single operation against the project at root.
func (e *Engine) executeOperation(ctx context.Context, plan *planner.Plan, root string, op planner.Operation) error {
	switch op.Type {
	case planner.OpCreateProject:
		return e.executeCreateProject(ctx, plan)
	case planner.OpEnterProject:
		return e.executeEnterProject(root)
	case planner.OpWriteFile:
		return e.executeWriteFile(root, op)
	case planner.OpAppendFile:
		return e.executeAppendFile(root, op)
	case planner.OpEnsureSection:
		return e.executeEnsureSection(root, op)
	case planner.OpAddDependency:
		return e.executeAddDependency(ctx, root, op)
	default:
		return fmt.Errorf("unknown operation type: %s", op.Type)
	}
}

// executeCreateProject has the package manager create the project skeleton.
func (e *Engine) executeCreateProject(ctx context.Context, plan *planner.Plan) error {
	if err := e.pkg.New(ctx, plan.Parent, plan.Project); err != nil {
		return fmt.Errorf("%w: %w", ErrProjectCreation, err)
	}
	return nil
}

// executeEnterProject checks the project root exists and is a directory.
// Every later operation is resolved against it.
func (e *Engine) executeEnterProject(root string) error {
	info, err := e.fs.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDirectoryChange, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDirectoryChange, root)
	}
	return nil
}

// executeWriteFile writes a rendered file, replacing any existing content.
func (e *Engine) executeWriteFile(root string, op planner.Operation) error {
	path, err := resolve(root, op.Path)
	if err != nil {
		return &FileError{Path: op.Path, Err: err}
	}
	if err := e.fs.WriteFile(path, op.Content, 0644); err != nil {
		return &FileError{Path: op.Path, Err: err}
	}
	return nil
}

// executeAppendFile appends rendered content to an existing file.
func (e *Engine) executeAppendFile(root string, op planner.Operation) error {
	path, err := resolve(root, op.Path)
	if err != nil {
		return &FileError{Path: op.Path, Err: err}
	}
	if err := e.fs.AppendFile(path, op.Content); err != nil {
		return &FileError{Path: op.Path, Err: err}
	}
	return nil
}

// executeEnsureSection appends the section header unless the file already has it.
func (e *Engine) executeEnsureSection(root string, op planner.Operation) error {
	path, err := resolve(root, op.Path)
	if err != nil {
		return &FileError{Path: op.Path, Err: err}
	}
	data, err := e.fs.ReadFile(path)
	if err != nil {
		return &FileError{Path: op.Path, Err: err}
	}
	if hasSection(string(data), op.Section) {
		return nil
	}
	if err := e.fs.AppendFile(path, op.Content); err != nil {
		return &FileError{Path: op.Path, Err: err}
	}
	return nil
}

// executeAddDependency has the package manager add one manifest entry.
func (e *Engine) executeAddDependency(ctx context.Context, root string, op planner.Operation) error {
	if err := e.pkg.Add(ctx, root, *op.Dependency); err != nil {
		return &DependencyError{Name: op.Dependency.Name, Err: err}
	}
	return nil
}

// resolve joins a plan-relative path onto root after validating it.
func resolve(root, rel string) (string, error) {
	if err := fsops.ValidateRelPath(rel); err != nil {
		return "", err
	}
	return filepath.Join(root, filepath.FromSlash(rel)), nil
}

// hasSection reports whether a TOML document has a line that is exactly header.
func hasSection(doc, header string) bool {
	for _, line := range strings.Split(doc, "\n") {
		if strings.TrimSpace(line) == header {
			return true
		}
	}
	return false
}
