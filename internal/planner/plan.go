package planner

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/embassy-init/internal/cargo"
	"github.com/danieljhkim/embassy-init/internal/manifest"
)

// Stage is a point in the generation pipeline.
type Stage int

const (
	// StageNone means nothing has been created yet.
	StageNone Stage = iota
	StageCreated
	StageConfigured
	StageManifestWritten
	StageSourceWritten
	// StageMemoryLayoutWritten only occurs for chips with a memory profile.
	StageMemoryLayoutWritten
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageNone:
		return "none"
	case StageCreated:
		return "created"
	case StageConfigured:
		return "configured"
	case StageManifestWritten:
		return "manifest-written"
	case StageSourceWritten:
		return "source-written"
	case StageMemoryLayoutWritten:
		return "memory-layout-written"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Plan represents a plan to generate a project.
type Plan struct {
	// Project is the project name, which is also its directory name.
	Project string

	// Parent is the directory the project is created in.
	Parent string

	// Operations is the ordered list of operations to execute
	Operations []Operation

	// Conflicts is a list of detected conflicts (empty if no conflicts)
	Conflicts []Conflict
}

// Operation represents a single step of the generation pipeline.
type Operation struct {
	// Type is one of the Op* constants.
	Type string

	// Stage is the pipeline stage this operation belongs to.
	Stage Stage

	// Path is relative to the project root. For OpCreateProject and
	// OpEnterProject it is the project directory relative to Plan.Parent.
	// Empty for OpAddDependency.
	Path string

	// Content is the rendered file content for write, append and ensure operations.
	Content []byte

	// Section is the table header ensured by OpEnsureSection, e.g. "[features]".
	Section string

	// Dependency is set for OpAddDependency.
	Dependency *manifest.Entry
}

// Conflict represents a conflict detected during planning.
type Conflict struct {
	// Path is the path where the conflict was detected
	Path string

	// Reason is a human-readable explanation of the conflict
	Reason string
}

// Operation type constants
const (
	OpCreateProject = "create_project"
	OpEnterProject  = "enter_project"
	OpWriteFile     = "write_file"
	OpAppendFile    = "append_file"
	OpEnsureSection = "ensure_section"
	OpAddDependency = "add_dependency"
)

// NewPlan creates a new empty Plan.
func NewPlan(parent, project string) *Plan {
	return &Plan{
		Project:    project,
		Parent:     parent,
		Operations: []Operation{},
		Conflicts:  []Conflict{},
	}
}

// HasConflicts returns true if the plan has any conflicts.
func (p *Plan) HasConflicts() bool {
	return len(p.Conflicts) > 0
}

// AddOperation adds an operation to the plan.
func (p *Plan) AddOperation(op Operation) {
	p.Operations = append(p.Operations, op)
}

// AddConflict adds a conflict to the plan.
func (p *Plan) AddConflict(conflict Conflict) {
	p.Conflicts = append(p.Conflicts, conflict)
}

// Stages returns the distinct stages of the plan in execution order.
func (p *Plan) Stages() []Stage {
	var stages []Stage
	for _, op := range p.Operations {
		if len(stages) == 0 || stages[len(stages)-1] != op.Stage {
			stages = append(stages, op.Stage)
		}
	}
	return stages
}

// Paths returns the project-relative paths written by the plan, in order and
// without duplicates.
func (p *Plan) Paths() []string {
	seen := make(map[string]bool)
	var paths []string
	for _, op := range p.Operations {
		if op.Type == OpCreateProject || op.Type == OpEnterProject || op.Path == "" || seen[op.Path] {
			continue
		}
		seen[op.Path] = true
		paths = append(paths, op.Path)
	}
	return paths
}

// String describes the operation the way a user would run it by hand.
func (op Operation) String() string {
	switch op.Type {
	case OpCreateProject:
		return "cargo " + strings.Join(cargo.NewArgs(op.Path), " ")
	case OpEnterProject:
		return "cd " + op.Path
	case OpWriteFile:
		return "write " + op.Path
	case OpAppendFile:
		return "append to " + op.Path
	case OpEnsureSection:
		return fmt.Sprintf("ensure %s in %s", op.Section, op.Path)
	case OpAddDependency:
		return "cargo " + strings.Join(cargo.AddArgs(*op.Dependency), " ")
	default:
		return op.Type
	}
}
