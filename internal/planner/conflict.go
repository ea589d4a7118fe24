package planner

import (
	"fmt"

	"github.com/danieljhkim/embassy-init/internal/fsops"
)

// ConflictChecker checks for conflicts before a plan is executed.
type ConflictChecker struct {
	fs fsops.FS
}

// NewConflictChecker creates a new ConflictChecker.
func NewConflictChecker(fs fsops.FS) *ConflictChecker {
	return &ConflictChecker{fs: fs}
}

// CheckPath returns a Conflict if something already exists at path,
// or nil if the path is free.
func (c *ConflictChecker) CheckPath(path string) *Conflict {
	exists, err := c.fs.Exists(path)
	if err != nil {
		return &Conflict{
			Path:   path,
			Reason: fmt.Sprintf("failed to check path: %v", err),
		}
	}
	if !exists {
		return nil
	}

	kind := "file"
	if info, err := c.fs.Stat(path); err == nil && info.IsDir() {
		kind = "directory"
	}
	return &Conflict{
		Path:   path,
		Reason: fmt.Sprintf("destination %s already exists", kind),
	}
}

// Check records conflicts for plan against the filesystem. Only the project
// root needs checking: every other path lives beneath it.
func (c *ConflictChecker) Check(plan *Plan, root string) {
	if conflict := c.CheckPath(root); conflict != nil {
		plan.AddConflict(*conflict)
	}
}
