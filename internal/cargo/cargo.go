// Package cargo drives the Rust package manager that creates the project and
// adds its dependencies.
package cargo

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/embassy-init/internal/manifest"
)

// PackageManager creates projects and adds dependencies to them.
type PackageManager interface {
	// New creates a binary project named name inside parentDir.
	New(ctx context.Context, parentDir, name string) error

	// Add adds one dependency to the project rooted at dir.
	Add(ctx context.Context, dir string, entry manifest.Entry) error
}

// Runner is the production PackageManager. It executes the cargo binary.
type Runner struct {
	// Command is the argv prefix used to invoke cargo, e.g. ["cargo"] or
	// ["cargo", "+nightly"].
	Command []string

	// Env is appended to the current environment.
	Env []string
}

// NewRunner returns a Runner for the given command. An empty command means "cargo".
func NewRunner(command []string) *Runner {
	if len(command) == 0 {
		command = []string{"cargo"}
	}
	return &Runner{Command: command}
}

// New runs `cargo new <name>` in parentDir.
func (r *Runner) New(ctx context.Context, parentDir, name string) error {
	if _, err := r.run(ctx, parentDir, NewArgs(name)...); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Join(parentDir, name), err)
	}
	return nil
}

// Add runs `cargo add` for entry in dir.
func (r *Runner) Add(ctx context.Context, dir string, entry manifest.Entry) error {
	if _, err := r.run(ctx, dir, AddArgs(entry)...); err != nil {
		return fmt.Errorf("failed to add %s: %w", entry.Name, err)
	}
	return nil
}

// NewArgs returns the cargo arguments that create project name.
func NewArgs(name string) []string {
	return []string{"new", name}
}

// AddArgs returns the cargo arguments that add entry.
func AddArgs(entry manifest.Entry) []string {
	args := []string{"add", entry.Name}
	if entry.Features.Len() > 0 {
		args = append(args, "--features="+entry.Features.String())
	}
	if entry.Optional {
		args = append(args, "--optional")
	}
	return args
}

// run executes cargo with args in dir. A non-zero exit status is an error.
func (r *Runner) run(ctx context.Context, dir string, args ...string) (string, error) {
	argv := append(append([]string{}, r.Command[1:]...), args...)
	cmd := exec.CommandContext(ctx, r.Command[0], argv...)
	cmd.Dir = dir
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("cargo command failed: %w\nstderr: %s", err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}
