package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/danieljhkim/embassy-init/internal/clock"
	"github.com/danieljhkim/embassy-init/internal/fsops"
	"github.com/danieljhkim/embassy-init/internal/manifest"
	"github.com/danieljhkim/embassy-init/internal/planner"
	"github.com/danieljhkim/embassy-init/internal/probe"
	"github.com/danieljhkim/embassy-init/internal/templates"
)

// fakeCargo mimics cargo new/add against a MemFS.
type fakeCargo struct {
	fs *fsops.MemFS

	// withFeatures makes optional adds create a [features] table, as newer
	// cargo releases do.
	withFeatures bool

	failNew error
	failAdd map[string]error

	created []string
	added   []string
}

func newFakeCargo(fs *fsops.MemFS) *fakeCargo {
	return &fakeCargo{fs: fs, failAdd: make(map[string]error)}
}

func (c *fakeCargo) New(ctx context.Context, parentDir, name string) error {
	if c.failNew != nil {
		return c.failNew
	}
	root := filepath.Join(parentDir, name)
	if ok, _ := c.fs.Exists(root); ok {
		return fmt.Errorf("destination `%s` already exists", root)
	}
	manifestBody := fmt.Sprintf("[package]\nname = %q\n\n[dependencies]\n", name)
	if err := c.fs.WriteFile(filepath.Join(root, "Cargo.toml"), []byte(manifestBody), 0644); err != nil {
		return err
	}
	if err := c.fs.WriteFile(filepath.Join(root, "src", "main.rs"), []byte("fn main() {}\n"), 0644); err != nil {
		return err
	}
	c.created = append(c.created, root)
	return nil
}

func (c *fakeCargo) Add(ctx context.Context, dir string, entry manifest.Entry) error {
	if err := c.failAdd[entry.Name]; err != nil {
		return err
	}
	path := filepath.Join(dir, "Cargo.toml")
	line := fmt.Sprintf("%s = { features = [%s] }\n", entry.Name, entry.Features.String())
	if err := c.fs.AppendFile(path, []byte(line)); err != nil {
		return err
	}
	if entry.Optional && c.withFeatures {
		data, err := c.fs.ReadFile(path)
		if err != nil {
			return err
		}
		if !strings.Contains(string(data), "[features]") {
			if err := c.fs.AppendFile(path, []byte("\n[features]\n")); err != nil {
				return err
			}
		}
	}
	c.added = append(c.added, entry.Name)
	return nil
}

// recordingReporter remembers every step it was shown.
type recordingReporter struct {
	steps    []planner.Operation
	finished int
}

func (r *recordingReporter) Step(op planner.Operation) {
	r.steps = append(r.steps, op)
}

func (r *recordingReporter) Finish() {
	r.finished++
}

// failingCatalog returns err for every lookup.
type failingCatalog struct {
	err error
}

func (c failingCatalog) Lookup(string) (string, error) {
	return "", c.err
}

var errBoom = errors.New("boom")

type testEnv struct {
	fs       *fsops.MemFS
	cargo    *fakeCargo
	clock    *clock.FakeClock
	reporter *recordingReporter
	engine   *Engine
}

func newTestEnv() *testEnv {
	fs := fsops.NewMemFS()
	_ = fs.MkdirAll("/work", 0755)

	env := &testEnv{
		fs:       fs,
		cargo:    newFakeCargo(fs),
		clock:    clock.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		reporter: &recordingReporter{},
	}
	env.engine = New(fs, env.cargo, probe.Default(), templates.NewComposer(""), env.clock, env.reporter)
	return env
}

// advancingReporter moves the clock forward on every step.
type advancingReporter struct {
	clock *clock.FakeClock
	step  time.Duration
}

func (r advancingReporter) Step(planner.Operation) {
	r.clock.Advance(r.step)
}

func (r advancingReporter) Finish() {}
