package planner

import (
	"fmt"

	"github.com/danieljhkim/embassy-init/internal/chip"
	"github.com/danieljhkim/embassy-init/internal/manifest"
	"github.com/danieljhkim/embassy-init/internal/options"
	"github.com/danieljhkim/embassy-init/internal/templates"
)

// Project-relative paths of the generated files.
const (
	PathCargoConfig = ".cargo/config.toml"
	PathToolchain   = "rust-toolchain.toml"
	PathEmbed       = "Embed.toml"
	PathBuildScript = "build.rs"
	PathLaunch      = ".vscode/launch.json"
	PathManifest    = "Cargo.toml"
	PathFmt         = "src/fmt.rs"
	PathMain        = "src/main.rs"
	PathMemory      = "memory.x"

	featuresSection = "[features]"
)

// Input is everything Build needs to lay out a project.
type Input struct {
	// Parent is the directory the project is created in.
	Parent string

	Chip    chip.Classified
	Options options.Generation

	// Entries is the composed manifest, in the order dependencies are added.
	Entries []manifest.Entry

	// ProbeName is the probe catalog's spelling of the chip.
	ProbeName string
}

// Build renders every file and returns the ordered plan.
// It does not touch the filesystem.
func Build(in Input, tc *templates.Composer) (*Plan, error) {
	b := &builder{in: in, tc: tc, plan: NewPlan(in.Parent, in.Options.ProjectName)}

	b.created()
	b.configured()
	b.manifestWritten()
	b.sourceWritten()
	b.memoryLayoutWritten()

	if b.err != nil {
		return nil, b.err
	}
	return b.plan, nil
}

// builder accumulates operations and remembers the first render error.
type builder struct {
	in   Input
	tc   *templates.Composer
	plan *Plan
	err  error
}

func (b *builder) add(op Operation) {
	b.plan.AddOperation(op)
}

// render appends op with content produced by fn, unless an earlier render failed.
func (b *builder) render(op Operation, fn func() ([]byte, error)) {
	if b.err != nil {
		return
	}
	content, err := fn()
	if err != nil {
		b.err = fmt.Errorf("failed to render %s: %w", op.Path, err)
		return
	}
	op.Content = content
	b.add(op)
}

func (b *builder) write(stage Stage, path string, fn func() ([]byte, error)) {
	b.render(Operation{Type: OpWriteFile, Stage: stage, Path: path}, fn)
}

func (b *builder) created() {
	name := b.in.Options.ProjectName
	b.add(Operation{Type: OpCreateProject, Stage: StageCreated, Path: name})
	b.add(Operation{Type: OpEnterProject, Stage: StageCreated, Path: name})
}

func (b *builder) configured() {
	ch := b.in.Chip
	probe := b.in.ProbeName

	b.write(StageConfigured, PathCargoConfig, func() ([]byte, error) { return b.tc.CargoConfig(ch, probe) })
	b.write(StageConfigured, PathToolchain, func() ([]byte, error) { return b.tc.Toolchain(ch) })
	if !chip.OwnsRuntime(ch.Family) {
		b.write(StageConfigured, PathEmbed, func() ([]byte, error) { return b.tc.Embed(probe) })
	}
	b.write(StageConfigured, PathBuildScript, func() ([]byte, error) { return b.tc.BuildScript(ch.Family) })
	if b.in.Options.VSCode {
		b.write(StageConfigured, PathLaunch, func() ([]byte, error) {
			return b.tc.LaunchConfig(ch, probe, b.in.Options.ProjectName)
		})
	}
}

func (b *builder) manifestWritten() {
	ch := b.in.Chip
	opts := b.in.Options

	b.write(StageManifestWritten, PathManifest, func() ([]byte, error) { return b.tc.Manifest(opts.ProjectName) })

	for i := range b.in.Entries {
		entry := b.in.Entries[i]
		b.add(Operation{Type: OpAddDependency, Stage: StageManifestWritten, Dependency: &entry})
	}

	if !chip.OwnsRuntime(ch.Family) {
		b.render(Operation{
			Type:    OpEnsureSection,
			Stage:   StageManifestWritten,
			Path:    PathManifest,
			Section: featuresSection,
		}, b.tc.FeaturesHeader)
		b.render(Operation{Type: OpAppendFile, Stage: StageManifestWritten, Path: PathManifest}, func() ([]byte, error) {
			return b.tc.Features(ch.Family, opts.Softdevice)
		})
	}

	if opts.Commit != "" {
		b.render(Operation{Type: OpAppendFile, Stage: StageManifestWritten, Path: PathManifest}, func() ([]byte, error) {
			return b.tc.Patch(opts.Commit, manifest.PinnedCrates(b.in.Entries))
		})
	}
}

func (b *builder) sourceWritten() {
	ch := b.in.Chip
	opts := b.in.Options

	if !chip.OwnsRuntime(ch.Family) {
		b.write(StageSourceWritten, PathFmt, b.tc.FmtShim)
	}
	b.write(StageSourceWritten, PathMain, func() ([]byte, error) {
		return b.tc.Main(ch.Family, opts.PanicHandler, opts.Softdevice)
	})
}

func (b *builder) memoryLayoutWritten() {
	m := b.in.Chip.Memory
	if m == nil {
		return
	}
	b.write(StageMemoryLayoutWritten, PathMemory, func() ([]byte, error) { return b.tc.MemoryLayout(*m) })
}
