// Package integration runs the generation pipeline end to end on the real
// filesystem, with a scripted stand-in for cargo.
package integration

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/danieljhkim/embassy-init/internal/cargo"
	"github.com/danieljhkim/embassy-init/internal/clock"
	"github.com/danieljhkim/embassy-init/internal/config"
	"github.com/danieljhkim/embassy-init/internal/engine"
	"github.com/danieljhkim/embassy-init/internal/fsops"
	"github.com/danieljhkim/embassy-init/internal/probe"
	"github.com/danieljhkim/embassy-init/internal/templates"
)

// fakeCargoScript creates projects and appends dependencies the way cargo
// would, closely enough for the pipeline. FAKE_CARGO_FAIL names a crate whose
// add fails with cargo's exit status.
const fakeCargoScript = `#!/bin/sh
case "$1" in
new)
	mkdir -p "$2/src" || exit 1
	printf '[package]\nname = "%s"\nversion = "0.1.0"\nedition = "2021"\n\n[dependencies]\n' "$2" > "$2/Cargo.toml"
	printf 'fn main() {}\n' > "$2/src/main.rs"
	;;
add)
	name="$2"
	shift 2
	if [ "$name" = "$FAKE_CARGO_FAIL" ]; then
		echo "error: the crate $name could not be found in registry index." >&2
		exit 101
	fi
	echo "$name = \"*\" # $*" >> Cargo.toml
	;;
*)
	echo "error: no such command: $1" >&2
	exit 101
	;;
esac
`

// testEnv holds a workspace directory and an engine wired to real components.
type testEnv struct {
	Dir    string
	Config *config.Config
	Clock  *clock.FakeClock
	Engine *engine.Engine
}

// setupTestEnv writes the fake cargo script and builds an engine the way the
// CLI does, from a config file.
func setupTestEnv(t *testing.T, extraConfig string) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("the fake cargo is a POSIX shell script")
	}

	tmp := t.TempDir()
	script := filepath.Join(tmp, "bin", "fake cargo.sh")
	if err := os.MkdirAll(filepath.Dir(script), 0755); err != nil {
		t.Fatalf("failed to create bin dir: %v", err)
	}
	if err := os.WriteFile(script, []byte(fakeCargoScript), 0755); err != nil {
		t.Fatalf("failed to write fake cargo: %v", err)
	}

	// The path contains a space, so the command line must be quoted.
	cfgPath := filepath.Join(tmp, "config.yaml")
	cfgBody := "cargo: sh '" + script + "'\n" + extraConfig
	if err := os.WriteFile(cfgPath, []byte(cfgBody), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	argv, err := cfg.CargoCommand()
	if err != nil {
		t.Fatalf("CargoCommand() error = %v", err)
	}

	work := filepath.Join(tmp, "work")
	if err := os.MkdirAll(work, 0755); err != nil {
		t.Fatalf("failed to create work dir: %v", err)
	}

	clk := clock.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	eng := engine.New(
		fsops.NewRealFS(),
		cargo.NewRunner(argv),
		probe.Default(),
		templates.NewComposer(cfg.EmbassyGit),
		clk,
		nil,
	)

	return &testEnv{Dir: work, Config: cfg, Clock: clk, Engine: eng}
}

// readFile reads a file relative to the project root.
func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(data)
}

// exists reports whether a path relative to root exists.
func exists(root, rel string) bool {
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil
}

// writeFile creates path and its parents with content.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
