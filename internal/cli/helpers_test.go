package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danieljhkim/embassy-init/internal/clock"
	"github.com/danieljhkim/embassy-init/internal/config"
	"github.com/danieljhkim/embassy-init/internal/engine"
	"github.com/danieljhkim/embassy-init/internal/fsops"
	"github.com/danieljhkim/embassy-init/internal/manifest"
	"github.com/danieljhkim/embassy-init/internal/templates"
)

// captureOutput redirects the color writers while fn runs.
func captureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	oldOut, oldErr, oldNoColor := color.Output, color.Error, color.NoColor
	var out, errOut bytes.Buffer
	color.Output = &out
	color.Error = &errOut
	color.NoColor = true
	defer func() {
		color.Output = oldOut
		color.Error = oldErr
		color.NoColor = oldNoColor
	}()

	fn()
	return out.String(), errOut.String()
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns its output and error.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var cobraOut bytes.Buffer
	rootCmd.SetOut(&cobraOut)
	rootCmd.SetErr(&cobraOut)
	rootCmd.SetArgs(args)

	stdout, stderr = captureOutput(t, func() {
		err = rootCmd.Execute()
	})
	return cobraOut.String() + stdout, stderr, err
}

// setupConfig points the config loader at a temp file holding content.
// An empty content means no config file.
func setupConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
	}
	t.Setenv("EMBASSY_INIT_CONFIG", path)
}

// dirCargo mimics cargo new/add on the real filesystem.
type dirCargo struct{}

func (dirCargo) New(ctx context.Context, parentDir, name string) error {
	root := filepath.Join(parentDir, name)
	if err := os.MkdirAll(filepath.Join(root, "src"), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte(fmt.Sprintf("[package]\nname = %q\n", name)), 0644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(root, "src", "main.rs"), []byte("fn main() {}\n"), 0644)
}

func (dirCargo) Add(ctx context.Context, dir string, entry manifest.Entry) error {
	f, err := os.OpenFile(filepath.Join(dir, "Cargo.toml"), os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	_, err = fmt.Fprintf(f, "%s = \"*\"\n", entry.Name)
	return err
}

// useFakeEngine swaps newEngine for one backed by dirCargo.
func useFakeEngine(t *testing.T) {
	t.Helper()
	old := newEngine
	newEngine = func(cfg *config.Config) (*engine.Engine, error) {
		catalog, err := newCatalog(cfg)
		if err != nil {
			return nil, err
		}
		clk := clock.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		return engine.New(fsops.NewRealFS(), dirCargo{}, catalog, templates.NewComposer(cfg.EmbassyGit), clk, nil), nil
	}
	t.Cleanup(func() { newEngine = old })
}
