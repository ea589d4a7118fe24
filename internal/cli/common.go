package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/danieljhkim/embassy-init/internal/cargo"
	"github.com/danieljhkim/embassy-init/internal/clock"
	"github.com/danieljhkim/embassy-init/internal/config"
	"github.com/danieljhkim/embassy-init/internal/engine"
	"github.com/danieljhkim/embassy-init/internal/fsops"
	"github.com/danieljhkim/embassy-init/internal/probe"
	"github.com/danieljhkim/embassy-init/internal/templates"
)

// loadConfig reads the user config from its default location.
func loadConfig() (*config.Config, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}
	return config.Load(paths.Config)
}

// newCatalog builds the probe catalog, layering the configured catalog file
// over the built-in registry.
func newCatalog(cfg *config.Config) (*probe.YAMLCatalog, error) {
	if cfg.ProbeCatalog == "" {
		return probe.Default(), nil
	}
	extra, err := probe.LoadFile(cfg.ProbeCatalog)
	if err != nil {
		return nil, err
	}
	return probe.NewCatalog(extra, probe.DefaultRegistry()), nil
}

// newEngine creates a new engine with real implementations of all dependencies.
// It is a variable so tests can substitute fakes.
var newEngine = func(cfg *config.Config) (*engine.Engine, error) {
	argv, err := cfg.CargoCommand()
	if err != nil {
		return nil, err
	}

	catalog, err := newCatalog(cfg)
	if err != nil {
		return nil, err
	}

	fs := fsops.NewRealFS()
	pkg := cargo.NewRunner(argv)
	composer := templates.NewComposer(cfg.EmbassyGit)
	clk := &clock.RealClock{}
	reporter := newStatusReporter(color.Output, stdoutIsTerminal())

	return engine.New(fs, pkg, catalog, composer, clk, reporter), nil
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(color.Output)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
