package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/shlex"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultCargo is the package manager command.
	DefaultCargo = "cargo"

	// DefaultDocsURL is the page opened by the docs command.
	DefaultDocsURL = "https://embassy.dev/book/index.html"

	// DefaultPanicHandler is the panic handler used when --panic-handler is not given.
	DefaultPanicHandler = "halt"
)

// Config holds user defaults loaded from the config file.
type Config struct {
	// Cargo is the package manager command line, e.g. "cargo +nightly".
	Cargo string `yaml:"cargo"`

	// DocsURL is opened by the docs command.
	DocsURL string `yaml:"docs_url"`

	// PanicHandler is the default panic handler ("halt" or "reset").
	PanicHandler string `yaml:"panic_handler"`

	// VSCode emits a debug launch configuration by default.
	VSCode bool `yaml:"vscode"`

	// EmbassyGit is the repository used when pinning with --commit.
	EmbassyGit string `yaml:"embassy_git"`

	// ProbeCatalog is an extra probe catalog consulted before the built-in one.
	ProbeCatalog string `yaml:"probe_catalog"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Cargo:        DefaultCargo,
		DocsURL:      DefaultDocsURL,
		PanicHandler: DefaultPanicHandler,
	}
}

// Parse reads YAML from r on top of the defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Cargo == "" {
		cfg.Cargo = DefaultCargo
	}
	if cfg.DocsURL == "" {
		cfg.DocsURL = DefaultDocsURL
	}
	if cfg.PanicHandler == "" {
		cfg.PanicHandler = DefaultPanicHandler
	}
	return cfg, nil
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// CargoCommand splits the configured cargo command line into argv.
func (c *Config) CargoCommand() ([]string, error) {
	argv, err := shlex.Split(c.Cargo)
	if err != nil {
		return nil, fmt.Errorf("invalid cargo command %q: %w", c.Cargo, err)
	}
	if len(argv) == 0 {
		return []string{DefaultCargo}, nil
	}
	return argv, nil
}
