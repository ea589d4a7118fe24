// Package templates renders the files of a generated project.
//
// Each generated file has one or more variants under files/; the Composer
// picks the variant for the chip family and options and fills in the
// substitution parameters.
package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/danieljhkim/embassy-init/internal/chip"
	"github.com/danieljhkim/embassy-init/internal/options"
)

//go:embed files
var files embed.FS

var funcs = template.FuncMap{
	"hex": func(v uint) string { return fmt.Sprintf("0x%08x", v) },
}

var parsed = template.Must(template.New("").Funcs(funcs).ParseFS(files, "files/*.tmpl"))

// DefaultGit is the repository the embassy crates are pinned to with --commit.
const DefaultGit = "https://github.com/embassy-rs/embassy"

// Composer renders project files.
type Composer struct {
	// Git is the repository used for [patch.crates-io] overrides.
	Git string
}

// NewComposer returns a Composer pinning to the given embassy repository.
// An empty git falls back to DefaultGit.
func NewComposer(git string) *Composer {
	if git == "" {
		git = DefaultGit
	}
	return &Composer{Git: git}
}

func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := parsed.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// CargoConfig renders .cargo/config.toml. probeName is the probe-rs chip name.
func (c *Composer) CargoConfig(ch chip.Classified, probeName string) ([]byte, error) {
	switch f := ch.Family.(type) {
	case chip.ESP:
		rustflags := `rustflags = ["-C", "link-arg=-nostartfiles"]`
		if f.Variant == chip.C3 {
			rustflags = `rustflags = ["-C", "force-frame-pointers"]`
		}
		return render("config.toml.esp.tmpl", map[string]string{
			"Target":    ch.Architecture.Triple(),
			"RustFlags": rustflags,
		})
	case chip.STM, chip.NRF:
		return render("config.toml.tmpl", map[string]string{
			"Target": ch.Architecture.Triple(),
			"Chip":   probeName,
		})
	default:
		panic(fmt.Sprintf("templates: unhandled family %T", f))
	}
}

// Toolchain renders rust-toolchain.toml.
func (c *Composer) Toolchain(ch chip.Classified) ([]byte, error) {
	if chip.OwnsRuntime(ch.Family) {
		return render("rust-toolchain.toml.esp.tmpl", nil)
	}
	return render("rust-toolchain.toml.tmpl", map[string]string{"Target": ch.Architecture.Triple()})
}

// Embed renders Embed.toml for probe-rs.
func (c *Composer) Embed(probeName string) ([]byte, error) {
	return render("Embed.toml.tmpl", map[string]string{"Chip": probeName})
}

// BuildScript renders build.rs.
func (c *Composer) BuildScript(f chip.Family) ([]byte, error) {
	switch f.(type) {
	case chip.STM:
		return render("build.rs.stm.tmpl", nil)
	case chip.NRF:
		return render("build.rs.nrf.tmpl", nil)
	case chip.ESP:
		return render("build.rs.esp.tmpl", nil)
	default:
		panic(fmt.Sprintf("templates: unhandled family %T", f))
	}
}

// Manifest renders the initial Cargo.toml before any dependency is added.
func (c *Composer) Manifest(name string) ([]byte, error) {
	return render("Cargo.toml.tmpl", map[string]string{"Name": name})
}

// FeaturesHeader is the [features] table header appended when cargo did not create one.
func (c *Composer) FeaturesHeader() ([]byte, error) {
	return render("Cargo.toml.features.tmpl", nil)
}

// Features renders the feature list appended under [features].
func (c *Composer) Features(f chip.Family, sd *options.Softdevice) ([]byte, error) {
	if sd != nil {
		return render("Cargo.toml.sd.append.tmpl", nil)
	}
	return render("Cargo.toml.append.tmpl", map[string]string{"Family": f.String()})
}

// Patch renders a [patch.crates-io] table pinning crates to rev.
func (c *Composer) Patch(rev string, crates []string) ([]byte, error) {
	return render("Cargo.toml.patch.tmpl", map[string]any{
		"Git":    c.Git,
		"Rev":    rev,
		"Crates": crates,
	})
}

// FmtShim returns src/fmt.rs.
func (c *Composer) FmtShim() ([]byte, error) {
	return files.ReadFile("files/fmt.rs")
}

// Main renders src/main.rs for the family, panic handler and softdevice choice.
func (c *Composer) Main(f chip.Family, ph options.PanicHandler, sd *options.Softdevice) ([]byte, error) {
	data := map[string]string{"PanicHandler": ph.Module()}

	switch f.(type) {
	case chip.STM:
		return render("main.rs.stm.tmpl", data)
	case chip.NRF:
		if sd != nil {
			return render("main.rs.nrf.sd.tmpl", data)
		}
		return render("main.rs.nrf.tmpl", data)
	case chip.ESP:
		return render("main.rs.esp.tmpl", nil)
	default:
		panic(fmt.Sprintf("templates: unhandled family %T", f))
	}
}

// MemoryLayout renders memory.x.
func (c *Composer) MemoryLayout(m chip.MemoryProfile) ([]byte, error) {
	return render("memory.x.tmpl", m)
}

// LaunchConfig renders .vscode/launch.json for the probe-rs debugger.
func (c *Composer) LaunchConfig(ch chip.Classified, probeName, project string) ([]byte, error) {
	raw, err := files.ReadFile("files/launch.json")
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse launch.json template: %w", err)
	}

	configs, ok := doc["configurations"].([]any)
	if !ok || len(configs) == 0 {
		return nil, fmt.Errorf("launch.json template has no configurations")
	}
	cfg, ok := configs[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("launch.json template configuration is not an object")
	}
	cfg["chip"] = probeName

	cores, ok := cfg["coreConfigs"].([]any)
	if !ok || len(cores) == 0 {
		return nil, fmt.Errorf("launch.json template has no core configs")
	}
	core, ok := cores[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("launch.json template core config is not an object")
	}
	core["programBinary"] = fmt.Sprintf("target/%s/debug/%s", ch.Architecture.Triple(), project)

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
