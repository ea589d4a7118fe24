package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/embassy-init/internal/chip"
	"github.com/danieljhkim/embassy-init/internal/config"
	"github.com/danieljhkim/embassy-init/internal/engine"
	"github.com/danieljhkim/embassy-init/internal/options"
	"github.com/danieljhkim/embassy-init/internal/planner"
)

var (
	initChip         string
	initPanicHandler string
	initSoftdevice   string
	initCommit       string
	initVSCode       bool
	initDryRun       bool
	initDirectory    string
)

var initCmd = &cobra.Command{
	Use:   "init <name> --chip <chip>",
	Short: "Create a new Embassy project",
	Long: `Create a new Embassy project named <name> in the current directory.

The chip identifier selects the HAL, target triple, linker layout and probe
configuration. Identifiers are case-insensitive and '-' may be used for '_'.

Examples:
  embassy-init init blinky --chip stm32f401re
  embassy-init init ble --chip nrf52840 --softdevice s140
  embassy-init init wifi --chip esp32c3 --vscode`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initChip, "chip", "c", "", "Target microcontroller, e.g. nrf52840 or stm32f103c8")
	initCmd.Flags().StringVar(&initPanicHandler, "panic-handler", config.DefaultPanicHandler, "Panic handler for release builds (halt or reset)")
	initCmd.Flags().StringVar(&initSoftdevice, "softdevice", "", "Nordic softdevice to build against (s112, s113, s122, s132, s140)")
	initCmd.Flags().StringVar(&initCommit, "commit", "", "Pin the embassy crates to this git revision")
	initCmd.Flags().BoolVar(&initVSCode, "vscode", false, "Generate a probe-rs debug launch configuration")
	initCmd.Flags().BoolVar(&initDryRun, "dry-run", false, "Show what would be generated without writing anything")
	initCmd.Flags().StringVarP(&initDirectory, "directory", "C", "", "Create the project in this directory instead of the current one")
	_ = initCmd.MarkFlagRequired("chip")
}

// initOptions merges flags over the config file. A flag only wins when it was
// given explicitly.
func initOptions(cmd *cobra.Command, name string, cfg *config.Config) (options.Generation, error) {
	opts := options.Generation{
		ProjectName: name,
		Commit:      initCommit,
		VSCode:      cfg.VSCode,
	}

	handler := cfg.PanicHandler
	if cmd.Flags().Changed("panic-handler") {
		handler = initPanicHandler
	}
	ph, err := options.ParsePanicHandler(handler)
	if err != nil {
		return opts, err
	}
	opts.PanicHandler = ph

	if cmd.Flags().Changed("vscode") {
		opts.VSCode = initVSCode
	}

	if initSoftdevice != "" {
		sd, err := options.ParseSoftdevice(initSoftdevice)
		if err != nil {
			return opts, err
		}
		opts.Softdevice = &sd
	}

	return opts, nil
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts, err := initOptions(cmd, args[0], cfg)
	if err != nil {
		return err
	}

	cwd := initDirectory
	if cwd == "" {
		cwd, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	result, err := eng.Init(context.Background(), &engine.InitRequest{
		CWD:     cwd,
		Chip:    initChip,
		Options: opts,
		DryRun:  initDryRun,
	})
	if err != nil {
		if result != nil && result.Plan != nil && result.Plan.HasConflicts() {
			PrintSection("Conflicts Detected")
			for _, conflict := range result.Plan.Conflicts {
				PrintError(fmt.Sprintf("%s: %s", conflict.Path, conflict.Reason))
			}
			_, _ = fmt.Fprintln(color.Error)
		} else if result != nil && result.Stage != planner.StageNone {
			PrintWarning(fmt.Sprintf("Stopped after stage %q; files written so far were left in %s", result.Stage, result.Root))
		}
		return err
	}

	if initDryRun {
		return printPlan(result)
	}

	PrintSuccess(fmt.Sprintf("Created %s for %s", opts.ProjectName, describeChip(result.Chip, result.ProbeName)))
	for _, notice := range result.Notices {
		PrintWarning(notice)
	}
	PrintInfo(fmt.Sprintf("Finished in %.2fs", result.Elapsed.Seconds()))
	return nil
}

func describeChip(c chip.Classified, probeName string) string {
	return fmt.Sprintf("%s (%s, %s)", probeName, c.Family, c.Architecture.Triple())
}

type planOperationJSON struct {
	Stage       string `json:"stage"`
	Type        string `json:"type"`
	Path        string `json:"path,omitempty"`
	Description string `json:"description"`
}

type planJSON struct {
	Project    string              `json:"project"`
	Root       string              `json:"root"`
	Chip       string              `json:"chip"`
	Family     string              `json:"family"`
	Target     string              `json:"target"`
	Probe      string              `json:"probe"`
	Operations []planOperationJSON `json:"operations"`
	Notices    []string            `json:"notices,omitempty"`
}

func printPlan(result *engine.InitResult) error {
	plan := result.Plan

	if jsonOutput {
		out := planJSON{
			Project:    plan.Project,
			Root:       result.Root,
			Chip:       result.Chip.CanonicalName,
			Family:     result.Chip.Family.String(),
			Target:     result.Chip.Architecture.Triple(),
			Probe:      result.ProbeName,
			Operations: make([]planOperationJSON, 0, len(plan.Operations)),
			Notices:    result.Notices,
		}
		for _, op := range plan.Operations {
			out.Operations = append(out.Operations, planOperationJSON{
				Stage:       op.Stage.String(),
				Type:        op.Type,
				Path:        op.Path,
				Description: op.String(),
			})
		}
		return outputJSON(out)
	}

	PrintSection("Dry Run")
	PrintLabelValue("Project", result.Root)
	PrintLabelValue("Chip", describeChip(result.Chip, result.ProbeName))
	PrintInfo(fmt.Sprintf("\nWould run %s", PrintCount(len(plan.Operations), "operation", "operations")))

	for _, stage := range plan.Stages() {
		PrintSubsection(stage.String() + ":")
		var ops []string
		for _, op := range plan.Operations {
			if op.Stage == stage {
				ops = append(ops, op.String())
			}
		}
		PrintList(ops, 2)
	}

	if len(result.Notices) > 0 {
		PrintInfo("")
		for _, notice := range result.Notices {
			PrintWarning(notice)
		}
	}
	return nil
}
