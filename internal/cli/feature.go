package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/embassy-init/internal/feature"
)

var featureCmd = &cobra.Command{
	Use:   "feature",
	Short: "Tools related to features in the Embassy ecosystem",
}

var featureListCmd = &cobra.Command{
	Use:   "list",
	Short: "View a list of the available features",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		features := feature.List()

		if jsonOutput {
			return outputJSON(features)
		}

		if len(features) == 0 {
			PrintEmptyState("No features available")
			return nil
		}

		rows := make([][]string, 0, len(features))
		for _, ft := range features {
			rows = append(rows, []string{ft.Name, ft.Crate, strings.Join(ft.Families, ", "), ft.Description})
		}
		PrintTable([]string{"NAME", "CRATE", "FAMILIES", "DESCRIPTION"}, rows)
		return nil
	},
}

var featureAddCmd = &cobra.Command{
	Use:   "add <feature>",
	Short: "Add a feature to your project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return feature.Add(args[0])
	},
}

func init() {
	featureCmd.AddCommand(featureListCmd)
	featureCmd.AddCommand(featureAddCmd)
}
