package cli

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

// openURL opens a page in the user's browser. Tests replace it.
var openURL = browser.OpenURL

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Open the Embassy documentation in your web browser",
	Long: `Open the Embassy book in your web browser.

The page can be changed with docs_url in the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if err := openURL(cfg.DocsURL); err != nil {
			return fmt.Errorf("failed to open %s: %w", cfg.DocsURL, err)
		}
		PrintSuccess(fmt.Sprintf("Opened %s", cfg.DocsURL))
		return nil
	},
}
