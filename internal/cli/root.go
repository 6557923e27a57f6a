// Package cli provides the command-line interface for the uninstaller.
package cli

import (
	"fmt"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupUninstall = "uninstall"
	groupSetup     = "setup"
)

// NewRootCommand creates the root command for the uninstaller.
// It receives the container for dependency injection and version for display.
// Running the root command with no subcommand performs the uninstall.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts uninstallOptions

	root := &cobra.Command{
		Use:   "tiktok-sayer-uninstall",
		Short: "Remove the TikTok-Sayer GUI from this computer",
		Long: `tiktok-sayer-uninstall removes the TikTok-Sayer GUI launcher artifacts
installed under the per-user local application data root:

  <base>/Programs/Python/Python311/Scripts/tiktok-sayer-gui-script.pyw
  <base>/Programs/Python/Python311/Scripts/tiktok-sayer-gui.exe

Administrator privileges are required. Files already absent are reported
as not found and the run still succeeds, so the uninstaller is safe to
run more than once.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Ignore error (e.g. malformed optional config)
				return nil
			}

			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUninstall(cmd, c, opts)
		},
	}

	root.Flags().StringVar(&opts.baseDir, "base-dir", "", "Override the local application data root")
	root.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report what would be removed without deleting")
	root.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the press-enter prompts")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupUninstall, Title: "Uninstall Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	planCmd := newPlanCommand(c)
	planCmd.GroupID = groupUninstall

	pathsCmd := newPathsCommand(c)
	pathsCmd.GroupID = groupUninstall

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupUninstall

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		planCmd,
		pathsCmd,
		tuiCmd,
		configCmd,
	)

	return root
}
