package cli

import (
	"errors"
	"fmt"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/app"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/usecase"
	"github.com/spf13/cobra"
)

// uninstallOptions holds the root command flags.
type uninstallOptions struct {
	baseDir string
	dryRun  bool
	yes     bool
}

// exitPrompt is the blocking acknowledgment shown before the process ends.
const exitPrompt = "Press Enter to exit..."

// runUninstall executes the console uninstall flow: privilege gate,
// per-target removal, completion message, acknowledgment prompt.
func runUninstall(cmd *cobra.Command, c *app.Container, opts uninstallOptions) error {
	w := cmd.OutOrStdout()

	skipPause := opts.yes
	if cfg, err := c.ConfigLoader.Load(); err == nil && cfg.AssumeYes {
		skipPause = true
	}

	out, err := c.UninstallUseCase().Execute(cmd.Context(), usecase.UninstallInput{
		BaseDir: opts.baseDir,
		DryRun:  opts.dryRun,
	})
	if err != nil {
		if errors.Is(err, domain.ErrElevationRequired) {
			_, _ = fmt.Fprintln(w, "Administrator privileges are required to uninstall TikTok-Sayer.")
			_, _ = fmt.Fprintln(w, `Right-click the uninstaller and select "Run as administrator", then try again.`)
			if !skipPause {
				if ackErr := c.Acknowledger.Acknowledge(exitPrompt); ackErr != nil {
					return ackErr
				}
			}
		}
		return err
	}

	c.Logger.Debug("resolved base directory", "dir", out.BaseDir)

	_, _ = fmt.Fprintln(w, "Uninstalling TikTok-Sayer...")
	for _, r := range out.Results {
		_, _ = fmt.Fprintln(w, r.Line())
	}

	if opts.dryRun {
		_, _ = fmt.Fprintln(w, "Dry run: no changes made.")
	} else {
		_, _ = fmt.Fprintln(w, "TikTok-Sayer has been removed from this computer.")
	}
	c.Logger.Info("uninstall finished", "removed", out.Removed(), "dry_run", opts.dryRun)

	if !skipPause {
		if err := c.Acknowledger.Acknowledge(exitPrompt); err != nil {
			return err
		}
	}
	return nil
}
