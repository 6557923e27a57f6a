package cli

import (
	"fmt"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/app"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/usecase"
	"github.com/spf13/cobra"
)

// newPlanCommand creates the plan command.
func newPlanCommand(c *app.Container) *cobra.Command {
	var baseDir string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what the uninstaller would remove",
		Long: `Plan runs the existence checks without deleting anything.

The privilege gate still applies, since the checks probe the protected
install location.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.UninstallUseCase().Execute(cmd.Context(), usecase.UninstallInput{
				BaseDir: baseDir,
				DryRun:  true,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, r := range out.Results {
				_, _ = fmt.Fprintln(w, r.Line())
			}
			_, _ = fmt.Fprintln(w, "Dry run: no changes made.")
			return nil
		},
	}

	cmd.Flags().StringVar(&baseDir, "base-dir", "", "Override the local application data root")

	return cmd
}
