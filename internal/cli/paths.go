package cli

import (
	"fmt"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/app"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/usecase"
	"github.com/spf13/cobra"
)

// newPathsCommand creates the paths command.
func newPathsCommand(c *app.Container) *cobra.Command {
	var baseDir string

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the resolved uninstall target paths",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ResolveTargetsUseCase().Execute(cmd.Context(), usecase.ResolveTargetsInput{
				BaseDir: baseDir,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Base directory: %s (%s)\n", out.BaseDir, out.Source)
			for _, t := range out.Targets {
				_, _ = fmt.Fprintf(w, "  %s\n", t.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseDir, "base-dir", "", "Override the local application data root")

	return cmd
}
