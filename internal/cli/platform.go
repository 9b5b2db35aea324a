// internal/cli/platform.go
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/arc-language/condakit/pkg/platform"
)

var platformCmd = &cobra.Command{
	Use:     "platform",
	Aliases: []string{"frontends"},
	Short:   "Show the platform and the conda frontends available on it",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plat, err := platform.Detect()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Platform: %s\n\n", plat)
		fmt.Fprintln(out, "Frontends:")
		for _, name := range platform.Frontends {
			status := "✗"
			if slices.Contains(plat.Available, name) {
				status = "✓"
			}
			marker := ""
			if name == plat.Preferred {
				marker = " (preferred)"
			}
			fmt.Fprintf(out, "  %s %s%s\n", status, name, marker)
		}
		return nil
	},
}
