// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "condakit version %s\n", Version)

		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		v, err := client.Version(cmd.Context())
		if err != nil {
			return fmt.Errorf("querying conda version: %w", err)
		}
		fmt.Fprintf(out, "%s version %s\n", client.Executable(), v)
		return nil
	},
}
