// internal/cli/envs.go
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var envsCmd = &cobra.Command{
	Use:   "envs",
	Short: "List known environments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		envs, err := client.Envs(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing environments: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, prefix := range envs {
			name := filepath.Base(prefix)
			if prefix == client.RootPrefix() {
				name = "base"
			}
			fmt.Fprintf(out, "%-24s %s\n", name, prefix)
		}
		return nil
	},
}
