// internal/cli/share.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/condakit"
)

var cloneTarget string

var shareCmd = &cobra.Command{
	Use:   "share <prefix>",
	Short: "Bundle an environment for sharing",
	Long: `Write a bundle of the environment at <prefix> to a temporary location and
print its path. The bundle is not removed afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		result, err := client.Share(cmd.Context(), args[0])
		if err != nil {
			return &condakit.Error{Op: "share", Env: args[0], Err: err}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, result.Path)
		for _, w := range result.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
		}
		return nil
	},
}

var cloneCmd = &cobra.Command{
	Use:   "clone <bundle>",
	Short: "Recreate an environment from a bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		result, err := client.Clone(cmd.Context(), args[0], cloneTarget)
		if err != nil {
			return &condakit.Error{Op: "clone", Env: cloneTarget, Err: err}
		}
		printActionResult(cmd, "Cloned bundle into "+cloneTarget, result)
		return nil
	},
}

func init() {
	cloneCmd.Flags().StringVarP(&cloneTarget, "prefix", "p", "", "prefix of the new environment")
	cloneCmd.MarkFlagRequired("prefix")
}
