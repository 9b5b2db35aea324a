// internal/cli/update.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/arc-language/condakit"
)

var (
	updateName   string
	updatePrefix string
	updateAll    bool
	updateFlags  condakit.InstallFlags
)

var updateCmd = &cobra.Command{
	Use:   "update [package]...",
	Short: "Update packages in an environment",
	Example: `  condakit update -n analysis numpy
  condakit update -p /opt/envs/tools --all --dry-run`,
	RunE: runUpdate,
}

func init() {
	targetFlags(updateCmd, &updateName, &updatePrefix)
	updateCmd.Flags().BoolVar(&updateAll, "all", false, "update all installed packages")
	solverFlags(updateCmd, &updateFlags)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	target := describeTarget(updateName, updatePrefix)

	result, err := client.Update(cmd.Context(), condakit.UpdateOptions{
		Name:     updateName,
		Path:     updatePrefix,
		Packages: args,
		All:      updateAll,
		Flags:    updateFlags,
	})
	if err != nil {
		return &condakit.Error{Op: "update", Env: target, Err: err}
	}
	printActionResult(cmd, "Updated "+target, result)
	return nil
}
