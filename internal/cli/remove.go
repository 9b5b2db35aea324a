// internal/cli/remove.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/arc-language/condakit"
)

var (
	removeName     string
	removePrefix   string
	removeAll      bool
	removeFeatures bool
	removeFlags    condakit.InstallFlags
)

var removeCmd = &cobra.Command{
	Use:     "remove [package]...",
	Aliases: []string{"uninstall"},
	Short:   "Remove packages or a whole environment",
	Example: `  condakit remove -n analysis scipy
  condakit remove -n analysis --all`,
	RunE: runRemove,
}

func init() {
	targetFlags(removeCmd, &removeName, &removePrefix)
	removeCmd.Flags().BoolVar(&removeAll, "all", false, "remove the entire environment")
	removeCmd.Flags().BoolVar(&removeFeatures, "features", false, "remove features instead of packages")
	solverFlags(removeCmd, &removeFlags)
}

func runRemove(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	target := describeTarget(removeName, removePrefix)

	var result *condakit.ActionResult
	if removeAll && len(args) == 0 && !removeFeatures && isZeroFlags(removeFlags) {
		result, err = client.RemoveEnvironment(cmd.Context(), removeName, removePrefix)
	} else {
		result, err = client.Remove(cmd.Context(), condakit.RemoveOptions{
			Name:     removeName,
			Path:     removePrefix,
			Packages: args,
			All:      removeAll,
			Features: removeFeatures,
			Flags:    removeFlags,
		})
	}
	if err != nil {
		return &condakit.Error{Op: "remove", Env: target, Err: err}
	}
	printActionResult(cmd, "Removed from "+target, result)
	return nil
}

func isZeroFlags(f condakit.InstallFlags) bool {
	return !f.DryRun && !f.NoDeps && !f.OverrideChannels && !f.NoPin && !f.Force &&
		!f.UseIndexCache && !f.UseLocal && !f.AltHint && !f.Unknown && !f.NoDefaultPackages &&
		len(f.Channels) == 0
}
