// internal/cli/create.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/arc-language/condakit"
)

var (
	createName   string
	createPrefix string
	createClone  string
)

var createCmd = &cobra.Command{
	Use:   "create <package>...",
	Short: "Create a new environment",
	Long: `Create a new environment from a list of package specs, or as a copy of an
existing environment with --clone. Refuses to overwrite an existing directory.`,
	Example: `  condakit create -n analysis python=3.12 numpy
  condakit create -p /opt/envs/tools git
  condakit create -n analysis-copy --clone analysis`,
	RunE: runCreate,
}

func init() {
	targetFlags(createCmd, &createName, &createPrefix)
	createCmd.Flags().StringVar(&createClone, "clone", "", "create the environment as a copy of this one")
	createCmd.MarkFlagsOneRequired("name", "prefix")
}

func runCreate(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	target := describeTarget(createName, createPrefix)

	if createClone != "" {
		result, err := client.CloneEnvironment(cmd.Context(), condakit.CloneEnvironmentOptions{
			Source: createClone,
			Name:   createName,
			Path:   createPrefix,
		})
		if err != nil {
			return &condakit.Error{Op: "clone", Env: target, Err: err}
		}
		printActionResult(cmd, "Cloned "+createClone+" to "+target, result)
		return nil
	}

	out, err := client.Create(cmd.Context(), condakit.CreateOptions{
		Name:     createName,
		Path:     createPrefix,
		Packages: args,
	})
	if err != nil {
		return &condakit.Error{Op: "create", Env: target, Err: err}
	}
	return writeOutput(cmd, out)
}
