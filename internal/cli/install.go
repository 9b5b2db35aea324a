// internal/cli/install.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/arc-language/condakit"
)

var (
	installName   string
	installPrefix string
	installNoDeps bool
)

var installCmd = &cobra.Command{
	Use:   "install <package>...",
	Short: "Install packages into an environment",
	Long: `Install one or more packages into an environment. Without --name or
--prefix the active environment is used.`,
	Example: `  condakit install requests
  condakit install -n analysis scipy=1.13
  condakit install -p /opt/envs/tools --no-deps ripgrep`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func init() {
	targetFlags(installCmd, &installName, &installPrefix)
	installCmd.Flags().BoolVar(&installNoDeps, "no-deps", false, "do not install dependencies")
}

func runInstall(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	out, err := client.Install(cmd.Context(), condakit.InstallOptions{
		Name:     installName,
		Path:     installPrefix,
		Packages: args,
		NoDeps:   installNoDeps,
	})
	if err != nil {
		return &condakit.Error{Op: "install", Env: describeTarget(installName, installPrefix), Err: err}
	}
	return writeOutput(cmd, out)
}
