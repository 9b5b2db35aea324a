// internal/cli/info.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [package]",
	Short: "Show information about the conda installation or a package",
	Long: `Without arguments, display the root prefix, version, platform and
environment directories of the conda installation. With a package name,
list every build conda knows about.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		result, err := client.PackageInfo(ctx, args[0])
		if err != nil {
			return fmt.Errorf("getting package info: %w", err)
		}
		printMatches(out, result)
		return nil
	}

	info, err := client.Info(ctx, true)
	if err != nil {
		return fmt.Errorf("getting conda info: %w", err)
	}

	fmt.Fprintf(out, "Root prefix:    %s\n", info.RootPrefix)
	fmt.Fprintf(out, "Conda version:  %s\n", info.CondaVersion)
	fmt.Fprintf(out, "Python version: %s\n", info.PythonVersion)
	fmt.Fprintf(out, "Platform:       %s\n", info.Platform)
	if info.ActivePrefix != "" {
		fmt.Fprintf(out, "Active prefix:  %s\n", info.ActivePrefix)
	}
	fmt.Fprintf(out, "Envs dirs:      %s\n", strings.Join(info.EnvsDirs, ", "))
	fmt.Fprintf(out, "Pkgs dirs:      %s\n", strings.Join(info.PkgsDirs, ", "))
	if len(info.Channels) > 0 {
		fmt.Fprintf(out, "Channels:       %s\n", strings.Join(info.Channels, ", "))
	}

	return nil
}
