// internal/cli/flags.go
package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arc-language/condakit"
)

// solverFlags registers the solver options shared by update and remove
func solverFlags(cmd *cobra.Command, f *condakit.InstallFlags) {
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false, "only display what would have been done")
	cmd.Flags().BoolVar(&f.NoDeps, "no-deps", false, "do not touch dependencies")
	cmd.Flags().BoolVar(&f.OverrideChannels, "override-channels", false, "do not search default or .condarc channels")
	cmd.Flags().BoolVar(&f.NoPin, "no-pin", false, "ignore pinned package(s)")
	cmd.Flags().BoolVar(&f.Force, "force", false, "force the operation")
	cmd.Flags().BoolVar(&f.UseIndexCache, "use-index-cache", false, "use cache of channel index files")
	cmd.Flags().BoolVar(&f.UseLocal, "use-local", false, "use locally built packages")
	cmd.Flags().BoolVar(&f.Unknown, "unknown", false, "use index metadata from the local package cache")
	cmd.Flags().StringSliceVarP(&f.Channels, "channel", "c", nil, "additional channel to search for packages")
}

// printActionResult reports the outcome of a --json mutating subcommand
func printActionResult(cmd *cobra.Command, summary string, result *condakit.ActionResult) {
	out := cmd.OutOrStdout()
	if result.DryRun {
		fmt.Fprintf(out, "Dry run: %s\n", summary)
	} else if result.Success {
		fmt.Fprintf(out, "✓ %s\n", summary)
	}
	if result.Message != "" {
		fmt.Fprintln(out, result.Message)
	}

	kinds := make([]string, 0, len(result.Actions))
	for k := range result.Actions {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		items, ok := result.Actions[k].([]any)
		if !ok {
			continue
		}
		fmt.Fprintf(out, "  %s:\n", k)
		for _, item := range items {
			fmt.Fprintf(out, "    %v\n", item)
		}
	}
}

// writeOutput copies conda's raw output to the command's stdout
func writeOutput(cmd *cobra.Command, out []byte) error {
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
