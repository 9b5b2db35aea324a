// internal/cli/search.go
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arc-language/condakit"
	"github.com/arc-language/condakit/pkg/conda"
)

var searchOpts condakit.SearchOptions

var searchCmd = &cobra.Command{
	Use:   "search [regex]",
	Short: "Search channels for packages",
	Example: `  condakit search '^numpy$'
  condakit search --spec 'python=3.12' --platform linux-64`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchOpts.Spec, "spec", "", "treat the query as a package spec instead of a regex")
	searchCmd.Flags().StringVar(&searchOpts.Platform, "platform", "", "search another platform's packages (e.g. linux-64)")
	searchCmd.Flags().BoolVar(&searchOpts.Unknown, "unknown", false, "use index metadata from the local package cache")
	searchCmd.Flags().BoolVar(&searchOpts.UseIndexCache, "use-index-cache", false, "use cache of channel index files")
	searchCmd.Flags().BoolVar(&searchOpts.Outdated, "outdated", false, "only show packages that are not up to date")
	searchCmd.Flags().BoolVar(&searchOpts.OverrideChannels, "override-channels", false, "do not search default or .condarc channels")
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	opts := searchOpts
	if len(args) == 1 {
		opts.Regex = args[0]
	}

	result, err := client.Search(cmd.Context(), opts)
	if err != nil {
		return &condakit.Error{Op: "search", Err: err}
	}

	if len(result) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No packages found")
		return nil
	}
	printMatches(cmd.OutOrStdout(), result)
	return nil
}

// printMatches prints one line per build, grouped by package name
func printMatches(out io.Writer, result map[string][]condakit.SearchMatch) {
	for _, name := range conda.SortedNames(result) {
		for _, m := range result[name] {
			fmt.Fprintf(out, "%-32s %-16s %-24s %s\n", name, m.Version, m.Build, m.Channel)
		}
	}
}
