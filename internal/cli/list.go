// internal/cli/list.go
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arc-language/condakit"
)

var (
	listName   string
	listPrefix string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List packages linked into an environment",
	Long: `List the packages linked into an environment, read from its conda-meta
directory. Defaults to the root environment.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	targetFlags(listCmd, &listName, &listPrefix)
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	prefix, err := resolvePrefix(cmd.Context(), client, listName, listPrefix)
	if err != nil {
		return err
	}

	linked, err := client.Linked(prefix)
	if err != nil {
		return &condakit.Error{Op: "list", Env: prefix, Err: err}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# packages in environment at %s:\n", prefix)
	printLinked(out, linked)
	return nil
}

// printLinked prints one row per package. Names that do not split into
// name-version-build are printed whole instead of aborting the listing.
func printLinked(out io.Writer, linked condakit.PackageSet) {
	for _, cname := range linked.Sorted() {
		p, err := condakit.SplitCanonicalName(cname)
		if err != nil {
			fmt.Fprintln(out, cname)
			continue
		}
		fmt.Fprintf(out, "%-32s %-16s %s\n", p.Name, p.Version, p.Build)
	}
}

// resolvePrefix turns --name/--prefix into a prefix, defaulting to root
func resolvePrefix(ctx context.Context, client *condakit.Client, name, prefix string) (string, error) {
	if prefix != "" {
		return prefix, nil
	}
	if name == "" {
		name = "root"
	}
	resolved, ok, err := client.PrefixForName(ctx, name)
	if err != nil {
		return "", &condakit.Error{Op: "resolve environment", Env: name, Err: err}
	}
	if !ok {
		return "", &condakit.Error{Op: "resolve environment", Env: name, Err: condakit.ErrEnvironmentNotFound}
	}
	return resolved, nil
}
