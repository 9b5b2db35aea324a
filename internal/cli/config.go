// internal/cli/config.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/condakit"
)

var configTarget condakit.ConfigTarget

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and modify conda configuration files",
	Long: `Read and modify condarc files through conda's config subcommand.
By default the user's file is used; --file and --system select another.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the selected condarc",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		path, err := client.ConfigPath(cmd.Context(), configTarget)
		if err != nil {
			return &condakit.Error{Op: "config path", Err: err}
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]...",
	Short: "Print configuration values as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		values, err := client.ConfigGet(cmd.Context(), configTarget, args...)
		if err != nil {
			return &condakit.Error{Op: "config get", Err: err}
		}
		if len(values) == 0 {
			return nil
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(values)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a boolean or string key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return configWrite(cmd, "config set", func(c *condakit.Client) ([]string, error) {
			return c.ConfigSet(cmd.Context(), configTarget, args[0], args[1])
		})
	},
}

var configAddCmd = &cobra.Command{
	Use:   "add <key> <value>",
	Short: "Prepend a value to a list key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return configWrite(cmd, "config add", func(c *condakit.Client) ([]string, error) {
			return c.ConfigAdd(cmd.Context(), configTarget, args[0], args[1])
		})
	},
}

var configRemoveCmd = &cobra.Command{
	Use:   "remove <key> <value>",
	Short: "Remove a value from a list key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return configWrite(cmd, "config remove", func(c *condakit.Client) ([]string, error) {
			return c.ConfigRemove(cmd.Context(), configTarget, args[0], args[1])
		})
	},
}

var configDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Remove a key and all of its values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return configWrite(cmd, "config delete", func(c *condakit.Client) ([]string, error) {
			return c.ConfigDelete(cmd.Context(), configTarget, args[0])
		})
	},
}

func init() {
	configCmd.PersistentFlags().StringVar(&configTarget.File, "file", "", "operate on this condarc")
	configCmd.PersistentFlags().BoolVar(&configTarget.System, "system", false, "operate on the system condarc")
	configCmd.MarkFlagsMutuallyExclusive("file", "system")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configAddCmd)
	configCmd.AddCommand(configRemoveCmd)
	configCmd.AddCommand(configDeleteCmd)
}

// configWrite runs a modifying config call and prints conda's warnings
func configWrite(cmd *cobra.Command, op string, fn func(*condakit.Client) ([]string, error)) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	warnings, err := fn(client)
	if err != nil {
		return &condakit.Error{Op: op, Err: err}
	}
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	return nil
}
