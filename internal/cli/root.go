// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arc-language/condakit"
	"github.com/arc-language/condakit/pkg/core"
)

// Version is the condakit release, set via ldflags
var Version = "0.1.0"

var (
	cfgFile    string
	rootPrefix string
	executable string
	debug      bool
	config     *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "condakit",
	Short: "Drive conda from scripts",
	Long: `condakit - a thin client for the conda command line

Runs conda subcommands, parses their output and reports the results.
Environments, packages, search and configuration are all delegated to the
conda installation found under --root-prefix or on PATH.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/condakit/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootPrefix, "root-prefix", "", "root prefix of the conda installation")
	rootCmd.PersistentFlags().StringVar(&executable, "executable", "", "conda frontend to drive (conda, mamba, micromamba or a path)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(envsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(cloneCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(platformCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if rootPrefix != "" {
		config.RootPrefix = rootPrefix
	}
	if executable != "" {
		config.Executable = executable
	}
	if debug {
		config.Debug = true
	}

	setupLogging(config)
}

// setupLogging configures zerolog for human-readable output on stderr
func setupLogging(cfg *core.Config) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	level := cfg.LogLevel
	if cfg.Debug {
		level = "debug"
	}
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// newClient builds a client from the loaded configuration
func newClient(cmd *cobra.Command) (*condakit.Client, error) {
	client, err := condakit.New(cmd.Context(), config, log.Logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// targetFlags registers --name and --prefix on cmd
func targetFlags(cmd *cobra.Command, name, prefix *string) {
	cmd.Flags().StringVarP(name, "name", "n", "", "name of the environment")
	cmd.Flags().StringVarP(prefix, "prefix", "p", "", "full path to the environment prefix")
	cmd.MarkFlagsMutuallyExclusive("name", "prefix")
}

// describeTarget names the environment a command operates on, for error context
func describeTarget(name, prefix string) string {
	if name != "" {
		return name
	}
	return prefix
}
