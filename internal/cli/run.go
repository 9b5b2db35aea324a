// internal/cli/run.go
package cli

import (
	"errors"
	"os"
	"os/exec"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arc-language/condakit"
)

var (
	runName   string
	runPrefix string
	runDir    string
)

// ExitError carries the exit status of a command started by `run`
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return "command exited with status " + strconv.Itoa(e.Code)
}

var runCmd = &cobra.Command{
	Use:   "run -n <name> -- <command> [args]...",
	Short: "Run a command inside an environment",
	Long: `Run a command with the environment's executable directories prepended to
PATH. The command's exit status is passed through.`,
	Example: `  condakit run -n analysis -- python -c 'import numpy'
  condakit run -p /opt/envs/tools -- rg TODO`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	targetFlags(runCmd, &runName, &runPrefix)
	runCmd.Flags().StringVar(&runDir, "cwd", "", "working directory of the command")
	runCmd.MarkFlagsOneRequired("name", "prefix")
}

func runRun(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	proc, err := client.Process(cmd.Context(), condakit.ProcessOptions{
		Name:    runName,
		Path:    runPrefix,
		Command: args[0],
		Args:    args[1:],
		Dir:     runDir,
		Stdin:   os.Stdin,
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return &condakit.Error{Op: "run", Env: describeTarget(runName, runPrefix), Err: err}
	}

	if err := proc.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return err
	}
	return nil
}
