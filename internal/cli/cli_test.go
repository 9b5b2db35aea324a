// internal/cli/cli_test.go
package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/arc-language/condakit"
)

func TestRootCommands(t *testing.T) {
	want := []string{
		"clone", "config", "create", "envs", "info", "install",
		"list", "platform", "remove", "run", "search", "share", "update", "version",
	}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, cmd.Name())
		}
	}

	sub, _, err := rootCmd.Find([]string{"config", "delete"})
	assert.NoError(t, err)
	assert.Equal(t, "delete", sub.Name())
}

func TestPrintActionResult(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	printActionResult(cmd, "Updated analysis", &condakit.ActionResult{
		Success: true,
		Actions: map[string]any{
			"UNLINK": []any{"numpy-1.11.0-py35_0"},
			"LINK":   []any{"numpy-1.12.0-py35_0"},
			"PREFIX": "/envs/analysis",
		},
	})

	assert.Equal(t, "✓ Updated analysis\n"+
		"  LINK:\n    numpy-1.12.0-py35_0\n"+
		"  UNLINK:\n    numpy-1.11.0-py35_0\n", out.String())
}

func TestPrintActionResult_DryRun(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	printActionResult(cmd, "Removed from analysis", &condakit.ActionResult{DryRun: true, Success: true})
	assert.Equal(t, "Dry run: Removed from analysis\n", out.String())
}

func TestIsZeroFlags(t *testing.T) {
	assert.True(t, isZeroFlags(condakit.InstallFlags{}))
	assert.False(t, isZeroFlags(condakit.InstallFlags{Force: true}))
	assert.False(t, isZeroFlags(condakit.InstallFlags{Channels: []string{"conda-forge"}}))
}

func TestDescribeTarget(t *testing.T) {
	assert.Equal(t, "analysis", describeTarget("analysis", ""))
	assert.Equal(t, "/envs/x", describeTarget("", "/envs/x"))
}

func TestExitError(t *testing.T) {
	assert.Equal(t, "command exited with status 3", (&ExitError{Code: 3}).Error())
}

func TestPrintLinked_KeepsUnsplittableNames(t *testing.T) {
	var out bytes.Buffer
	printLinked(&out, condakit.PackageSet{
		"numpy-1.11.0-py35_0": {},
		"broken":              {},
		"python-3.5.2-0":      {},
	})

	assert.Equal(t, "broken\n"+
		"numpy                            1.11.0           py35_0\n"+
		"python                           3.5.2            0\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriteOutput(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	assert.NoError(t, writeOutput(cmd, []byte("done\n")))
	assert.Equal(t, "done\n", out.String())

	cmd.SetOut(failingWriter{})
	assert.EqualError(t, writeOutput(cmd, []byte("done\n")), "writing output: closed pipe")
}
