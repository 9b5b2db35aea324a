// pkg/conda/process.go
package conda

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/arc-language/condakit/pkg/env"
)

// Process starts opts.Command with the environment's binary directories at the
// front of PATH and returns the running command. A bare command name is looked
// up on that PATH, so the environment's own programs win over the caller's.
// The caller owns the command: waiting, draining pipes and enforcing timeouts
// are its responsibility. Cancelling ctx kills the process.
func (c *Client) Process(ctx context.Context, opts ProcessOptions) (*exec.Cmd, error) {
	if err := c.check("process", opts); err != nil {
		return nil, err
	}

	prefix := opts.Path
	if opts.Name != "" {
		resolved, ok, err := c.PrefixForName(ctx, opts.Name)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrEnvironmentNotFound, opts.Name)
		}
		prefix = resolved
	}

	environment := env.New(prefix, c.goos)

	// Resolve against the environment's PATH; exec would search ours.
	name := opts.Command
	if resolved, err := environment.LookPath(opts.Command, os.Environ()); err == nil {
		name = resolved
	} else {
		c.logger.Debug().Str("prefix", prefix).Str("command", opts.Command).Err(err).Msg("command not found on environment PATH")
	}

	cmd := c.execCommand(ctx, name, opts.Args...)
	base := cmd.Env
	if base == nil {
		base = os.Environ()
	}
	cmd.Env = environment.BuildEnv(base)
	cmd.Dir = opts.Dir
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	if err := cmd.Start(); err != nil {
		return nil, &InvocationError{Executable: opts.Command, Args: opts.Args, Err: err}
	}

	c.logger.Debug().
		Str("prefix", prefix).
		Str("command", commandLine(name, opts.Args)).
		Int("pid", cmd.Process.Pid).
		Msg("started process in environment")
	return cmd, nil
}
