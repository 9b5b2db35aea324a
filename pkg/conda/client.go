// pkg/conda/client.go
package conda

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ExecCommandFunc creates the exec.Cmd for an invocation.
// Tests replace it to avoid spawning a real conda.
type ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

// Option configures a Client
type Option func(*Client)

// Client proxies calls to the conda executable.
// It is safe for concurrent use as long as SetRootPrefix is not called concurrently.
type Client struct {
	rootPrefix  string
	executable  string
	goos        string
	execCommand ExecCommandFunc
	logger      zerolog.Logger
	validate    *validator.Validate
}

// WithRootPrefix sets the root installation prefix
func WithRootPrefix(prefix string) Option {
	return func(c *Client) {
		c.rootPrefix = prefix
	}
}

// WithExecutable sets the frontend executable name (conda, mamba, ...) or an absolute path
func WithExecutable(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.executable = name
		}
	}
}

// WithLogger sets the logger used for invocation tracing
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithExecCommand sets a custom exec command function for testing
func WithExecCommand(fn ExecCommandFunc) Option {
	return func(c *Client) {
		c.execCommand = fn
	}
}

// WithGOOS overrides the platform layout, mainly for tests
func WithGOOS(goos string) Option {
	return func(c *Client) {
		c.goos = goos
	}
}

// NewClient creates a new conda client
func NewClient(opts ...Option) *Client {
	c := &Client{
		executable:  DefaultExecutable,
		goos:        runtime.GOOS,
		execCommand: exec.CommandContext,
		logger:      zerolog.Nop(),
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RootPrefix returns the configured root prefix (may be empty)
func (c *Client) RootPrefix() string {
	return c.rootPrefix
}

// Executable returns the configured frontend name or path
func (c *Client) Executable() string {
	return c.executable
}

// resolveExecutable returns the program to spawn. Without a root prefix the
// bare name is returned and looked up on PATH by exec.
func (c *Client) resolveExecutable(useRootPrefix bool) string {
	if useRootPrefix && c.rootPrefix != "" {
		return ExecutablePath(c.rootPrefix, c.executable, c.goos)
	}
	return c.executable
}

// Invoke runs conda with args and returns both captured streams.
// The exit status is not inspected; callers decide success from stderr.
func (c *Client) Invoke(ctx context.Context, args []string, useRootPrefix bool) ([]byte, []byte, error) {
	exe := c.resolveExecutable(useRootPrefix)

	cmd := c.execCommand(ctx, exe, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || ctx.Err() != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = ctxErr
			}
			c.logger.Debug().
				Str("command", commandLine(exe, args)).
				Err(err).
				Msg("conda invocation failed to start")
			return nil, nil, &InvocationError{Executable: exe, Args: args, Err: err}
		}
	}

	c.logger.Debug().
		Str("command", commandLine(exe, args)).
		Dur("elapsed", elapsed).
		Int("stdout_bytes", stdout.Len()).
		Int("stderr_bytes", stderr.Len()).
		Msg("conda invocation finished")

	return stdout.Bytes(), stderr.Bytes(), nil
}

// InvokeJSON runs conda and decodes its stdout as JSON into v.
// Any non-blank stderr is reported as an ExternalToolError.
func (c *Client) InvokeJSON(ctx context.Context, args []string, useRootPrefix bool, v any) error {
	exe := c.resolveExecutable(useRootPrefix)
	stdout, stderr, err := c.Invoke(ctx, args, useRootPrefix)
	if err != nil {
		return err
	}

	if strings.TrimSpace(string(stderr)) != "" {
		return &ExternalToolError{Executable: exe, Args: args, Stderr: string(stderr)}
	}

	if err := checkReportedError(exe, args, stdout); err != nil {
		return err
	}

	if err := json.Unmarshal(stdout, v); err != nil {
		return &MalformedOutputError{Executable: exe, Args: args, Output: stdout, Err: err}
	}
	return nil
}

// checkReportedError detects the {"error": ...} body conda emits with --json.
// Bodies that are not JSON objects are left for the caller's decode to reject.
func checkReportedError(exe string, args []string, stdout []byte) error {
	var body struct {
		Error         string `json:"error"`
		Message       string `json:"message"`
		ExceptionName string `json:"exception_name"`
	}
	if err := json.Unmarshal(stdout, &body); err != nil {
		return nil
	}
	if body.Error == "" {
		return nil
	}
	msg := body.Error
	if body.Message != "" && body.Message != body.Error {
		msg = body.Message
	}
	return &ExternalToolError{Executable: exe, Args: args, Message: msg, ExceptionName: body.ExceptionName}
}

// run invokes a non-JSON subcommand and returns stdout, failing on any stderr
func (c *Client) run(ctx context.Context, args []string) ([]byte, error) {
	stdout, stderr, err := c.Invoke(ctx, args, true)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(stderr)) != "" {
		return nil, &ExternalToolError{Executable: c.resolveExecutable(true), Args: args, Stderr: string(stderr)}
	}
	return stdout, nil
}
