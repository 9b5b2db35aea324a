// pkg/conda/errors.go
package conda

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

var (
	// ErrInvocation indicates the executable could not be found or started
	ErrInvocation = errors.New("could not invoke conda")

	// ErrExternalTool indicates conda ran but reported an error
	ErrExternalTool = errors.New("conda reported an error")

	// ErrUnexpectedOutput indicates output did not match the expected pattern
	ErrUnexpectedOutput = errors.New("unexpected conda output")

	// ErrMalformedOutput indicates output that should be JSON failed to parse
	ErrMalformedOutput = errors.New("malformed conda output")

	// ErrEnvironmentExists indicates the destination of a create already exists
	ErrEnvironmentExists = errors.New("environment already exists")

	// ErrEnvironmentNotFound indicates an environment name did not resolve to a prefix
	ErrEnvironmentNotFound = errors.New("environment not found")

	// ErrDirectoryNotFound indicates a prefix directory does not exist
	ErrDirectoryNotFound = errors.New("no such directory")

	// ErrInvalidArgument indicates a request failed local validation
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidCanonicalName indicates a string is not of the form name-version-build
	ErrInvalidCanonicalName = errors.New("invalid canonical name")
)

// InvocationError is returned when the executable cannot be spawned
type InvocationError struct {
	Executable string
	Args       []string
	Err        error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("could not invoke %s: %v", commandLine(e.Executable, e.Args), e.Err)
}

// Unwrap exposes both ErrInvocation and the underlying cause
func (e *InvocationError) Unwrap() []error {
	return []error{ErrInvocation, e.Err}
}

// ExternalToolError carries the arguments and the raw error text of a failed call.
// Stderr is set when conda wrote to its error stream; Message and ExceptionName
// are set when a --json call reported the failure in its response body.
type ExternalToolError struct {
	Executable    string
	Args          []string
	Stderr        string
	Message       string
	ExceptionName string
}

func (e *ExternalToolError) Error() string {
	detail := e.Stderr
	if detail == "" {
		detail = e.Message
	}
	if e.ExceptionName != "" {
		detail = e.ExceptionName + ": " + detail
	}
	return fmt.Sprintf("%s: %s", commandLine(orDefault(e.Executable), e.Args), strings.TrimSpace(detail))
}

func (e *ExternalToolError) Unwrap() error { return ErrExternalTool }

// UnexpectedOutputError is returned when output does not match a required pattern
type UnexpectedOutputError struct {
	Executable string
	Args       []string
	Output     string
	Pattern    string
}

func (e *UnexpectedOutputError) Error() string {
	return fmt.Sprintf("%s: output did not match %s: %q", commandLine(orDefault(e.Executable), e.Args), e.Pattern, e.Output)
}

func (e *UnexpectedOutputError) Unwrap() error { return ErrUnexpectedOutput }

// MalformedOutputError is returned when JSON output cannot be decoded
type MalformedOutputError struct {
	Executable string
	Args       []string
	Output     []byte
	Err        error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("%s: decoding JSON output: %v", commandLine(orDefault(e.Executable), e.Args), e.Err)
}

func (e *MalformedOutputError) Unwrap() []error {
	return []error{ErrMalformedOutput, e.Err}
}

// EnvironmentExistsError is returned by Create when a candidate directory exists
type EnvironmentExistsError struct {
	Ref  string // name or path as requested
	Path string // directory found on disk
}

func (e *EnvironmentExistsError) Error() string {
	return fmt.Sprintf("conda environment %q already exists at %s", e.Ref, e.Path)
}

func (e *EnvironmentExistsError) Unwrap() error { return ErrEnvironmentExists }

// DirectoryNotFoundError is returned when a prefix is not a directory
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("no such directory: %q", e.Path)
}

func (e *DirectoryNotFoundError) Unwrap() error { return ErrDirectoryNotFound }

// ValidationError reports a request rejected before any process was spawned
type ValidationError struct {
	Op     string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("conda %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("conda %s: %s %s", e.Op, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

// commandLine renders an invocation so it can be pasted into a shell
func commandLine(executable string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteArg(executable))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(s string) string {
	q, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		// not representable, e.g. contains a NUL byte
		return fmt.Sprintf("%q", s)
	}
	return q
}

// orDefault returns executable, or DefaultExecutable when it was not recorded
func orDefault(executable string) string {
	if executable == "" {
		return DefaultExecutable
	}
	return executable
}
