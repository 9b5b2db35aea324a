// errors.go
package condakit

import (
	"errors"
	"fmt"

	"github.com/arc-language/condakit/pkg/conda"
)

var (
	// ErrFrontendNotAvailable indicates no conda frontend could be found
	ErrFrontendNotAvailable = errors.New("conda frontend not available")

	ErrInvocation           = conda.ErrInvocation
	ErrExternalTool         = conda.ErrExternalTool
	ErrUnexpectedOutput     = conda.ErrUnexpectedOutput
	ErrMalformedOutput      = conda.ErrMalformedOutput
	ErrEnvironmentExists    = conda.ErrEnvironmentExists
	ErrEnvironmentNotFound  = conda.ErrEnvironmentNotFound
	ErrDirectoryNotFound    = conda.ErrDirectoryNotFound
	ErrInvalidArgument      = conda.ErrInvalidArgument
	ErrInvalidCanonicalName = conda.ErrInvalidCanonicalName
)

// Error wraps an error with additional context
type Error struct {
	Op  string // Operation that failed
	Env string // Environment name or prefix if applicable
	Err error  // Underlying error
}

func (e *Error) Error() string {
	if e.Env != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Env, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
