// condakit.go
package condakit

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arc-language/condakit/pkg/conda"
	"github.com/arc-language/condakit/pkg/core"
	"github.com/arc-language/condakit/pkg/platform"
)

// Re-export conda types for convenience
type (
	Client                  = conda.Client
	Option                  = conda.Option
	Config                  = core.Config
	Info                    = conda.Info
	ActionResult            = conda.ActionResult
	ShareResult             = conda.ShareResult
	SearchMatch             = conda.SearchMatch
	CanonicalName           = conda.CanonicalName
	PackageSet              = conda.PackageSet
	CreateOptions           = conda.CreateOptions
	InstallOptions          = conda.InstallOptions
	UpdateOptions           = conda.UpdateOptions
	RemoveOptions           = conda.RemoveOptions
	CloneEnvironmentOptions = conda.CloneEnvironmentOptions
	SearchOptions           = conda.SearchOptions
	InstallFlags            = conda.InstallFlags
	ConfigTarget            = conda.ConfigTarget
	ProcessOptions          = conda.ProcessOptions
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// SplitCanonicalName splits name-version-build on its last two hyphens
func SplitCanonicalName(cname string) (CanonicalName, error) {
	return conda.SplitCanonicalName(cname)
}

// New creates a client from cfg.
//
// The frontend is taken from cfg.Executable or detected on PATH. When no root
// prefix is configured and cfg.DiscoverRootPrefix is set, the detected conda is
// asked for its root prefix. Extra options are applied last.
func New(ctx context.Context, cfg *Config, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, &Error{Op: "configure", Err: err}
	}

	plat, err := platform.Detect()
	if err != nil {
		return nil, &Error{Op: "detect platform", Err: err}
	}

	exe, err := platform.ResolveFrontend(plat, cfg.Executable, cfg.RootPrefix != "")
	if err != nil {
		return nil, &Error{Op: "resolve frontend", Err: fmt.Errorf("%w: %v", ErrFrontendNotAvailable, err)}
	}

	logger.Debug().
		Str("platform", plat.String()).
		Str("executable", exe).
		Str("root_prefix", cfg.RootPrefix).
		Msg("configuring conda client")

	base := []Option{
		conda.WithExecutable(exe),
		conda.WithRootPrefix(cfg.RootPrefix),
		conda.WithLogger(logger),
	}
	client := conda.NewClient(append(base, opts...)...)

	if client.RootPrefix() == "" && cfg.DiscoverRootPrefix {
		if err := client.SetRootPrefix(ctx, ""); err != nil {
			return nil, &Error{Op: "discover root prefix", Err: err}
		}
	}

	return client, nil
}
