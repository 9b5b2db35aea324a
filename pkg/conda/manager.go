// pkg/conda/manager.go
package conda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SetRootPrefix stores prefix as the root installation. With an empty prefix
// the conda found on PATH is asked for its root_prefix instead.
func (c *Client) SetRootPrefix(ctx context.Context, prefix string) error {
	if prefix != "" {
		c.rootPrefix = prefix
		return nil
	}

	info, err := c.Info(ctx, false)
	if err != nil {
		return fmt.Errorf("discovering root prefix: %w", err)
	}
	if info.RootPrefix == "" {
		return &UnexpectedOutputError{
			Executable: c.resolveExecutable(false),
			Args:       []string{cmdInfo, flagJSON},
			Output:     "root_prefix missing",
			Pattern:    "root_prefix",
		}
	}

	c.logger.Debug().Str("root_prefix", info.RootPrefix).Msg("discovered root prefix")
	c.rootPrefix = info.RootPrefix
	return nil
}

// Version returns the version of conda being invoked.
// conda prints its version on stderr; stdout is consulted only when stderr is blank.
func (c *Client) Version(ctx context.Context) (string, error) {
	args := []string{flagVersion}
	stdout, stderr, err := c.Invoke(ctx, args, true)
	if err != nil {
		return "", err
	}

	output := string(stderr)
	if strings.TrimSpace(output) == "" {
		output = string(stdout)
	}
	v, err := ParseVersion(output)
	var uerr *UnexpectedOutputError
	if errors.As(err, &uerr) {
		uerr.Executable = c.resolveExecutable(true)
	}
	return v, err
}

// Info runs `conda info --json`
func (c *Client) Info(ctx context.Context, useRootPrefix bool) (*Info, error) {
	args := []string{cmdInfo, flagJSON}
	var raw json.RawMessage
	if err := c.InvokeJSON(ctx, args, useRootPrefix, &raw); err != nil {
		return nil, err
	}
	return decodeInfo(c.resolveExecutable(useRootPrefix), args, raw)
}

// PackageInfo runs `conda info <pkg> --json`
func (c *Client) PackageInfo(ctx context.Context, pkg string) (map[string][]SearchMatch, error) {
	if pkg == "" {
		return nil, &ValidationError{Op: cmdInfo, Field: "package", Reason: "is required"}
	}
	args := []string{cmdInfo, pkg, flagJSON}
	result := make(map[string][]SearchMatch)
	if err := c.InvokeJSON(ctx, args, true, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Envs returns the prefixes of all known environments, as reported by conda
func (c *Client) Envs(ctx context.Context) ([]string, error) {
	info, err := c.Info(ctx, true)
	if err != nil {
		return nil, err
	}
	return info.Envs, nil
}

// PrefixForName resolves an environment name to its prefix.
// The boolean is false when no environment has that name.
func (c *Client) PrefixForName(ctx context.Context, name string) (string, bool, error) {
	if name == RootEnvName || name == BaseEnvName {
		if c.rootPrefix != "" {
			return c.rootPrefix, true, nil
		}
		info, err := c.Info(ctx, true)
		if err != nil {
			return "", false, err
		}
		return info.RootPrefix, info.RootPrefix != "", nil
	}

	envs, err := c.Envs(ctx)
	if err != nil {
		return "", false, err
	}
	for _, prefix := range envs {
		if filepath.Base(prefix) == name {
			return prefix, true, nil
		}
	}
	return "", false, nil
}

// Linked returns the canonical names of the packages linked into prefix.
// A prefix without conda-meta has nothing linked; a missing prefix is an error.
func (c *Client) Linked(prefix string) (PackageSet, error) {
	if !isDir(prefix) {
		return nil, &DirectoryNotFoundError{Path: prefix}
	}

	metaDir := filepath.Join(prefix, MetaDir)
	if !isDir(metaDir) {
		return PackageSet{}, nil
	}

	entries, err := os.ReadDir(metaDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", metaDir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return linkedNames(names), nil
}

// LinkedPackages is Linked with each name split into its parts
func (c *Client) LinkedPackages(prefix string) ([]CanonicalName, error) {
	set, err := c.Linked(prefix)
	if err != nil {
		return nil, err
	}
	return splitAll(set)
}

// Create creates a new environment and returns conda's output.
// The destination is checked for existence first; this is best-effort since
// another process may create it before conda does.
func (c *Client) Create(ctx context.Context, opts CreateOptions) ([]byte, error) {
	if err := c.check(cmdCreate, opts); err != nil {
		return nil, err
	}

	args := []string{cmdCreate, flagYes, flagQuiet}
	var ref string
	var candidates []string
	if opts.Name != "" {
		ref = opts.Name
		args = append(args, flagName, opts.Name)

		info, err := c.Info(ctx, true)
		if err != nil {
			return nil, err
		}
		for _, dir := range info.EnvsDirs {
			candidates = append(candidates, filepath.Join(dir, opts.Name))
		}
	} else {
		ref = opts.Path
		args = append(args, flagPrefix, opts.Path)
		candidates = []string{opts.Path}
	}

	for _, candidate := range candidates {
		if pathExists(candidate) {
			c.logger.Debug().Str("env", ref).Str("path", candidate).Msg("create target exists")
			return nil, &EnvironmentExistsError{Ref: ref, Path: candidate}
		}
	}

	args = append(args, opts.Packages...)
	return c.run(ctx, args)
}

// Install installs packages into an existing environment and returns conda's output
func (c *Client) Install(ctx context.Context, opts InstallOptions) ([]byte, error) {
	if err := c.check(cmdInstall, opts); err != nil {
		return nil, err
	}

	args := []string{cmdInstall, flagYes, flagQuiet}
	args = appendTarget(args, opts.Name, opts.Path)
	if opts.NoDeps {
		args = append(args, "--no-deps")
	}
	args = append(args, opts.Packages...)
	return c.run(ctx, args)
}

// Update updates packages, or everything with All
func (c *Client) Update(ctx context.Context, opts UpdateOptions) (*ActionResult, error) {
	if err := c.check(cmdUpdate, opts); err != nil {
		return nil, err
	}
	if len(opts.Packages) == 0 && !opts.All {
		return nil, &ValidationError{Op: cmdUpdate, Reason: "must specify at least one package to update, or All"}
	}

	args := []string{cmdUpdate, flagJSON, flagQuiet, flagYes}
	args = appendTarget(args, opts.Name, opts.Path)
	args = appendInstallFlags(args, opts.Flags)
	if opts.All {
		args = append(args, "--all")
	}
	args = append(args, opts.Packages...)

	var result ActionResult
	if err := c.InvokeJSON(ctx, args, true, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Remove removes packages, or the whole environment with All
func (c *Client) Remove(ctx context.Context, opts RemoveOptions) (*ActionResult, error) {
	if err := c.check(cmdRemove, opts); err != nil {
		return nil, err
	}
	if len(opts.Packages) == 0 && !opts.All {
		return nil, &ValidationError{Op: cmdRemove, Reason: "must specify at least one package to remove, or All"}
	}

	args := []string{cmdRemove, flagJSON, flagQuiet, flagYes}
	args = appendTarget(args, opts.Name, opts.Path)
	args = appendInstallFlags(args, opts.Flags)
	if opts.Features {
		args = append(args, "--features")
	}
	if opts.All {
		args = append(args, "--all")
	}
	args = append(args, opts.Packages...)

	var result ActionResult
	if err := c.InvokeJSON(ctx, args, true, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RemoveEnvironment removes an environment by name or path
func (c *Client) RemoveEnvironment(ctx context.Context, name, path string) (*ActionResult, error) {
	if err := c.check(cmdRemove, envTarget{Name: name, Path: path}); err != nil {
		return nil, err
	}
	return c.Remove(ctx, RemoveOptions{Name: name, Path: path, All: true})
}

// CloneEnvironment creates a new environment as a copy of opts.Source
func (c *Client) CloneEnvironment(ctx context.Context, opts CloneEnvironmentOptions) (*ActionResult, error) {
	if err := c.check(cmdCreate, opts); err != nil {
		return nil, err
	}

	args := []string{cmdCreate, flagJSON, flagQuiet}
	args = appendTarget(args, opts.Name, opts.Path)
	args = append(args, "--clone", opts.Source)
	args = appendInstallFlags(args, opts.Flags)

	var result ActionResult
	if err := c.InvokeJSON(ctx, args, true, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Share bundles the environment at prefix. The bundle is written to a
// temporary location that the caller must clean up.
func (c *Client) Share(ctx context.Context, prefix string) (*ShareResult, error) {
	if prefix == "" {
		return nil, &ValidationError{Op: cmdShare, Field: "prefix", Reason: "is required"}
	}
	args := []string{cmdShare, flagJSON, flagPrefix, prefix}

	var result ShareResult
	if err := c.InvokeJSON(ctx, args, true, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Clone creates an environment at prefix from a bundle made by Share.
// The bundle must live outside the root prefix tree.
func (c *Client) Clone(ctx context.Context, bundlePath, prefix string) (*ActionResult, error) {
	switch {
	case bundlePath == "":
		return nil, &ValidationError{Op: cmdClone, Field: "path", Reason: "is required"}
	case prefix == "":
		return nil, &ValidationError{Op: cmdClone, Field: "prefix", Reason: "is required"}
	case c.rootPrefix != "" && isWithin(bundlePath, c.rootPrefix):
		return nil, &ValidationError{Op: cmdClone, Field: "path", Reason: "must be outside the root prefix " + c.rootPrefix}
	}
	args := []string{cmdClone, flagJSON, flagPrefix, prefix, bundlePath}

	var result ActionResult
	if err := c.InvokeJSON(ctx, args, true, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Search queries the package index. The result maps package names to their builds.
func (c *Client) Search(ctx context.Context, opts SearchOptions) (map[string][]SearchMatch, error) {
	if err := c.check(cmdSearch, opts); err != nil {
		return nil, err
	}

	args := []string{cmdSearch, flagJSON}
	if opts.Regex != "" {
		args = append(args, opts.Regex)
	}
	if opts.Spec != "" {
		args = append(args, "--spec", opts.Spec)
	}
	if opts.Platform != "" {
		args = append(args, "--platform", opts.Platform)
	}
	if opts.Unknown {
		args = append(args, "--unknown")
	}
	if opts.UseIndexCache {
		args = append(args, "--use-index-cache")
	}
	if opts.Outdated {
		args = append(args, "--outdated")
	}
	if opts.OverrideChannels {
		args = append(args, "--override-channels")
	}

	result := make(map[string][]SearchMatch)
	if err := c.InvokeJSON(ctx, args, true, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// check validates an options struct, converting failures to ValidationError
func (c *Client) check(op string, opts any) error {
	if err := c.validate.Struct(opts); err != nil {
		verr := validationError(op, err)
		c.logger.Debug().Str("op", op).Err(verr).Msg("rejected request")
		return verr
	}
	return nil
}

// appendTarget adds --name or --prefix; neither means the active environment
func appendTarget(args []string, name, path string) []string {
	switch {
	case name != "":
		return append(args, flagName, name)
	case path != "":
		return append(args, flagPrefix, path)
	default:
		return args
	}
}

func appendInstallFlags(args []string, f InstallFlags) []string {
	if f.DryRun {
		args = append(args, "--dry-run")
	}
	if f.NoDeps {
		args = append(args, "--no-deps")
	}
	if f.OverrideChannels {
		args = append(args, "--override-channels")
	}
	if f.NoPin {
		args = append(args, "--no-pin")
	}
	if f.Force {
		args = append(args, flagForce)
	}
	if f.UseIndexCache {
		args = append(args, "--use-index-cache")
	}
	if f.UseLocal {
		args = append(args, "--use-local")
	}
	if f.AltHint {
		args = append(args, "--alt-hint")
	}
	if f.Unknown {
		args = append(args, "--unknown")
	}
	if f.NoDefaultPackages {
		args = append(args, "--no-default-packages")
	}
	for _, ch := range f.Channels {
		args = append(args, "--channel", ch)
	}
	return args
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
