// pkg/conda/types.go
package conda

import (
	"io"
	"sort"
)

// Info is the narrowed response of `conda info --json`.
// Raw holds the full response as decoded, since its schema varies between releases.
type Info struct {
	RootPrefix    string         `json:"root_prefix"`
	DefaultPrefix string         `json:"default_prefix"`
	ActivePrefix  string         `json:"active_prefix"`
	Envs          []string       `json:"envs"`
	EnvsDirs      []string       `json:"envs_dirs"`
	PkgsDirs      []string       `json:"pkgs_dirs"`
	Channels      []string       `json:"channels"`
	Platform      string         `json:"platform"`
	CondaVersion  string         `json:"conda_version"`
	PythonVersion string         `json:"python_version"`
	Raw           map[string]any `json:"-"`
}

// ActionResult is returned by the --json mutating subcommands
// (update, remove, create --clone, clone).
type ActionResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Prefix  string         `json:"prefix,omitempty"`
	Actions map[string]any `json:"actions,omitempty"`
	DryRun  bool           `json:"dry_run,omitempty"`
}

// ShareResult is returned by `conda share --json`.
// The bundle at Path is left in a temporary location; removing it is up to the caller.
type ShareResult struct {
	Path     string   `json:"path"`
	Warnings []string `json:"warnings"`
}

// SearchMatch is one build of a package in search or package-info output
type SearchMatch struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Build       string   `json:"build"`
	BuildNumber int      `json:"build_number"`
	Channel     string   `json:"channel"`
	Subdir      string   `json:"subdir"`
	Fn          string   `json:"fn"`
	URL         string   `json:"url"`
	MD5         string   `json:"md5"`
	Size        int64    `json:"size"`
	License     string   `json:"license"`
	Depends     []string `json:"depends"`
}

// CanonicalName is a split `name-version-build` identifier
type CanonicalName struct {
	Name    string
	Version string
	Build   string
}

// String joins the parts back into canonical form
func (c CanonicalName) String() string {
	return c.Name + "-" + c.Version + "-" + c.Build
}

// PackageSet is a set of canonical package names
type PackageSet map[string]struct{}

// Has reports whether cname is in the set
func (s PackageSet) Has(cname string) bool {
	_, ok := s[cname]
	return ok
}

// Sorted returns the members in lexical order
func (s PackageSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CreateOptions configures Create. Exactly one of Name or Path is required.
type CreateOptions struct {
	Name     string `validate:"required_without=Path,excluded_with=Path"`
	Path     string
	Packages []string `validate:"required,min=1,dive,required"`
}

// InstallOptions configures Install. With neither Name nor Path the
// currently active environment is targeted.
type InstallOptions struct {
	Name     string `validate:"excluded_with=Path"`
	Path     string
	Packages []string `validate:"required,min=1,dive,required"`
	NoDeps   bool
}

// InstallFlags are the optional solver flags shared by update, remove and clone
type InstallFlags struct {
	DryRun            bool
	NoDeps            bool
	OverrideChannels  bool
	NoPin             bool
	Force             bool
	UseIndexCache     bool
	UseLocal          bool
	AltHint           bool
	Unknown           bool
	NoDefaultPackages bool
	Channels          []string `validate:"dive,required"`
}

// UpdateOptions configures Update. Packages or All is required.
type UpdateOptions struct {
	Name     string `validate:"excluded_with=Path"`
	Path     string
	Packages []string `validate:"dive,required"`
	All      bool
	Flags    InstallFlags
}

// RemoveOptions configures Remove. Packages or All is required.
type RemoveOptions struct {
	Name     string `validate:"excluded_with=Path"`
	Path     string
	Packages []string `validate:"dive,required"`
	All      bool
	Features bool
	Flags    InstallFlags
}

// CloneEnvironmentOptions configures CloneEnvironment
type CloneEnvironmentOptions struct {
	Source string `validate:"required"`
	Name   string `validate:"required_without=Path,excluded_with=Path"`
	Path   string
	Flags  InstallFlags
}

// SearchOptions configures Search. Spec and Regex are mutually exclusive.
type SearchOptions struct {
	Regex            string
	Spec             string `validate:"omitempty,excluded_with=Regex"`
	Platform         string `validate:"omitempty,oneof=win-32 win-64 osx-64 osx-arm64 linux-32 linux-64 linux-aarch64 linux-ppc64le noarch"`
	Unknown          bool
	UseIndexCache    bool
	Outdated         bool
	OverrideChannels bool
}

// ConfigTarget selects which condarc the config subcommand operates on.
// The zero value means the user's file.
type ConfigTarget struct {
	File   string
	System bool
}

// ProcessOptions configures Process. Exactly one of Name or Path is required.
type ProcessOptions struct {
	Name    string `validate:"required_without=Path,excluded_with=Path"`
	Path    string
	Command string `validate:"required"`
	Args    []string
	Dir     string
	Stdin   io.Reader `validate:"-"`
	Stdout  io.Writer `validate:"-"`
	Stderr  io.Writer `validate:"-"`
}

// envTarget is the shared name/path pair used by the target validators
type envTarget struct {
	Name string `validate:"required_without=Path,excluded_with=Path"`
	Path string
}
