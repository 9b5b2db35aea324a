// pkg/conda/parser.go
package conda

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// versionPattern matches "conda 4.3.21", "conda: 4.3.21", "conda unknown" and
// the bare "1.5.8" printed by micromamba
var versionPattern = regexp.MustCompile(`^(?:\w+:?\s+)?(\d+\.\d+\S*|unknown)`)

// ParseVersion extracts the version from `conda --version` output
func ParseVersion(output string) (string, error) {
	m := versionPattern.FindStringSubmatch(strings.TrimSpace(output))
	if m == nil {
		return "", &UnexpectedOutputError{
			Args:    []string{flagVersion},
			Output:  output,
			Pattern: versionPattern.String(),
		}
	}
	return m[1], nil
}

// SplitCanonicalName splits name-version-build on its last two hyphens.
// Package names may contain hyphens; versions and builds are assumed not to.
func SplitCanonicalName(cname string) (CanonicalName, error) {
	buildSep := strings.LastIndex(cname, "-")
	if buildSep <= 0 {
		return CanonicalName{}, fmt.Errorf("%w: %q", ErrInvalidCanonicalName, cname)
	}
	versionSep := strings.LastIndex(cname[:buildSep], "-")
	if versionSep < 0 {
		return CanonicalName{}, fmt.Errorf("%w: %q", ErrInvalidCanonicalName, cname)
	}
	return CanonicalName{
		Name:    cname[:versionSep],
		Version: cname[versionSep+1 : buildSep],
		Build:   cname[buildSep+1:],
	}, nil
}

// linkedNames maps conda-meta filenames to canonical names, ignoring other files
func linkedNames(filenames []string) PackageSet {
	set := make(PackageSet, len(filenames))
	for _, fn := range filenames {
		if !strings.HasSuffix(fn, MetaSuffix) {
			continue
		}
		set[strings.TrimSuffix(fn, MetaSuffix)] = struct{}{}
	}
	return set
}

// splitAll splits every member of set, sorted by canonical name
func splitAll(set PackageSet) ([]CanonicalName, error) {
	names := set.Sorted()
	out := make([]CanonicalName, 0, len(names))
	for _, n := range names {
		cn, err := SplitCanonicalName(n)
		if err != nil {
			return nil, err
		}
		out = append(out, cn)
	}
	return out, nil
}

// decodeInfo narrows an info response and keeps the raw mapping
func decodeInfo(exe string, args []string, data []byte) (*Info, error) {
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, &MalformedOutputError{Executable: exe, Args: args, Output: data, Err: err}
	}
	if err := json.Unmarshal(data, &info.Raw); err != nil {
		return nil, &MalformedOutputError{Executable: exe, Args: args, Output: data, Err: err}
	}
	return &info, nil
}

// SortedNames returns the package names of a search result in lexical order
func SortedNames(result map[string][]SearchMatch) []string {
	keys := make([]string, 0, len(result))
	for k := range result {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// validationError converts validator output into a ValidationError for op
func validationError(op string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Op: op, Reason: err.Error()}
	}

	fe := verrs[0]
	var reason string
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "min":
		reason = "must have at least " + fe.Param() + " element(s)"
	case "required_without":
		reason = "or " + fe.Param() + " must be specified"
	case "excluded_with":
		reason = "cannot be combined with " + fe.Param()
	case "oneof":
		reason = "must be one of " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		reason = "failed " + fe.Tag() + " validation"
	}
	return &ValidationError{Op: op, Field: fe.Field(), Reason: reason}
}
