// pkg/env/environment.go
package env

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by LookPath when no PATH entry holds the command
var ErrNotFound = errors.New("executable file not found in environment PATH")

// defaultPathExt is used on Windows when PATHEXT is unset
const defaultPathExt = ".com;.exe;.bat;.cmd"

// New creates an Environment for prefix using the layout of goos
func New(prefix, goos string) *Environment {
	return &Environment{
		Prefix: prefix,
		GOOS:   goos,
	}
}

// GetBinaryPaths returns the absolute binary directories of the environment
func (e *Environment) GetBinaryPaths() []string {
	layout := GetLayout(e.GOOS)
	paths := make([]string, 0, len(layout.Binaries))
	for _, rel := range layout.Binaries {
		paths = append(paths, filepath.Join(e.Prefix, rel))
	}
	return paths
}

// BuildEnv returns a copy of base with the environment's binary directories
// prepended to PATH. base is not modified. PATH is added if base lacks it.
func (e *Environment) BuildEnv(base []string) []string {
	sep := listSeparator(e.GOOS)
	prefix := strings.Join(e.GetBinaryPaths(), sep)

	out := make([]string, 0, len(base)+1)
	found := false
	for _, kv := range base {
		key, value, ok := strings.Cut(kv, "=")
		if ok && !found && isPathKey(key, e.GOOS) {
			found = true
			if value == "" {
				kv = key + "=" + prefix
			} else {
				kv = key + "=" + prefix + sep + value
			}
		}
		out = append(out, kv)
	}
	if !found {
		out = append(out, PathVar+"="+prefix)
	}
	return out
}

// LookupPath returns the PATH value in environ, if any
func LookupPath(environ []string, goos string) (string, bool) {
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if ok && isPathKey(key, goos) {
			return value, true
		}
	}
	return "", false
}

// LookPath resolves file against the PATH that BuildEnv(base) produces, so the
// environment's own binaries win over the caller's. Names containing a path
// separator are returned unchanged.
func (e *Environment) LookPath(file string, base []string) (string, error) {
	if strings.ContainsRune(file, '/') || (e.GOOS == "windows" && strings.ContainsRune(file, '\\')) {
		return file, nil
	}

	environ := e.BuildEnv(base)
	pathValue, _ := LookupPath(environ, e.GOOS)

	candidates := []string{file}
	if e.GOOS == "windows" && filepath.Ext(file) == "" {
		candidates = candidates[:0]
		for _, ext := range strings.Split(pathExt(environ), ";") {
			if ext != "" {
				candidates = append(candidates, file+ext)
			}
		}
	}

	for _, dir := range strings.Split(pathValue, listSeparator(e.GOOS)) {
		if dir == "" {
			continue
		}
		for _, name := range candidates {
			path := filepath.Join(dir, name)
			if isExecutable(path, e.GOOS) {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, file)
}

func pathExt(environ []string) string {
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if ok && strings.EqualFold(key, "PATHEXT") && value != "" {
			return strings.ToLower(value)
		}
	}
	return defaultPathExt
}

// isExecutable reports whether path is a regular file that can be run.
// Windows has no execute bit; the extension decides.
func isExecutable(path, goos string) bool {
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return false
	}
	if goos == "windows" {
		return true
	}
	return fi.Mode().Perm()&0o111 != 0
}
