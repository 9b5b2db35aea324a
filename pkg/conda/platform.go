// pkg/conda/platform.go
package conda

import (
	"path/filepath"
	"strings"
)

// LayoutFor returns the installation layout used on goos
func LayoutFor(goos string) string {
	if goos == "windows" {
		return LayoutWindows
	}
	return LayoutPOSIX
}

// ExecutablePath returns the path of executable inside an installation rooted at prefix.
// Windows installs keep entry points under Scripts with an .exe suffix; everything
// else uses bin.
func ExecutablePath(prefix, executable, goos string) string {
	if filepath.IsAbs(executable) {
		return executable
	}
	if LayoutFor(goos) == LayoutWindows {
		if !strings.HasSuffix(strings.ToLower(executable), ".exe") {
			executable += ".exe"
		}
		return filepath.Join(prefix, "Scripts", executable)
	}
	return filepath.Join(prefix, "bin", executable)
}

// isWithin reports whether path lies inside (or at) root
func isWithin(path, root string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
