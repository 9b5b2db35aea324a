// pkg/env/constants.go
package env

import "strings"

// PathVar is the variable rewritten by BuildEnv
const PathVar = "PATH"

// GetLayout returns the environment layout for goos
func GetLayout(goos string) Layout {
	switch goos {
	case "windows":
		return getWindowsLayout()
	default:
		return getPOSIXLayout()
	}
}

// Windows environments: Scripts/ holds entry points, python.exe sits at the root
func getWindowsLayout() Layout {
	return Layout{
		Binaries: []string{
			"Scripts",
			".",
		},
	}
}

// Linux and macOS environments use a single bin/
func getPOSIXLayout() Layout {
	return Layout{
		Binaries: []string{
			"bin",
		},
	}
}

// listSeparator returns the PATH list separator for goos
func listSeparator(goos string) string {
	if goos == "windows" {
		return ";"
	}
	return ":"
}

// isPathKey reports whether key names PATH. Windows variable names are case-insensitive.
func isPathKey(key, goos string) bool {
	if goos == "windows" {
		return strings.EqualFold(key, PathVar)
	}
	return key == PathVar
}
