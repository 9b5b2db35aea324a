// pkg/platform/resolver.go
package platform

import (
	"fmt"
	"path/filepath"
)

// ResolveFrontend picks the executable to drive, based on platform and configuration.
//
// Priority:
//  1. A configured absolute path, used as-is
//  2. A configured name, which must be available
//  3. The preferred available frontend
//
// When a root prefix is configured the executable lives under it, so
// availability on PATH is not required.
func ResolveFrontend(p *Platform, configured string, hasRootPrefix bool) (string, error) {
	if configured != "" {
		if filepath.IsAbs(configured) || hasRootPrefix {
			return configured, nil
		}
		if !contains(p.Available, configured) {
			return "", fmt.Errorf("frontend '%s' is not available on PATH", configured)
		}
		return configured, nil
	}

	if p.Preferred != "" {
		return p.Preferred, nil
	}
	if hasRootPrefix {
		return Frontends[0], nil
	}
	return "", fmt.Errorf("no conda frontend available (looked for %v)", Frontends)
}
