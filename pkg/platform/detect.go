// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
)

// Frontends are the conda-compatible executables probed on PATH, in preference order
var Frontends = []string{"conda", "mamba", "micromamba"}

// Platform represents the detected system platform
type Platform struct {
	OS        string   // linux, darwin, windows
	Arch      string   // amd64, arm64, 386, ppc64le
	Subdir    string   // conda subdir, e.g. linux-64
	Available []string // Available conda frontends
	Preferred string   // Preferred frontend
}

// Detect detects the current platform and the conda frontends on PATH
func Detect() (*Platform, error) {
	return detect(runtime.GOOS, runtime.GOARCH, commandExists)
}

func detect(goos, goarch string, exists func(string) bool) (*Platform, error) {
	subdir, err := Subdir(goos, goarch)
	if err != nil {
		return nil, err
	}

	p := &Platform{
		OS:        goos,
		Arch:      goarch,
		Subdir:    subdir,
		Available: []string{},
	}

	for _, name := range Frontends {
		if exists(name) {
			p.Available = append(p.Available, name)
		}
	}

	if len(p.Available) > 0 {
		p.Preferred = p.Available[0]
	}

	return p, nil
}

// Subdir maps a Go OS/arch pair to the conda platform subdir
func Subdir(goos, goarch string) (string, error) {
	var osPart string
	switch goos {
	case "linux":
		osPart = "linux"
	case "darwin":
		osPart = "osx"
	case "windows":
		osPart = "win"
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}

	var archPart string
	switch goarch {
	case "amd64":
		archPart = "64"
	case "386":
		archPart = "32"
	case "arm64":
		if goos == "linux" {
			archPart = "aarch64"
		} else {
			archPart = "arm64"
		}
	case "ppc64le":
		archPart = "ppc64le"
	case "s390x":
		archPart = "s390x"
	default:
		return "", fmt.Errorf("unsupported architecture: %s/%s", goos, goarch)
	}

	return osPart + "-" + archPart, nil
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s [%s] (available: %v, preferred: %s)",
		p.OS, p.Arch, p.Subdir, p.Available, p.Preferred)
}
