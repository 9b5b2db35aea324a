// pkg/conda/platform_test.go
package conda

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutablePath(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		executable string
		goos       string
		want       string
	}{
		{"linux", "/opt/conda", "conda", "linux", filepath.Join("/opt/conda", "bin", "conda")},
		{"darwin", "/opt/conda", "mamba", "darwin", filepath.Join("/opt/conda", "bin", "mamba")},
		{"windows", "/c/conda", "conda", "windows", filepath.Join("/c/conda", "Scripts", "conda.exe")},
		{"windows exe suffix kept", "/c/conda", "conda.EXE", "windows", filepath.Join("/c/conda", "Scripts", "conda.EXE")},
		{"absolute", "/opt/conda", "/usr/bin/conda", "linux", "/usr/bin/conda"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExecutablePath(tt.prefix, tt.executable, tt.goos))
		})
	}
}

func TestLayoutFor(t *testing.T) {
	assert.Equal(t, LayoutWindows, LayoutFor("windows"))
	assert.Equal(t, LayoutPOSIX, LayoutFor("linux"))
	assert.Equal(t, LayoutPOSIX, LayoutFor("darwin"))
}

func TestIsWithin(t *testing.T) {
	assert.True(t, isWithin("/opt/conda", "/opt/conda"))
	assert.True(t, isWithin("/opt/conda/pkgs/x.tar.bz2", "/opt/conda"))
	assert.True(t, isWithin("/opt/conda/../conda/envs", "/opt/conda"))
	assert.False(t, isWithin("/opt/conda2/x", "/opt/conda"))
	assert.False(t, isWithin("/tmp/bundle.tar.bz2", "/opt/conda"))
	assert.False(t, isWithin("/opt", "/opt/conda"))
	assert.True(t, isWithin("/opt/conda/..foo", "/opt/conda"))
}
