// pkg/platform/detect_test.go
package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onPath(names ...string) func(string) bool {
	return func(name string) bool {
		return contains(names, name)
	}
}

func TestSubdir(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
		wantErr      bool
	}{
		{"linux", "amd64", "linux-64", false},
		{"linux", "386", "linux-32", false},
		{"linux", "arm64", "linux-aarch64", false},
		{"linux", "ppc64le", "linux-ppc64le", false},
		{"linux", "s390x", "linux-s390x", false},
		{"darwin", "amd64", "osx-64", false},
		{"darwin", "arm64", "osx-arm64", false},
		{"windows", "amd64", "win-64", false},
		{"windows", "386", "win-32", false},
		{"windows", "arm64", "win-arm64", false},
		{"freebsd", "amd64", "", true},
		{"linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := Subdir(tt.goos, tt.goarch)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_PrefersInOrder(t *testing.T) {
	p, err := detect("linux", "amd64", onPath("micromamba", "mamba"))
	require.NoError(t, err)

	assert.Equal(t, "linux-64", p.Subdir)
	assert.Equal(t, []string{"mamba", "micromamba"}, p.Available)
	assert.Equal(t, "mamba", p.Preferred)
	assert.Contains(t, p.String(), "linux/amd64 [linux-64]")
}

func TestDetect_NothingAvailable(t *testing.T) {
	p, err := detect("darwin", "arm64", onPath())
	require.NoError(t, err)
	assert.Empty(t, p.Available)
	assert.Empty(t, p.Preferred)
}

func TestDetect_UnsupportedPlatform(t *testing.T) {
	_, err := detect("plan9", "amd64", onPath("conda"))
	assert.Error(t, err)
}

func TestResolveFrontend(t *testing.T) {
	withConda := &Platform{Available: []string{"conda", "mamba"}, Preferred: "conda"}
	empty := &Platform{Available: []string{}}

	tests := []struct {
		name          string
		p             *Platform
		configured    string
		hasRootPrefix bool
		want          string
		wantErr       bool
	}{
		{"preferred", withConda, "", false, "conda", false},
		{"configured available", withConda, "mamba", false, "mamba", false},
		{"configured missing", withConda, "micromamba", false, "", true},
		{"configured under root prefix", empty, "micromamba", true, "micromamba", false},
		{"absolute path", empty, "/opt/conda/bin/conda", false, "/opt/conda/bin/conda", false},
		{"root prefix default", empty, "", true, "conda", false},
		{"nothing", empty, "", false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFrontend(tt.p, tt.configured, tt.hasRootPrefix)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
