// pkg/env/environment_test.go
package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBinaryPaths(t *testing.T) {
	posix := New("/opt/conda/envs/a", "linux")
	assert.Equal(t, []string{filepath.Join("/opt/conda/envs/a", "bin")}, posix.GetBinaryPaths())

	win := New("/c/conda/envs/a", "windows")
	assert.Equal(t, []string{
		filepath.Join("/c/conda/envs/a", "Scripts"),
		"/c/conda/envs/a",
	}, win.GetBinaryPaths())
}

func TestBuildEnv(t *testing.T) {
	bin := filepath.Join("/envs/a", "bin")

	tests := []struct {
		name string
		base []string
		want []string
	}{
		{
			"prepends",
			[]string{"HOME=/home/me", "PATH=/usr/bin:/bin"},
			[]string{"HOME=/home/me", "PATH=" + bin + ":/usr/bin:/bin"},
		},
		{
			"adds missing",
			[]string{"HOME=/home/me"},
			[]string{"HOME=/home/me", "PATH=" + bin},
		},
		{
			"empty value",
			[]string{"PATH="},
			[]string{"PATH=" + bin},
		},
		{
			"only first PATH rewritten",
			[]string{"PATH=/usr/bin", "PATH=/other"},
			[]string{"PATH=" + bin + ":/usr/bin", "PATH=/other"},
		},
		{
			"case sensitive on posix",
			[]string{"Path=/usr/bin"},
			[]string{"Path=/usr/bin", "PATH=" + bin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := append([]string(nil), tt.base...)
			got := New("/envs/a", "linux").BuildEnv(base)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.base, base, "base must not be modified")
		})
	}
}

func TestBuildEnv_Windows(t *testing.T) {
	e := New("/c/envs/a", "windows")
	got := e.BuildEnv([]string{`Path=C:\Windows`})

	want := "Path=" + filepath.Join("/c/envs/a", "Scripts") + ";" + "/c/envs/a" + `;C:\Windows`
	assert.Equal(t, []string{want}, got)
}

func TestLookupPath(t *testing.T) {
	v, ok := LookupPath([]string{"A=1", "PATH=/bin"}, "linux")
	assert.True(t, ok)
	assert.Equal(t, "/bin", v)

	_, ok = LookupPath([]string{"Path=/bin"}, "linux")
	assert.False(t, ok)

	v, ok = LookupPath([]string{"Path=C:\\bin"}, "windows")
	assert.True(t, ok)
	assert.Equal(t, "C:\\bin", v)
}

func writeFile(t *testing.T, path string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), mode))
}

func TestLookPath_PrefersEnvironment(t *testing.T) {
	prefix := t.TempDir()
	other := t.TempDir()
	want := filepath.Join(prefix, "bin", "tool")
	writeFile(t, want, 0o755)
	writeFile(t, filepath.Join(other, "tool"), 0o755)

	got, err := New(prefix, "linux").LookPath("tool", []string{"PATH=" + other})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLookPath_FallsBackToBasePath(t *testing.T) {
	other := t.TempDir()
	want := filepath.Join(other, "tool")
	writeFile(t, want, 0o755)

	got, err := New(t.TempDir(), "linux").LookPath("tool", []string{"PATH=" + other})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLookPath_SkipsNonExecutable(t *testing.T) {
	prefix := t.TempDir()
	writeFile(t, filepath.Join(prefix, "bin", "tool"), 0o644)
	require.NoError(t, os.MkdirAll(filepath.Join(prefix, "bin", "dir"), 0o755))

	_, err := New(prefix, "linux").LookPath("tool", nil)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = New(prefix, "linux").LookPath("dir", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookPath_PathsUnchanged(t *testing.T) {
	e := New(t.TempDir(), "linux")

	got, err := e.LookPath("/usr/bin/env", nil)
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/env", got)

	got, err = e.LookPath("./run.sh", nil)
	require.NoError(t, err)
	assert.Equal(t, "./run.sh", got)
}

func TestLookPath_WindowsExtensions(t *testing.T) {
	prefix := t.TempDir()
	want := filepath.Join(prefix, "Scripts", "pip.exe")
	writeFile(t, want, 0o644)
	writeFile(t, filepath.Join(prefix, "python.exe"), 0o644)

	e := New(prefix, "windows")
	got, err := e.LookPath("pip", []string{"PATHEXT=.EXE;.BAT"})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = e.LookPath("python", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(prefix, "python.exe"), got)

	_, err = e.LookPath("conda", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
