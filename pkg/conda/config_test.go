// pkg/conda/config_test.go
package conda

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigPath(t *testing.T) {
	tests := []struct {
		name   string
		target ConfigTarget
		want   []string
	}{
		{"user", ConfigTarget{}, []string{"config", "--get", "--json", "--force"}},
		{"file", ConfigTarget{File: "/etc/team.condarc"}, []string{"config", "--get", "--json", "--force", "--file", "/etc/team.condarc"}},
		{"system", ConfigTarget{System: true}, []string{"config", "--get", "--json", "--force", "--system"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewMockCommandRecorder(MockResponse{Stdout: `{"rc_path": "/home/me/.condarc", "get": {}}`})
			c := newTestClient(t, rec)

			path, err := c.ConfigPath(context.Background(), tt.target)
			require.NoError(t, err)
			assert.Equal(t, "/home/me/.condarc", path)
			assert.Equal(t, tt.want, rec.LastArgs())
		})
	}
}

func TestConfigGet(t *testing.T) {
	rec := NewMockCommandRecorder(MockResponse{Stdout: `{
		"rc_path": "/home/me/.condarc",
		"get": {"channels": ["conda-forge", "defaults"], "always_yes": true}
	}`})
	c := newTestClient(t, rec)

	values, err := c.ConfigGet(context.Background(), ConfigTarget{}, "channels", "always_yes")
	require.NoError(t, err)
	assert.Equal(t, []any{"conda-forge", "defaults"}, values["channels"])
	assert.Equal(t, true, values["always_yes"])
	assert.Equal(t, []string{"config", "--get", "channels", "always_yes", "--json", "--force"}, rec.LastArgs())
}

func TestConfigGet_NothingSet(t *testing.T) {
	rec := NewMockCommandRecorder(MockResponse{Stdout: `{"rc_path": "/home/me/.condarc"}`})
	c := newTestClient(t, rec)

	values, err := c.ConfigGet(context.Background(), ConfigTarget{})
	require.NoError(t, err)
	assert.NotNil(t, values)
	assert.Empty(t, values)
}

func TestConfigWrites(t *testing.T) {
	ctx := context.Background()
	target := ConfigTarget{File: "/tmp/condarc"}

	tests := []struct {
		name string
		call func(*Client) ([]string, error)
		want []string
	}{
		{
			"set",
			func(c *Client) ([]string, error) { return c.ConfigSet(ctx, target, "always_yes", "true") },
			[]string{"config", "--set", "always_yes", "true", "--json", "--force", "--file", "/tmp/condarc"},
		},
		{
			"add",
			func(c *Client) ([]string, error) { return c.ConfigAdd(ctx, target, "channels", "conda-forge") },
			[]string{"config", "--add", "channels", "conda-forge", "--json", "--force", "--file", "/tmp/condarc"},
		},
		{
			"remove",
			func(c *Client) ([]string, error) { return c.ConfigRemove(ctx, target, "channels", "defaults") },
			[]string{"config", "--remove", "channels", "defaults", "--json", "--force", "--file", "/tmp/condarc"},
		},
		{
			"delete",
			func(c *Client) ([]string, error) { return c.ConfigDelete(ctx, target, "channels") },
			[]string{"config", "--remove-key", "channels", "--json", "--force", "--file", "/tmp/condarc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewMockCommandRecorder(MockResponse{Stdout: `{"rc_path": "/tmp/condarc"}`})
			c := newTestClient(t, rec)

			warnings, err := tt.call(c)
			require.NoError(t, err)
			assert.NotNil(t, warnings)
			assert.Empty(t, warnings)
			assert.Equal(t, tt.want, rec.LastArgs())
		})
	}
}

func TestConfigSet_Warnings(t *testing.T) {
	rec := NewMockCommandRecorder(MockResponse{Stdout: `{"rc_path": "/home/me/.condarc", "warnings": ["Key foo is not a known primitive parameter."]}`})
	c := newTestClient(t, rec)

	warnings, err := c.ConfigSet(context.Background(), ConfigTarget{}, "foo", "bar")
	require.NoError(t, err)
	assert.Equal(t, []string{"Key foo is not a known primitive parameter."}, warnings)
}

func TestConfig_EmptyKey(t *testing.T) {
	rec := NewMockCommandRecorder()
	c := newTestClient(t, rec)
	ctx := context.Background()

	_, err := c.ConfigSet(ctx, ConfigTarget{}, "", "x")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = c.ConfigAdd(ctx, ConfigTarget{}, "", "x")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = c.ConfigRemove(ctx, ConfigTarget{}, "", "x")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = c.ConfigDelete(ctx, ConfigTarget{}, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, rec.Invocations)
}

func TestConfig_ReportedError(t *testing.T) {
	rec := NewMockCommandRecorder(MockResponse{Stdout: `{"error": "CondaKeyError: 'channels': value 'x' not present in config"}`})
	c := newTestClient(t, rec)

	_, err := c.ConfigRemove(context.Background(), ConfigTarget{}, "channels", "x")
	assert.ErrorIs(t, err, ErrExternalTool)
}
