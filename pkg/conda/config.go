// pkg/conda/config.go
package conda

import "context"

func (t ConfigTarget) args() []string {
	args := []string{flagJSON, flagForce}
	if t.File != "" {
		args = append(args, "--file", t.File)
	}
	if t.System {
		args = append(args, "--system")
	}
	return args
}

// configResponse covers the fields of every `conda config --json` reply
type configResponse struct {
	RCPath   string         `json:"rc_path"`
	Get      map[string]any `json:"get"`
	Warnings []string       `json:"warnings"`
}

func (c *Client) config(ctx context.Context, t ConfigTarget, args ...string) (*configResponse, error) {
	full := append([]string{cmdConfig}, args...)
	full = append(full, t.args()...)

	var resp configResponse
	if err := c.InvokeJSON(ctx, full, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ConfigPath returns the path of the condarc selected by t
func (c *Client) ConfigPath(ctx context.Context, t ConfigTarget) (string, error) {
	resp, err := c.config(ctx, t, "--get")
	if err != nil {
		return "", err
	}
	return resp.RCPath, nil
}

// ConfigGet returns the values of keys, or every set key when none are given
func (c *Client) ConfigGet(ctx context.Context, t ConfigTarget, keys ...string) (map[string]any, error) {
	resp, err := c.config(ctx, t, append([]string{"--get"}, keys...)...)
	if err != nil {
		return nil, err
	}
	if resp.Get == nil {
		return map[string]any{}, nil
	}
	return resp.Get, nil
}

// ConfigSet sets a boolean or string key and returns conda's warnings
func (c *Client) ConfigSet(ctx context.Context, t ConfigTarget, key, value string) ([]string, error) {
	if key == "" {
		return nil, &ValidationError{Op: cmdConfig, Field: "key", Reason: "is required"}
	}
	return c.configWarnings(ctx, t, "--set", key, value)
}

// ConfigAdd prepends value to a list key and returns conda's warnings
func (c *Client) ConfigAdd(ctx context.Context, t ConfigTarget, key, value string) ([]string, error) {
	if key == "" {
		return nil, &ValidationError{Op: cmdConfig, Field: "key", Reason: "is required"}
	}
	return c.configWarnings(ctx, t, "--add", key, value)
}

// ConfigRemove removes value from a list key and returns conda's warnings
func (c *Client) ConfigRemove(ctx context.Context, t ConfigTarget, key, value string) ([]string, error) {
	if key == "" {
		return nil, &ValidationError{Op: cmdConfig, Field: "key", Reason: "is required"}
	}
	return c.configWarnings(ctx, t, "--remove", key, value)
}

// ConfigDelete removes a key entirely and returns conda's warnings
func (c *Client) ConfigDelete(ctx context.Context, t ConfigTarget, key string) ([]string, error) {
	if key == "" {
		return nil, &ValidationError{Op: cmdConfig, Field: "key", Reason: "is required"}
	}
	return c.configWarnings(ctx, t, "--remove-key", key)
}

func (c *Client) configWarnings(ctx context.Context, t ConfigTarget, args ...string) ([]string, error) {
	resp, err := c.config(ctx, t, args...)
	if err != nil {
		return nil, err
	}
	if resp.Warnings == nil {
		return []string{}, nil
	}
	return resp.Warnings, nil
}
