// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// RootPrefixEnv overrides the configured root prefix
const RootPrefixEnv = "CONDAKIT_ROOT_PREFIX"

// Config holds condakit configuration
type Config struct {
	RootPrefix         string `yaml:"root_prefix"`
	Executable         string `yaml:"executable"`
	DiscoverRootPrefix bool   `yaml:"discover_root_prefix"`
	Debug              bool   `yaml:"debug"`
	LogLevel           string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		RootPrefix:         os.Getenv(RootPrefixEnv),
		Executable:         "", // Auto-detect
		DiscoverRootPrefix: true,
		Debug:              false,
		LogLevel:           "info",
	}
}

// DefaultPath returns $HOME/.config/condakit/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "condakit", "config.yaml"), nil
}

// LoadConfig loads configuration from file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if prefix := os.Getenv(RootPrefixEnv); prefix != "" {
		cfg.RootPrefix = prefix
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks field values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
