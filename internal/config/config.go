package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/gerunddev/curlify/internal/rewrite"
)

// Config represents the curlify configuration
type Config struct {
	Style        string   `yaml:"style"`
	Backup       bool     `yaml:"backup"`
	BackupSuffix string   `yaml:"backup_suffix"`
	Smart        bool     `yaml:"smart"`
	Singles      bool     `yaml:"singles"`
	Normalize    bool     `yaml:"normalize"`
	SkipCode     bool     `yaml:"skip_code"`
	Extensions   []string `yaml:"extensions"`
	LogFile      string   `yaml:"log_file,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Style:        "curly",
		Backup:       true,
		BackupSuffix: ".bak",
		Smart:        false,
		Singles:      true,
		Normalize:    true,
		SkipCode:     true,
		Extensions:   []string{".tex", ".txt", ".md", ".markdown", ".rst", ".org"},
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "curlify", "config.yaml")
	}
	return filepath.Join(home, ".config", "curlify", "config.yaml")
}

// Load reads configuration from the config directory
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	// Start from defaults so a sparse config file keeps sane values
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultConfig().Extensions
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Expand paths
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := rewrite.ParseConvention(c.Style); err != nil {
		return err
	}
	if c.BackupSuffix == "" {
		return fmt.Errorf("backup_suffix cannot be empty")
	}
	if c.BackupSuffix[0] != '.' {
		return fmt.Errorf("backup_suffix '%s' must start with a dot", c.BackupSuffix)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions cannot be empty")
	}
	for _, ext := range c.Extensions {
		if ext == "" || ext[0] != '.' {
			return fmt.Errorf("invalid extension '%s': must start with a dot", ext)
		}
	}
	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	if c.LogFile == "" {
		return nil
	}

	expanded, err := expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}
	c.LogFile = expanded

	return nil
}

// RewriteOptions converts the config into rewriter options.
// Validate must have been called first.
func (c *Config) RewriteOptions() rewrite.Options {
	conv, _ := rewrite.ParseConvention(c.Style)
	mode := rewrite.ModeAlternate
	if c.Smart {
		mode = rewrite.ModeSmart
	}
	return rewrite.Options{
		Convention: conv,
		Mode:       mode,
		Doubles:    true,
		Singles:    c.Singles,
		Normalize:  c.Normalize,
		SkipCode:   c.SkipCode,
	}
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
