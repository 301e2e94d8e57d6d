package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for jsonfmt
type Config struct {
	// RenameKeys rewrites object keys to the named style before
	// printing: snake, camel, pascal, kebab or screaming. Empty
	// leaves keys untouched.
	RenameKeys string `yaml:"rename_keys"`

	// TrailingNewline appends a final newline to rendered output.
	TrailingNewline bool `yaml:"trailing_newline"`

	// Backup keeps the previous content as <file>.orig when
	// rewriting a file in place.
	Backup bool `yaml:"backup"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		RenameKeys:      "",
		TrailingNewline: true,
		Backup:          false,
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults so omitted settings keep their default values
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonfmt.yml", ".jsonfmt.yaml", "jsonfmt.yml", "jsonfmt.yaml"}

	// Start from current directory
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		// Move up one directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// LoadConfigWithCLI loads config with CLI argument precedence: CLI
// flags beat the config file, the config file beats defaults. An
// empty configPath falls back to FindConfigFile discovery.
func LoadConfigWithCLI(configPath, cliRenameKeys string) (*Config, error) {
	cfg := NewConfig()

	if configPath == "" {
		configPath = FindConfigFile()
	}
	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliRenameKeys != "" {
		cfg.RenameKeys = cliRenameKeys
	}

	return cfg, nil
}
