package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultValues(t *testing.T) {
	cfg := NewConfig()

	assert.Empty(t, cfg.RenameKeys)
	assert.True(t, cfg.TrailingNewline)
	assert.False(t, cfg.Backup)
}

func TestConfig_LoadFromYAML(t *testing.T) {
	yamlContent := `
rename_keys: "snake"
trailing_newline: false
backup: true
`

	tmpFile, err := os.CreateTemp("", "config_test_*.yml")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(yamlContent)
	require.NoError(t, err)
	_ = tmpFile.Close()

	cfg, err := LoadConfig(tmpFile.Name())
	require.NoError(t, err)

	assert.Equal(t, "snake", cfg.RenameKeys)
	assert.False(t, cfg.TrailingNewline)
	assert.True(t, cfg.Backup)
}

func TestConfig_LoadPartialYAMLKeepsDefaults(t *testing.T) {
	yamlContent := `rename_keys: "camel"`

	tmpFile, err := os.CreateTemp("", "config_partial_*.yml")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(yamlContent)
	require.NoError(t, err)
	_ = tmpFile.Close()

	cfg, err := LoadConfig(tmpFile.Name())
	require.NoError(t, err)

	assert.Equal(t, "camel", cfg.RenameKeys)
	assert.True(t, cfg.TrailingNewline, "omitted settings keep their defaults")
	assert.False(t, cfg.Backup)
}

func TestConfig_LoadNonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/config.yml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no such file or directory")
}

func TestConfig_LoadInvalidYAML(t *testing.T) {
	invalidYAML := `
rename_keys: "snake"
invalid_yaml: [unclosed array
`

	tmpFile, err := os.CreateTemp("", "invalid_*.yml")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(invalidYAML)
	require.NoError(t, err)
	_ = tmpFile.Close()

	_, err = LoadConfig(tmpFile.Name())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestConfig_FindConfigFile(t *testing.T) {
	// Create temp directory structure
	tmpDir, err := os.MkdirTemp("", "config_search_test")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(tmpDir) }()

	// Create nested directory
	nestedDir := filepath.Join(tmpDir, "project", "subdir")
	err = os.MkdirAll(nestedDir, 0o755)
	require.NoError(t, err)

	// Create config file in project root
	configPath := filepath.Join(tmpDir, "project", ".jsonfmt.yml")
	configContent := `rename_keys: "kebab"`
	err = os.WriteFile(configPath, []byte(configContent), 0o644)
	require.NoError(t, err)

	// Change to nested directory
	originalWd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(originalWd) }()

	err = os.Chdir(nestedDir)
	require.NoError(t, err)

	// Find config file - should find it in parent directory
	foundPath := FindConfigFile()
	require.NotEmpty(t, foundPath, "Should find config file")

	foundContent, err := os.ReadFile(foundPath)
	require.NoError(t, err)
	assert.Contains(t, string(foundContent), `rename_keys: "kebab"`)
}

func TestConfig_FindConfigFileNotFound(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "no_config_test")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(tmpDir) }()

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(originalWd) }()

	err = os.Chdir(tmpDir)
	require.NoError(t, err)

	foundPath := FindConfigFile()
	assert.Empty(t, foundPath)
}

func TestLoadConfigWithCLI_Precedence(t *testing.T) {
	configYAML := `
rename_keys: "snake"
trailing_newline: false
`

	tmpFile, err := os.CreateTemp("", "precedence_test_*.yml")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(configYAML)
	require.NoError(t, err)
	_ = tmpFile.Close()

	// CLI flag beats the config file
	cfg, err := LoadConfigWithCLI(tmpFile.Name(), "pascal")
	require.NoError(t, err)
	assert.Equal(t, "pascal", cfg.RenameKeys)
	assert.False(t, cfg.TrailingNewline) // From config file
}

func TestLoadConfigWithCLI_NoOverrides(t *testing.T) {
	configYAML := `rename_keys: "screaming"`

	tmpFile, err := os.CreateTemp("", "precedence_no_override_*.yml")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(configYAML)
	require.NoError(t, err)
	_ = tmpFile.Close()

	cfg, err := LoadConfigWithCLI(tmpFile.Name(), "")
	require.NoError(t, err)

	assert.Equal(t, "screaming", cfg.RenameKeys) // From config file
	assert.True(t, cfg.TrailingNewline)          // Default value
}

func TestLoadConfigWithCLI_BadConfigFile(t *testing.T) {
	_, err := LoadConfigWithCLI("/non/existent/config.yml", "snake")
	assert.Error(t, err)
}
