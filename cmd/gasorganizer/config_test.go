package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gagin/gasorganizer/analytictools"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_DefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	setupTestLogger(t)

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, cfg, "no file means defaults")

	configDir := filepath.Join(home, ".config", "gasorganizer")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("max_files = 7\n"), 0644))

	cfg, err = loadConfig("")
	require.NoError(t, err)
	maxFiles, err := analytictools.ParseMaxFiles(cfg.MaxFiles)
	require.NoError(t, err)
	assert.Equal(t, 7, maxFiles)
	assert.True(t, *cfg.UseGitignore)
	assert.Equal(t, "by_gas", *cfg.DestSubdir)
	assert.Empty(t, cfg.ExcludePatterns)
}

func TestLoadConfig_CustomFile(t *testing.T) {
	setupTestLogger(t)
	path := writeConfig(t, `
max_files = 5
use_gitignore = false
exclude_patterns = ["drafts", "*_backup.csv"]
dest_subdir = "gases"
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	maxFiles, err := analytictools.ParseMaxFiles(cfg.MaxFiles)
	require.NoError(t, err)
	assert.Equal(t, 5, maxFiles)
	assert.False(t, *cfg.UseGitignore)
	assert.Equal(t, []string{"drafts", "*_backup.csv"}, cfg.ExcludePatterns)
	assert.Equal(t, "gases", *cfg.DestSubdir)
}

func TestLoadConfig_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		missing     bool
		errIs       error
		errContains string
	}{
		{name: "Missing custom file", missing: true, errContains: "not found"},
		{name: "Malformed TOML", content: "max_files = [", errContains: "error decoding TOML"},
		{name: "Non-integer max_files", content: `max_files = "three"`, errIs: analytictools.ErrInvalidArgumentType, errContains: "maxfiles must be an integer"},
		{name: "Float max_files", content: `max_files = 2.5`, errIs: analytictools.ErrInvalidArgumentType},
		{name: "Zero max_files", content: `max_files = 0`, errIs: analytictools.ErrInvalidArgumentValue, errContains: "maxfiles must be greater or equal to 1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupTestLogger(t)
			path := filepath.Join(t.TempDir(), "absent.toml")
			if !tc.missing {
				path = writeConfig(t, tc.content)
			}

			cfg, err := loadConfig(path)
			require.Error(t, err)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			}
			if tc.errContains != "" {
				assert.Contains(t, err.Error(), tc.errContains)
			}
			assert.Equal(t, defaultConfig, cfg)
		})
	}
}

func TestLoadConfig_EmptyAndUnknownKeys(t *testing.T) {
	_, logBuf := setupTestLogger(t)

	cfg, err := loadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, cfg)

	cfg, err = loadConfig(writeConfig(t, "max_files = 4\ncolour = \"red\"\n"))
	require.NoError(t, err)
	assert.EqualValues(t, 4, cfg.MaxFiles)
	assert.Contains(t, logBuf.String(), "Unrecognized keys found in config file.")
	assert.Contains(t, logBuf.String(), "colour")
}
