// cmd/gasorganizer/config.go
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/gagin/gasorganizer/analytictools"
)

// Config holds the settings read from config.toml.
type Config struct {
	MaxFiles        any      `toml:"max_files"` // validated with analytictools.ParseMaxFiles
	UseGitignore    *bool    `toml:"use_gitignore"`
	ExcludePatterns []string `toml:"exclude_patterns"`
	DestSubdir      *string  `toml:"dest_subdir"`
}

var defaultConfig = Config{
	MaxFiles:        analytictools.DefaultMaxFiles,
	UseGitignore:    func(b bool) *bool { return &b }(true),
	ExcludePatterns: []string{},
	DestSubdir:      func(s string) *string { return &s }("by_gas"),
}

// loadConfig finds and loads the configuration
func loadConfig(customConfigPath string) (Config, error) {
	cfg := defaultConfig
	configFile := ""
	isCustomPath := customConfigPath != ""

	if isCustomPath {
		var err error
		configFile, err = filepath.Abs(customConfigPath)
		if err != nil {
			slog.Error("Could not determine absolute path for custom config file.", "path", customConfigPath, "error", err)
			return defaultConfig, fmt.Errorf("invalid custom config path '%s': %w", customConfigPath, err)
		}
		slog.Debug("Attempting to load configuration from custom path.", "resolved_absolute_path", configFile)
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			slog.Warn("Could not determine user home directory. Using default settings only.", "error", err)
			return cfg, nil
		}
		configFile = filepath.Join(homeDir, ".config", "gasorganizer", "config.toml")
		slog.Debug("Attempting to load configuration from default path.", "path", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if isCustomPath {
				slog.Error("Specified configuration file not found.", "path_read_attempted", configFile)
				return defaultConfig, fmt.Errorf("specified configuration file '%s' not found", configFile)
			}
			slog.Info("No default config file found, using default settings.", "path", configFile)
			return cfg, nil
		}
		slog.Error("Error reading config file.", "path", configFile, "error", err)
		return defaultConfig, fmt.Errorf("error reading config file '%s': %w", configFile, err)
	}

	if len(content) == 0 {
		slog.Info("Configuration file is empty, using default settings.", "path", configFile)
		return cfg, nil
	}

	slog.Info("Loading configuration.", "path", configFile)
	var loadedCfg Config
	if meta, err := toml.Decode(string(content), &loadedCfg); err != nil {
		slog.Error("Error decoding TOML config file, using default settings.", "path", configFile, "error", err)
		return defaultConfig, fmt.Errorf("error decoding TOML from '%s': %w", configFile, err)
	} else if len(meta.Undecoded()) > 0 {
		slog.Warn("Unrecognized keys found in config file.", "path", configFile, "keys", meta.Undecoded())
	}

	if loadedCfg.MaxFiles == nil {
		loadedCfg.MaxFiles = defaultConfig.MaxFiles
	}
	if _, err := analytictools.ParseMaxFiles(loadedCfg.MaxFiles); err != nil {
		slog.Error("Invalid max_files in config file, using default settings.", "path", configFile, "value", loadedCfg.MaxFiles, "error", err)
		return defaultConfig, fmt.Errorf("invalid max_files in '%s': %w", configFile, err)
	}
	cfg = loadedCfg

	// Decoding starts from a zero Config so the shared defaults are never written through.
	if cfg.UseGitignore == nil {
		cfg.UseGitignore = defaultConfig.UseGitignore
		slog.Debug("Config key 'use_gitignore' not set, using default.", "value", *cfg.UseGitignore)
	}
	if cfg.DestSubdir == nil || *cfg.DestSubdir == "" {
		cfg.DestSubdir = defaultConfig.DestSubdir
		slog.Debug("Config key 'dest_subdir' not set, using default.", "value", *cfg.DestSubdir)
	}
	if cfg.ExcludePatterns == nil {
		cfg.ExcludePatterns = []string{}
	}

	slog.Debug("Configuration loaded successfully.",
		"source", configFile,
		"max_files", cfg.MaxFiles,
		"use_gitignore", *cfg.UseGitignore,
		"exclude_patterns", cfg.ExcludePatterns,
		"dest_subdir", *cfg.DestSubdir,
	)

	return cfg, nil
}
