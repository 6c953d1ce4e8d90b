// Package config loads project configuration for the mdtex CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdtex/internal/fileutil"
	"github.com/alnah/go-mdtex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds project layout and execution settings for document renders.
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Exec    ExecConfig    `yaml:"exec"`
}

// ProjectConfig locates the directories script targets resolve against.
type ProjectConfig struct {
	Root   string `yaml:"root"`   // project file root (empty = current directory)
	Assets string `yaml:"assets"` // assets directory (empty = <root>/assets)
}

// ExecConfig describes the supported execution language for evaluable code
// blocks.
type ExecConfig struct {
	Language  string `yaml:"language"`  // default "julia"
	Extension string `yaml:"extension"` // default ".jl"
}

// DefaultConfig returns a configuration rooted at the current directory
// with the default execution language.
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{Root: "."},
		Exec:    ExecConfig{Language: "julia", Extension: ".jl"},
	}
}

// ApplyDefaults fills empty fields with their default values.
func (c *Config) ApplyDefaults() {
	if c.Project.Root == "" {
		c.Project.Root = "."
	}
	if c.Project.Assets == "" {
		c.Project.Assets = filepath.Join(c.Project.Root, "assets")
	}
	if c.Exec.Language == "" {
		c.Exec.Language = "julia"
	}
	if c.Exec.Extension == "" {
		c.Exec.Extension = ".jl"
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml.
// Tries locations in order: current directory, ~/.config/go-mdtex/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mdtex", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
