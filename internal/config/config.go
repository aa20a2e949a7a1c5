package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultLogCount is the number of commits `log` shows without an argument
const DefaultLogCount = 10

// RepoConfigFile is the name of the per-repository file inside the git directory
const RepoConfigFile = "gitpro.yml"

// MatchMode controls how branch patterns are applied to branch names
type MatchMode string

const (
	// MatchFull requires the pattern to match the whole branch name
	MatchFull MatchMode = "full"
	// MatchSubstring accepts a match anywhere in the branch name
	MatchSubstring MatchMode = "substring"
)

// ColorMode controls styled output
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds the merged settings
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Branch BranchConfig `yaml:"branch"`
	Color  ColorMode    `yaml:"color"`
}

// LogConfig holds the `log` section
type LogConfig struct {
	Count int    `yaml:"count"`
	File  string `yaml:"file"`
}

// BranchConfig holds the `branch` section
type BranchConfig struct {
	PatternMatch MatchMode `yaml:"patternMatch"`
}

// Default returns the settings used when no file sets a key
func Default() *Config {
	return &Config{
		Log:    LogConfig{Count: DefaultLogCount},
		Branch: BranchConfig{PatternMatch: MatchFull},
		Color:  ColorAuto,
	}
}

// UserConfigPath returns the user-level config file location
func UserConfigPath() (string, error) {
	if path := os.Getenv("GITPRO_CONFIG"); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "git-pro", "config.yml"), nil
}

// Load reads the user file and then the repository file found in gitDir.
// Either path may be empty. Missing files are skipped.
func Load(userPath, gitDir string) (*Config, error) {
	cfg := Default()

	paths := []string{userPath}
	if gitDir != "" {
		paths = append(paths, filepath.Join(gitDir, RepoConfigFile))
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = ColorNever
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFile decodes a YAML file on top of the current values
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate rejects values no command can act on
func (c *Config) Validate() error {
	if c.Log.Count < 0 {
		return fmt.Errorf("invalid log.count %d: must not be negative", c.Log.Count)
	}
	switch c.Branch.PatternMatch {
	case MatchFull, MatchSubstring:
	default:
		return fmt.Errorf("invalid branch.patternMatch %q: expected %q or %q", c.Branch.PatternMatch, MatchFull, MatchSubstring)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q: expected auto, always or never", c.Color)
	}
	return nil
}
