// Package config loads optional YAML configuration for the mdpaper CLI.
//
// Configuration covers page geometry, footer behavior, and style selection.
// The fixed style sheet itself is not configurable; a config file only
// selects which embedded style (or external CSS file) to use.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// maxConfigSize caps config input to prevent memory exhaustion (1MB).
const maxConfigSize = 1 << 20

// Config holds all CLI configuration.
type Config struct {
	Page   PageConfig   `yaml:"page"`
	Footer FooterConfig `yaml:"footer"`
	Style  string       `yaml:"style"` // style name, CSS file path, or raw CSS
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "a4", "letter", "legal" (default: "a4")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches, 0 = built-in defaults
}

// FooterConfig defines running footer options.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	ShowPageNumber bool   `yaml:"showPageNumber"`
	ShowTitle      bool   `yaml:"showTitle"`
	Position       string `yaml:"position"` // title side: "left", "center", "right"
}

// DefaultConfig returns the built-in defaults: A4 portrait with the
// standard footer and the default embedded style.
func DefaultConfig() *Config {
	return &Config{
		Page: PageConfig{
			Size:        "a4",
			Orientation: "portrait",
		},
		Footer: FooterConfig{
			Enabled:        true,
			ShowPageNumber: true,
			ShowTitle:      true,
			Position:       "right",
		},
		Style: "default",
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their defaults.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
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

	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrConfigParse, maxConfigSize)
	}

	// Start from defaults so absent fields keep their default values.
	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Page.Size) {
	case "", "a4", "letter", "legal":
	default:
		return fmt.Errorf("page.size: invalid value %q (must be a4, letter, or legal)", c.Page.Size)
	}

	switch strings.ToLower(c.Page.Orientation) {
	case "", "portrait", "landscape":
	default:
		return fmt.Errorf("page.orientation: invalid value %q (must be portrait or landscape)", c.Page.Orientation)
	}

	if c.Page.Margin != 0 && (c.Page.Margin < 0.25 || c.Page.Margin > 3.0) {
		return fmt.Errorf("page.margin: must be between 0.25 and 3.0 inches, got %.2f", c.Page.Margin)
	}

	switch strings.ToLower(c.Footer.Position) {
	case "", "left", "center", "right":
	default:
		return fmt.Errorf("footer.position: invalid value %q (must be left, center, or right)", c.Footer.Position)
	}

	return nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/mdpaper/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "mdpaper", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
