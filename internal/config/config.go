// Package config loads docs2pdf configuration files.
//
// A configuration file is YAML, decoded strictly (unknown keys are errors):
//
//	stylesheet: pdf          # bundled style name or path to a .css file
//	highlight: github        # chroma style for code blocks
//	timeout: 45s
//	assets:
//	  basePath: ./theme      # {basePath}/styles/{name}.css overrides
//	page:
//	  size: a4
//	  orientation: portrait
//	  margin: 0.5
//	links:
//	  prefix: "docs/"
//	slug:
//	  transliterate: true
//	markdown:
//	  rawHTML: true
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-docs2pdf/internal/fileutil"
	"github.com/alnah/go-docs2pdf/internal/yamlutil"
)

// AppDir is the directory under os.UserConfigDir searched for named configs.
const AppDir = "docs2pdf"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength        = 4096
	MaxStyleNameLength   = 64
	MaxPageSizeLength    = 10 // "letter", "a4", "legal"
	MaxOrientationLength = 10 // "portrait", "landscape"
	MaxPrefixLength      = 256
	MaxTimeoutLength     = 20
)

// Config holds the build settings read from a file. Pointer fields
// distinguish "not set" from the zero value.
type Config struct {
	Stylesheet string         `yaml:"stylesheet"`
	Highlight  string         `yaml:"highlight"`
	Timeout    string         `yaml:"timeout"`
	Assets     AssetsConfig   `yaml:"assets"`
	Page       PageConfig     `yaml:"page"`
	Links      LinksConfig    `yaml:"links"`
	Slug       SlugConfig     `yaml:"slug"`
	Markdown   MarkdownConfig `yaml:"markdown"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = bundled styles only
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches, 0 = default
}

// LinksConfig controls cross-document link matching.
type LinksConfig struct {
	Prefix *string `yaml:"prefix"` // nil = "docs/"
}

// SlugConfig controls heading and link slugs.
type SlugConfig struct {
	Transliterate *bool `yaml:"transliterate"` // nil = true
	MaxLength     int   `yaml:"maxLength"`     // 0 = unlimited
	WholeWords    bool  `yaml:"wholeWords"`
}

// MarkdownConfig controls Markdown rendering.
type MarkdownConfig struct {
	RawHTML *bool `yaml:"rawHTML"` // nil = true
}

// DefaultConfig returns an empty configuration; every field falls back to
// the library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for callers who
// construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"stylesheet", c.Stylesheet, MaxPathLength},
		{"highlight", c.Highlight, MaxStyleNameLength},
		{"timeout", c.Timeout, MaxTimeoutLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"page.orientation", c.Page.Orientation, MaxOrientationLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}
	if c.Links.Prefix != nil {
		if err := validateFieldLength("links.prefix", *c.Links.Prefix, MaxPrefixLength); err != nil {
			return err
		}
	}

	if c.Timeout != "" {
		if _, err := c.TimeoutDuration(); err != nil {
			return err
		}
	}
	if c.Page.Margin < 0 {
		return fmt.Errorf("%w: page.margin must not be negative, got %.2f", ErrInvalidValue, c.Page.Margin)
	}
	if c.Slug.MaxLength < 0 {
		return fmt.Errorf("%w: slug.maxLength must not be negative, got %d", ErrInvalidValue, c.Slug.MaxLength)
	}

	return nil
}

// TimeoutDuration parses Timeout. An empty Timeout yields 0.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout %q: %v", ErrInvalidValue, c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidValue, c.Timeout)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := yamlutil.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.Decode(data, &cfg, yamlutil.Strict(), yamlutil.WithSource()); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <UserConfigDir>/docs2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppDir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
