package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alnah/go-docs2pdf/internal/config"
)

// envPrefix marks the variables this tool reads.
const envPrefix = "DOCS2PDF_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // DOCS2PDF_CONFIG: config file name or path
	Timeout    time.Duration // DOCS2PDF_TIMEOUT: PDF render timeout
	Style      string        // DOCS2PDF_STYLE: style name or .css path
	Highlight  string        // DOCS2PDF_HIGHLIGHT: chroma style
	PageSize   string        // DOCS2PDF_PAGE_SIZE: letter, a4, legal
	LinkPrefix *string       // DOCS2PDF_LINK_PREFIX: may be set to ""
}

// knownEnvVars lists valid DOCS2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"DOCS2PDF_CONFIG":      true,
	"DOCS2PDF_TIMEOUT":     true,
	"DOCS2PDF_STYLE":       true,
	"DOCS2PDF_HIGHLIGHT":   true,
	"DOCS2PDF_PAGE_SIZE":   true,
	"DOCS2PDF_LINK_PREFIX": true,
	"DOCS2PDF_CONTAINER":   true, // read by doctor
}

// loadEnvConfig reads configuration from the environment.
// An unparsable or non-positive DOCS2PDF_TIMEOUT is ignored.
func loadEnvConfig(env *Environment) *envConfig {
	cfg := &envConfig{
		ConfigPath: env.getenv("DOCS2PDF_CONFIG"),
		Style:      env.getenv("DOCS2PDF_STYLE"),
		Highlight:  env.getenv("DOCS2PDF_HIGHLIGHT"),
		PageSize:   env.getenv("DOCS2PDF_PAGE_SIZE"),
	}

	if timeout := env.getenv("DOCS2PDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	for _, kv := range env.environ() {
		if value, ok := strings.CutPrefix(kv, "DOCS2PDF_LINK_PREFIX="); ok {
			cfg.LinkPrefix = &value
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized DOCS2PDF_* variables.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides cfg with every variable that is set.
// Flags are merged afterwards: defaults < config file < environment < flags.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" {
		cfg.Stylesheet = env.Style
	}
	if env.Highlight != "" {
		cfg.Highlight = env.Highlight
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
	if env.LinkPrefix != nil {
		prefix := *env.LinkPrefix
		cfg.Links.Prefix = &prefix
	}
}
