// Package hints returns short suggestions appended to CLI error messages,
// each as "\n  hint: <text>".
package hints

import (
	"strings"

	"github.com/alnah/go-docs2pdf/internal/fileutil"
)

// IsInContainer reports whether /.dockerenv exists.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// Getenv looks up an environment variable; os.Getenv in production.
type Getenv func(string) string

// ciVars are set by common CI services.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// InCI reports whether any common CI variable is set.
func InCI(getenv Getenv) bool {
	for _, v := range ciVars {
		if getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect suggests the Rod variables that fit the environment,
// then the doctor command.
func ForBrowserConnect(getenv Getenv) string {
	var tips []string
	if getenv("ROD_NO_SANDBOX") != "1" && (InCI(getenv) || IsInContainer()) {
		tips = append(tips, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if getenv("ROD_BROWSER_BIN") == "" {
		tips = append(tips, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	tips = append(tips, "run 'docs2pdf doctor' to check the setup")
	return formatHints(tips)
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documentation sets, use --timeout (e.g. --timeout 2m)")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path, or creating the file in the user config
// directory when one of the searched paths is there.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "docs2pdf") && strings.ContainsAny(p, `/\`) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("the output directory is not created; check it exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a path to a .css file")
}

// ForNavigation returns hints for navigation file errors.
func ForNavigation() string {
	return format("each nav entry must be a single 'Title: path.md' mapping or a 'Title:' with a nested list")
}

// ForTruncate returns a hint for slug truncation failures.
func ForTruncate() string {
	return format("raise slug.maxLength or set slug.wholeWords: false")
}

// ForInputNotFound returns a hint for missing Markdown inputs.
func ForInputNotFound() string {
	return format("input paths are relative to the working directory; navigation paths are relative to the navigation file")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
