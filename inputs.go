package docs2pdf

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-docs2pdf/internal/nav"
)

// NavigationFile is the input spec that switches to navigation mode.
const NavigationFile = "mkdocs.yml"

// sources is the ordered document list of one build.
type sources struct {
	// declared are the paths as written in the input spec or navigation,
	// used for link matching.
	declared []string
	// baseDir is joined to relative declared paths for reading.
	// Empty means the working directory.
	baseDir string
}

// resolveSources expands a request into its document list.
func resolveSources(req Request) (*sources, error) {
	navPath := req.NavPath
	if navPath == "" && req.Inputs == NavigationFile {
		navPath = NavigationFile
	}
	if navPath != "" {
		f, err := nav.Load(navPath)
		if err != nil {
			return nil, fmt.Errorf("resolving inputs: %w", err)
		}
		return &sources{declared: f.Paths(), baseDir: f.Dir}, nil
	}

	return &sources{declared: splitInputs(req.Inputs)}, nil
}

// splitInputs splits a comma-separated list, trimming blanks and dropping
// empty entries.
func splitInputs(spec string) []string {
	paths := []string{}
	for _, p := range strings.Split(spec, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// readPath returns where the declared path p is read from.
func (s *sources) readPath(p string) string {
	if s.baseDir == "" || s.baseDir == "." || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.baseDir, p)
}
