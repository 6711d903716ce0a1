package assets

import (
	"path/filepath"
	"strings"
)

// DefaultStyleName is the bundled stylesheet used when none is configured.
const DefaultStyleName = "pdf"

// defaultLoader serves the package-level helpers.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a bundled style by name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// StyleNames lists the bundled style names.
func StyleNames() []string {
	return defaultLoader.StyleNames()
}

// ResolveStyle returns CSS for ref, which is either a style name known to
// loader or a path to a .css file. An empty ref selects DefaultStyleName.
func ResolveStyle(loader AssetLoader, ref string) (string, error) {
	if ref == "" {
		ref = DefaultStyleName
	}
	if IsStylePath(ref) {
		return ReadStyleFile(ref)
	}
	return loader.LoadStyle(ref)
}

// IsStylePath reports whether ref names a file rather than a style.
func IsStylePath(ref string) bool {
	return strings.ContainsAny(ref, `/\`) || strings.EqualFold(filepath.Ext(ref), ".css")
}
