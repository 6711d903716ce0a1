// Package nav reads documentation-site navigation files (mkdocs.yml style)
// and flattens their nested table of contents into an ordered list of
// document paths.
//
// A navigation file looks like:
//
//	docs_dir: docs
//	nav:
//	  - Home: index.md
//	  - Users:
//	    - Quick start: quickstart.md
//	  - Developers:
//	    - Install: developers/install.md
//
// Each entry is a single-key mapping from a display title to either a path
// (a leaf) or a nested list (a group). Bare string entries are leaves
// without a title.
package nav

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-docs2pdf/internal/yamlutil"
)

// DefaultDocsDir is used when the navigation file has no docs_dir key.
const DefaultDocsDir = "docs"

// Sentinel errors for navigation parsing.
var (
	ErrParse          = errors.New("failed to parse navigation file")
	ErrMissingNav     = errors.New("navigation file has no nav key")
	ErrAmbiguousEntry = errors.New("navigation entry must have exactly one key")
	ErrInvalidEntry   = errors.New("navigation entry must map to a path or a list")
)

// Kind discriminates navigation nodes.
type Kind int

const (
	KindLeaf  Kind = iota // Title -> Path
	KindGroup             // Title -> Children
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindGroup:
		return "group"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is one entry of the navigation tree.
// Path is set for leaves, Children for groups.
type Node struct {
	Kind     Kind
	Title    string
	Path     string
	Children []Node
}

// Leaf returns a leaf node.
func Leaf(title, path string) Node {
	return Node{Kind: KindLeaf, Title: title, Path: path}
}

// Group returns a group node.
func Group(title string, children ...Node) Node {
	return Node{Kind: KindGroup, Title: title, Children: children}
}

// File is a decoded navigation file.
type File struct {
	Nav     []Node
	DocsDir string
	Dir     string // directory of the file on disk, "" when parsed from memory
}

// rawFile mirrors the keys we read; everything else in mkdocs.yml is ignored.
type rawFile struct {
	Nav     []any   `yaml:"nav"`
	DocsDir *string `yaml:"docs_dir"`
}

// mkdocsTag matches the Python-side tags mkdocs and its themes put in value
// position ("key: !!python/name:pkg.fn", "- !ENV [VAR, default]").
// The YAML decoder cannot resolve them, and mis-nests the keys that follow.
var mkdocsTag = regexp.MustCompile(`(?m)(^[ \t]*-[ \t]+|:[ \t]+)(?:!!python/[^\s,\]}]+|!(?:ENV|relative)\b)`)

// stripMkdocsTags drops those tags and keeps their values, if any.
// Tagged keys are never read here, so nothing of the nav is lost.
func stripMkdocsTags(data []byte) []byte {
	return mkdocsTag.ReplaceAll(data, []byte("${1}"))
}

// Load reads and parses the navigation file at path.
// I/O errors are returned with os.ErrNotExist and friends still reachable.
func Load(path string) (*File, error) {
	data, err := yamlutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading navigation file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Dir = filepath.Dir(path)
	return f, nil
}

// Parse decodes navigation YAML.
func Parse(data []byte) (*File, error) {
	var raw rawFile
	if err := yamlutil.Decode(stripMkdocsTags(data), &raw, yamlutil.WithSource()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if raw.Nav == nil {
		return nil, ErrMissingNav
	}

	nodes, err := decodeNodes(raw.Nav, "nav")
	if err != nil {
		return nil, err
	}

	docsDir := DefaultDocsDir
	if raw.DocsDir != nil {
		docsDir = *raw.DocsDir
	}

	return &File{Nav: nodes, DocsDir: docsDir}, nil
}

// Paths flattens the navigation under DocsDir.
func (f *File) Paths() []string {
	return Flatten(f.Nav, f.DocsDir)
}

// decodeNodes converts generic YAML values into nodes.
// where is a breadcrumb for error messages, e.g. "nav[1].Developers[0]".
func decodeNodes(items []any, where string) ([]Node, error) {
	nodes := make([]Node, 0, len(items))
	for i, item := range items {
		at := fmt.Sprintf("%s[%d]", where, i)
		n, err := decodeNode(item, at)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func decodeNode(item any, at string) (Node, error) {
	switch v := item.(type) {
	case string:
		return Leaf("", v), nil
	case map[string]any:
		if len(v) != 1 {
			return Node{}, fmt.Errorf("%w: %s has %d keys", ErrAmbiguousEntry, at, len(v))
		}
		var title string
		var value any
		for k, val := range v {
			title, value = k, val
		}
		return decodeEntry(title, value, at)
	case map[any]any:
		if len(v) != 1 {
			return Node{}, fmt.Errorf("%w: %s has %d keys", ErrAmbiguousEntry, at, len(v))
		}
		var title string
		var value any
		for k, val := range v {
			title, value = fmt.Sprint(k), val
		}
		return decodeEntry(title, value, at)
	default:
		return Node{}, fmt.Errorf("%w: %s is %T", ErrInvalidEntry, at, item)
	}
}

// decodeEntry decides the node kind by inspecting whether value is a sequence.
func decodeEntry(title string, value any, at string) (Node, error) {
	switch v := value.(type) {
	case string:
		return Leaf(title, v), nil
	case []any:
		children, err := decodeNodes(v, at+"."+title)
		if err != nil {
			return Node{}, err
		}
		return Group(title, children...), nil
	default:
		return Node{}, fmt.Errorf("%w: %s (%q) is %T", ErrInvalidEntry, at, title, value)
	}
}

// Flatten walks nodes depth-first in declaration order and returns the path
// of every leaf joined to baseDir. Declaration order is table-of-contents
// order and is preserved exactly.
func Flatten(nodes []Node, baseDir string) []string {
	paths := make([]string, 0, len(nodes))
	return flatten(paths, nodes, baseDir)
}

func flatten(paths []string, nodes []Node, baseDir string) []string {
	for _, n := range nodes {
		switch n.Kind {
		case KindGroup:
			paths = flatten(paths, n.Children, baseDir)
		case KindLeaf:
			paths = append(paths, joinPath(baseDir, n.Path))
		}
	}
	return paths
}

// joinPath joins like a POSIX path join without cleaning, so the result
// stays comparable with link targets written by hand ("docs/" + href).
func joinPath(base, p string) string {
	if base == "" || strings.HasPrefix(p, "/") {
		return p
	}
	if strings.HasSuffix(base, "/") {
		return base + p
	}
	return base + "/" + p
}
