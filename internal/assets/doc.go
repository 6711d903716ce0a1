// Package assets provides the CSS stylesheets applied to generated PDFs.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (bundled styles)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - style directories in order, then the bundled styles
//
// EmbeddedLoader provides the bundled styles ("pdf", the default, and
// "minimal").
//
// FilesystemLoader reads {basePath}/styles/{name}.css, with path traversal
// protection and symlink resolution.
//
// AssetResolver walks its directories in order and ends with the bundled
// styles. Only a not-found answer moves the lookup on.
//
// ResolveStyle accepts either a style name or a path to a .css file.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
