package assets

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// AssetLoader loads a CSS style by name, without the .css extension.
// Unknown names yield ErrStyleNotFound; names that are not plain file
// stems yield ErrInvalidAssetName.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
}

// AssetResolver searches style directories in order and ends with the
// bundled styles. A loader answering ErrStyleNotFound passes the lookup on;
// any other error stops the search.
type AssetResolver struct {
	dirs    []string
	loaders []AssetLoader
}

// NewAssetResolver returns a resolver over dirs followed by the bundled
// styles. Empty entries are skipped, so NewAssetResolver("") serves the
// bundled styles only.
func NewAssetResolver(dirs ...string) (*AssetResolver, error) {
	r := &AssetResolver{}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		fsLoader, err := NewFilesystemLoader(dir)
		if err != nil {
			return nil, err
		}
		r.dirs = append(r.dirs, fsLoader.basePath)
		r.loaders = append(r.loaders, fsLoader)
	}
	r.loaders = append(r.loaders, NewEmbeddedLoader())
	return r, nil
}

// LoadStyle returns the first match for name along the search order.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	var err error
	for _, loader := range r.loaders {
		var css string
		css, err = loader.LoadStyle(name)
		if err == nil {
			return css, nil
		}
		if !errors.Is(err, ErrStyleNotFound) {
			return "", err
		}
	}
	return "", err
}

// Dirs returns the absolute style directories searched before the bundled
// styles.
func (r *AssetResolver) Dirs() []string {
	return r.dirs
}

var _ AssetLoader = (*AssetResolver)(nil)

// ValidateAssetName rejects empty names and names carrying path
// separators, dots or whitespace.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) || strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
