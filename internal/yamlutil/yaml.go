// Package yamlutil decodes the YAML inputs of a build: the tool config and
// mkdocs-style navigation files. Callers never import the YAML library.
package yamlutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// MaxInputSize bounds a YAML document in bytes.
var MaxInputSize = 1 << 20

var (
	ErrEmptyInput     = errors.New("yamlutil: empty input")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// DecodeOption adjusts Decode.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	strict bool
	source bool
}

// Strict rejects keys that have no matching field.
func Strict() DecodeOption {
	return func(c *decodeConfig) { c.strict = true }
}

// WithSource includes the offending source lines in decode errors.
func WithSource() DecodeOption {
	return func(c *decodeConfig) { c.source = true }
}

// Decode decodes data into v. Unknown keys are ignored unless Strict is
// given; mkdocs files carry many keys the build never reads.
func Decode(data []byte, v any, opts ...DecodeOption) error {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case len(data) == 0:
		return ErrEmptyInput
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilDestination
	}

	var yopts []yaml.DecodeOption
	if cfg.strict {
		yopts = append(yopts, yaml.Strict())
	}
	if err := yaml.UnmarshalWithOptions(data, v, yopts...); err != nil {
		if cfg.source {
			return fmt.Errorf("yamlutil: %s", yaml.FormatError(err, false, true))
		}
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// ReadFile reads at most MaxInputSize+1 bytes from path; Decode then reports
// an oversized file as ErrInputTooLarge. Open errors come back unwrapped so
// os.ErrNotExist stays checkable.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(MaxInputSize)+1))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: reading %s: %w", path, err)
	}
	return data, nil
}
