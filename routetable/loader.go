package routetable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a route table file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for a file extension or format name that is
// not supported.
var ErrUnknownFormat = errors.New("unknown route table format")

// ParseFormat maps a format name ("yaml", "yml", "toml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("routetable: %w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Load reads and decodes the route table at path. The table is not
// validated.
func Load(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("routetable: failed to read %s: %w", path, err)
	}

	table, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}

	return table, nil
}

// Parse decodes a route table.
func Parse(data []byte, format Format) (*Table, error) {
	return Decode(bytes.NewReader(data), format)
}

// Decode reads a route table from r. Unknown keys are an error.
func Decode(r io.Reader, format Format) (*Table, error) {
	table := &Table{}

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(table); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("routetable: failed to parse YAML: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(r).DisallowUnknownFields()
		if err := dec.Decode(table); err != nil {
			return nil, fmt.Errorf("routetable: failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("routetable: %w: %q", ErrUnknownFormat, format)
	}

	return table, nil
}

// Encode writes the table in the given format.
func Encode(w io.Writer, t *Table, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("routetable: failed to encode YAML: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(t); err != nil {
			return fmt.Errorf("routetable: failed to encode TOML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("routetable: %w: %q", ErrUnknownFormat, format)
	}
}
