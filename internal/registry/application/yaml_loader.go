package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	registry "github.com/pgonzale60/telomeric-identifier/internal/registry/domain"
)

// DatasetFile is the root structure for clades.yaml
type DatasetFile struct {
	Clades []CladeDef `yaml:"clades"`
}

// CladeDef defines a single clade row in YAML
type CladeDef struct {
	Clade  string   `yaml:"clade"`           // e.g., "Primates"
	Motifs []string `yaml:"motifs"`          // e.g., ["AATGG"]
	Count  *int     `yaml:"count,omitempty"` // Optional declared motif count, checked against motifs
}

// ParseEntries decodes dataset YAML into raw registry entries.
// Unknown fields are rejected so a misspelt key fails loudly instead of
// silently dropping motifs.
func ParseEntries(content []byte) ([]registry.Entry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var file DatasetFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse dataset: empty document")
		}
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	entries := make([]registry.Entry, len(file.Clades))
	for i, def := range file.Clades {
		entries[i] = registry.Entry{
			Clade:  def.Clade,
			Motifs: def.Motifs,
			Count:  def.Count,
		}
	}
	return entries, nil
}

// LoadEntriesFromYAML reads and decodes the dataset file at path within fsys.
func LoadEntriesFromYAML(fsys fs.FS, path string) ([]registry.Entry, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	entries, err := ParseEntries(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// ValidateFile loads a dataset file from disk and runs the full registry
// construction checks on it. It returns the number of clades on success.
func ValidateFile(path string) (int, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the maintainer on the command line
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	entries, err := ParseEntries(content)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	reg, err := registry.New(entries)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return reg.Len(), nil
}
