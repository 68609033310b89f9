// Package testutil builds telomere datasets for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	registry "github.com/pgonzale60/telomeric-identifier/internal/registry/domain"
)

// DatasetFileName is the file name the registry service reads.
const DatasetFileName = "clades.yaml"

// Builder accumulates clade rows in insertion order.
// Rows are not validated, so broken datasets can be built on purpose.
type Builder struct {
	t      *testing.T
	clades []cladeData
}

// NewBuilder creates an empty dataset builder.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t}
}

// WithClade adds a clade row with optional configuration.
func (b *Builder) WithClade(name string, opts ...CladeOption) *Builder {
	c := cladeData{name: name}
	for _, opt := range opts {
		opt(&c)
	}
	b.clades = append(b.clades, c)
	return b
}

// Entries returns the rows as raw registry entries.
func (b *Builder) Entries() []registry.Entry {
	entries := make([]registry.Entry, 0, len(b.clades))
	for _, c := range b.clades {
		entries = append(entries, registry.Entry{
			Clade:  c.name,
			Motifs: append([]string(nil), c.motifs...),
			Count:  copyCount(c.count),
		})
	}
	return entries
}

// Registry builds a registry from the rows and fails the test on integrity errors.
func (b *Builder) Registry() *registry.Registry {
	b.t.Helper()
	reg, err := registry.New(b.Entries())
	require.NoError(b.t, err)
	return reg
}

// YAML encodes the rows in the dataset file schema.
func (b *Builder) YAML() []byte {
	b.t.Helper()
	doc := datasetDoc{Clades: make([]cladeDoc, 0, len(b.clades))}
	for _, c := range b.clades {
		doc.Clades = append(doc.Clades, cladeDoc{Clade: c.name, Motifs: c.motifs, Count: c.count})
	}
	data, err := yaml.Marshal(doc)
	require.NoError(b.t, err)
	return data
}

// FS returns an in-memory filesystem holding the dataset file.
func (b *Builder) FS() fstest.MapFS {
	b.t.Helper()
	return fstest.MapFS{
		DatasetFileName: &fstest.MapFile{Data: b.YAML()},
	}
}

// WriteFile writes the dataset to a temporary directory and returns its path.
func (b *Builder) WriteFile() string {
	b.t.Helper()
	path := filepath.Join(b.t.TempDir(), DatasetFileName)
	require.NoError(b.t, os.WriteFile(path, b.YAML(), 0o600))
	return path
}

func copyCount(n *int) *int {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}

type datasetDoc struct {
	Clades []cladeDoc `yaml:"clades"`
}

type cladeDoc struct {
	Clade  string   `yaml:"clade"`
	Motifs []string `yaml:"motifs,flow"`
	Count  *int     `yaml:"count,omitempty"`
}
