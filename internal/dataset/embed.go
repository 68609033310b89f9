// Package dataset embeds the curated clade to telomeric repeat table.
package dataset

import (
	"embed"
	"io/fs"
)

// CladesFile is the name of the dataset file within FS.
const CladesFile = "clades.yaml"

// Source identifies where the curated motifs were taken from.
const (
	SourceTitle = "A telomeric repeat database"
	SourceURL   = "https://github.com/tolkit/a-telomeric-repeat-database"
)

//go:embed clades.yaml
var files embed.FS

// FS returns the embedded filesystem containing clades.yaml.
func FS() fs.FS {
	return files
}
