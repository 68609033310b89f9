package presentation

import (
	"encoding/json"
	"fmt"
	"io"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatRecords formats a list of records as JSON
func (f *Formatter) FormatRecords(records []RecordDTO) error {
	return f.encode(records)
}

// FormatRecord formats a single record as JSON
func (f *Formatter) FormatRecord(record RecordDTO) error {
	return f.encode(record)
}

// FormatRecordText writes a record as "clade<TAB>motifs<TAB>count"
func (f *Formatter) FormatRecordText(record RecordDTO, sep string) error {
	_, err := fmt.Fprintf(f.writer, "%s\t%s\t%d\n", record.Clade, joinMotifs(record.Motifs, sep), record.MotifCount)
	return err
}

// FormatClades writes clade names, either one per line or as a JSON array
func (f *Formatter) FormatClades(clades []string, asJSON bool) error {
	if asJSON {
		return f.encode(clades)
	}
	for _, c := range clades {
		if _, err := fmt.Fprintln(f.writer, c); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
