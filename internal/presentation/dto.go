package presentation

import (
	registry "github.com/pgonzale60/telomeric-identifier/internal/registry/domain"
)

// RecordDTO represents a telomere record for presentation
type RecordDTO struct {
	Clade      string   `json:"clade"`
	Motifs     []string `json:"motifs"`
	MotifCount int      `json:"motif_count"`
}

// FromDomainRecord converts a domain record to a DTO
func FromDomainRecord(rec registry.Record) RecordDTO {
	return RecordDTO{
		Clade:      rec.Clade(),
		Motifs:     rec.Motifs(),
		MotifCount: rec.MotifCount(),
	}
}

// FromRecordSource converts every record of src, in registry order, to DTOs
func FromRecordSource(src RecordSource) []RecordDTO {
	dtos := make([]RecordDTO, 0)
	for rec := range src.All() {
		dtos = append(dtos, FromDomainRecord(rec))
	}
	return dtos
}
