package registry

import (
	"context"
	"fmt"
	"io/fs"
	"iter"

	"github.com/pgonzale60/telomeric-identifier/internal/cachemanager"
	"github.com/pgonzale60/telomeric-identifier/internal/dataset"
	"github.com/pgonzale60/telomeric-identifier/internal/log"
	"github.com/pgonzale60/telomeric-identifier/internal/presentation"
	registry "github.com/pgonzale60/telomeric-identifier/internal/registry/domain"
)

// RegistryService is the entry point for querying and rendering the clade registry.
// It is safe for concurrent use.
type RegistryService struct {
	registry *registry.Registry
	reports  *cachemanager.ReadThroughCache[string, string, presentation.ReportOptions]
}

// NewDefaultRegistryService builds the service from the embedded dataset.
func NewDefaultRegistryService() (*RegistryService, error) {
	return NewRegistryService(dataset.FS())
}

// NewRegistryService loads clades.yaml from fsys and builds the registry.
// A malformed dataset is reported as an error matching registry.ErrDatasetIntegrity.
func NewRegistryService(fsys fs.FS) (*RegistryService, error) {
	entries, err := LoadEntriesFromYAML(fsys, dataset.CladesFile)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	reg, err := registry.New(entries)
	if err != nil {
		log.ErrorErr(log.CatRegistry, "dataset failed integrity checks", err)
		return nil, fmt.Errorf("build registry: %w", err)
	}
	log.Info(log.CatRegistry, "registry loaded", "clades", reg.Len())

	return NewRegistryServiceFrom(reg), nil
}

// NewRegistryServiceFrom wraps an already built registry.
func NewRegistryServiceFrom(reg *registry.Registry) *RegistryService {
	s := &RegistryService{registry: reg}
	s.reports = cachemanager.NewReadThroughCache[string, string, presentation.ReportOptions](
		cachemanager.NewInMemoryCacheManager[string, string]("reports", cachemanager.NoExpiration, cachemanager.DefaultCleanupInterval),
		s.renderReport,
		false,
	)
	return s
}

// Lookup returns the record for clade, or an error matching registry.ErrNotFound.
func (s *RegistryService) Lookup(clade string) (registry.Record, error) {
	rec, err := s.registry.Lookup(clade)
	if err != nil {
		log.Debug(log.CatRegistry, "lookup miss", "clade", clade)
		return rec, err
	}
	return rec, nil
}

// Has reports whether clade is known. Callers holding untrusted input can use
// it to validate before Lookup.
func (s *RegistryService) Has(clade string) bool {
	return s.registry.Has(clade)
}

// Clades returns all clade names in lexicographic order
func (s *RegistryService) Clades() []string {
	return s.registry.Clades()
}

// All yields every record in Clades order
func (s *RegistryService) All() iter.Seq[registry.Record] {
	return s.registry.All()
}

// Len returns the number of clades
func (s *RegistryService) Len() int {
	return s.registry.Len()
}

// Report renders the full registry table. Rendered output is cached per
// option set since the registry never changes.
func (s *RegistryService) Report(ctx context.Context, opts presentation.ReportOptions) (string, error) {
	return s.reports.Get(ctx, opts.CacheKey(), opts, cachemanager.NoExpiration)
}

func (s *RegistryService) renderReport(ctx context.Context, opts presentation.ReportOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	log.Debug(log.CatReport, "rendering report", "wrap_width", opts.WrapWidth, "border", opts.Border, "color", opts.Color)
	return presentation.RenderReport(s.registry, opts), nil
}
