// Package registry implements the application layer for the clade registry.
//
// It bridges the domain layer to infrastructure concerns:
//   - Decodes the curated dataset (clades.yaml) with yaml.v3
//   - Builds the immutable domain Registry once at startup
//   - Renders and caches the human-readable report
//
// # Import Aliasing
//
// This package has the same name as the domain registry package. Alias one of them when importing both:
//
//	import (
//	    registry "github.com/pgonzale60/telomeric-identifier/internal/registry/domain"
//	    appreg "github.com/pgonzale60/telomeric-identifier/internal/registry/application"
//	)
package registry
