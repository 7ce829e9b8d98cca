// Package coverage exposes the mapping as a read-side service: framework
// listings, filtered category views, and synthesized pentagon coverage
// geometry. It sits between the transport layer and the pure engine in
// pkg/pentagon, adding sourcing, caching, and metrics.
package coverage

import (
	"context"

	"compliancemap/pkg/domain"
	"compliancemap/pkg/pentagon"
)

// Source supplies the unified category mapping. Implemented by the
// postgres storage layer and by the file-backed loader store.
type Source interface {
	// Categories returns the full mapping in display order.
	Categories(ctx context.Context) ([]domain.UnifiedCategory, error)
	// MappingVersion returns an opaque stamp that changes with the mapping.
	MappingVersion(ctx context.Context) (string, error)
	// Health reports whether the source can currently serve the mapping.
	Health(ctx context.Context) error
}

// FrameworkInfo describes one selectable framework.
type FrameworkInfo struct {
	ID           domain.FrameworkID `json:"id"`
	Name         string             `json:"name"`
	TriState     bool               `json:"triState"`
	Requirements int                `json:"requirements"`
	Categories   int                `json:"categories"`
}

// Geometry positions the pentagon inside a square viewport.
type Geometry struct {
	Center      domain.Point
	OuterRadius float64
}

// GeometryForSize derives the drawing geometry the UI uses for a square
// viewport of the given edge length.
func GeometryForSize(size float64) Geometry {
	return Geometry{
		Center:      domain.Point{X: size / 2, Y: size / 2},
		OuterRadius: size * 0.4,
	}
}

// Coverage is a framework's synthesized pentagon footprint.
type Coverage struct {
	Framework domain.FrameworkID `json:"framework"`
	Intensity domain.Intensity   `json:"intensity"`
	Points    []domain.Point     `json:"points"`
	Path      string             `json:"path"`
}

// Service is the read API over the mapping.
type Service interface {
	// Frameworks lists all known frameworks with mapping-wide counts.
	Frameworks(ctx context.Context) ([]FrameworkInfo, error)
	// Categories returns the mapping filtered by selection and the
	// optional secondary filter, renumbered for display.
	Categories(ctx context.Context, selection domain.Selection, filter pentagon.Filter) ([]domain.UnifiedCategory, error)
	// Coverage synthesizes one framework's pentagon area for the given
	// viewport geometry.
	Coverage(ctx context.Context, framework domain.FrameworkID, geom Geometry) (Coverage, error)
	// Health reports whether the underlying source is usable.
	Health(ctx context.Context) error
}
