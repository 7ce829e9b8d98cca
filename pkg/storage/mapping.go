package storage

import (
	"context"

	"compliancemap/pkg/domain"
)

// MappingStorage defines read and replace operations for the category
// mapping: the unified categories together with the per-framework
// requirements of the standards library they reference.
type MappingStorage interface {
	// Categories returns the full mapping table in display order. Every
	// returned category has an entry for every known framework id.
	Categories(ctx context.Context) ([]domain.UnifiedCategory, error)

	// MappingVersion returns an opaque stamp that changes whenever the
	// mapping table changes. It is used as a cache-busting component in
	// derived-result keys.
	MappingVersion(ctx context.Context) (string, error)

	// ReplaceMapping atomically replaces the stored mapping with the given
	// categories, rebuilding the standards and requirements library rows
	// they reference. Existing mapping rows are removed first.
	ReplaceMapping(ctx context.Context, categories []domain.UnifiedCategory) error
}
