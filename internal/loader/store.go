package loader

import (
	"context"
	"os"
	"sync"

	"compliancemap/pkg/domain"
	"compliancemap/pkg/serrors"
)

// Store is a file-backed mapping source. It keeps an immutable snapshot of
// the last successfully loaded mapping, so readers are never blocked by a
// reload and never observe a half-applied file.
type Store struct {
	path string

	mu         sync.RWMutex
	categories []domain.UnifiedCategory
	version    string
}

// NewStore loads path and returns a store serving its content.
func NewStore(ctx context.Context, path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// Reload re-reads the backing file and swaps the snapshot in. On any error
// the previous snapshot stays in place.
func (s *Store) Reload(ctx context.Context) error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not read mapping file")
	}

	categories, err := Parse(ctx, raw)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not parse mapping file")
	}

	s.mu.Lock()
	s.categories = categories
	s.version = Fingerprint(raw)
	s.mu.Unlock()

	return nil
}

// Categories returns the current snapshot. Callers must not mutate the
// returned slice; the filter engine copies before modifying.
func (s *Store) Categories(_ context.Context) ([]domain.UnifiedCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.categories, nil
}

// MappingVersion returns the fingerprint of the loaded file content.
func (s *Store) MappingVersion(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version, nil
}

// Health reports whether the store holds a usable snapshot.
func (s *Store) Health(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.categories == nil {
		return serrors.KindOnly(serrors.ErrUnavailable)
	}

	return nil
}
