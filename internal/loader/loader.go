// Package loader reads the category mapping from a JSON file: parsing,
// permissive validation, and an in-memory snapshot store with optional
// fsnotify hot-reload. It backs the restore command and the file-backed
// development mode.
package loader

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"compliancemap/pkg/domain"
	"compliancemap/pkg/logger"
)

// mappingFile is the on-disk shape of the category mapping.
type mappingFile struct {
	Categories []mappingCategory `json:"categories"`
}

// mappingCategory mirrors the external mapping format: a nullable pentagon
// domain and framework keys as plain strings.
type mappingCategory struct {
	ID               string                          `json:"id"`
	Category         string                          `json:"category"`
	PentagonDomain   *int                            `json:"pentagonDomain"`
	PrivacyExclusive bool                            `json:"privacyExclusive"`
	Frameworks       map[string][]domain.Requirement `json:"frameworks"`
}

// Load reads and validates a category mapping file. Validation is
// permissive the same way the engine is: unknown framework keys are skipped
// with a warning, out-of-range domains become absent domains, and a
// privacy-exclusive category carrying non-GDPR requirements is reported but
// kept as-is (the filter engine enforces the exclusivity at read time).
// Only structural problems (unreadable file, bad JSON, duplicate category
// ids) are errors.
func Load(ctx context.Context, path string) ([]domain.UnifiedCategory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read mapping file: %w", err)
	}

	return Parse(ctx, raw)
}

// Parse decodes and validates raw mapping JSON. See Load.
func Parse(ctx context.Context, raw []byte) ([]domain.UnifiedCategory, error) {
	var file mappingFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("could not parse mapping file: %w", err)
	}

	seen := make(map[string]bool, len(file.Categories))
	out := make([]domain.UnifiedCategory, 0, len(file.Categories))
	for _, mc := range file.Categories {
		if mc.ID == "" {
			return nil, fmt.Errorf("category %q has no id", mc.Category)
		}
		if seen[mc.ID] {
			return nil, fmt.Errorf("duplicate category id %q", mc.ID)
		}
		seen[mc.ID] = true

		cat := domain.UnifiedCategory{
			ID:               mc.ID,
			Label:            mc.Category,
			Domain:           domain.DomainNone,
			PrivacyExclusive: mc.PrivacyExclusive,
		}
		if mc.PentagonDomain != nil {
			d := domain.CoverageDomain(*mc.PentagonDomain)
			if d.Valid() {
				cat.Domain = d
			} else {
				logger.Warn(ctx, "category has out-of-range pentagon domain, treating as absent",
					zap.String("category", mc.ID),
					zap.Int("pentagonDomain", *mc.PentagonDomain),
				)
			}
		}

		cat.Normalize()
		for key, reqs := range mc.Frameworks {
			f := domain.FrameworkID(key)
			if !f.Known() {
				logger.Warn(ctx, "skipping unknown framework in mapping",
					zap.String("category", mc.ID),
					zap.String("framework", key),
				)

				continue
			}
			if cat.PrivacyExclusive && f != domain.FrameworkGDPR && len(reqs) > 0 {
				logger.Warn(ctx, "privacy-exclusive category carries non-gdpr requirements",
					zap.String("category", mc.ID),
					zap.String("framework", key),
					zap.Int("requirements", len(reqs)),
				)
			}
			cat.Frameworks[f] = reqs
		}

		out = append(out, cat)
	}

	return out, nil
}

// Fingerprint returns a stable version stamp for raw mapping content.
func Fingerprint(raw []byte) string {
	sum := sha256.Sum256(raw)

	return fmt.Sprintf("%x", sum[:8])
}
