package coverage_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"compliancemap/internal/coverage"
	"compliancemap/pkg/domain"
	"compliancemap/pkg/pentagon"
	"compliancemap/pkg/serrors"
)

// fakeSource serves a fixed mapping from memory.
type fakeSource struct {
	categories []domain.UnifiedCategory
	version    string
	err        error
}

func (f *fakeSource) Categories(context.Context) ([]domain.UnifiedCategory, error) {
	return f.categories, f.err
}

func (f *fakeSource) MappingVersion(context.Context) (string, error) {
	return f.version, f.err
}

func (f *fakeSource) Health(context.Context) error {
	return f.err
}

func category(id string, d domain.CoverageDomain,
	frameworks map[domain.FrameworkID][]domain.Requirement) domain.UnifiedCategory {
	cat := domain.UnifiedCategory{
		ID:         id,
		Label:      "1. " + id,
		Domain:     d,
		Frameworks: frameworks,
	}
	cat.Normalize()

	return cat
}

func testSource() *fakeSource {
	return &fakeSource{
		version: "v1",
		categories: []domain.UnifiedCategory{
			category("governance", domain.DomainGovernance, map[domain.FrameworkID][]domain.Requirement{
				domain.FrameworkISO27001: {{Code: "5.1", Title: "Policies"}, {Code: "5.2", Title: "Roles"}},
				domain.FrameworkNIS2:     {{Code: "Art. 20", Title: "Governance"}},
			}),
			category("technical", domain.DomainTechnical, map[domain.FrameworkID][]domain.Requirement{
				domain.FrameworkISO27001: {{Code: "8.1", Title: "Endpoints"}},
			}),
		},
	}
}

func newService(t *testing.T, source coverage.Source) coverage.Service {
	t.Helper()

	svc, err := coverage.NewService(source, noop.NewMeterProvider())
	require.NoError(t, err)

	return svc
}

func TestFrameworks(t *testing.T) {
	t.Parallel()

	svc := newService(t, testSource())

	infos, err := svc.Frameworks(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, len(domain.Frameworks()))

	byID := make(map[domain.FrameworkID]coverage.FrameworkInfo, len(infos))
	for _, info := range infos {
		byID[info.ID] = info
	}

	assert.Equal(t, 3, byID[domain.FrameworkISO27001].Requirements)
	assert.Equal(t, 2, byID[domain.FrameworkISO27001].Categories)
	assert.Equal(t, 1, byID[domain.FrameworkNIS2].Requirements)
	assert.Zero(t, byID[domain.FrameworkGDPR].Requirements)
	assert.True(t, byID[domain.FrameworkCISControls].TriState)
}

func TestCategoriesFiltersSelection(t *testing.T) {
	t.Parallel()

	svc := newService(t, testSource())

	categories, err := svc.Categories(context.Background(),
		domain.Selection{NIS2: true}, pentagon.Filter{})
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "governance", categories[0].ID)
	assert.Equal(t, "01. governance", categories[0].Label)
	assert.Empty(t, categories[0].Frameworks[domain.FrameworkISO27001])
}

func TestCoverage(t *testing.T) {
	t.Parallel()

	svc := newService(t, testSource())
	geom := coverage.GeometryForSize(300)

	result, err := svc.Coverage(context.Background(), domain.FrameworkISO27001, geom)
	require.NoError(t, err)

	assert.Equal(t, domain.FrameworkISO27001, result.Framework)
	assert.Equal(t, 2, result.Intensity[domain.DomainGovernance])
	assert.Equal(t, 1, result.Intensity[domain.DomainTechnical])
	assert.NotEmpty(t, result.Points)
	assert.True(t, strings.HasPrefix(result.Path, "M "))
	assert.True(t, strings.HasSuffix(result.Path, " Z"))
}

func TestCoverageUnknownFramework(t *testing.T) {
	t.Parallel()

	svc := newService(t, testSource())

	_, err := svc.Coverage(context.Background(), "pci-dss", coverage.GeometryForSize(300))
	require.Error(t, err)
	assert.True(t, errors.Is(err, serrors.ErrNotFound))
}

func TestSourceFailure(t *testing.T) {
	t.Parallel()

	svc := newService(t, &fakeSource{err: errors.New("connection refused")})

	_, err := svc.Frameworks(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, serrors.ErrUnavailable))

	_, err = svc.Coverage(context.Background(), domain.FrameworkGDPR, coverage.GeometryForSize(300))
	require.Error(t, err)
	assert.True(t, errors.Is(err, serrors.ErrUnavailable))
}

func TestGeometryForSize(t *testing.T) {
	t.Parallel()

	geom := coverage.GeometryForSize(300)
	assert.Equal(t, domain.Point{X: 150, Y: 150}, geom.Center)
	assert.InDelta(t, 120, geom.OuterRadius, 1e-9)
}
