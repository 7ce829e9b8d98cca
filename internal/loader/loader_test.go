package loader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliancemap/internal/loader"
	"compliancemap/pkg/domain"
	"compliancemap/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

const sampleMapping = `{
  "categories": [
    {
      "id": "cat-governance",
      "category": "1. Security Governance",
      "pentagonDomain": 0,
      "privacyExclusive": false,
      "frameworks": {
        "iso27001": [{"code": "5.1", "title": "Policies"}],
        "cisControls": [{"code": "1.1", "title": "Inventory", "description": "ig1"}]
      }
    },
    {
      "id": "cat-privacy",
      "category": "2. Data Subject Rights",
      "pentagonDomain": 4,
      "privacyExclusive": true,
      "frameworks": {
        "gdpr": [{"code": "Art. 15", "title": "Right of access"}]
      }
    }
  ]
}`

func TestParse(t *testing.T) {
	t.Parallel()

	categories, err := loader.Parse(context.Background(), []byte(sampleMapping))
	require.NoError(t, err)
	require.Len(t, categories, 2)

	assert.Equal(t, "cat-governance", categories[0].ID)
	assert.Equal(t, domain.DomainGovernance, categories[0].Domain)
	assert.Len(t, categories[0].Frameworks[domain.FrameworkISO27001], 1)

	assert.True(t, categories[1].PrivacyExclusive)
	assert.Equal(t, domain.DomainPrivacy, categories[1].Domain)
}

func TestParseUnknownFrameworkSkipped(t *testing.T) {
	t.Parallel()

	categories, err := loader.Parse(context.Background(), []byte(`{
	  "categories": [{
	    "id": "cat-1",
	    "category": "Example",
	    "frameworks": {
	      "soc2": [{"code": "CC1.1", "title": "COSO"}],
	      "nis2": [{"code": "Art. 21", "title": "Measures"}]
	    }
	  }]
	}`))
	require.NoError(t, err)
	require.Len(t, categories, 1)

	assert.Empty(t, categories[0].Frameworks[domain.FrameworkID("soc2")])
	assert.Len(t, categories[0].Frameworks[domain.FrameworkNIS2], 1)
}

func TestParseOutOfRangeDomain(t *testing.T) {
	t.Parallel()

	categories, err := loader.Parse(context.Background(), []byte(`{
	  "categories": [{"id": "cat-1", "category": "Example", "pentagonDomain": 9, "frameworks": {}}]
	}`))
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, domain.DomainNone, categories[0].Domain)
}

func TestParseMissingDomain(t *testing.T) {
	t.Parallel()

	categories, err := loader.Parse(context.Background(), []byte(`{
	  "categories": [{"id": "cat-1", "category": "Example", "frameworks": {}}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, domain.DomainNone, categories[0].Domain)
}

func TestParseDuplicateID(t *testing.T) {
	t.Parallel()

	_, err := loader.Parse(context.Background(), []byte(`{
	  "categories": [
	    {"id": "cat-1", "category": "A", "frameworks": {}},
	    {"id": "cat-1", "category": "B", "frameworks": {}}
	  ]
	}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate category id")
}

func TestParseBadJSON(t *testing.T) {
	t.Parallel()

	_, err := loader.Parse(context.Background(), []byte(`{"categories": [`))
	require.Error(t, err)
}

func TestStoreReload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "mapping.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleMapping), 0o600))

	store, err := loader.NewStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Health(ctx))

	v1, err := store.MappingVersion(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, v1)

	// A broken rewrite must keep the previous snapshot.
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))
	require.Error(t, store.Reload(ctx))

	categories, err := store.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	v2, err := store.MappingVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)

	// A valid rewrite swaps content and version.
	require.NoError(t, os.WriteFile(path, []byte(`{
	  "categories": [{"id": "cat-1", "category": "Only", "pentagonDomain": 2, "frameworks": {}}]
	}`), 0o600))
	require.NoError(t, store.Reload(ctx))

	categories, err = store.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	v3, err := store.MappingVersion(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, v1, v3)
}
