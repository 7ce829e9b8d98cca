package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"compliancemap/pkg/domain"
)

const (
	standardsTable    = "standards_library"
	requirementsTable = "requirements_library"
	categoriesTable   = "unified_categories"
	categoryReqsTable = "category_requirements"
)

// Categories loads the full mapping table in display order. Requirement
// lists are attached from a single flattened join over the category links,
// the requirements library and the standards library.
func (p *PgSQL) Categories(ctx context.Context) ([]domain.UnifiedCategory, error) {
	var rows []PgCategory
	if err := p.Builder.From(categoriesTable).
		Order(goqu.I("order_index").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch categories from pg: %w", err)
	}

	categories := make([]domain.UnifiedCategory, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		index[row.ID] = len(categories)
		categories = append(categories, row.ToDomain())
	}

	var links []PgMappingRow
	if err := p.Builder.From(goqu.T(categoryReqsTable).As("cr")).
		Join(goqu.T(requirementsTable).As("r"),
			goqu.On(goqu.I("r.id").Eq(goqu.I("cr.requirement_id")))).
		Join(goqu.T(standardsTable).As("s"),
			goqu.On(goqu.I("s.id").Eq(goqu.I("r.standard_id")))).
		Select(
			goqu.I("cr.category_id").As("category_id"),
			goqu.I("s.framework_id").As("framework_id"),
			goqu.I("r.control_id").As("control_id"),
			goqu.I("r.title").As("title"),
			goqu.I("r.description").As("description"),
		).
		Order(goqu.I("cr.category_id").Asc(), goqu.I("r.order_index").Asc()).
		Executor().ScanStructsContext(ctx, &links); err != nil {
		return nil, fmt.Errorf("could not fetch category requirements from pg: %w", err)
	}

	for _, link := range links {
		i, ok := index[link.CategoryID]
		if !ok {
			continue
		}

		f := domain.FrameworkID(link.FrameworkID)
		categories[i].Frameworks[f] = append(categories[i].Frameworks[f], domain.Requirement{
			Code:        link.ControlID,
			Title:       link.Title,
			Description: link.Description,
		})
	}

	return categories, nil
}

// MappingVersion derives a cache stamp from the newest category update plus
// the row count, so both edits and wholesale replacements bust caches.
func (p *PgSQL) MappingVersion(ctx context.Context) (string, error) {
	var version string
	found, err := p.Builder.From(categoriesTable).
		Select(goqu.L("COALESCE(MAX(updated_at)::text, '') || '#' || COUNT(*)::text")).
		Executor().ScanValContext(ctx, &version)
	if err != nil {
		return "", fmt.Errorf("could not fetch mapping version from pg: %w", err)
	}
	if !found {
		return "", nil
	}

	return version, nil
}

// ReplaceMapping removes the stored mapping and rebuilds it from the given
// categories: one standards row per known framework, requirements deduped by
// framework and control code, categories in slice order.
//
// This is not atomic by itself; callers wrap it in WithTx.
func (p *PgSQL) ReplaceMapping(ctx context.Context, categories []domain.UnifiedCategory) error {
	for _, table := range []string{categoryReqsTable, categoriesTable, requirementsTable, standardsTable} {
		if _, err := p.Builder.Delete(table).Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not clear %s in pg: %w", table, err)
		}
	}
	if len(categories) == 0 {
		return nil
	}

	standards := make(map[domain.FrameworkID]uuid.UUID)
	standardRows := make([]PgStandard, 0, len(domain.Frameworks()))
	for _, f := range domain.Frameworks() {
		id := uuid.New()
		standards[f] = id
		standardRows = append(standardRows, PgStandard{
			ID:          id,
			FrameworkID: string(f),
			Name:        f.DisplayName(),
		})
	}
	if _, err := p.Builder.Insert(standardsTable).
		Rows(standardRows).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store standards into pg: %w", err)
	}

	type reqKey struct {
		framework domain.FrameworkID
		code      string
	}

	requirementIDs := make(map[reqKey]uuid.UUID)
	var requirementRows []PgRequirement
	var categoryRows []PgCategory
	var linkRows []PgCategoryRequirement

	for i, cat := range categories {
		var row PgCategory
		row.FromDomain(cat, i)
		categoryRows = append(categoryRows, row)

		for _, f := range domain.Frameworks() {
			for _, req := range cat.Requirements(f) {
				key := reqKey{framework: f, code: req.Code}
				id, ok := requirementIDs[key]
				if !ok {
					id = uuid.New()
					requirementIDs[key] = id
					requirementRows = append(requirementRows, PgRequirement{
						ID:          id,
						StandardID:  standards[f],
						ControlID:   req.Code,
						Title:       req.Title,
						Description: req.Description,
						OrderIndex:  len(requirementRows),
					})
				}

				linkRows = append(linkRows, PgCategoryRequirement{
					CategoryID:    cat.ID,
					RequirementID: id,
				})
			}
		}
	}

	if len(requirementRows) > 0 {
		if _, err := p.Builder.Insert(requirementsTable).
			Rows(requirementRows).Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not store requirements into pg: %w", err)
		}
	}
	if _, err := p.Builder.Insert(categoriesTable).
		Rows(categoryRows).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store categories into pg: %w", err)
	}
	if len(linkRows) > 0 {
		if _, err := p.Builder.Insert(categoryReqsTable).
			Rows(linkRows).Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not store category requirements into pg: %w", err)
		}
	}

	return nil
}
