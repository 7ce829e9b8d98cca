package postgres

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"compliancemap/pkg/domain"
)

// PgStandard is a row of the standards library, one per framework.
type PgStandard struct {
	ID          uuid.UUID `db:"id"`
	FrameworkID string    `db:"framework_id"`
	Name        string    `db:"name"`
}

// PgRequirement is a row of the requirements library.
type PgRequirement struct {
	ID          uuid.UUID `db:"id"`
	StandardID  uuid.UUID `db:"standard_id"`
	ControlID   string    `db:"control_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	OrderIndex  int       `db:"order_index"`
}

// PgCategory is a row of the unified categories table. PentagonDomain is
// nullable: categories without a domain are excluded from aggregation but
// still stored and filtered.
type PgCategory struct {
	ID               string        `db:"id"`
	Label            string        `db:"label"`
	PentagonDomain   sql.NullInt32 `db:"pentagon_domain"`
	PrivacyExclusive bool          `db:"privacy_exclusive"`
	OrderIndex       int           `db:"order_index"`
	UpdatedAt        time.Time     `db:"updated_at" goqu:"skipinsert"`
}

// PgCategoryRequirement joins a category to a requirement.
type PgCategoryRequirement struct {
	CategoryID    string    `db:"category_id"`
	RequirementID uuid.UUID `db:"requirement_id"`
}

// PgMappingRow is the flattened join of category links with requirement and
// standard fields, used when loading the full mapping table.
type PgMappingRow struct {
	CategoryID  string `db:"category_id"`
	FrameworkID string `db:"framework_id"`
	ControlID   string `db:"control_id"`
	Title       string `db:"title"`
	Description string `db:"description"`
}

// ToDomain converts the category row; requirement lists are attached
// separately from the mapping rows.
func (p *PgCategory) ToDomain() domain.UnifiedCategory {
	cat := domain.UnifiedCategory{
		ID:               p.ID,
		Label:            p.Label,
		Domain:           domain.DomainNone,
		PrivacyExclusive: p.PrivacyExclusive,
	}
	if p.PentagonDomain.Valid {
		cat.Domain = domain.CoverageDomain(p.PentagonDomain.Int32)
	}
	cat.Normalize()

	return cat
}

// FromDomain fills the row from a category at the given display position.
func (p *PgCategory) FromDomain(cat domain.UnifiedCategory, orderIndex int) {
	*p = PgCategory{
		ID:               cat.ID,
		Label:            cat.Label,
		PrivacyExclusive: cat.PrivacyExclusive,
		OrderIndex:       orderIndex,
	}
	if cat.Domain.Valid() {
		p.PentagonDomain = sql.NullInt32{Int32: int32(cat.Domain), Valid: true}
	}
}
