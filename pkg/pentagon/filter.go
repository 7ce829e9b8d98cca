package pentagon

import (
	"fmt"
	"regexp"
	"strings"

	"compliancemap/pkg/domain"
)

// Filter holds optional secondary narrowings applied after regime selection
// and content filtering. Both are simple set intersections and are not
// order-sensitive. Zero values disable them.
type Filter struct {
	// Framework, when set, keeps only categories with at least one
	// requirement for that framework.
	Framework domain.FrameworkID
	// CategoryID, when set, keeps only the category with that id.
	CategoryID string
}

// FilterCategories produces the subset of categories to display for a
// selection. Three mutually exclusive regimes apply, in precedence order:
//
//  1. GDPR selected alone: only privacy-exclusive categories are retained.
//  2. Other frameworks selected without GDPR, or nothing selected at all:
//     privacy-exclusive categories are dropped.
//  3. GDPR plus at least one other framework: all categories are retained.
//
// After regime selection, each retained category's framework map is
// recomputed so unselected frameworks map to empty lists; the tri-state
// framework is gated only by whether a group level is set, never by which
// one. Categories left with no requirements under any framework are dropped.
//
// The input is never mutated; retained categories are deep copies.
func FilterCategories(categories []domain.UnifiedCategory,
	selection domain.Selection,
	filter Filter) []domain.UnifiedCategory {
	gdprOnly := selection.GDPR && !selection.OthersEnabled()
	mixed := selection.GDPR && selection.OthersEnabled()

	out := make([]domain.UnifiedCategory, 0, len(categories))
	for _, cat := range categories {
		switch {
		case gdprOnly:
			if !cat.PrivacyExclusive {
				continue
			}
		case mixed:
			// all categories retained
		default:
			// other frameworks without GDPR, or nothing selected yet
			if cat.PrivacyExclusive {
				continue
			}
		}

		filtered := blankUnselected(cat, selection)
		if empty(filtered) {
			continue
		}

		if filter.Framework != "" && len(filtered.Requirements(filter.Framework)) == 0 {
			continue
		}
		if filter.CategoryID != "" && filtered.ID != filter.CategoryID {
			continue
		}

		out = append(out, filtered)
	}

	return out
}

// FilterAndRenumber runs FilterCategories and renumbers the result.
func FilterAndRenumber(categories []domain.UnifiedCategory,
	selection domain.Selection,
	filter Filter) []domain.UnifiedCategory {
	return Renumber(FilterCategories(categories, selection, filter))
}

// blankUnselected clones the category with requirement lists of unselected
// frameworks emptied.
func blankUnselected(cat domain.UnifiedCategory, selection domain.Selection) domain.UnifiedCategory {
	out := cat.Clone()
	out.Normalize()
	for f := range out.Frameworks {
		if !selection.Enabled(f) {
			out.Frameworks[f] = nil
		}
	}

	return out
}

// empty reports whether every framework's requirement list is empty.
func empty(cat domain.UnifiedCategory) bool {
	for _, reqs := range cat.Frameworks {
		if len(reqs) > 0 {
			return false
		}
	}

	return true
}

// labelPrefix matches a previously assigned numeric display prefix.
var labelPrefix = regexp.MustCompile(`^\d+\.\s*`)

// Renumber assigns two-digit zero-padded sequence prefixes to category
// display labels: non-privacy-exclusive categories first in their existing
// order, then any privacy-exclusive categories with the next numbers. A
// pre-existing numeric prefix is stripped before the new one is applied, so
// renumbering is idempotent.
//
// The input is never mutated; the result is a fresh slice of copies.
func Renumber(categories []domain.UnifiedCategory) []domain.UnifiedCategory {
	out := make([]domain.UnifiedCategory, 0, len(categories))
	for _, cat := range categories {
		if !cat.PrivacyExclusive {
			out = append(out, cat)
		}
	}
	for _, cat := range categories {
		if cat.PrivacyExclusive {
			out = append(out, cat)
		}
	}

	for i := range out {
		stripped := strings.TrimSpace(labelPrefix.ReplaceAllString(out[i].Label, ""))
		out[i].Label = fmt.Sprintf("%02d. %s", i+1, stripped)
	}

	return out
}
