package pentagon

import "compliancemap/pkg/domain"

// Intensity computes, for one framework, how many of its requirements map to
// each coverage domain across the given categories.
//
// A category contributes the length of its requirement list for the framework
// to its assigned domain's total. Categories whose domain is absent or out of
// range are excluded from aggregation; this is a defined policy, not an
// error, and such categories still participate in filtering.
//
// An unknown framework id or an empty category list yields an empty map.
func Intensity(framework domain.FrameworkID, categories []domain.UnifiedCategory) domain.Intensity {
	out := make(domain.Intensity)
	if !framework.Known() {
		return out
	}

	for _, cat := range categories {
		reqs := cat.Requirements(framework)
		if len(reqs) == 0 || !cat.Domain.Valid() {
			continue
		}

		out[cat.Domain] += len(reqs)
	}

	return out
}
