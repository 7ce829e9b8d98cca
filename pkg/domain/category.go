package domain

// Requirement is a single control requirement of a compliance framework.
// Requirements are sourced from the standards library and treated as
// immutable; identity is Code within a framework.
type Requirement struct {
	// Code is the framework's control identifier, e.g. "A.5.1" or "5.1.1".
	Code string `json:"code"`
	// Title is the requirement's short title.
	Title string `json:"title"`
	// Description is the full requirement text.
	Description string `json:"description"`
}

// UnifiedCategory is a cross-framework grouping of related compliance
// requirements sharing one conceptual control area. Each category optionally
// maps to one of the five coverage domains and holds, per framework, the
// requirements belonging to it.
type UnifiedCategory struct {
	// ID uniquely identifies the category within the mapping table.
	ID string `json:"id"`
	// Label is the display label; filtering renumbers it with a two-digit
	// "NN. " prefix.
	Label string `json:"category"`
	// Domain is the assigned coverage domain, or DomainNone when absent.
	Domain CoverageDomain `json:"pentagonDomain"`
	// PrivacyExclusive marks the single category reserved for GDPR-only
	// content. It is set at data-load time and drives the co-selection rules
	// in the filter engine.
	PrivacyExclusive bool `json:"privacyExclusive,omitempty"`
	// Frameworks holds the per-framework requirement lists. It always
	// contains an entry (possibly empty) for every known framework id.
	Frameworks map[FrameworkID][]Requirement `json:"frameworks"`
}

// Normalize ensures the Frameworks map exists and contains an entry for
// every known framework id, so callers can index it without nil checks.
func (c *UnifiedCategory) Normalize() {
	if c.Frameworks == nil {
		c.Frameworks = make(map[FrameworkID][]Requirement, len(frameworks))
	}
	for _, f := range frameworks {
		if _, ok := c.Frameworks[f]; !ok {
			c.Frameworks[f] = nil
		}
	}
}

// Clone returns a deep copy of the category. The engine never mutates its
// inputs; it works on clones instead.
func (c UnifiedCategory) Clone() UnifiedCategory {
	out := c
	out.Frameworks = make(map[FrameworkID][]Requirement, len(c.Frameworks))
	for f, reqs := range c.Frameworks {
		if len(reqs) == 0 {
			out.Frameworks[f] = nil

			continue
		}

		cp := make([]Requirement, len(reqs))
		copy(cp, reqs)
		out.Frameworks[f] = cp
	}

	return out
}

// Requirements returns the category's requirement list for a framework.
// A missing entry yields nil.
func (c UnifiedCategory) Requirements(f FrameworkID) []Requirement {
	return c.Frameworks[f]
}
