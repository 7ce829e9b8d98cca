package domain

// FrameworkID identifies one of the compliance frameworks supported by the
// coverage engine. The set is closed; values outside it are treated as
// unknown and never cause errors, only empty results.
type FrameworkID string

const (
	// FrameworkISO27001 is the ISO/IEC 27001 information security management standard.
	FrameworkISO27001 FrameworkID = "iso27001"
	// FrameworkISO27002 is the ISO/IEC 27002 security controls catalogue.
	FrameworkISO27002 FrameworkID = "iso27002"
	// FrameworkCISControls is the CIS Critical Security Controls framework.
	// It is the only tri-state framework: selection carries an implementation
	// group level instead of a plain on/off flag.
	FrameworkCISControls FrameworkID = "cisControls"
	// FrameworkGDPR is the EU General Data Protection Regulation.
	FrameworkGDPR FrameworkID = "gdpr"
	// FrameworkNIS2 is the EU NIS2 directive.
	FrameworkNIS2 FrameworkID = "nis2"
	// FrameworkDORA is the EU Digital Operational Resilience Act.
	FrameworkDORA FrameworkID = "dora"
)

// frameworks lists all known framework ids in their canonical display order.
var frameworks = []FrameworkID{ //nolint: gochecknoglobals
	FrameworkISO27001,
	FrameworkISO27002,
	FrameworkCISControls,
	FrameworkGDPR,
	FrameworkNIS2,
	FrameworkDORA,
}

// Frameworks returns all known framework ids in canonical order. The returned
// slice is a copy and safe to modify.
func Frameworks() []FrameworkID {
	out := make([]FrameworkID, len(frameworks))
	copy(out, frameworks)

	return out
}

// Known reports whether the framework id belongs to the supported set.
func (f FrameworkID) Known() bool {
	for _, id := range frameworks {
		if id == f {
			return true
		}
	}

	return false
}

// TriState reports whether selection of this framework carries an
// implementation group level rather than a plain boolean.
func (f FrameworkID) TriState() bool {
	return f == FrameworkCISControls
}

// DisplayName returns a human-readable name for the framework.
func (f FrameworkID) DisplayName() string {
	switch f {
	case FrameworkISO27001:
		return "ISO 27001"
	case FrameworkISO27002:
		return "ISO 27002"
	case FrameworkCISControls:
		return "CIS Controls"
	case FrameworkGDPR:
		return "GDPR"
	case FrameworkNIS2:
		return "NIS2"
	case FrameworkDORA:
		return "DORA"
	default:
		return string(f)
	}
}

// GroupLevel is the CIS Controls implementation group, a tri-state refinement
// representing increasing control maturity tiers. The zero value means the
// framework is not selected.
type GroupLevel string

const (
	// GroupLevelNone means the tri-state framework is not selected.
	GroupLevelNone GroupLevel = ""
	// GroupLevelIG1 is implementation group 1, the basic tier.
	GroupLevelIG1 GroupLevel = "ig1"
	// GroupLevelIG2 is implementation group 2.
	GroupLevelIG2 GroupLevel = "ig2"
	// GroupLevelIG3 is implementation group 3, the full control set.
	GroupLevelIG3 GroupLevel = "ig3"
)

// Valid reports whether the level is one of the three implementation groups.
func (l GroupLevel) Valid() bool {
	return l == GroupLevelIG1 || l == GroupLevelIG2 || l == GroupLevelIG3
}

// Selection is the fixed-shape record of which frameworks the caller has
// toggled on. Boolean frameworks carry a flag; the CIS Controls framework
// carries an optional implementation group level where GroupLevelNone means
// unselected. The zero value is the empty selection.
type Selection struct {
	ISO27001    bool
	ISO27002    bool
	CISControls GroupLevel
	GDPR        bool
	NIS2        bool
	DORA        bool
}

// Enabled reports whether the given framework is part of the selection.
// For the tri-state framework any valid group level counts as enabled; the
// specific level only affects displayed counts, never inclusion.
func (s Selection) Enabled(f FrameworkID) bool {
	switch f {
	case FrameworkISO27001:
		return s.ISO27001
	case FrameworkISO27002:
		return s.ISO27002
	case FrameworkCISControls:
		return s.CISControls.Valid()
	case FrameworkGDPR:
		return s.GDPR
	case FrameworkNIS2:
		return s.NIS2
	case FrameworkDORA:
		return s.DORA
	default:
		return false
	}
}

// Empty reports whether no framework is selected at all.
func (s Selection) Empty() bool {
	for _, f := range frameworks {
		if s.Enabled(f) {
			return false
		}
	}

	return true
}

// OthersEnabled reports whether at least one framework other than GDPR is
// selected. Together with the GDPR flag it determines the filtering regime.
func (s Selection) OthersEnabled() bool {
	for _, f := range frameworks {
		if f != FrameworkGDPR && s.Enabled(f) {
			return true
		}
	}

	return false
}
