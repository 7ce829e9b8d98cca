package domain

// CoverageDomain is one of the five fixed top-level coverage areas used to
// bucket unified categories spatially on the pentagon.
type CoverageDomain int

const (
	// DomainGovernance covers organizational and governance controls.
	DomainGovernance CoverageDomain = iota
	// DomainPhysical covers physical and environmental controls.
	DomainPhysical
	// DomainTechnical covers technical and technological controls.
	DomainTechnical
	// DomainOperational covers operational and process controls.
	DomainOperational
	// DomainPrivacy covers privacy and data protection controls.
	DomainPrivacy
)

// DomainCount is the number of coverage domains, i.e. the pentagon's vertices.
const DomainCount = 5

// DomainNone marks a category that has no domain assigned. Such categories
// are excluded from aggregation but still participate in filtering.
const DomainNone CoverageDomain = -1

// Valid reports whether the value is one of the five coverage domains.
func (d CoverageDomain) Valid() bool {
	return d >= 0 && d < DomainCount
}

// String returns the domain's display name.
func (d CoverageDomain) String() string {
	switch d {
	case DomainGovernance:
		return "Governance"
	case DomainPhysical:
		return "Physical"
	case DomainTechnical:
		return "Technical"
	case DomainOperational:
		return "Operational"
	case DomainPrivacy:
		return "Privacy"
	default:
		return "Unknown"
	}
}

// Intensity maps coverage domains to the total number of a framework's
// requirements bucketed into each domain. It is a pure derivation and is
// recomputed whenever the selection or the mapping table changes.
type Intensity map[CoverageDomain]int

// Max returns the maximum count across all covered domains, or zero when the
// intensity map is empty.
func (in Intensity) Max() int {
	max := 0
	for _, count := range in {
		if count > max {
			max = count
		}
	}

	return max
}

// Total returns the sum of counts across all covered domains.
func (in Intensity) Total() int {
	total := 0
	for _, count := range in {
		total += count
	}

	return total
}
