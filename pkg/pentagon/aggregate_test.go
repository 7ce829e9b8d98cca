package pentagon_test

import (
	"testing"

	"compliancemap/pkg/domain"
	"compliancemap/pkg/pentagon"
)

func reqs(n int) []domain.Requirement {
	out := make([]domain.Requirement, n)
	for i := range out {
		out[i] = domain.Requirement{Code: string(rune('A' + i))}
	}

	return out
}

func category(id string, d domain.CoverageDomain, lists map[domain.FrameworkID]int) domain.UnifiedCategory {
	cat := domain.UnifiedCategory{
		ID:     id,
		Label:  id,
		Domain: d,
	}
	cat.Normalize()
	for f, n := range lists {
		cat.Frameworks[f] = reqs(n)
	}

	return cat
}

func TestIntensity(t *testing.T) {
	cases := []struct {
		name       string
		framework  domain.FrameworkID
		categories []domain.UnifiedCategory
		want       domain.Intensity
	}{
		{
			name:       "empty input yields empty map",
			framework:  domain.FrameworkISO27001,
			categories: nil,
			want:       domain.Intensity{},
		},
		{
			name:      "single category single domain",
			framework: domain.FrameworkISO27001,
			categories: []domain.UnifiedCategory{
				category("access-control", domain.DomainTechnical, map[domain.FrameworkID]int{
					domain.FrameworkISO27001: 3,
				}),
			},
			want: domain.Intensity{domain.DomainTechnical: 3},
		},
		{
			name:      "counts accumulate per domain",
			framework: domain.FrameworkNIS2,
			categories: []domain.UnifiedCategory{
				category("a", domain.DomainGovernance, map[domain.FrameworkID]int{domain.FrameworkNIS2: 2}),
				category("b", domain.DomainGovernance, map[domain.FrameworkID]int{domain.FrameworkNIS2: 4}),
				category("c", domain.DomainOperational, map[domain.FrameworkID]int{domain.FrameworkNIS2: 1}),
			},
			want: domain.Intensity{
				domain.DomainGovernance:  6,
				domain.DomainOperational: 1,
			},
		},
		{
			name:      "absent domain excluded from aggregation",
			framework: domain.FrameworkCISControls,
			categories: []domain.UnifiedCategory{
				category("no-domain", domain.DomainNone, map[domain.FrameworkID]int{
					domain.FrameworkCISControls: 5,
				}),
			},
			want: domain.Intensity{},
		},
		{
			name:      "out of range domain excluded from aggregation",
			framework: domain.FrameworkDORA,
			categories: []domain.UnifiedCategory{
				category("bad", domain.CoverageDomain(7), map[domain.FrameworkID]int{domain.FrameworkDORA: 2}),
			},
			want: domain.Intensity{},
		},
		{
			name:      "unknown framework yields empty map",
			framework: domain.FrameworkID("hipaa"),
			categories: []domain.UnifiedCategory{
				category("a", domain.DomainPrivacy, map[domain.FrameworkID]int{domain.FrameworkGDPR: 9}),
			},
			want: domain.Intensity{},
		},
		{
			name:      "other frameworks do not contribute",
			framework: domain.FrameworkGDPR,
			categories: []domain.UnifiedCategory{
				category("a", domain.DomainPrivacy, map[domain.FrameworkID]int{
					domain.FrameworkGDPR:     2,
					domain.FrameworkISO27001: 8,
				}),
			},
			want: domain.Intensity{domain.DomainPrivacy: 2},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pentagon.Intensity(tc.framework, tc.categories)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for d, count := range tc.want {
				if got[d] != count {
					t.Errorf("domain %s: got %d, want %d", d, got[d], count)
				}
			}
		})
	}
}

func TestIntensityAdditivity(t *testing.T) {
	setA := []domain.UnifiedCategory{
		category("a", domain.DomainGovernance, map[domain.FrameworkID]int{domain.FrameworkISO27002: 3}),
		category("b", domain.DomainTechnical, map[domain.FrameworkID]int{domain.FrameworkISO27002: 1}),
	}
	setB := []domain.UnifiedCategory{
		category("c", domain.DomainGovernance, map[domain.FrameworkID]int{domain.FrameworkISO27002: 2}),
		category("d", domain.DomainPhysical, map[domain.FrameworkID]int{domain.FrameworkISO27002: 5}),
	}

	combined := pentagon.Intensity(domain.FrameworkISO27002, append(append([]domain.UnifiedCategory{}, setA...), setB...))
	partA := pentagon.Intensity(domain.FrameworkISO27002, setA)
	partB := pentagon.Intensity(domain.FrameworkISO27002, setB)

	for d := domain.CoverageDomain(0); d < domain.DomainCount; d++ {
		if combined[d] != partA[d]+partB[d] {
			t.Errorf("domain %s: combined %d != %d + %d", d, combined[d], partA[d], partB[d])
		}
	}
}
