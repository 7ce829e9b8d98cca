package pentagon

import (
	"math"
	"sort"

	"compliancemap/pkg/domain"
)

const (
	// baseFraction is the radial fraction of the outer radius at which a
	// covered domain with zero normalized intensity is placed.
	baseFraction = 0.45
	// scaleFraction is the additional radial fraction spanned between zero
	// and full normalized intensity.
	scaleFraction = 0.25
	// MaxFraction bounds the synthesized shape: no point is ever placed
	// farther than this fraction of the outer radius from the center, which
	// keeps the area strictly inside the enclosing pentagon.
	MaxFraction = baseFraction + scaleFraction

	// inwardBias pulls interpolated midpoints toward the center so the
	// outline rounds off instead of bulging between vertices.
	inwardBias = 0.15

	// sectorSweep is the angular width of the arc drawn when only a single
	// domain is covered.
	sectorSweep = math.Pi / 4
	// sectorSteps is the number of samples approximating that arc.
	sectorSteps = 12

	// midpointSteps is the number of interpolated points inserted between
	// consecutive covered-domain vertices.
	midpointSteps = 3
)

// AnchorAngle returns the angle of a domain's pentagon vertex. The pentagon
// starts at the top vertex and proceeds clockwise in screen coordinates.
func AnchorAngle(d domain.CoverageDomain) float64 {
	return -math.Pi/2 + float64(d)*2*math.Pi/domain.DomainCount
}

// Anchors returns the five fixed vertices of a regular pentagon centered at
// center with the given circumradius, ordered from the top vertex clockwise.
func Anchors(center domain.Point, outerRadius float64) [domain.DomainCount]domain.Point {
	var out [domain.DomainCount]domain.Point
	for d := range out {
		angle := AnchorAngle(domain.CoverageDomain(d))
		out[d] = domain.Point{
			X: center.X + outerRadius*math.Cos(angle),
			Y: center.Y + outerRadius*math.Sin(angle),
		}
	}

	return out
}

// radialFraction maps a normalized intensity in [0,1] to a fraction of the
// outer radius in [baseFraction, MaxFraction].
func radialFraction(normalized float64) float64 {
	return baseFraction + scaleFraction*normalized
}

// polar returns the point at the given angle and distance from center.
func polar(center domain.Point, angle, distance float64) domain.Point {
	return domain.Point{
		X: center.X + distance*math.Cos(angle),
		Y: center.Y + distance*math.Sin(angle),
	}
}

// SynthesizeArea converts a domain intensity map into the ordered point
// sequence describing a closed coverage shape anchored at center.
//
// Intensities are normalized by the maximum count across covered domains.
// With a single covered domain the shape is a circular sector spanning
// sectorSweep centered on that domain's anchor angle. With multiple covered
// domains one vertex is placed per domain along the center-to-anchor line,
// with midpointSteps inward-biased points blended between consecutive
// vertices to round the outline. All shapes start at the center point.
//
// An empty intensity map yields the degenerate single-point shape [center].
func SynthesizeArea(intensity domain.Intensity, center domain.Point, outerRadius float64) []domain.Point {
	covered := make([]domain.CoverageDomain, 0, domain.DomainCount)
	for d, count := range intensity {
		if d.Valid() && count > 0 {
			covered = append(covered, d)
		}
	}
	if len(covered) == 0 {
		return []domain.Point{center}
	}
	sort.Slice(covered, func(i, j int) bool { return covered[i] < covered[j] })

	max := intensity.Max()

	if len(covered) == 1 {
		return sector(center, outerRadius, covered[0], intensity[covered[0]], max)
	}

	points := make([]domain.Point, 0, 1+len(covered)*(1+midpointSteps))
	points = append(points, center)

	distances := make([]float64, len(covered))
	angles := make([]float64, len(covered))
	for i, d := range covered {
		normalized := float64(intensity[d]) / float64(max)
		distances[i] = radialFraction(normalized) * outerRadius
		angles[i] = AnchorAngle(d)
	}

	for i := range covered {
		points = append(points, polar(center, angles[i], distances[i]))

		next := (i + 1) % len(covered)
		if next == 0 {
			// the smoothing pass closes the outline back through the center,
			// so no midpoints are blended across the wrap
			break
		}

		sweep := angles[next] - angles[i]
		for step := 1; step <= midpointSteps; step++ {
			t := float64(step) / float64(midpointSteps+1)
			blended := distances[i] + (distances[next]-distances[i])*t
			points = append(points, polar(center, angles[i]+sweep*t, blended*(1-inwardBias)))
		}
	}

	return points
}

// sector approximates a circular arc spanning sectorSweep centered on the
// covered domain's anchor angle, sampled in sectorSteps segments.
func sector(center domain.Point,
	outerRadius float64,
	d domain.CoverageDomain,
	count, max int) []domain.Point {
	normalized := float64(count) / float64(max)
	distance := radialFraction(normalized) * outerRadius
	anchor := AnchorAngle(d)

	points := make([]domain.Point, 0, sectorSteps+2)
	points = append(points, center)
	for step := 0; step <= sectorSteps; step++ {
		angle := anchor - sectorSweep/2 + sectorSweep*float64(step)/float64(sectorSteps)
		points = append(points, polar(center, angle, distance))
	}

	return points
}
