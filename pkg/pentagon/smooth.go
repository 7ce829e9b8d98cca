package pentagon

import (
	"strconv"
	"strings"

	"compliancemap/pkg/domain"
)

// smoothTension controls how strongly the cubic control points follow the
// direction of the neighboring points. Lower values give tighter curves.
const smoothTension = 0.4

// SmoothPath fits a closed smooth curve through the ordered point sequence
// and returns it as an SVG-style path: a move command, one cubic-curve
// segment per consecutive pair with the final segment closing back to the
// first point, and a close command.
//
// Control points are derived from each previous/current/next point triple
// using a fixed tension, treating the sequence as cyclic. Degenerate inputs
// yield degenerate but valid paths: an empty string for no points and a bare
// move command for a single point.
func SmoothPath(points []domain.Point) string {
	if len(points) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, points[0])
	if len(points) == 1 {
		return b.String()
	}

	n := len(points)
	for i := 0; i < n; i++ {
		p0 := points[(i-1+n)%n]
		p1 := points[i]
		p2 := points[(i+1)%n]
		p3 := points[(i+2)%n]

		c1 := domain.Point{
			X: p1.X + (p2.X-p0.X)*smoothTension/3,
			Y: p1.Y + (p2.Y-p0.Y)*smoothTension/3,
		}
		c2 := domain.Point{
			X: p2.X - (p3.X-p1.X)*smoothTension/3,
			Y: p2.Y - (p3.Y-p1.Y)*smoothTension/3,
		}

		b.WriteString(" C ")
		writePoint(&b, c1)
		b.WriteString(", ")
		writePoint(&b, c2)
		b.WriteString(", ")
		writePoint(&b, p2)
	}
	b.WriteString(" Z")

	return b.String()
}

// writePoint appends "x y" with two-decimal precision, enough for any
// on-screen coordinate space without bloating the path string.
func writePoint(b *strings.Builder, p domain.Point) {
	b.WriteString(strconv.FormatFloat(p.X, 'f', 2, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(p.Y, 'f', 2, 64))
}
