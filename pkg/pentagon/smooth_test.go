package pentagon_test

import (
	"strings"
	"testing"

	"compliancemap/pkg/domain"
	"compliancemap/pkg/pentagon"
)

func TestSmoothPathDegenerate(t *testing.T) {
	if got := pentagon.SmoothPath(nil); got != "" {
		t.Errorf("no points: got %q, want empty path", got)
	}

	got := pentagon.SmoothPath([]domain.Point{{X: 150, Y: 150}})
	if got != "M 150.00 150.00" {
		t.Errorf("single point: got %q", got)
	}
}

func TestSmoothPathClosedCurve(t *testing.T) {
	points := []domain.Point{
		{X: 150, Y: 150},
		{X: 150, Y: 30},
		{X: 250, Y: 120},
		{X: 200, Y: 240},
	}
	got := pentagon.SmoothPath(points)

	if !strings.HasPrefix(got, "M 150.00 150.00") {
		t.Errorf("path must start with a move to the first point, got %q", got)
	}
	if !strings.HasSuffix(got, "Z") {
		t.Errorf("path must be closed, got %q", got)
	}
	// one cubic segment per point, the last closing back to the start
	if n := strings.Count(got, " C "); n != len(points) {
		t.Errorf("expected %d curve segments, got %d in %q", len(points), n, got)
	}
	if !strings.Contains(got[len(got)-40:], "150.00 150.00 Z") {
		t.Errorf("final segment must return to the first point, got %q", got)
	}
}

func TestSmoothPathTwoPoints(t *testing.T) {
	got := pentagon.SmoothPath([]domain.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	if !strings.HasPrefix(got, "M 0.00 0.00") || !strings.HasSuffix(got, "Z") {
		t.Errorf("two points must still produce a closed path, got %q", got)
	}
	if n := strings.Count(got, " C "); n != 2 {
		t.Errorf("expected 2 curve segments, got %d", n)
	}
}
