package coverage

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"compliancemap/pkg/domain"
	"compliancemap/pkg/pentagon"
	"compliancemap/pkg/serrors"
)

type service struct {
	source Source

	requests metric.Int64Counter
	latency  metric.Float64Histogram
}

// NewService returns a Service reading from source. Instruments are
// registered on the given meter provider.
func NewService(source Source, mp metric.MeterProvider) (Service, error) {
	meter := mp.Meter("compliancemap/coverage")

	requests, err := meter.Int64Counter("coverage_requests_total",
		metric.WithDescription("Number of coverage service operations."))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not create request counter")
	}

	latency, err := meter.Float64Histogram("coverage_operation_seconds",
		metric.WithDescription("Latency of coverage service operations."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not create latency histogram")
	}

	return &service{source: source, requests: requests, latency: latency}, nil
}

func (s *service) observe(ctx context.Context, op string, start time.Time) {
	attrs := metric.WithAttributes(attribute.String("operation", op))
	s.requests.Add(ctx, 1, attrs)
	s.latency.Record(ctx, time.Since(start).Seconds(), attrs)
}

func (s *service) Frameworks(ctx context.Context) ([]FrameworkInfo, error) {
	defer s.observe(ctx, "frameworks", time.Now())

	categories, err := s.source.Categories(ctx)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load mapping")
	}

	out := make([]FrameworkInfo, 0, len(domain.Frameworks()))
	for _, f := range domain.Frameworks() {
		info := FrameworkInfo{
			ID:       f,
			Name:     f.DisplayName(),
			TriState: f.TriState(),
		}
		for _, cat := range categories {
			if reqs := cat.Requirements(f); len(reqs) > 0 {
				info.Categories++
				info.Requirements += len(reqs)
			}
		}
		out = append(out, info)
	}

	return out, nil
}

func (s *service) Categories(ctx context.Context,
	selection domain.Selection,
	filter pentagon.Filter) ([]domain.UnifiedCategory, error) {
	defer s.observe(ctx, "categories", time.Now())

	categories, err := s.source.Categories(ctx)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load mapping")
	}

	return pentagon.FilterAndRenumber(categories, selection, filter), nil
}

func (s *service) Coverage(ctx context.Context,
	framework domain.FrameworkID,
	geom Geometry) (Coverage, error) {
	defer s.observe(ctx, "coverage", time.Now())

	if !framework.Known() {
		return Coverage{}, serrors.With(serrors.ErrNotFound, "unknown framework %q", framework)
	}

	categories, err := s.source.Categories(ctx)
	if err != nil {
		return Coverage{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not load mapping")
	}

	intensity := pentagon.Intensity(framework, categories)
	points := pentagon.SynthesizeArea(intensity, geom.Center, geom.OuterRadius)

	return Coverage{
		Framework: framework,
		Intensity: intensity,
		Points:    points,
		Path:      pentagon.SmoothPath(points),
	}, nil
}

func (s *service) Health(ctx context.Context) error {
	return s.source.Health(ctx)
}
