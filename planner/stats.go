package planner

import (
	"context"
	"time"

	"github.com/ceyewan/logplan/definition"
	"github.com/ceyewan/logplan/metrics"
	"github.com/ceyewan/logplan/xerrors"
)

// stats 解析相关指标
type stats struct {
	resolutions metrics.Counter
	warnings    metrics.Counter
	duration    metrics.Histogram
	cached      metrics.Gauge
}

func newStats(meter metrics.Meter) (*stats, error) {
	resolutions, err := meter.Counter(metrics.MetricResolutions, "Number of log plan resolutions")
	if err != nil {
		return nil, xerrors.Wrap(err, "planner: failed to create counter")
	}
	warnings, err := meter.Counter(metrics.MetricWarnings, "Number of non-fatal configuration warnings")
	if err != nil {
		return nil, xerrors.Wrap(err, "planner: failed to create counter")
	}
	duration, err := meter.Histogram(metrics.MetricResolveSeconds, "Time spent resolving a log plan", metrics.WithUnit("s"))
	if err != nil {
		return nil, xerrors.Wrap(err, "planner: failed to create histogram")
	}
	cached, err := meter.Gauge(metrics.MetricCachedPlans, "Number of cached resolution results")
	if err != nil {
		return nil, xerrors.Wrap(err, "planner: failed to create gauge")
	}
	return &stats{
		resolutions: resolutions,
		warnings:    warnings,
		duration:    duration,
		cached:      cached,
	}, nil
}

func (s *stats) resolved(ctx context.Context, pack *definition.LogPack, err error, cache string, elapsed time.Duration) {
	outcome := metrics.OutcomePlanned
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
	case pack == nil:
		outcome = metrics.OutcomeAbsent
	}
	s.resolutions.Inc(ctx, metrics.L(metrics.LabelOutcome, outcome), metrics.L(metrics.LabelCache, cache))
	if cache == metrics.CacheMiss {
		s.duration.Record(ctx, elapsed.Seconds(), metrics.L(metrics.LabelOutcome, outcome))
	}
}

func (s *stats) warned(ctx context.Context, code string) {
	s.warnings.Inc(ctx, metrics.L(metrics.LabelCode, code))
}

func (s *stats) cachedPlans(ctx context.Context, n int) {
	s.cached.Set(ctx, float64(n))
}
