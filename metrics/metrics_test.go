package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/ceyewan/logplan/clog"
)

func shutdown(t *testing.T, m Meter) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

// gathered 返回 registry 中以 prefix 开头的指标族名称
func gathered(t *testing.T, reg *prom.Registry, prefix string) []string {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	var names []string
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), prefix) {
			names = append(names, f.GetName())
		}
	}
	return names
}

// TestNew 测试创建 Meter 实例
func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		opts    []Option
		wantErr bool
	}{
		{name: "nil config", cfg: nil, wantErr: true},
		{name: "disabled", cfg: &Config{Enabled: false}},
		{name: "enabled", cfg: NewDevDefaultConfig("test-service")},
		{
			name: "with logger option",
			cfg:  NewProdDefaultConfig("test-service", "v1.0.0"),
			opts: []Option{WithLogger(clog.Discard()), WithLogger(nil)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meter, err := New(tt.cfg, tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if meter == nil {
				t.Fatal("New() returned nil meter")
			}
			shutdown(t, meter)
		})
	}
}

// TestDiscard 所有操作都应该正常但不产生任何效果
func TestDiscard(t *testing.T) {
	meter := Discard()
	ctx := context.Background()

	counter, err := meter.Counter("test", "test")
	if err != nil {
		t.Errorf("Counter() error = %v", err)
	}
	counter.Inc(ctx)
	counter.Add(ctx, 3)

	gauge, err := meter.Gauge("test", "test")
	if err != nil {
		t.Errorf("Gauge() error = %v", err)
	}
	gauge.Set(ctx, 100)
	gauge.Inc(ctx)
	gauge.Dec(ctx)

	histogram, err := meter.Histogram("test", "test")
	if err != nil {
		t.Errorf("Histogram() error = %v", err)
	}
	histogram.Record(ctx, 0.123)

	rec := httptest.NewRecorder()
	meter.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("noop Handler() status = %d, want 404", rec.Code)
	}
	shutdown(t, meter)
}

// TestPrometheusExport 测试指标通过 Prometheus Registry 导出
func TestPrometheusExport(t *testing.T) {
	reg := prom.NewRegistry()
	meter, err := New(NewDevDefaultConfig("test-service"), WithRegistry(reg))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer shutdown(t, meter)

	ctx := context.Background()
	counter, err := meter.Counter(MetricResolutions, "resolutions")
	if err != nil {
		t.Fatalf("Counter() error = %v", err)
	}
	histogram, err := meter.Histogram(MetricResolveSeconds, "resolve duration", WithUnit("s"))
	if err != nil {
		t.Fatalf("Histogram() error = %v", err)
	}
	gauge, err := meter.Gauge(MetricCachedPlans, "cached plans")
	if err != nil {
		t.Fatalf("Gauge() error = %v", err)
	}

	counter.Inc(ctx, L(LabelOutcome, OutcomePlanned))
	counter.Add(ctx, 2, L(LabelOutcome, OutcomeAbsent))
	histogram.Record(ctx, 0.002)
	gauge.Inc(ctx)
	gauge.Inc(ctx)
	gauge.Dec(ctx)

	for _, prefix := range []string{"logplan_resolutions", "logplan_resolve_duration", "logplan_cached_plans"} {
		if names := gathered(t, reg, prefix); len(names) == 0 {
			t.Errorf("metric with prefix %q not exported", prefix)
		}
	}

	rec := httptest.NewRecorder()
	meter.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Handler() status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `outcome="planned"`) {
		t.Errorf("exported body misses outcome label:\n%s", rec.Body.String())
	}
}

// TestLabel 测试 L 函数与 labelKey
func TestLabel(t *testing.T) {
	label := L(LabelOutcome, OutcomeError)
	if label.Key != "outcome" || label.Value != "error" {
		t.Errorf("L() = %+v", label)
	}
	if got := labelKey([]Label{L("a", "1"), L("b", "2")}); got != "a=1|b=2" {
		t.Errorf("labelKey() = %q", got)
	}
	if got := labelKey(nil); got != "" {
		t.Errorf("labelKey(nil) = %q", got)
	}
}

func TestWithUnit(t *testing.T) {
	opts := metricOptions([]MetricOption{WithUnit("s")})
	if opts.Unit != "s" {
		t.Errorf("WithUnit() Unit = %v, want s", opts.Unit)
	}
}
