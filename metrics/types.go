package metrics

import (
	"context"
	"net/http"
)

// Counter 只增不减的计数器
type Counter interface {
	// Inc 加 1
	Inc(ctx context.Context, labels ...Label)

	// Add 增加 val，val 必须非负
	Add(ctx context.Context, val float64, labels ...Label)
}

// Gauge 可增可减的仪表盘
type Gauge interface {
	Set(ctx context.Context, val float64, labels ...Label)

	Inc(ctx context.Context, labels ...Label)

	Dec(ctx context.Context, labels ...Label)
}

// Histogram 记录数值分布，例如耗时
type Histogram interface {
	Record(ctx context.Context, val float64, labels ...Label)
}

// Meter 指标工厂
type Meter interface {
	Counter(name string, desc string, opts ...MetricOption) (Counter, error)

	Gauge(name string, desc string, opts ...MetricOption) (Gauge, error)

	Histogram(name string, desc string, opts ...MetricOption) (Histogram, error)

	// Handler 返回 Prometheus 格式的指标导出 Handler
	Handler() http.Handler

	Shutdown(ctx context.Context) error
}

// MetricOption 单个指标的选项
type MetricOption func(*MetricOptions)

// MetricOptions 单个指标的配置
type MetricOptions struct {
	Unit string
}

// WithUnit 设置指标单位
func WithUnit(unit string) MetricOption {
	return func(o *MetricOptions) {
		o.Unit = unit
	}
}
