package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ceyewan/logplan/clog"
)

// Option 配置 Meter 实例的选项函数类型
type Option func(*options)

type options struct {
	logger   clog.Logger
	registry *prometheus.Registry
}

// WithLogger 注入日志记录器，组件会自动追加 "metrics" 命名空间
func WithLogger(logger clog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger.WithNamespace("metrics")
		}
	}
}

// WithRegistry 使用指定的 Prometheus Registry
//
// 未设置时每个 Meter 使用独立的 Registry，避免与进程内其他组件冲突。
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) {
		if reg != nil {
			o.registry = reg
		}
	}
}
