package planner

import (
	"github.com/ceyewan/logplan/clog"
	"github.com/ceyewan/logplan/metrics"
	"github.com/ceyewan/logplan/printer"
	"github.com/ceyewan/logplan/validate"
)

// Option 解析器选项
type Option func(*options)

type options struct {
	logger         clog.Logger
	meter          metrics.Meter
	printers       []printer.ResolverOption
	defaultPrinter printer.Printer
	reporter       func(validate.Warning)
}

// WithLogger 注入日志记录器，组件会自动追加 "planner" 命名空间
func WithLogger(l clog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l.WithNamespace("planner")
		}
	}
}

// WithMeter 注入指标 Meter
func WithMeter(m metrics.Meter) Option {
	return func(o *options) {
		if m != nil {
			o.meter = m
		}
	}
}

// WithPrinter 注册具名打印器
func WithPrinter(name string, p printer.Printer) Option {
	return func(o *options) {
		o.printers = append(o.printers, printer.WithPrinter(name, p))
	}
}

// WithDefaultPrinter 设置默认打印器，优先于 Config.DefaultPrinter
func WithDefaultPrinter(p printer.Printer) Option {
	return func(o *options) {
		o.defaultPrinter = p
	}
}

// WithReporter 接收解析过程中产生的非致命警告
func WithReporter(fn func(validate.Warning)) Option {
	return func(o *options) {
		o.reporter = fn
	}
}
