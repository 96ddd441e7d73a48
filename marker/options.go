package marker

import (
	"github.com/ceyewan/logplan/clog"
	"github.com/ceyewan/logplan/typeinfo"
)

// AttrOption 标记属性选项
type AttrOption func(*Attributes)

func newAttributes(opts []AttrOption) Attributes {
	a := DefaultAttributes()
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// WithLogger 设置目标日志器
func WithLogger(name string) AttrOption {
	return func(a *Attributes) { a.Logger = name }
}

// WithLevel 设置输出级别
func WithLevel(level clog.Level) AttrOption {
	return func(a *Attributes) { a.Level = level }
}

// WithIfEnabled 设置启用阈值
func WithIfEnabled(level clog.Level) AttrOption {
	return func(a *Attributes) { a.IfEnabled = level }
}

// WithVerbose 设置详细输出策略
func WithVerbose(v VerbosePolicy) AttrOption {
	return func(a *Attributes) { a.Verbose = v }
}

// WithPrinter 设置打印器名称
func WithPrinter(name string) AttrOption {
	return func(a *Attributes) { a.Printer = name }
}

// WithMask 追加脱敏表达式
func WithMask(expressions ...string) AttrOption {
	return func(a *Attributes) { a.Mask = append(a.Mask, expressions...) }
}

// ErrorOption 错误标记选项
type ErrorOption func(*Error)

// ErrorLogger 设置错误标记的目标日志器
func ErrorLogger(name string) ErrorOption {
	return func(e *Error) { e.Logger = name }
}

// ErrorLevel 设置错误标记的输出级别
func ErrorLevel(level clog.Level) ErrorOption {
	return func(e *Error) { e.Level = level }
}

// ErrorIfEnabled 设置错误标记的启用阈值
func ErrorIfEnabled(level clog.Level) ErrorOption {
	return func(e *Error) { e.IfEnabled = level }
}

// ErrorVerbose 设置错误标记的详细输出策略
func ErrorVerbose(v VerbosePolicy) ErrorOption {
	return func(e *Error) { e.Verbose = v }
}

// OfType 覆盖包含的错误类型，传入空列表表示显式声明为空
func OfType(types ...*typeinfo.Type) ErrorOption {
	return func(e *Error) { e.OfType = append([]*typeinfo.Type{}, types...) }
}

// Exclude 设置排除的错误类型
func Exclude(types ...*typeinfo.Type) ErrorOption {
	return func(e *Error) { e.Exclude = append([]*typeinfo.Type{}, types...) }
}
