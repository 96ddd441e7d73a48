// Package definition 定义解析结果：每个方法一份不可变的日志计划（LogPack）和 MDC 计划（MethodMdc）。
//
// 计划构造完成后只读，可以被多个调用方并发共享；其中的集合都是冻结的 List。
package definition

import (
	"github.com/ceyewan/logplan/clog"
	"github.com/ceyewan/logplan/errorset"
	"github.com/ceyewan/logplan/marker"
	"github.com/ceyewan/logplan/printer"
	"github.com/ceyewan/logplan/typeinfo"
)

// spec 入口、出口和参数共用的日志规格，字段只能通过方法读取
type spec struct {
	level     clog.Level
	ifEnabled clog.Level
	verbose   marker.VerbosePolicy
	printer   printer.Printer
	mask      List[string]
}

func newSpec(a marker.Attributes, p printer.Printer) spec {
	return spec{
		level:     a.Level,
		ifEnabled: a.IfEnabled,
		verbose:   a.Verbose,
		printer:   p,
		mask:      NewList(a.Mask),
	}
}

// Level 日志级别
func (s spec) Level() clog.Level { return s.level }

// IfEnabled 只有该级别启用时才记录，OffLevel 表示总是记录
func (s spec) IfEnabled() clog.Level { return s.ifEnabled }

// Verbose 详细输出策略
func (s spec) Verbose() marker.VerbosePolicy { return s.verbose }

// Printer 已解析的打印器
func (s spec) Printer() printer.Printer { return s.printer }

// Mask 脱敏表达式
func (s spec) Mask() List[string] { return s.mask }

// InLog 方法入口日志规格
type InLog struct{ spec }

// OutLog 方法出口日志规格
type OutLog struct{ spec }

// ArgLog 参数日志规格
type ArgLog struct{ spec }

// NewInLog 由入口标记和已解析的打印器创建 InLog
func NewInLog(in marker.In, p printer.Printer) *InLog {
	return &InLog{spec: newSpec(in.Attributes, p)}
}

// NewOutLog 由出口标记和已解析的打印器创建 OutLog
func NewOutLog(out marker.Out, p printer.Printer) *OutLog {
	return &OutLog{spec: newSpec(out.Attributes, p)}
}

// NewArgLog 由参数标记和已解析的打印器创建 ArgLog
func NewArgLog(arg marker.Arg, p printer.Printer) *ArgLog {
	return &ArgLog{spec: newSpec(arg.Attributes, p)}
}

// ErrorLog 错误日志规格
type ErrorLog struct {
	level     clog.Level
	ifEnabled clog.Level
	verbose   marker.VerbosePolicy
	filter    *errorset.Filter
}

// NewErrorLog 由错误标记和化简后的过滤器创建 ErrorLog
func NewErrorLog(e marker.Error, filter *errorset.Filter) *ErrorLog {
	return &ErrorLog{
		level:     e.Level,
		ifEnabled: e.IfEnabled,
		verbose:   e.Verbose,
		filter:    filter,
	}
}

func (e *ErrorLog) Level() clog.Level             { return e.level }
func (e *ErrorLog) IfEnabled() clog.Level         { return e.ifEnabled }
func (e *ErrorLog) Verbose() marker.VerbosePolicy { return e.verbose }

// Filter 化简后的错误类型过滤器
func (e *ErrorLog) Filter() *errorset.Filter { return e.filter }

// Matches 判断错误类型 t 是否由该规格记录
func (e *ErrorLog) Matches(t *typeinfo.Type) (bool, error) {
	return e.filter.Matches(t)
}
