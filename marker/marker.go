// Package marker 定义日志标记（marker）及其发现机制。
//
// 标记是附着在方法或参数上的声明式日志指令，共有以下几种：
//
//   - Log:   通用标记，作为入口/出口的默认值来源
//   - In:    方法入口
//   - Out:   方法出口
//   - Error: 错误（可重复，按声明顺序）
//   - Arg:   参数
//   - Mdc:   MDC 键值（方法或参数）
//
// 标记是只读快照，发现后不会再被修改。Go 没有运行时注解，标记通过 Registry
// 这张显式的旁路表声明，可以在代码中注册，也可以从声明文件加载（见 Declaration）。
package marker

import (
	"github.com/ceyewan/logplan/clog"
	"github.com/ceyewan/logplan/typeinfo"
)

// Kind 标记种类
type Kind int

const (
	KindLog Kind = iota
	KindIn
	KindOut
	KindError
	KindArg
	KindMdc
)

// MethodKinds 可以出现在方法上的标记种类，按常用程度排序
var MethodKinds = []Kind{KindLog, KindIn, KindOut, KindError, KindMdc}

// ParameterKinds 可以出现在参数上的标记种类
var ParameterKinds = []Kind{KindArg, KindMdc}

// String 返回 Kind 的字符串表示
func (k Kind) String() string {
	switch k {
	case KindLog:
		return "log"
	case KindIn:
		return "in"
	case KindOut:
		return "out"
	case KindError:
		return "error"
	case KindArg:
		return "arg"
	case KindMdc:
		return "mdc"
	default:
		return "unknown"
	}
}

// Marker 所有标记的公共能力
type Marker interface {
	// Kind 标记种类
	Kind() Kind
	// LoggerName 目标日志器名称，空字符串的语义由上游配置决定
	LoggerName() string
}

// VerbosePolicy 详细输出策略
type VerbosePolicy int

const (
	VerboseDebug  VerbosePolicy = iota // 只在日志器启用 debug 时输出详细内容
	VerboseAlways                      // 总是输出详细内容
	VerboseNever                       // 从不输出详细内容
)

// String 返回 VerbosePolicy 的字符串表示
func (v VerbosePolicy) String() string {
	switch v {
	case VerboseDebug:
		return "debug"
	case VerboseAlways:
		return "always"
	case VerboseNever:
		return "never"
	default:
		return "unknown"
	}
}

// Valid 是否为已定义的策略
func (v VerbosePolicy) Valid() bool {
	return v >= VerboseDebug && v <= VerboseNever
}

// Attributes 入口、出口、参数及通用标记共享的属性
type Attributes struct {
	Logger    string        // 目标日志器
	Level     clog.Level    // 输出级别
	IfEnabled clog.Level    // 只有日志器启用了该级别才输出，OffLevel 表示不检查
	Verbose   VerbosePolicy // 详细输出策略
	Printer   string        // 打印器名称，空表示默认打印器
	Mask      []string      // 脱敏表达式
}

// DefaultAttributes 返回标记的默认属性
func DefaultAttributes() Attributes {
	return Attributes{
		Level:     clog.DebugLevel,
		IfEnabled: clog.OffLevel,
		Verbose:   VerboseDebug,
	}
}

// Log 通用标记，入口/出口标记缺失时作为默认值来源
type Log struct {
	Attributes
}

// In 方法入口标记
type In struct {
	Attributes
}

// Out 方法出口标记
type Out struct {
	Attributes
}

// Arg 参数标记
type Arg struct {
	Attributes
}

// Error 错误标记，OfType/Exclude 保持声明顺序
type Error struct {
	Logger    string
	Level     clog.Level
	IfEnabled clog.Level
	Verbose   VerbosePolicy
	OfType    []*typeinfo.Type
	Exclude   []*typeinfo.Type
}

// Mdc MDC 标记
type Mdc struct {
	Key   string
	Value string // 表达式，空表示使用参数值本身
	// Global 为 true 时，MDC 值在方法返回后仍保留
	Global bool
}

// NewLog 创建带默认属性的通用标记
func NewLog(opts ...AttrOption) Log { return Log{Attributes: newAttributes(opts)} }

// NewIn 创建带默认属性的入口标记
func NewIn(opts ...AttrOption) In { return In{Attributes: newAttributes(opts)} }

// NewOut 创建带默认属性的出口标记
func NewOut(opts ...AttrOption) Out { return Out{Attributes: newAttributes(opts)} }

// NewArg 创建带默认属性的参数标记
func NewArg(opts ...AttrOption) Arg { return Arg{Attributes: newAttributes(opts)} }

// NewError 创建错误标记
//
// 默认级别为 error，未指定 OfType 时默认包含 Throwable。
func NewError(opts ...ErrorOption) Error {
	e := Error{
		Level:     clog.ErrorLevel,
		IfEnabled: clog.OffLevel,
		Verbose:   VerboseDebug,
		OfType:    []*typeinfo.Type{typeinfo.Throwable},
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (Log) Kind() Kind   { return KindLog }
func (In) Kind() Kind    { return KindIn }
func (Out) Kind() Kind   { return KindOut }
func (Arg) Kind() Kind   { return KindArg }
func (Error) Kind() Kind { return KindError }
func (Mdc) Kind() Kind   { return KindMdc }

func (a Attributes) LoggerName() string { return a.Logger }
func (e Error) LoggerName() string      { return e.Logger }

// LoggerName MDC 不区分日志器，总是返回空字符串
func (Mdc) LoggerName() string { return "" }
