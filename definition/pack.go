package definition

import (
	"slices"

	"github.com/ceyewan/logplan/typeinfo"
)

// LogPack 单个方法解析完成的日志计划
type LogPack struct {
	method     *typeinfo.Method
	paramNames List[string]
	in         *InLog
	args       List[*ArgLog]
	out        *OutLog
	errors     List[*ErrorLog]
}

// NewLogPack 组装日志计划
//
// in、out 均为 nil，args 全部为 nil 且 errs 为空时没有任何需要记录的内容，返回 nil。
// args 与方法参数按位置对应，nil 表示不记录该参数；errs 保持声明顺序。
func NewLogPack(method *typeinfo.Method, paramNames []string, in *InLog, args []*ArgLog, out *OutLog, errs []*ErrorLog) *LogPack {
	if in == nil && out == nil && len(errs) == 0 && !slices.ContainsFunc(args, func(a *ArgLog) bool { return a != nil }) {
		return nil
	}
	return &LogPack{
		method:     method,
		paramNames: NewList(paramNames),
		in:         in,
		args:       NewList(args),
		out:        out,
		errors:     NewList(errs),
	}
}

// Method 计划对应的方法
func (p *LogPack) Method() *typeinfo.Method { return p.method }

// ParameterNames 参数名称，与 Args 按位置对应
func (p *LogPack) ParameterNames() List[string] { return p.paramNames }

// In 入口规格，可能为 nil
func (p *LogPack) In() *InLog { return p.in }

// Args 参数规格
func (p *LogPack) Args() List[*ArgLog] { return p.args }

// Out 出口规格，可能为 nil
func (p *LogPack) Out() *OutLog { return p.out }

// Errors 错误规格，保持声明顺序
func (p *LogPack) Errors() List[*ErrorLog] { return p.errors }

// FindErrorLog 按声明顺序返回第一个接受错误类型 t 的规格，没有时返回 nil
func (p *LogPack) FindErrorLog(t *typeinfo.Type) (*ErrorLog, error) {
	for _, e := range p.errors.All() {
		ok, err := e.Matches(t)
		if err != nil {
			return nil, err
		}
		if ok {
			return e, nil
		}
	}
	return nil, nil
}
