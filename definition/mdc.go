package definition

import (
	"slices"

	"github.com/ceyewan/logplan/marker"
	"github.com/ceyewan/logplan/typeinfo"
)

// MethodMdc 单个方法的 MDC 计划
type MethodMdc struct {
	method     *typeinfo.Method
	paramNames List[string]
	methodMdcs List[marker.Mdc]
	paramMdcs  List[List[marker.Mdc]]
}

// NewMethodMdc 组装 MDC 计划，方法和参数上都没有 MDC 标记时返回 nil
func NewMethodMdc(method *typeinfo.Method, paramNames []string, methodMdcs []marker.Mdc, paramMdcs [][]marker.Mdc) *MethodMdc {
	if len(methodMdcs) == 0 && !slices.ContainsFunc(paramMdcs, func(m []marker.Mdc) bool { return len(m) > 0 }) {
		return nil
	}
	frozen := make([]List[marker.Mdc], len(paramMdcs))
	for i, m := range paramMdcs {
		frozen[i] = NewList(m)
	}
	return &MethodMdc{
		method:     method,
		paramNames: NewList(paramNames),
		methodMdcs: NewList(methodMdcs),
		paramMdcs:  NewList(frozen),
	}
}

// Method 计划对应的方法
func (m *MethodMdc) Method() *typeinfo.Method { return m.method }

// ParameterNames 参数名称
func (m *MethodMdc) ParameterNames() List[string] { return m.paramNames }

// MethodDefinitions 方法上的 MDC 标记
func (m *MethodMdc) MethodDefinitions() List[marker.Mdc] { return m.methodMdcs }

// ParameterDefinitions 按参数位置的 MDC 标记
func (m *MethodMdc) ParameterDefinitions() List[List[marker.Mdc]] { return m.paramMdcs }
