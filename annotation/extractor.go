// Package annotation 负责从标记源中发现、筛选和合成标记。
//
// Extractor 对方法和参数做标记发现，方法上直接找不到某种标记时会回退到其桥接孪生方法；
// FilterAndFindFirst / Filter 按激活的日志器名称筛选标记。
package annotation

import (
	"slices"

	"github.com/ceyewan/logplan/marker"
	"github.com/ceyewan/logplan/typeinfo"
)

// Extractor 标记提取器
type Extractor struct {
	source  marker.Source
	bridges *BridgeResolver
}

// NewExtractor 创建标记提取器
func NewExtractor(source marker.Source) *Extractor {
	return &Extractor{
		source:  source,
		bridges: NewBridgeResolver(),
	}
}

// CandidateMethods 返回类型上需要解析的候选方法
//
// 包含父类继承下来的方法，排除桥接方法、合成方法和 Object 上的方法。
func (e *Extractor) CandidateMethods(class *typeinfo.Type) []*typeinfo.Method {
	var result []*typeinfo.Method
	for _, m := range typeinfo.UniqueMethods(class) {
		if m.Bridge || m.Synthetic {
			continue
		}
		result = append(result, m)
	}
	return result
}

// HasAnyMarker 方法（或其桥接孪生方法）上是否有任何日志相关标记
//
// 作为跳过后续解析的快速过滤。桥接方法有歧义时返回 true，让后续解析暴露错误。
func (e *Extractor) HasAnyMarker(m *typeinfo.Method) bool {
	if e.hasDirectMarker(m) {
		return true
	}
	bridge, err := e.bridges.FindBridge(m)
	if err != nil {
		return true
	}
	return bridge != nil && e.hasDirectMarker(bridge)
}

func (e *Extractor) hasDirectMarker(m *typeinfo.Method) bool {
	return slices.ContainsFunc(marker.MethodKinds, func(kind marker.Kind) bool {
		return len(e.source.MethodMarkers(m, kind)) > 0
	})
}

// HasAnyParameterMarker 参数上是否有任何日志相关标记
func (e *Extractor) HasAnyParameterMarker(p *typeinfo.Parameter) bool {
	return slices.ContainsFunc(marker.ParameterKinds, func(kind marker.Kind) bool {
		return len(e.source.ParameterMarkers(p, kind)) > 0
	})
}

// Logs 返回方法上的通用标记
func (e *Extractor) Logs(m *typeinfo.Method) ([]marker.Log, error) {
	return findOnMethodOrBridge[marker.Log](e, m, marker.KindLog)
}

// Ins 返回方法上的入口标记
func (e *Extractor) Ins(m *typeinfo.Method) ([]marker.In, error) {
	return findOnMethodOrBridge[marker.In](e, m, marker.KindIn)
}

// Outs 返回方法上的出口标记
func (e *Extractor) Outs(m *typeinfo.Method) ([]marker.Out, error) {
	return findOnMethodOrBridge[marker.Out](e, m, marker.KindOut)
}

// Errors 返回方法上的错误标记
func (e *Extractor) Errors(m *typeinfo.Method) ([]marker.Error, error) {
	return findOnMethodOrBridge[marker.Error](e, m, marker.KindError)
}

// Mdcs 返回方法上的 MDC 标记
func (e *Extractor) Mdcs(m *typeinfo.Method) ([]marker.Mdc, error) {
	return findOnMethodOrBridge[marker.Mdc](e, m, marker.KindMdc)
}

// Args 按参数位置返回参数标记
func (e *Extractor) Args(m *typeinfo.Method) [][]marker.Arg {
	result := make([][]marker.Arg, len(m.Params))
	for i, p := range m.Params {
		result[i] = marker.Of[marker.Arg](e.source.ParameterMarkers(p, marker.KindArg))
	}
	return result
}

// ParameterMdcs 按参数位置返回参数上的 MDC 标记
func (e *Extractor) ParameterMdcs(m *typeinfo.Method) [][]marker.Mdc {
	result := make([][]marker.Mdc, len(m.Params))
	for i, p := range m.Params {
		result[i] = marker.Of[marker.Mdc](e.source.ParameterMarkers(p, marker.KindMdc))
	}
	return result
}

// findOnMethodOrBridge 直接发现为空时回退到桥接孪生方法
func findOnMethodOrBridge[T marker.Marker](e *Extractor, m *typeinfo.Method, kind marker.Kind) ([]T, error) {
	found := marker.Of[T](e.source.MethodMarkers(m, kind))
	if len(found) > 0 {
		return found, nil
	}
	bridge, err := e.bridges.FindBridge(m)
	if err != nil {
		return nil, err
	}
	if bridge == nil {
		return found, nil
	}
	return marker.Of[T](e.source.MethodMarkers(bridge, kind)), nil
}

// FindLog 返回适用于 loggers 的第一个通用标记
func (e *Extractor) FindLog(m *typeinfo.Method, loggers marker.LoggerSet) (marker.Log, bool, error) {
	logs, err := e.Logs(m)
	if err != nil {
		return marker.Log{}, false, err
	}
	log, ok := FilterAndFindFirst(logs, loggers)
	return log, ok, nil
}

// FindIn 返回适用于 loggers 的第一个入口标记
func (e *Extractor) FindIn(m *typeinfo.Method, loggers marker.LoggerSet) (marker.In, bool, error) {
	ins, err := e.Ins(m)
	if err != nil {
		return marker.In{}, false, err
	}
	in, ok := FilterAndFindFirst(ins, loggers)
	return in, ok, nil
}

// FindOut 返回适用于 loggers 的第一个出口标记
func (e *Extractor) FindOut(m *typeinfo.Method, loggers marker.LoggerSet) (marker.Out, bool, error) {
	outs, err := e.Outs(m)
	if err != nil {
		return marker.Out{}, false, err
	}
	out, ok := FilterAndFindFirst(outs, loggers)
	return out, ok, nil
}

// FindErrors 返回适用于 loggers 的全部错误标记，保持声明顺序
func (e *Extractor) FindErrors(m *typeinfo.Method, loggers marker.LoggerSet) ([]marker.Error, error) {
	errs, err := e.Errors(m)
	if err != nil {
		return nil, err
	}
	return Filter(errs, loggers), nil
}

// FindArgs 按参数位置返回适用于 loggers 的参数标记，没有的位置为 nil
func (e *Extractor) FindArgs(m *typeinfo.Method, loggers marker.LoggerSet) []*marker.Arg {
	all := e.Args(m)
	result := make([]*marker.Arg, len(all))
	for i, args := range all {
		if arg, ok := FilterAndFindFirst(args, loggers); ok {
			result[i] = &arg
		}
	}
	return result
}
