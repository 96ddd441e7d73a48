package annotation

import (
	"strings"

	"github.com/ceyewan/logplan/typeinfo"
	"github.com/ceyewan/logplan/xerrors"
)

// BridgeResolver 为具体方法查找编译器生成的桥接方法
//
// 泛型方法被具体类型覆盖后，标记可能只出现在桥接方法上（或只出现在具体方法上），
// 通过桥接孪生方法可以让两边的标记互相可见。
type BridgeResolver struct{}

// NewBridgeResolver 创建桥接方法解析器
func NewBridgeResolver() *BridgeResolver {
	return &BridgeResolver{}
}

// FindBridge 在 original 的声明类型上查找唯一匹配的桥接方法
//
// 没有候选返回 nil；多于一个候选返回 ErrAmbiguousBridge。
func (r *BridgeResolver) FindBridge(original *typeinfo.Method) (*typeinfo.Method, error) {
	if original.Owner == nil {
		return nil, nil
	}

	var candidates []*typeinfo.Method
	for _, candidate := range original.Owner.Methods {
		if candidate == original || !candidate.Bridge {
			continue
		}
		if candidate.Name != original.Name {
			continue
		}
		if !byParameters(original, candidate) || !byReturnType(original, candidate) {
			continue
		}
		candidates = append(candidates, candidate)
	}

	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		return candidates[0], nil
	default:
		ids := make([]string, len(candidates))
		for i, c := range candidates {
			ids[i] = c.ID()
		}
		return nil, xerrors.Wrapf(ErrAmbiguousBridge, "%s: [%s]", original, strings.Join(ids, ", "))
	}
}

func byParameters(original, candidate *typeinfo.Method) bool {
	if len(original.Params) != len(candidate.Params) {
		return false
	}
	for i, p := range original.Params {
		if !typeinfo.AssignableFrom(candidate.Params[i].Type, p.Type) {
			return false
		}
	}
	return true
}

func byReturnType(original, candidate *typeinfo.Method) bool {
	return typeinfo.AssignableFrom(candidate.Return, original.Return)
}
