package marker

import (
	"reflect"
	"slices"
	"sync"

	"github.com/ceyewan/logplan/typeinfo"
	"github.com/ceyewan/logplan/xerrors"
)

// Source 标记发现原语
//
// 返回合并、去重且保持声明顺序的标记集合。
type Source interface {
	MethodMarkers(m *typeinfo.Method, kind Kind) []Marker
	ParameterMarkers(p *typeinfo.Parameter, kind Kind) []Marker
}

// Registry 标记旁路表，实现 Source
//
// 声明通常在启动阶段完成，之后可以被并发读取。
type Registry struct {
	mu      sync.RWMutex
	methods map[*typeinfo.Method][]Marker
	params  map[*typeinfo.Parameter][]Marker
	inherit bool
}

// RegistryOption Registry 选项
type RegistryOption func(*Registry)

// WithInheritance 是否在方法自身没有标记时查找被覆盖方法上的标记，默认开启
func WithInheritance(enabled bool) RegistryOption {
	return func(r *Registry) { r.inherit = enabled }
}

// NewRegistry 创建标记旁路表
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		methods: make(map[*typeinfo.Method][]Marker),
		params:  make(map[*typeinfo.Parameter][]Marker),
		inherit: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Declare 在方法上声明标记，可重复调用，按调用顺序追加
func (r *Registry) Declare(m *typeinfo.Method, markers ...Marker) error {
	for _, mk := range markers {
		if !slices.Contains(MethodKinds, mk.Kind()) {
			return xerrors.Wrapf(ErrInvalidTarget, "%s on method %s", mk.Kind(), m)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.methods[m] = append(r.methods[m], markers...)
	return nil
}

// DeclareParam 在参数上声明标记
func (r *Registry) DeclareParam(p *typeinfo.Parameter, markers ...Marker) error {
	for _, mk := range markers {
		if !slices.Contains(ParameterKinds, mk.Kind()) {
			return xerrors.Wrapf(ErrInvalidTarget, "%s on parameter %s", mk.Kind(), p.Name)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.params[p] = append(r.params[p], markers...)
	return nil
}

// MethodMarkers 返回方法上指定种类的标记
func (r *Registry) MethodMarkers(m *typeinfo.Method, kind Kind) []Marker {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := filterKind(r.methods[m], kind)
	if len(found) > 0 || !r.inherit {
		return found
	}
	for _, overridden := range typeinfo.Overridden(m) {
		if inherited := filterKind(r.methods[overridden], kind); len(inherited) > 0 {
			return inherited
		}
	}
	return nil
}

// ParameterMarkers 返回参数上指定种类的标记
func (r *Registry) ParameterMarkers(p *typeinfo.Parameter, kind Kind) []Marker {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := filterKind(r.params[p], kind)
	if len(found) > 0 || !r.inherit || p.Method == nil {
		return found
	}
	for _, overridden := range typeinfo.Overridden(p.Method) {
		if p.Index >= len(overridden.Params) {
			continue
		}
		if inherited := filterKind(r.params[overridden.Params[p.Index]], kind); len(inherited) > 0 {
			return inherited
		}
	}
	return nil
}

// filterKind 过滤出指定种类的标记并去掉完全相同的重复声明
func filterKind(markers []Marker, kind Kind) []Marker {
	var result []Marker
	for _, mk := range markers {
		if mk.Kind() != kind {
			continue
		}
		duplicate := slices.ContainsFunc(result, func(existing Marker) bool {
			return reflect.DeepEqual(existing, mk)
		})
		if !duplicate {
			result = append(result, mk)
		}
	}
	return result
}

// Of 把标记列表转换为具体类型，类型不符的元素被忽略
func Of[T Marker](markers []Marker) []T {
	result := make([]T, 0, len(markers))
	for _, mk := range markers {
		if v, ok := mk.(T); ok {
			result = append(result, v)
		}
	}
	return result
}
