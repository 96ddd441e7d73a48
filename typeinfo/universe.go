package typeinfo

import (
	"sync"

	"github.com/ceyewan/logplan/xerrors"
)

// Universe 按名称索引类型和方法
//
// 用于把声明文件中的字符串引用（类型名、方法 ID）绑定到描述符。
// 注册通常发生在启动阶段，查询可以并发进行。
type Universe struct {
	mu      sync.RWMutex
	types   map[string]*Type
	methods map[string]*Method
}

// NewUniverse 创建 Universe，内置类型会被预先注册
func NewUniverse() *Universe {
	u := &Universe{
		types:   make(map[string]*Type),
		methods: make(map[string]*Method),
	}
	for _, t := range []*Type{Object, Void, Throwable, Exception, RuntimeException, Error} {
		u.types[t.Name] = t
	}
	return u
}

// Register 注册类型及其声明的方法
func (u *Universe) Register(types ...*Type) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, t := range types {
		if existing, ok := u.types[t.Name]; ok && existing != t {
			return xerrors.Wrapf(ErrDuplicateType, "%s", t.Name)
		}
		u.types[t.Name] = t
		for _, m := range t.Methods {
			id := m.ID()
			if m.Bridge {
				// 桥接方法和原方法可能擦除为同一 ID，只做类型级关联
				continue
			}
			if existing, ok := u.methods[id]; ok && existing != m {
				return xerrors.Wrapf(ErrDuplicateMethod, "%s", id)
			}
			u.methods[id] = m
		}
	}
	return nil
}

// Type 按名称查找类型
func (u *Universe) Type(name string) (*Type, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	t, ok := u.types[name]
	if !ok {
		return nil, xerrors.Wrapf(ErrTypeNotFound, "%s", name)
	}
	return t, nil
}

// Types 按名称批量查找类型
func (u *Universe) Types(names []string) ([]*Type, error) {
	types := make([]*Type, 0, len(names))
	for _, name := range names {
		t, err := u.Type(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// Method 按 ID 查找方法，例如 "OrderService.create(String)"
func (u *Universe) Method(id string) (*Method, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	m, ok := u.methods[id]
	if !ok {
		return nil, xerrors.Wrapf(ErrMethodNotFound, "%s", id)
	}
	return m, nil
}
