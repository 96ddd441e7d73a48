package typeinfo

import "strings"

// Method 方法描述符
type Method struct {
	Name      string
	Owner     *Type
	Params    []*Parameter
	Return    *Type
	Bridge    bool // 编译器为泛型擦除生成的桥接方法
	Synthetic bool // 编译器生成的其他方法
}

// Parameter 参数描述符
type Parameter struct {
	Name   string
	Type   *Type
	Index  int
	Method *Method
}

// NewMethod 创建方法描述符，通常随后通过 Type.AddMethod 声明到类型上
func NewMethod(name string, ret *Type, params ...*Parameter) *Method {
	return &Method{Name: name, Return: ret, Params: params}
}

// NewBridge 创建桥接方法描述符
func NewBridge(name string, ret *Type, params ...*Parameter) *Method {
	m := NewMethod(name, ret, params...)
	m.Bridge = true
	m.Synthetic = true
	return m
}

// Param 创建参数描述符
func Param(name string, t *Type) *Parameter {
	return &Parameter{Name: name, Type: t}
}

// ID 返回方法的稳定标识，例如 "OrderService.create(String,int)"
func (m *Method) ID() string {
	var sb strings.Builder
	if m.Owner != nil {
		sb.WriteString(m.Owner.Name)
		sb.WriteByte('.')
	}
	sb.WriteString(m.Name)
	sb.WriteByte('(')
	for i, p := range m.Params {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p.Type.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// String 同 ID
func (m *Method) String() string {
	return m.ID()
}

// ParamTypes 返回参数类型列表
func (m *Method) ParamTypes() []*Type {
	types := make([]*Type, len(m.Params))
	for i, p := range m.Params {
		types[i] = p.Type
	}
	return types
}

// ParamNames 返回参数名列表
func (m *Method) ParamNames() []string {
	names := make([]string, len(m.Params))
	for i, p := range m.Params {
		names[i] = p.Name
	}
	return names
}

// SameSignature 判断两个方法名称与参数类型是否完全一致
func (m *Method) SameSignature(other *Method) bool {
	if m.Name != other.Name || len(m.Params) != len(other.Params) {
		return false
	}
	for i, p := range m.Params {
		if p.Type != other.Params[i].Type {
			return false
		}
	}
	return true
}

// DeclaredMethods 返回类型自身声明的方法（含桥接方法）
func DeclaredMethods(t *Type) []*Method {
	return append([]*Method(nil), t.Methods...)
}

// UniqueMethods 返回类型及其父类声明的全部方法
//
// 子类中同签名的方法会覆盖父类方法，Object 上的方法不会返回。
func UniqueMethods(t *Type) []*Method {
	var result []*Method
	for cur := t; cur != nil && cur != Object; cur = cur.Super {
		for _, m := range cur.Methods {
			overridden := false
			for _, existing := range result {
				if existing.SameSignature(m) && !existing.Bridge && !m.Bridge {
					overridden = true
					break
				}
			}
			if !overridden {
				result = append(result, m)
			}
		}
	}
	return result
}

// Overridden 返回 m 在父类链和接口上覆盖的同签名方法，由近到远
func Overridden(m *Method) []*Method {
	if m.Owner == nil {
		return nil
	}
	var result []*Method
	seen := map[*Type]struct{}{m.Owner: {}}
	var visit func(t *Type)
	visit = func(t *Type) {
		if t == nil {
			return
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		for _, candidate := range t.Methods {
			if !candidate.Bridge && candidate.SameSignature(m) {
				result = append(result, candidate)
			}
		}
	}
	// 先走父类链，再走接口
	for cur := m.Owner.Super; cur != nil; cur = cur.Super {
		visit(cur)
	}
	var visitInterfaces func(t *Type)
	visitInterfaces = func(t *Type) {
		for _, i := range t.Interfaces {
			visit(i)
			visitInterfaces(i)
		}
	}
	for cur := m.Owner; cur != nil; cur = cur.Super {
		visitInterfaces(cur)
	}
	return result
}
