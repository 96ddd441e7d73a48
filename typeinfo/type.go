// Package typeinfo 描述日志标记所依附的类型系统。
//
// 由于 Go 没有类继承和运行时注解，类型、方法、参数都以显式的描述符表示：
// 每个类（Class）最多有一个父类和若干接口，接口（Interface）只能继承接口。
// 解析引擎所需的层级运算（继承距离、最具体祖先、根归约）都在本包实现。
//
// 基本使用：
//
//	ioErr := typeinfo.NewClass("IOException", typeinfo.Exception)
//	d, _ := typeinfo.InheritanceDistance(typeinfo.Throwable, ioErr) // 2
//
//	roots := typeinfo.ReduceToRoots([]*typeinfo.Type{ioErr, typeinfo.Exception})
//	// roots = [Exception]
package typeinfo

import "strings"

// Kind 类型种类
type Kind int

const (
	KindClass     Kind = iota // 类
	KindInterface             // 接口
)

// String 返回 Kind 的字符串表示
func (k Kind) String() string {
	if k == KindInterface {
		return "interface"
	}
	return "class"
}

// Type 类型描述符
//
// Type 创建后不应再修改，可以在多个 goroutine 之间共享。
type Type struct {
	Name       string
	Kind       Kind
	Super      *Type   // 父类，只有 Object 和接口为 nil
	Interfaces []*Type // 直接实现（或继承）的接口
	Methods    []*Method
}

// 内置类型
var (
	// Object 所有类的根
	Object = &Type{Name: "Object", Kind: KindClass}

	// Void 表示没有返回值
	Void = &Type{Name: "void", Kind: KindClass}

	// Throwable 所有错误族的根
	Throwable = NewClass("Throwable", Object)

	// Exception 可恢复错误
	Exception = NewClass("Exception", Throwable)

	// RuntimeException 运行期错误
	RuntimeException = NewClass("RuntimeException", Exception)

	// Error 严重错误
	Error = NewClass("Error", Throwable)
)

// NewClass 创建一个类，super 为 nil 时父类为 Object
func NewClass(name string, super *Type, interfaces ...*Type) *Type {
	if super == nil {
		super = Object
	}
	return &Type{
		Name:       name,
		Kind:       KindClass,
		Super:      super,
		Interfaces: interfaces,
	}
}

// NewInterface 创建一个接口
func NewInterface(name string, extends ...*Type) *Type {
	return &Type{
		Name:       name,
		Kind:       KindInterface,
		Interfaces: extends,
	}
}

// IsInterface 是否为接口
func (t *Type) IsInterface() bool {
	return t != nil && t.Kind == KindInterface
}

// String 返回类型名
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.Name
}

// AddMethod 声明一个方法并返回它
//
// 方法的 Owner 会被设置为 t，参数的 Method 和 Index 会被回填。
func (t *Type) AddMethod(m *Method) *Method {
	m.Owner = t
	if m.Return == nil {
		m.Return = Void
	}
	for i, p := range m.Params {
		p.Method = m
		p.Index = i
	}
	t.Methods = append(t.Methods, m)
	return m
}

// TypeNames 返回类型名列表
func TypeNames(types []*Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}

// formatTypes 以 "[A, B]" 的形式格式化类型列表
func formatTypes(types []*Type) string {
	return "[" + strings.Join(TypeNames(types), ", ") + "]"
}
