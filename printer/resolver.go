package printer

import (
	"maps"
	"slices"

	"github.com/ceyewan/logplan/xerrors"
)

// Resolver 按名称解析打印器
//
// 空名称解析为默认打印器。Resolver 创建后只读，可以并发使用。
type Resolver struct {
	printers map[string]Printer
	def      Printer
}

// ResolverOption Resolver 选项
type ResolverOption func(*Resolver)

// WithPrinter 注册具名打印器，同名覆盖内置打印器
func WithPrinter(name string, p Printer) ResolverOption {
	return func(r *Resolver) {
		if p != nil {
			r.printers[name] = p
		}
	}
}

// WithDefault 设置默认打印器，nil 时使用 ToStringPrinter
func WithDefault(p Printer) ResolverOption {
	return func(r *Resolver) {
		if p != nil {
			r.def = p
		}
	}
}

// NewResolver 创建 Resolver，内置打印器总是可用
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		printers: map[string]Printer{
			NameString:  ToStringPrinter{},
			NameJSON:    JSONPrinter{},
			NameMsgPack: MsgPackPrinter{},
		},
		def: ToStringPrinter{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve 返回 name 对应的打印器
func (r *Resolver) Resolve(name string) (Printer, error) {
	if name == "" {
		return r.def, nil
	}
	p, ok := r.printers[name]
	if !ok {
		return nil, xerrors.Wrapf(ErrPrinterNotFound, "name %q", name)
	}
	return p, nil
}

// Has 判断 name 能否被解析
func (r *Resolver) Has(name string) bool {
	if name == "" {
		return true
	}
	_, ok := r.printers[name]
	return ok
}

// Names 返回已注册的打印器名称，按字典序
func (r *Resolver) Names() []string {
	return slices.Sorted(maps.Keys(r.printers))
}

// Default 返回默认打印器
func (r *Resolver) Default() Printer {
	return r.def
}
