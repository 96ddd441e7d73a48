package clog

import "bytes"

// Option 函数式选项，用于配置 Logger 实例
type Option func(*options)

// options 内部选项结构
type options struct {
	namespaceParts []string
	buffer         *bytes.Buffer // 测试用缓冲区
}

// NamespaceKey 是日志中命名空间的字段名
const NamespaceKey = "namespace"

// WithNamespace 设置日志命名空间，多级命名空间以 "." 连接
func WithNamespace(parts ...string) Option {
	return func(o *options) {
		o.namespaceParts = append(o.namespaceParts, parts...)
	}
}

func applyOptions(opts ...Option) *options {
	o := &options{namespaceParts: []string{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
