package validate

// Option 校验器选项
type Option func(*Validator)

// WithKnownLoggers 限定标记可以引用的日志器名称
//
// 未设置时不检查日志器名称。
func WithKnownLoggers(names ...string) Option {
	return func(v *Validator) {
		v.known = make(map[string]struct{}, len(names))
		for _, n := range names {
			v.known[n] = struct{}{}
		}
	}
}
