package marker

import "sort"

// LoggerSet 当前解析上下文中激活的日志器名称集合
//
// 匹配是纯粹的集合成员判断：空名称只有在集合中包含 "" 时才匹配。
type LoggerSet map[string]struct{}

// NewLoggerSet 创建日志器集合
func NewLoggerSet(names ...string) LoggerSet {
	s := make(LoggerSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains 判断是否包含指定日志器
func (s LoggerSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names 返回排序后的名称列表
func (s LoggerSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
