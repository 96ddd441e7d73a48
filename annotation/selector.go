package annotation

import "github.com/ceyewan/logplan/marker"

// FilterAndFindFirst 返回第一个目标日志器在 loggers 中的标记
//
// 多个标记指向同一个日志器时按声明顺序取第一个，重复情况由 DuplicateLoggers 报告。
func FilterAndFindFirst[T marker.Marker](markers []T, loggers marker.LoggerSet) (T, bool) {
	for _, mk := range markers {
		if loggers.Contains(mk.LoggerName()) {
			return mk, true
		}
	}
	var zero T
	return zero, false
}

// Filter 返回目标日志器在 loggers 中的全部标记，保持原有顺序
func Filter[T marker.Marker](markers []T, loggers marker.LoggerSet) []T {
	var result []T
	for _, mk := range markers {
		if loggers.Contains(mk.LoggerName()) {
			result = append(result, mk)
		}
	}
	return result
}

// DuplicateLoggers 返回在 loggers 中被多个同类标记指向的日志器名称，按首次出现排序
func DuplicateLoggers[T marker.Marker](markers []T, loggers marker.LoggerSet) []string {
	counts := make(map[string]int)
	var order []string
	for _, mk := range markers {
		name := mk.LoggerName()
		if !loggers.Contains(name) {
			continue
		}
		counts[name]++
		if counts[name] == 2 {
			order = append(order, name)
		}
	}
	return order
}
