package clog

import (
	"log/slog"
	"strings"

	"github.com/ceyewan/logplan/xerrors"
)

// Field 是 slog.Attr 的类型别名
type Field = slog.Attr

// String 创建字符串字段
func String(k, v string) Field {
	return slog.String(k, v)
}

// Strings 创建字符串列表字段，以逗号连接
func Strings(k string, v []string) Field {
	return slog.String(k, strings.Join(v, ","))
}

// Int 创建整数字段
func Int(k string, v int) Field {
	return slog.Int(k, v)
}

// Bool 创建布尔字段
func Bool(k string, v bool) Field {
	return slog.Bool(k, v)
}

// Any 创建任意类型字段
func Any(k string, v any) Field {
	return slog.Any(k, v)
}

// Error 将错误简化为仅包含错误消息
//
// 如果错误链中带有 xerrors 错误码，会一并输出：
//
//	error={msg="empty error set", code="error.set.empty"}
func Error(err error) Field {
	if err == nil {
		return slog.String("", "")
	}
	if code := xerrors.GetCode(err); code != "" {
		return ErrorWithCode(err, code)
	}
	return slog.String("err_msg", err.Error())
}

// ErrorWithCode 包含错误代码的错误字段
//
// 使用 slog.Group 产生嵌套结构：error={msg="...", code="..."}
func ErrorWithCode(err error, code string) Field {
	if err == nil {
		return slog.Group("error", slog.String("code", code))
	}
	return slog.Group("error",
		slog.String("msg", err.Error()),
		slog.String("code", code),
	)
}
