package clog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level 日志级别类型
//
// 按严重程度递增：
//
//	DebugLevel: 调试信息
//	InfoLevel:  一般信息
//	WarnLevel:  警告信息
//	ErrorLevel: 错误信息
//	FatalLevel: 致命错误
//	OffLevel:   关闭，只作为阈值使用（ifEnabled=off 表示不做额外的级别检查）
type Level int

const (
	DebugLevel Level = iota - 4 // 调试级别
	InfoLevel                   // 信息级别
	WarnLevel                   // 警告级别
	ErrorLevel                  // 错误级别
	FatalLevel                  // 致命级别
	OffLevel                    // 关闭
)

// String 返回 Level 的字符串表示
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	case OffLevel:
		return "off"
	default:
		return fmt.Sprintf("level(%d)", l)
	}
}

// Valid 判断是否为已定义的级别
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= OffLevel
}

// AtLeast 判断 l 是否不低于 threshold
func (l Level) AtLeast(threshold Level) bool {
	return l >= threshold
}

// ParseLevel 将字符串解析为 Level（不区分大小写）
//
// 支持 "debug", "info", "warn", "error", "fatal", "off"。
// 无法解析时返回 InfoLevel 和错误信息。
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	case "off":
		return OffLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level: %s", s)
	}
}

// slogLevel 将 Level 映射为 slog.Level，避免按数字直接转换导致不一致
func (l Level) slogLevel() slog.Level {
	switch l {
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	case FatalLevel:
		// Fatal 在 slog 中没有显式常量，使用 Error 的更高值
		return slog.LevelError + 4
	case OffLevel:
		return slog.LevelError + 8
	default:
		return slog.LevelInfo
	}
}
