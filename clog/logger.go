// Package clog 为 logplan 提供基于 slog 的结构化日志组件。
//
// clog 同时定义了日志级别 Level，标记（marker）中的 level / ifEnabled
// 属性直接复用该类型，因此解析出的日志计划与运行时使用的日志器共享同一套级别语义。
//
// 基本使用：
//
//	logger, _ := clog.New(&clog.Config{
//	    Level:  "info",
//	    Format: "console",
//	    Output: "stdout",
//	})
//	logger.Info("plan resolved", clog.String("method", "OrderService.Create(String)"))
//
// 使用命名空间：
//
//	logger, _ := clog.New(&clog.Config{Level: "debug"}, clog.WithNamespace("logplan", "planner"))
package clog

import "context"

// Logger 日志接口，提供结构化日志记录功能
//
// 每个级别都有带 Context 和不带 Context 的版本。
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	DebugContext(ctx context.Context, msg string, fields ...Field)
	InfoContext(ctx context.Context, msg string, fields ...Field)
	WarnContext(ctx context.Context, msg string, fields ...Field)
	ErrorContext(ctx context.Context, msg string, fields ...Field)
	FatalContext(ctx context.Context, msg string, fields ...Field)

	// With 创建一个带有预设字段的子 Logger
	With(fields ...Field) Logger

	// WithNamespace 创建一个扩展命名空间的子 Logger
	//
	// 示例：
	//   logger := l.WithNamespace("logplan")
	//   plannerLogger := logger.WithNamespace("planner")
	//   // 最终命名空间为 "logplan.planner"
	WithNamespace(parts ...string) Logger

	// SetLevel 动态调整日志级别
	SetLevel(level Level) error

	// Enabled 判断指定级别当前是否会被输出
	Enabled(level Level) bool

	// Flush 强制同步所有缓冲区的日志
	Flush()
}
