package planner

import "github.com/ceyewan/logplan/xerrors"

// 错误定义
var (
	// ErrInvalidConfig 解析器配置无效
	ErrInvalidConfig = xerrors.Wrap(xerrors.ErrInvalidInput, "planner: invalid config")

	// ErrNilMethod 传入的方法为 nil
	ErrNilMethod = xerrors.Wrap(xerrors.ErrInvalidInput, "planner: method is nil")
)
