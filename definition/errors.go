package definition

import "github.com/ceyewan/logplan/xerrors"

// 错误定义
var (
	// ErrUnsupportedOperation 尝试修改已冻结的集合
	ErrUnsupportedOperation = xerrors.Wrap(xerrors.ErrUnsupported, "definition: collection is frozen")

	// ErrIndexOutOfRange 下标越界
	ErrIndexOutOfRange = xerrors.Wrap(xerrors.ErrInvalidInput, "definition: index out of range")
)
