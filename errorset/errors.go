package errorset

import "github.com/ceyewan/logplan/xerrors"

// 错误码
const (
	CodeEmpty      = "error.set.empty"
	CodeNonOptimal = "error.set.non.optimal"
	CodeNotError   = "error.set.not.error"
)

// 错误定义
var (
	// ErrEmptyErrorSet 化简后的包含集合为空
	ErrEmptyErrorSet = xerrors.WithCode(
		xerrors.Wrap(xerrors.ErrInvalidInput, "errorset: error set must include at least one type"),
		CodeEmpty)

	// ErrNotErrorClass 集合成员不是 Throwable 的子类（接口、nil 或无关类型）
	ErrNotErrorClass = xerrors.WithCode(
		xerrors.Wrap(xerrors.ErrInvalidInput, "errorset: member must be an error class"),
		CodeNotError)
)
