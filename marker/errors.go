package marker

import "github.com/ceyewan/logplan/xerrors"

// 错误定义
var (
	// ErrInvalidTarget 标记种类不能出现在该位置（方法/参数）
	ErrInvalidTarget = xerrors.Wrap(xerrors.ErrInvalidInput, "marker: kind not allowed on target")

	// ErrUnknownKind 声明中的标记种类无法识别
	ErrUnknownKind = xerrors.Wrap(xerrors.ErrInvalidInput, "marker: unknown kind")

	// ErrInvalidAttribute 声明中的属性无法解析
	ErrInvalidAttribute = xerrors.Wrap(xerrors.ErrInvalidInput, "marker: invalid attribute")

	// ErrParameterNotFound 声明引用的参数不存在
	ErrParameterNotFound = xerrors.Wrap(xerrors.ErrNotFound, "marker: parameter not found")
)
