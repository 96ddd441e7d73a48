package validate

import "github.com/ceyewan/logplan/xerrors"

// 错误码
const (
	CodeInvalidAttribute = "marker.attribute.invalid"
	CodeDuplicateLogger  = "marker.logger.duplicate"
)

// 错误定义
var (
	// ErrInvalidAttribute 标记属性不合法
	ErrInvalidAttribute = xerrors.WithCode(
		xerrors.Wrap(xerrors.ErrInvalidInput, "validate: invalid marker attribute"),
		CodeInvalidAttribute)
)
