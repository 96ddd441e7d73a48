package typeinfo

import "github.com/ceyewan/logplan/xerrors"

// 错误码
const (
	CodeInterfaceDistance = "type.interface.distance"
	CodeAmbiguousAncestor = "type.ancestor.ambiguous"
)

// 错误定义
var (
	// ErrInterfaceDistance 继承距离只沿类链计算，接口关系无法度量
	ErrInterfaceDistance = xerrors.WithCode(
		xerrors.Wrap(xerrors.ErrInvalidInput, "typeinfo: inheritance distance is not defined for interfaces"),
		CodeInterfaceDistance)

	// ErrAmbiguousAncestor 多个候选祖先距离相同
	ErrAmbiguousAncestor = xerrors.WithCode(
		xerrors.Wrap(xerrors.ErrInvalidInput, "typeinfo: more than one most specific ancestor"),
		CodeAmbiguousAncestor)

	// ErrDuplicateType 重复注册类型
	ErrDuplicateType = xerrors.Wrap(xerrors.ErrConflict, "typeinfo: type already registered")

	// ErrDuplicateMethod 重复注册方法
	ErrDuplicateMethod = xerrors.Wrap(xerrors.ErrConflict, "typeinfo: method already registered")

	// ErrTypeNotFound 类型不存在
	ErrTypeNotFound = xerrors.Wrap(xerrors.ErrNotFound, "typeinfo: type not found")

	// ErrMethodNotFound 方法不存在
	ErrMethodNotFound = xerrors.Wrap(xerrors.ErrNotFound, "typeinfo: method not found")
)
