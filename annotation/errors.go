package annotation

import "github.com/ceyewan/logplan/xerrors"

// CodeAmbiguousBridge 桥接方法歧义的错误码
const CodeAmbiguousBridge = "bridge.ambiguous"

// ErrAmbiguousBridge 找到多于一个候选桥接方法
var ErrAmbiguousBridge = xerrors.WithCode(
	xerrors.Wrap(xerrors.ErrConflict, "annotation: more than one bridge candidate method found"),
	CodeAmbiguousBridge)
