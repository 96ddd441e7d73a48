package printer

import "github.com/ceyewan/logplan/xerrors"

// CodeNotFound 打印器不存在的错误码
const CodeNotFound = "printer.not.found"

// 错误定义
var (
	// ErrPrinterNotFound 引用了未注册的打印器
	ErrPrinterNotFound = xerrors.WithCode(
		xerrors.Wrap(xerrors.ErrNotFound, "printer: printer not found"),
		CodeNotFound)

	// ErrUnsupportedPrinter New 不认识的内置打印器名称
	ErrUnsupportedPrinter = xerrors.Wrap(xerrors.ErrUnsupported, "printer: unsupported printer type")
)
