// Package printer 提供把参数值、返回值渲染为日志文本的打印器，以及按名称查找打印器的 Resolver。
//
// 内置打印器:
//   - "string":  fmt 默认格式，兼容性最好
//   - "json":    JSON 文本
//   - "msgpack": MessagePack 编码后再做 base64，适合体积敏感的场景
package printer

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// 内置打印器名称
const (
	NameString  = "string"
	NameJSON    = "json"
	NameMsgPack = "msgpack"
)

// Printer 把任意值渲染为文本
type Printer interface {
	Print(value any) (string, error)
}

// Func 把普通函数适配为 Printer
type Func func(value any) (string, error)

// Print 调用 f
func (f Func) Print(value any) (string, error) {
	return f(value)
}

// ToStringPrinter 使用 fmt 默认格式
type ToStringPrinter struct{}

// Print 渲染为 %v
func (ToStringPrinter) Print(value any) (string, error) {
	if s, ok := value.(fmt.Stringer); ok {
		return s.String(), nil
	}
	return fmt.Sprintf("%v", value), nil
}

// JSONPrinter JSON 打印器
type JSONPrinter struct{}

// Print 渲染为 JSON
func (JSONPrinter) Print(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MsgPackPrinter MessagePack 打印器
type MsgPackPrinter struct{}

// Print 编码为 MessagePack，结果以标准 base64 表示
func (MsgPackPrinter) Print(value any) (string, error) {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// New 按名称创建内置打印器，空名称返回 ToStringPrinter
func New(name string) (Printer, error) {
	switch name {
	case NameString, "":
		return ToStringPrinter{}, nil
	case NameJSON:
		return JSONPrinter{}, nil
	case NameMsgPack:
		return MsgPackPrinter{}, nil
	default:
		return nil, ErrUnsupportedPrinter
	}
}
