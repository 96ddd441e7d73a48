// Package xerrors 提供 logplan 统一的错误处理工具。
//
// 解析阶段的致命错误由哨兵错误和错误码共同描述：
//
//	err := xerrors.WithCode(xerrors.Wrap(xerrors.ErrInvalidInput, "empty error set"), "error.set.empty")
//	xerrors.Is(err, xerrors.ErrInvalidInput) // true
//	xerrors.GetCode(err)                     // "error.set.empty"
package xerrors

import (
	"errors"
	"fmt"
	"strings"
)

// 哨兵错误，供各组件包装使用
var (
	// ErrInvalidInput 输入（声明、配置）无效
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound 引用的对象不存在
	ErrNotFound = errors.New("not found")

	// ErrUnsupported 不支持的操作
	ErrUnsupported = errors.New("unsupported operation")

	// ErrConflict 存在多个互相冲突的候选
	ErrConflict = errors.New("conflict")
)

// Is 同 errors.Is
var Is = errors.Is

// Wrap 在 err 前加上 msg，err 为 nil 时返回 nil
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf 同 Wrap，msg 由 format 生成
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// CodedError 携带机器可读错误码，例如 "printer.not.found"
type CodedError struct {
	Code  string
	Cause error
}

// WithCode 给 err 附加错误码
func WithCode(err error, code string) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Cause: err}
}

func (e *CodedError) Error() string {
	return fmt.Sprintf("[%s] %v", e.Code, e.Cause)
}

func (e *CodedError) Unwrap() error { return e.Cause }

// GetCode 返回错误链上最外层的错误码，没有时返回空字符串
func GetCode(err error) string {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ""
}

// Must 只在初始化阶段使用，err 不为 nil 时 panic
func Must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("must: %v", err))
	}
	return v
}

// MultiError 一次批量解析中产生的多个错误
type MultiError struct {
	Errors []error
}

// Error 逐条列出全部错误
func (m *MultiError) Error() string {
	msgs := make([]string, len(m.Errors))
	for i, err := range m.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d errors: %s", len(m.Errors), strings.Join(msgs, "; "))
}

func (m *MultiError) Unwrap() []error { return m.Errors }

// Combine 去掉 nil 后合并错误：没有错误返回 nil，只有一个时原样返回
func Combine(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return &MultiError{Errors: nonNil}
	}
}
