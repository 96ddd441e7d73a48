// Package errorset 把错误标记上声明的 ofType / exclude 类型列表化简为可匹配的错误过滤器。
//
// 两个列表都会先去重并去掉已被其他成员覆盖的子类，过滤器匹配时要求存在包含祖先、
// 并且不存在排除祖先（排除优先）。
package errorset

import (
	"fmt"
	"slices"

	"github.com/ceyewan/logplan/typeinfo"
	"github.com/ceyewan/logplan/xerrors"
)

// Filter 化简后的错误类型过滤器，创建后不可修改
type Filter struct {
	include []*typeinfo.Type
	exclude []*typeinfo.Type
}

// Warning 非致命的配置问题
type Warning struct {
	Code    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}

// New 化简 ofType 和 exclude 并创建过滤器
//
// 两个列表的成员都必须是错误类，否则匹配时无法计算继承距离。
func New(ofType, exclude []*typeinfo.Type) (*Filter, error) {
	for _, t := range slices.Concat(ofType, exclude) {
		if err := CheckType(t); err != nil {
			return nil, err
		}
	}
	include := typeinfo.ReduceToRoots(ofType)
	if len(include) == 0 {
		return nil, ErrEmptyErrorSet
	}
	return &Filter{
		include: include,
		exclude: typeinfo.ReduceToRoots(exclude),
	}, nil
}

// CheckType 判断 t 能否作为错误集合的成员
func CheckType(t *typeinfo.Type) error {
	if t == nil {
		return xerrors.Wrap(ErrNotErrorClass, "nil type")
	}
	if t.IsInterface() || (t != typeinfo.Throwable && !typeinfo.IsSubclassOf(t, typeinfo.Throwable)) {
		return xerrors.Wrapf(ErrNotErrorClass, "%s", t)
	}
	return nil
}

// Check 与 New 相同，另外在声明的列表可以化简时返回警告
func Check(ofType, exclude []*typeinfo.Type) (*Filter, []Warning, error) {
	f, err := New(ofType, exclude)
	if err != nil {
		return nil, nil, err
	}
	var warnings []Warning
	if len(ofType) > len(f.include) {
		warnings = append(warnings, nonOptimal("ofType", ofType, f.include))
	}
	if len(exclude) > len(f.exclude) {
		warnings = append(warnings, nonOptimal("exclude", exclude, f.exclude))
	}
	return f, warnings, nil
}

func nonOptimal(field string, declared, reduced []*typeinfo.Type) Warning {
	return Warning{
		Code: CodeNonOptimal,
		Message: fmt.Sprintf("%s %v should be optimized to %v",
			field, typeinfo.TypeNames(declared), typeinfo.TypeNames(reduced)),
	}
}

// Include 返回化简后的包含类型
func (f *Filter) Include() []*typeinfo.Type {
	return append([]*typeinfo.Type(nil), f.include...)
}

// Exclude 返回化简后的排除类型
func (f *Filter) Exclude() []*typeinfo.Type {
	return append([]*typeinfo.Type(nil), f.exclude...)
}

// Matches 判断错误类型 t 是否被过滤器接受
func (f *Filter) Matches(t *typeinfo.Type) (bool, error) {
	included, err := typeinfo.MostSpecificAncestor(f.include, t)
	if err != nil || included == nil {
		return false, err
	}
	excluded, err := typeinfo.MostSpecificAncestor(f.exclude, t)
	if err != nil {
		return false, err
	}
	return excluded == nil, nil
}

func (f *Filter) String() string {
	return fmt.Sprintf("ofType=%v exclude=%v", typeinfo.TypeNames(f.include), typeinfo.TypeNames(f.exclude))
}
