package definition

import (
	"iter"
	"slices"
)

// List 冻结的只读列表
//
// 构造时复制输入，之后任何修改尝试都返回 ErrUnsupportedOperation。零值是空列表。
type List[T any] struct {
	items []T
}

// NewList 复制 items 创建冻结列表
func NewList[T any](items []T) List[T] {
	return List[T]{items: slices.Clone(items)}
}

// Len 元素个数
func (l List[T]) Len() int { return len(l.items) }

// At 返回第 i 个元素，越界时 panic
func (l List[T]) At(i int) T { return l.items[i] }

// All 按顺序遍历
func (l List[T]) All() iter.Seq2[int, T] {
	return slices.All(l.items)
}

// Slice 返回元素的副本
func (l List[T]) Slice() []T {
	return slices.Clone(l.items)
}

// Append 总是失败
func (l List[T]) Append(...T) error {
	return ErrUnsupportedOperation
}

// Set 总是失败
func (l List[T]) Set(i int, _ T) error {
	if i < 0 || i >= len(l.items) {
		return ErrIndexOutOfRange
	}
	return ErrUnsupportedOperation
}
