package xerrors

import (
	"errors"
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	if err := Wrap(nil, "OrderService.create()"); err != nil {
		t.Errorf("Wrap(nil) = %v，期望 nil", err)
	}
	if err := Wrapf(nil, "@error[%d]", 0); err != nil {
		t.Errorf("Wrapf(nil) = %v，期望 nil", err)
	}

	wrapped := Wrapf(ErrNotFound, "printer %q", "xml")
	if got, want := wrapped.Error(), `printer "xml": not found`; got != want {
		t.Errorf("Wrapf().Error() = %q，期望 %q", got, want)
	}
	if !Is(Wrap(wrapped, "OrderService.create()"), ErrNotFound) {
		t.Error("多层包装后应仍能匹配 ErrNotFound")
	}
	if Is(wrapped, ErrUnsupported) {
		t.Error("不同的哨兵错误不应匹配")
	}
}

func TestWithCode(t *testing.T) {
	if err := WithCode(nil, "error.set.empty"); err != nil {
		t.Errorf("WithCode(nil) = %v，期望 nil", err)
	}

	coded := WithCode(Wrap(ErrInvalidInput, "empty error set"), "error.set.empty")
	if got, want := coded.Error(), "[error.set.empty] empty error set: invalid input"; got != want {
		t.Errorf("WithCode().Error() = %q，期望 %q", got, want)
	}
	if code := GetCode(Wrap(coded, "OrderService.create() @error[0]")); code != "error.set.empty" {
		t.Errorf("GetCode(wrapped) = %q，期望 error.set.empty", code)
	}
	if !Is(coded, ErrInvalidInput) {
		t.Error("带码错误应保留原始错误链")
	}
	if code := GetCode(ErrInvalidInput); code != "" {
		t.Errorf("GetCode(无错误码) = %q，期望空字符串", code)
	}
}

func TestMust(t *testing.T) {
	if v := Must(42, nil); v != 42 {
		t.Errorf("Must(42, nil) = %d，期望 42", v)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must(_, err) 未触发 panic")
		}
	}()
	Must(0, ErrConflict)
}

func TestCombine(t *testing.T) {
	if err := Combine(nil, nil); err != nil {
		t.Errorf("Combine(nil, nil) = %v，期望 nil", err)
	}

	first := Wrap(ErrNotFound, "A.a()")
	if err := Combine(nil, first); err != first {
		t.Errorf("Combine(nil, first) = %v，期望原样返回", err)
	}

	second := Wrap(ErrConflict, "B.b()")
	combined := Combine(first, nil, second)
	var multi *MultiError
	if !errors.As(combined, &multi) || len(multi.Errors) != 2 {
		t.Fatalf("Combine(first, second) = %#v，期望包含两个错误的 *MultiError", combined)
	}
	if !Is(combined, ErrNotFound) || !Is(combined, ErrConflict) {
		t.Error("合并后的错误应能匹配每个原始错误")
	}
	msg := combined.Error()
	if !strings.HasPrefix(msg, "2 errors: ") || !strings.Contains(msg, "A.a()") || !strings.Contains(msg, "B.b()") {
		t.Errorf("Combine().Error() = %q，期望列出全部错误", msg)
	}
}
