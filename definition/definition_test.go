package definition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceyewan/logplan/clog"
	"github.com/ceyewan/logplan/errorset"
	"github.com/ceyewan/logplan/marker"
	"github.com/ceyewan/logplan/printer"
	"github.com/ceyewan/logplan/typeinfo"
	"github.com/ceyewan/logplan/xerrors"
)

var (
	outOfMemory = typeinfo.NewClass("OutOfMemoryError", typeinfo.Error)
	service     = typeinfo.NewClass("Service", nil)
	handle      = service.AddMethod(typeinfo.NewMethod("handle", nil,
		typeinfo.Param("a", typeinfo.Object),
		typeinfo.Param("b", typeinfo.Object),
	))
)

func givenErrorLog(t *testing.T, ofType, exclude []*typeinfo.Type) *ErrorLog {
	t.Helper()
	f, err := errorset.New(ofType, exclude)
	require.NoError(t, err)
	return NewErrorLog(marker.NewError(), f)
}

func TestNewLogPack(t *testing.T) {
	in := NewInLog(marker.NewIn(marker.WithLevel(clog.InfoLevel)), printer.ToStringPrinter{})
	arg := NewArgLog(marker.NewArg(marker.WithMask("$.password")), printer.JSONPrinter{})
	out := NewOutLog(marker.NewOut(), printer.ToStringPrinter{})
	errLog := givenErrorLog(t, []*typeinfo.Type{typeinfo.Throwable}, nil)

	t.Run("完整计划", func(t *testing.T) {
		pack := NewLogPack(handle, handle.ParamNames(), in, []*ArgLog{arg, nil}, out, []*ErrorLog{errLog})
		require.NotNil(t, pack)
		assert.Same(t, handle, pack.Method())
		assert.Equal(t, []string{"a", "b"}, pack.ParameterNames().Slice())
		assert.Same(t, in, pack.In())
		assert.Equal(t, clog.InfoLevel, pack.In().Level())
		require.Equal(t, 2, pack.Args().Len())
		assert.Same(t, arg, pack.Args().At(0))
		assert.Nil(t, pack.Args().At(1))
		assert.Equal(t, []string{"$.password"}, pack.Args().At(0).Mask().Slice())
		assert.Same(t, out, pack.Out())
		assert.Equal(t, 1, pack.Errors().Len())
	})

	t.Run("没有任何内容时不创建计划", func(t *testing.T) {
		assert.Nil(t, NewLogPack(handle, handle.ParamNames(), nil, []*ArgLog{nil, nil, nil}, nil, nil))
		assert.Nil(t, NewLogPack(handle, handle.ParamNames(), nil, nil, nil, []*ErrorLog{}))
	})

	t.Run("只有参数规格", func(t *testing.T) {
		assert.NotNil(t, NewLogPack(handle, handle.ParamNames(), nil, []*ArgLog{nil, arg}, nil, nil))
	})

	t.Run("构造后不受输入修改影响", func(t *testing.T) {
		args := []*ArgLog{arg}
		names := []string{"a"}
		pack := NewLogPack(handle, names, in, args, out, nil)
		args[0] = nil
		names[0] = "changed"
		assert.Same(t, arg, pack.Args().At(0))
		assert.Equal(t, "a", pack.ParameterNames().At(0))
	})

	t.Run("集合拒绝修改", func(t *testing.T) {
		pack := NewLogPack(handle, handle.ParamNames(), in, nil, out, nil)
		err := pack.Args().Append(arg)
		assert.ErrorIs(t, err, ErrUnsupportedOperation)
		assert.ErrorIs(t, err, xerrors.ErrUnsupported)
		assert.ErrorIs(t, pack.Errors().Append(errLog), ErrUnsupportedOperation)
		assert.Equal(t, 0, pack.Args().Len())

		copied := pack.ParameterNames().Slice()
		copied[0] = "changed"
		assert.Equal(t, "a", pack.ParameterNames().At(0))
	})
}

func TestLogPack_FindErrorLog(t *testing.T) {
	errLog := givenErrorLog(t, []*typeinfo.Type{typeinfo.Exception}, []*typeinfo.Type{typeinfo.Error})
	pack := NewLogPack(handle, handle.ParamNames(), nil, nil, nil, []*ErrorLog{errLog})
	require.NotNil(t, pack)

	tests := []struct {
		name    string
		subject *typeinfo.Type
		want    *ErrorLog
	}{
		{"父类型不匹配", typeinfo.Throwable, nil},
		{"运行时异常", typeinfo.RuntimeException, errLog},
		{"错误类型", outOfMemory, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pack.FindErrorLog(tt.subject)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("按声明顺序取第一个", func(t *testing.T) {
		first := givenErrorLog(t, []*typeinfo.Type{typeinfo.RuntimeException}, nil)
		second := givenErrorLog(t, []*typeinfo.Type{typeinfo.Throwable}, nil)
		pack := NewLogPack(handle, nil, nil, nil, nil, []*ErrorLog{first, second})
		got, err := pack.FindErrorLog(typeinfo.RuntimeException)
		require.NoError(t, err)
		assert.Same(t, first, got)
		got, err = pack.FindErrorLog(outOfMemory)
		require.NoError(t, err)
		assert.Same(t, second, got)
	})
}

func TestList(t *testing.T) {
	l := NewList([]int{1, 2, 3})
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 2, l.At(1))
	assert.ErrorIs(t, l.Set(0, 9), ErrUnsupportedOperation)
	assert.ErrorIs(t, l.Set(5, 9), ErrIndexOutOfRange)
	assert.Equal(t, []int{1, 2, 3}, l.Slice())

	var sum int
	for _, v := range l.All() {
		sum += v
	}
	assert.Equal(t, 6, sum)

	var empty List[string]
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.Slice())
}

func TestNewMethodMdc(t *testing.T) {
	t.Run("没有 MDC 标记", func(t *testing.T) {
		assert.Nil(t, NewMethodMdc(handle, handle.ParamNames(), nil, [][]marker.Mdc{nil, {}}))
	})

	t.Run("方法和参数上的 MDC", func(t *testing.T) {
		methodMdcs := []marker.Mdc{{Key: "method", Value: "handle"}}
		paramMdcs := [][]marker.Mdc{{{Key: "a"}}, nil}
		m := NewMethodMdc(handle, handle.ParamNames(), methodMdcs, paramMdcs)
		require.NotNil(t, m)
		assert.Same(t, handle, m.Method())
		assert.Equal(t, methodMdcs, m.MethodDefinitions().Slice())
		require.Equal(t, 2, m.ParameterDefinitions().Len())
		assert.Equal(t, "a", m.ParameterDefinitions().At(0).At(0).Key)
		assert.Equal(t, 0, m.ParameterDefinitions().At(1).Len())
		assert.ErrorIs(t, m.MethodDefinitions().Append(marker.Mdc{Key: "x"}), ErrUnsupportedOperation)
	})

	t.Run("只有参数 MDC", func(t *testing.T) {
		assert.NotNil(t, NewMethodMdc(handle, handle.ParamNames(), nil, [][]marker.Mdc{nil, {{Key: "b"}}}))
	})
}
