package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceyewan/logplan/clog"
	"github.com/ceyewan/logplan/marker"
	"github.com/ceyewan/logplan/typeinfo"
)

func TestExtractor_BridgeFallback(t *testing.T) {
	_, concrete, bridge := processor()
	r := marker.NewRegistry()
	require.NoError(t, r.Declare(bridge, marker.NewIn(marker.WithLevel(clog.InfoLevel))))
	require.NoError(t, r.Declare(concrete, marker.NewOut(marker.WithLevel(clog.WarnLevel))))
	e := NewExtractor(r)

	t.Run("直接发现为空时使用桥接方法上的标记", func(t *testing.T) {
		ins, err := e.Ins(concrete)
		require.NoError(t, err)
		require.Len(t, ins, 1)
		assert.Equal(t, clog.InfoLevel, ins[0].Level)
	})

	t.Run("直接发现的标记优先", func(t *testing.T) {
		outs, err := e.Outs(concrete)
		require.NoError(t, err)
		require.Len(t, outs, 1)
		assert.Equal(t, clog.WarnLevel, outs[0].Level)
	})

	t.Run("两边都没有", func(t *testing.T) {
		errs, err := e.Errors(concrete)
		require.NoError(t, err)
		assert.Empty(t, errs)
	})

	t.Run("只在桥接方法上有标记也能通过预过滤", func(t *testing.T) {
		_, onlyBridged, b := processor()
		require.NoError(t, r.Declare(b, marker.NewLog()))
		assert.True(t, e.HasAnyMarker(onlyBridged))
	})
}

func TestExtractor_AmbiguousBridge(t *testing.T) {
	_, concrete, _ := processor(
		typeinfo.NewBridge("process", charSequence, typeinfo.Param("in", charSequence)),
	)
	e := NewExtractor(marker.NewRegistry())

	_, err := e.Logs(concrete)
	assert.ErrorIs(t, err, ErrAmbiguousBridge)
	_, _, err = e.FindIn(concrete, marker.NewLoggerSet(""))
	assert.ErrorIs(t, err, ErrAmbiguousBridge)
	assert.True(t, e.HasAnyMarker(concrete))
}

func TestExtractor_Discovery(t *testing.T) {
	class := typeinfo.NewClass("OrderService", nil)
	logged := class.AddMethod(typeinfo.NewMethod("create", nil,
		typeinfo.Param("name", stringType),
		typeinfo.Param("note", stringType),
	))
	empty := class.AddMethod(typeinfo.NewMethod("empty", nil, typeinfo.Param("a", stringType)))
	class.AddMethod(typeinfo.NewBridge("create", nil, typeinfo.Param("name", typeinfo.Object), typeinfo.Param("note", typeinfo.Object)))
	synthetic := typeinfo.NewMethod("lambda$0", nil)
	synthetic.Synthetic = true
	class.AddMethod(synthetic)

	r := marker.NewRegistry()
	require.NoError(t, r.Declare(logged,
		marker.NewLog(marker.WithLevel(clog.WarnLevel)),
		marker.NewError(marker.ErrorLogger("x"), marker.ErrorLevel(clog.WarnLevel)),
		marker.NewError(marker.ErrorLogger("y")),
		marker.NewError(marker.ErrorLogger("x"), marker.ErrorLevel(clog.InfoLevel)),
		marker.Mdc{Key: "op", Value: "create"},
	))
	require.NoError(t, r.DeclareParam(logged.Params[0],
		marker.NewArg(marker.WithLogger("y")),
		marker.NewArg(marker.WithLogger("x"), marker.WithIfEnabled(clog.WarnLevel)),
		marker.Mdc{Key: "name"},
	))
	e := NewExtractor(r)

	t.Run("候选方法", func(t *testing.T) {
		assert.Equal(t, []*typeinfo.Method{logged, empty}, e.CandidateMethods(class))
	})

	t.Run("预过滤", func(t *testing.T) {
		assert.True(t, e.HasAnyMarker(logged))
		assert.False(t, e.HasAnyMarker(empty))
		assert.True(t, e.HasAnyParameterMarker(logged.Params[0]))
		assert.False(t, e.HasAnyParameterMarker(logged.Params[1]))
	})

	t.Run("错误标记按日志器过滤并保持顺序", func(t *testing.T) {
		errs, err := e.FindErrors(logged, marker.NewLoggerSet("x"))
		require.NoError(t, err)
		require.Len(t, errs, 2)
		assert.Equal(t, clog.WarnLevel, errs[0].Level)
		assert.Equal(t, clog.InfoLevel, errs[1].Level)
	})

	t.Run("参数标记按位置对齐", func(t *testing.T) {
		args := e.FindArgs(logged, marker.NewLoggerSet("x"))
		require.Len(t, args, 2)
		require.NotNil(t, args[0])
		assert.Equal(t, clog.WarnLevel, args[0].IfEnabled)
		assert.Nil(t, args[1])
	})

	t.Run("通用标记", func(t *testing.T) {
		log, ok, err := e.FindLog(logged, marker.NewLoggerSet(""))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, clog.WarnLevel, log.Level)

		_, ok, err = e.FindOut(logged, marker.NewLoggerSet(""))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("MDC", func(t *testing.T) {
		mdcs, err := e.Mdcs(logged)
		require.NoError(t, err)
		assert.Equal(t, []marker.Mdc{{Key: "op", Value: "create"}}, mdcs)

		params := e.ParameterMdcs(logged)
		require.Len(t, params, 2)
		assert.Equal(t, []marker.Mdc{{Key: "name"}}, params[0])
		assert.Empty(t, params[1])
	})
}
