package marker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceyewan/logplan/clog"
	"github.com/ceyewan/logplan/typeinfo"
	"github.com/ceyewan/logplan/xerrors"
)

var stringType = typeinfo.NewClass("String", nil)

func newService() (*typeinfo.Type, *typeinfo.Method) {
	svc := typeinfo.NewClass("OrderService", nil)
	m := svc.AddMethod(typeinfo.NewMethod("create", nil,
		typeinfo.Param("name", stringType),
		typeinfo.Param("note", stringType),
	))
	return svc, m
}

func TestDefaults(t *testing.T) {
	log := NewLog()
	assert.Equal(t, clog.DebugLevel, log.Level)
	assert.Equal(t, clog.OffLevel, log.IfEnabled)
	assert.Equal(t, VerboseDebug, log.Verbose)
	assert.Equal(t, "", log.LoggerName())

	e := NewError()
	assert.Equal(t, clog.ErrorLevel, e.Level)
	assert.Equal(t, []*typeinfo.Type{typeinfo.Throwable}, e.OfType)
	assert.Empty(t, e.Exclude)

	explicitEmpty := NewError(OfType())
	assert.NotNil(t, explicitEmpty.OfType)
	assert.Empty(t, explicitEmpty.OfType)

	in := NewIn(WithLogger("audit"), WithLevel(clog.InfoLevel), WithPrinter("json"), WithMask("$.password"))
	assert.Equal(t, "audit", in.LoggerName())
	assert.Equal(t, KindIn, in.Kind())
	assert.Equal(t, []string{"$.password"}, in.Mask)
}

func TestRegistry_Declare(t *testing.T) {
	_, m := newService()
	r := NewRegistry()

	require.NoError(t, r.Declare(m,
		NewError(ErrorLevel(clog.WarnLevel)),
		NewError(ErrorLevel(clog.InfoLevel)),
		NewIn(WithLevel(clog.InfoLevel)),
	))

	t.Run("按种类过滤并保持声明顺序", func(t *testing.T) {
		errs := Of[Error](r.MethodMarkers(m, KindError))
		require.Len(t, errs, 2)
		assert.Equal(t, clog.WarnLevel, errs[0].Level)
		assert.Equal(t, clog.InfoLevel, errs[1].Level)
	})

	t.Run("完全相同的重复声明被合并", func(t *testing.T) {
		require.NoError(t, r.Declare(m, NewIn(WithLevel(clog.InfoLevel))))
		assert.Len(t, r.MethodMarkers(m, KindIn), 1)
	})

	t.Run("参数标记不能声明在方法上", func(t *testing.T) {
		err := r.Declare(m, NewArg())
		assert.ErrorIs(t, err, ErrInvalidTarget)
		assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
	})

	t.Run("方法标记不能声明在参数上", func(t *testing.T) {
		err := r.DeclareParam(m.Params[0], NewIn())
		assert.ErrorIs(t, err, ErrInvalidTarget)
	})

	t.Run("没有标记返回空", func(t *testing.T) {
		assert.Empty(t, r.MethodMarkers(m, KindOut))
		assert.Empty(t, r.ParameterMarkers(m.Params[1], KindArg))
	})
}

func TestRegistry_Inheritance(t *testing.T) {
	api := typeinfo.NewInterface("OrderApi")
	apiCreate := api.AddMethod(typeinfo.NewMethod("create", nil, typeinfo.Param("name", stringType)))

	impl := typeinfo.NewClass("OrderImpl", nil, api)
	implCreate := impl.AddMethod(typeinfo.NewMethod("create", nil, typeinfo.Param("name", stringType)))

	r := NewRegistry()
	require.NoError(t, r.Declare(apiCreate, NewOut(WithLevel(clog.WarnLevel))))
	require.NoError(t, r.DeclareParam(apiCreate.Params[0], NewArg(WithPrinter("json"))))

	outs := Of[Out](r.MethodMarkers(implCreate, KindOut))
	require.Len(t, outs, 1)
	assert.Equal(t, clog.WarnLevel, outs[0].Level)

	args := Of[Arg](r.ParameterMarkers(implCreate.Params[0], KindArg))
	require.Len(t, args, 1)
	assert.Equal(t, "json", args[0].Printer)

	// 自身的声明优先于继承的声明
	require.NoError(t, r.Declare(implCreate, NewOut(WithLevel(clog.InfoLevel))))
	outs = Of[Out](r.MethodMarkers(implCreate, KindOut))
	require.Len(t, outs, 1)
	assert.Equal(t, clog.InfoLevel, outs[0].Level)

	noInherit := NewRegistry(WithInheritance(false))
	require.NoError(t, noInherit.Declare(apiCreate, NewOut()))
	assert.Empty(t, noInherit.MethodMarkers(implCreate, KindOut))
}

func TestLoggerSet(t *testing.T) {
	s := NewLoggerSet("b", "a", "")
	assert.True(t, s.Contains(""))
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("z"))
	assert.Equal(t, []string{"", "a", "b"}, s.Names())
}
