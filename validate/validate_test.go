package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceyewan/logplan/annotation"
	"github.com/ceyewan/logplan/clog"
	"github.com/ceyewan/logplan/errorset"
	"github.com/ceyewan/logplan/marker"
	"github.com/ceyewan/logplan/printer"
	"github.com/ceyewan/logplan/typeinfo"
	"github.com/ceyewan/logplan/xerrors"
)

var (
	closeable  = typeinfo.NewInterface("Closeable")
	ioError    = typeinfo.NewClass("IOException", typeinfo.Exception)
	stringType = typeinfo.NewClass("String", nil)
)

// newFixture 创建一个带单个参数的方法，并用 declare 声明标记
func newFixture(t *testing.T, declare func(r *marker.Registry, m *typeinfo.Method)) (*annotation.Extractor, *typeinfo.Method) {
	t.Helper()
	class := typeinfo.NewClass("Service", nil)
	m := class.AddMethod(typeinfo.NewMethod("call", nil, typeinfo.Param("input", stringType)))
	r := marker.NewRegistry()
	declare(r, m)
	return annotation.NewExtractor(r), m
}

func TestValidator_Method(t *testing.T) {
	all := marker.NewLoggerSet("")

	t.Run("合法配置", func(t *testing.T) {
		e, m := newFixture(t, func(r *marker.Registry, m *typeinfo.Method) {
			require.NoError(t, r.Declare(m,
				marker.NewLog(marker.WithLevel(clog.InfoLevel)),
				marker.NewIn(marker.WithPrinter(printer.NameJSON)),
				marker.NewError(marker.OfType(typeinfo.Exception), marker.Exclude(typeinfo.RuntimeException)),
			))
			require.NoError(t, r.DeclareParam(m.Params[0], marker.NewArg(marker.WithMask("$.secret"))))
		})
		report := New(e, nil).Method(m, all)
		assert.True(t, report.OK())
		assert.NoError(t, report.Err())
		assert.Empty(t, report.Warnings)
	})

	t.Run("未注册的打印器", func(t *testing.T) {
		e, m := newFixture(t, func(r *marker.Registry, m *typeinfo.Method) {
			require.NoError(t, r.Declare(m, marker.NewOut(marker.WithPrinter("xml"))))
		})
		report := New(e, nil).Method(m, all)
		require.Len(t, report.Errors, 1)
		assert.ErrorIs(t, report.Errors[0], ErrInvalidAttribute)
		assert.Contains(t, report.Errors[0].Error(), "xml")
		assert.Contains(t, report.Errors[0].Error(), "@out")
	})

	t.Run("参数上的非法级别", func(t *testing.T) {
		e, m := newFixture(t, func(r *marker.Registry, m *typeinfo.Method) {
			require.NoError(t, r.DeclareParam(m.Params[0], marker.NewArg(marker.WithLevel(clog.OffLevel))))
		})
		report := New(e, nil).Method(m, all)
		require.Len(t, report.Errors, 1)
		assert.ErrorIs(t, report.Err(), xerrors.ErrInvalidInput)
		assert.Contains(t, report.Errors[0].Error(), "#input")
	})

	t.Run("重复的日志器只产生警告", func(t *testing.T) {
		e, m := newFixture(t, func(r *marker.Registry, m *typeinfo.Method) {
			require.NoError(t, r.Declare(m,
				marker.NewIn(marker.WithLevel(clog.InfoLevel)),
				marker.NewIn(marker.WithLevel(clog.WarnLevel)),
			))
		})
		report := New(e, nil).Method(m, all)
		assert.True(t, report.OK())
		require.Len(t, report.Warnings, 1)
		assert.Equal(t, CodeDuplicateLogger, report.Warnings[0].Code)
		assert.Contains(t, report.Warnings[0].Message, "@in")
	})

	t.Run("空错误集合", func(t *testing.T) {
		e, m := newFixture(t, func(r *marker.Registry, m *typeinfo.Method) {
			require.NoError(t, r.Declare(m, marker.NewError(marker.OfType())))
		})
		report := New(e, nil).Method(m, all)
		require.Len(t, report.Errors, 1)
		assert.ErrorIs(t, report.Errors[0], errorset.ErrEmptyErrorSet)
		assert.Equal(t, errorset.CodeEmpty, xerrors.GetCode(report.Errors[0]))
	})

	t.Run("可化简的错误集合", func(t *testing.T) {
		e, m := newFixture(t, func(r *marker.Registry, m *typeinfo.Method) {
			require.NoError(t, r.Declare(m, marker.NewError(marker.OfType(typeinfo.Exception, ioError))))
		})
		report := New(e, nil).Method(m, all)
		assert.True(t, report.OK())
		require.Len(t, report.Warnings, 1)
		assert.Equal(t, errorset.CodeNonOptimal, report.Warnings[0].Code)
	})

	t.Run("错误集合中的接口类型", func(t *testing.T) {
		e, m := newFixture(t, func(r *marker.Registry, m *typeinfo.Method) {
			require.NoError(t, r.Declare(m, marker.NewError(marker.OfType(closeable))))
		})
		report := New(e, nil).Method(m, all)
		require.Len(t, report.Errors, 1)
		assert.ErrorIs(t, report.Errors[0], ErrInvalidAttribute)
	})

	t.Run("未配置的日志器", func(t *testing.T) {
		e, m := newFixture(t, func(r *marker.Registry, m *typeinfo.Method) {
			require.NoError(t, r.Declare(m, marker.NewLog(marker.WithLogger("audit"))))
		})
		loggers := marker.NewLoggerSet("", "audit")
		assert.False(t, New(e, nil, WithKnownLoggers("")).Method(m, loggers).OK())
		assert.True(t, New(e, nil, WithKnownLoggers("", "audit")).Method(m, loggers).OK())
	})

	t.Run("不校验未激活日志器的标记", func(t *testing.T) {
		e, m := newFixture(t, func(r *marker.Registry, m *typeinfo.Method) {
			require.NoError(t, r.Declare(m, marker.NewIn(marker.WithLogger("y"), marker.WithPrinter("xml"))))
		})
		assert.True(t, New(e, nil).Method(m, marker.NewLoggerSet("x")).OK())
	})

	t.Run("有歧义的桥接方法", func(t *testing.T) {
		class := typeinfo.NewClass("Processor", nil)
		m := class.AddMethod(typeinfo.NewMethod("process", stringType, typeinfo.Param("in", stringType)))
		class.AddMethod(typeinfo.NewBridge("process", typeinfo.Object, typeinfo.Param("in", typeinfo.Object)))
		class.AddMethod(typeinfo.NewBridge("process", typeinfo.Object, typeinfo.Param("in", typeinfo.Object)))
		report := New(annotation.NewExtractor(marker.NewRegistry()), nil).Method(m, all)
		assert.False(t, report.OK())
		assert.ErrorIs(t, report.Err(), annotation.ErrAmbiguousBridge)
	})
}

func TestValidator_Attributes(t *testing.T) {
	v := New(annotation.NewExtractor(marker.NewRegistry()), printer.NewResolver())

	tests := []struct {
		name    string
		attrs   marker.Attributes
		wantErr bool
	}{
		{"默认值", marker.DefaultAttributes(), false},
		{"阈值为 off", marker.NewIn(marker.WithIfEnabled(clog.OffLevel)).Attributes, false},
		{"级别为 off", marker.NewIn(marker.WithLevel(clog.OffLevel)).Attributes, true},
		{"越界级别", marker.NewIn(marker.WithLevel(clog.Level(42))).Attributes, true},
		{"未知详细策略", marker.NewIn(marker.WithVerbose(marker.VerbosePolicy(9))).Attributes, true},
		{"空掩码表达式", marker.NewIn(marker.WithMask("")).Attributes, true},
		{"内置打印器", marker.NewIn(marker.WithPrinter(printer.NameMsgPack)).Attributes, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Attributes(tt.attrs)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAttribute)
				assert.Equal(t, CodeInvalidAttribute, xerrors.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
