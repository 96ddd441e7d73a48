package marker

import (
	"strings"

	"github.com/ceyewan/logplan/clog"
	"github.com/ceyewan/logplan/typeinfo"
	"github.com/ceyewan/logplan/xerrors"
)

// Declaration 声明文件中一个方法的标记
//
// 典型配置示例（YAML）：
//
//	declarations:
//	  - method: "OrderService.create(String,Integer)"
//	    markers:
//	      - kind: in
//	        level: info
//	        printer: json
//	      - kind: error
//	        level: warn
//	        of_type: [Exception]
//	        exclude: [RuntimeException]
//	    parameters:
//	      - name: name
//	        markers:
//	          - kind: arg
//	            if_enabled: warn
type Declaration struct {
	Method     string                 `mapstructure:"method"`
	Markers    []MarkerSpec           `mapstructure:"markers"`
	Parameters []ParameterDeclaration `mapstructure:"parameters"`
}

// ParameterDeclaration 参数上的标记，Name 与 Index 二选一，Name 优先
type ParameterDeclaration struct {
	Name    string       `mapstructure:"name"`
	Index   int          `mapstructure:"index"`
	Markers []MarkerSpec `mapstructure:"markers"`
}

// MarkerSpec 单个标记的声明
type MarkerSpec struct {
	Kind      string   `mapstructure:"kind"`
	Logger    string   `mapstructure:"logger"`
	Level     string   `mapstructure:"level"`
	IfEnabled string   `mapstructure:"if_enabled"`
	Verbose   string   `mapstructure:"verbose"`
	Printer   string   `mapstructure:"printer"`
	Mask      []string `mapstructure:"mask"`
	// OfType 为 nil 时使用默认值 Throwable；显式的空列表会保留，交由校验报错
	OfType  []string `mapstructure:"of_type"`
	Exclude []string `mapstructure:"exclude"`
	Key     string   `mapstructure:"key"`
	Value   string   `mapstructure:"value"`
	Global  bool     `mapstructure:"global"`
}

// ParseKind 解析标记种类
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "log", "":
		return KindLog, nil
	case "in":
		return KindIn, nil
	case "out":
		return KindOut, nil
	case "error":
		return KindError, nil
	case "arg":
		return KindArg, nil
	case "mdc":
		return KindMdc, nil
	default:
		return 0, xerrors.Wrapf(ErrUnknownKind, "%q", s)
	}
}

// ParseVerbose 解析详细输出策略，空字符串返回默认值
func ParseVerbose(s string) (VerbosePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "":
		return VerboseDebug, nil
	case "always":
		return VerboseAlways, nil
	case "never":
		return VerboseNever, nil
	default:
		return 0, xerrors.Wrapf(ErrInvalidAttribute, "verbose %q", s)
	}
}

// Build 把声明转换为标记
func (s MarkerSpec) Build(u *typeinfo.Universe) (Marker, error) {
	kind, err := ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindMdc:
		if s.Key == "" {
			return nil, xerrors.Wrap(ErrInvalidAttribute, "mdc key is required")
		}
		return Mdc{Key: s.Key, Value: s.Value, Global: s.Global}, nil
	case KindError:
		return s.buildError(u)
	}

	attrs := DefaultAttributes()
	attrs.Logger = s.Logger
	attrs.Printer = s.Printer
	attrs.Mask = append([]string(nil), s.Mask...)
	if err := s.parseLevels(&attrs.Level, &attrs.IfEnabled, &attrs.Verbose); err != nil {
		return nil, err
	}

	switch kind {
	case KindIn:
		return In{Attributes: attrs}, nil
	case KindOut:
		return Out{Attributes: attrs}, nil
	case KindArg:
		return Arg{Attributes: attrs}, nil
	default:
		return Log{Attributes: attrs}, nil
	}
}

func (s MarkerSpec) buildError(u *typeinfo.Universe) (Marker, error) {
	e := NewError(ErrorLogger(s.Logger))
	if err := s.parseLevels(&e.Level, &e.IfEnabled, &e.Verbose); err != nil {
		return nil, err
	}
	if s.OfType != nil {
		types, err := u.Types(s.OfType)
		if err != nil {
			return nil, err
		}
		e.OfType = types
	}
	if s.Exclude != nil {
		types, err := u.Types(s.Exclude)
		if err != nil {
			return nil, err
		}
		e.Exclude = types
	}
	return e, nil
}

// parseLevels 只覆盖声明中出现的字段
func (s MarkerSpec) parseLevels(level, ifEnabled *clog.Level, verbose *VerbosePolicy) error {
	if s.Level != "" {
		l, err := clog.ParseLevel(s.Level)
		if err != nil {
			return xerrors.Wrapf(ErrInvalidAttribute, "level: %v", err)
		}
		*level = l
	}
	if s.IfEnabled != "" {
		l, err := clog.ParseLevel(s.IfEnabled)
		if err != nil {
			return xerrors.Wrapf(ErrInvalidAttribute, "if_enabled: %v", err)
		}
		*ifEnabled = l
	}
	if s.Verbose != "" {
		v, err := ParseVerbose(s.Verbose)
		if err != nil {
			return err
		}
		*verbose = v
	}
	return nil
}

// Apply 把声明绑定到 Universe 中的方法并写入旁路表
func (r *Registry) Apply(u *typeinfo.Universe, decls []Declaration) error {
	for _, d := range decls {
		m, err := u.Method(d.Method)
		if err != nil {
			return err
		}
		for _, spec := range d.Markers {
			mk, err := spec.Build(u)
			if err != nil {
				return xerrors.Wrapf(err, "method %s", d.Method)
			}
			if err := r.Declare(m, mk); err != nil {
				return err
			}
		}
		for _, pd := range d.Parameters {
			p, err := findParameter(m, pd)
			if err != nil {
				return err
			}
			for _, spec := range pd.Markers {
				mk, err := spec.Build(u)
				if err != nil {
					return xerrors.Wrapf(err, "method %s parameter %s", d.Method, p.Name)
				}
				if err := r.DeclareParam(p, mk); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func findParameter(m *typeinfo.Method, pd ParameterDeclaration) (*typeinfo.Parameter, error) {
	if pd.Name != "" {
		for _, p := range m.Params {
			if p.Name == pd.Name {
				return p, nil
			}
		}
		return nil, xerrors.Wrapf(ErrParameterNotFound, "%s of %s", pd.Name, m)
	}
	if pd.Index < 0 || pd.Index >= len(m.Params) {
		return nil, xerrors.Wrapf(ErrParameterNotFound, "index %d of %s", pd.Index, m)
	}
	return m.Params[pd.Index], nil
}
