// Package validate 在解析前检查方法上的标记配置。
//
// 属性规则（级别、详细策略、打印器、日志器）使用 ozzo-validation 描述；
// 错误标记复用 errorset 的化简结果；同一日志器上重复的同类标记只产生警告，
// 解析时按声明顺序取第一个。
package validate

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ceyewan/logplan/annotation"
	"github.com/ceyewan/logplan/clog"
	"github.com/ceyewan/logplan/errorset"
	"github.com/ceyewan/logplan/marker"
	"github.com/ceyewan/logplan/printer"
	"github.com/ceyewan/logplan/typeinfo"
)

// Validator 标记配置校验器
type Validator struct {
	extractor *annotation.Extractor
	printers  *printer.Resolver
	known     map[string]struct{}
}

// New 创建校验器
func New(extractor *annotation.Extractor, printers *printer.Resolver, opts ...Option) *Validator {
	if printers == nil {
		printers = printer.NewResolver()
	}
	v := &Validator{
		extractor: extractor,
		printers:  printers,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Method 校验方法及其参数上对 loggers 生效的全部标记
func (v *Validator) Method(m *typeinfo.Method, loggers marker.LoggerSet) Report {
	var r Report
	id := m.ID()

	logs, err := v.extractor.Logs(m)
	r.addError(id, err)
	checkAttributes(v, &r, id, logs, loggers, func(mk marker.Log) marker.Attributes { return mk.Attributes })

	ins, err := v.extractor.Ins(m)
	r.addError(id, err)
	checkAttributes(v, &r, id, ins, loggers, func(mk marker.In) marker.Attributes { return mk.Attributes })

	outs, err := v.extractor.Outs(m)
	r.addError(id, err)
	checkAttributes(v, &r, id, outs, loggers, func(mk marker.Out) marker.Attributes { return mk.Attributes })

	errs, err := v.extractor.Errors(m)
	r.addError(id, err)
	v.checkErrors(&r, id, errs, loggers)

	for i, args := range v.extractor.Args(m) {
		target := fmt.Sprintf("%s#%s", id, m.Params[i].Name)
		checkAttributes(v, &r, target, args, loggers, func(mk marker.Arg) marker.Attributes { return mk.Attributes })
	}
	return r
}

// checkAttributes 校验对 loggers 生效的标记，并报告重复的日志器
func checkAttributes[T marker.Marker](v *Validator, r *Report, target string, markers []T, loggers marker.LoggerSet, attrs func(T) marker.Attributes) {
	for _, mk := range annotation.Filter(markers, loggers) {
		r.addError(fmt.Sprintf("%s @%s", target, mk.Kind()), v.Attributes(attrs(mk)))
	}
	reportDuplicates(r, target, markers, loggers)
}

func reportDuplicates[T marker.Marker](r *Report, target string, markers []T, loggers marker.LoggerSet) {
	for _, name := range annotation.DuplicateLoggers(markers, loggers) {
		var zero T
		r.addWarning(target, CodeDuplicateLogger,
			fmt.Sprintf("more than one @%s marker targets logger %q, the first declared one is used", zero.Kind(), name))
	}
}

func (v *Validator) checkErrors(r *Report, target string, errs []marker.Error, loggers marker.LoggerSet) {
	for _, e := range annotation.Filter(errs, loggers) {
		t := fmt.Sprintf("%s @%s", target, e.Kind())
		if err := v.ErrorMarker(e); err != nil {
			r.addError(t, err)
			continue
		}
		_, warnings, err := errorset.Check(e.OfType, e.Exclude)
		if err != nil {
			r.addError(t, err)
			continue
		}
		r.addErrorSetWarnings(t, warnings)
	}
}

// Attributes 校验入口、出口、参数和通用标记的公共属性
func (v *Validator) Attributes(a marker.Attributes) error {
	err := validation.ValidateStruct(&a,
		validation.Field(&a.Logger, validation.By(v.knownLogger)),
		validation.Field(&a.Level, validation.By(severity)),
		validation.Field(&a.IfEnabled, validation.By(threshold)),
		validation.Field(&a.Verbose, validation.By(verbosePolicy)),
		validation.Field(&a.Printer, validation.By(v.knownPrinter)),
		validation.Field(&a.Mask, validation.Each(validation.Required)),
	)
	return wrapInvalid(err)
}

// ErrorMarker 校验错误标记的属性，类型列表的化简由 errorset 负责
func (v *Validator) ErrorMarker(e marker.Error) error {
	err := validation.ValidateStruct(&e,
		validation.Field(&e.Logger, validation.By(v.knownLogger)),
		validation.Field(&e.Level, validation.By(severity)),
		validation.Field(&e.IfEnabled, validation.By(threshold)),
		validation.Field(&e.Verbose, validation.By(verbosePolicy)),
		validation.Field(&e.OfType, validation.By(throwables)),
		validation.Field(&e.Exclude, validation.By(throwables)),
	)
	return wrapInvalid(err)
}

func wrapInvalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidAttribute, err)
}

func severity(value any) error {
	l, _ := value.(clog.Level)
	if !l.Valid() || l == clog.OffLevel {
		return validation.NewError("validation_level_invalid", fmt.Sprintf("%s is not a loggable level", l))
	}
	return nil
}

func threshold(value any) error {
	l, _ := value.(clog.Level)
	if !l.Valid() {
		return validation.NewError("validation_if_enabled_invalid", fmt.Sprintf("%s is not a level", l))
	}
	return nil
}

func verbosePolicy(value any) error {
	p, _ := value.(marker.VerbosePolicy)
	if !p.Valid() {
		return validation.NewError("validation_verbose_invalid", "unknown verbose policy")
	}
	return nil
}

func throwables(value any) error {
	types, _ := value.([]*typeinfo.Type)
	for _, t := range types {
		if err := errorset.CheckType(t); err != nil {
			return validation.NewError(errorset.CodeNotError, fmt.Sprintf("%s is not an error class", t))
		}
	}
	return nil
}

func (v *Validator) knownPrinter(value any) error {
	name, _ := value.(string)
	if !v.printers.Has(name) {
		return validation.NewError(printer.CodeNotFound, fmt.Sprintf("printer %q is not registered", name))
	}
	return nil
}

func (v *Validator) knownLogger(value any) error {
	if v.known == nil {
		return nil
	}
	name, _ := value.(string)
	if _, ok := v.known[name]; !ok {
		return validation.NewError("validation_logger_unknown", fmt.Sprintf("logger %q is not configured", name))
	}
	return nil
}
