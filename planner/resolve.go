package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/ceyewan/logplan/annotation"
	"github.com/ceyewan/logplan/clog"
	"github.com/ceyewan/logplan/definition"
	"github.com/ceyewan/logplan/errorset"
	"github.com/ceyewan/logplan/marker"
	"github.com/ceyewan/logplan/metrics"
	"github.com/ceyewan/logplan/printer"
	"github.com/ceyewan/logplan/typeinfo"
	"github.com/ceyewan/logplan/validate"
	"github.com/ceyewan/logplan/xerrors"
)

func (p *planner) Resolve(m *typeinfo.Method, loggers marker.LoggerSet) (*definition.LogPack, error) {
	if m == nil {
		return nil, ErrNilMethod
	}
	ctx := context.Background()
	loggers = p.activeLoggers(loggers)
	key := cacheKey(m, loggers)

	if pack, ok := p.cache.get(key); ok {
		p.stats.resolved(ctx, pack, nil, metrics.CacheHit, 0)
		return pack, nil
	}

	start := time.Now()
	pack, err := p.resolve(m, loggers)
	p.stats.resolved(ctx, pack, err, metrics.CacheMiss, time.Since(start))
	if err != nil {
		p.logger.Error("failed to resolve log plan", clog.String("method", m.ID()), clog.Error(err))
		return nil, err
	}

	p.cache.set(key, pack)
	p.stats.cachedPlans(ctx, p.cache.size())
	if pack != nil {
		p.logger.Debug("log plan created",
			clog.String("method", m.ID()),
			clog.Strings("loggers", loggers.Names()),
			clog.Int("errors", pack.Errors().Len()),
		)
	}
	return pack, nil
}

// resolve 执行一次完整的解析，不读写缓存
func (p *planner) resolve(m *typeinfo.Method, loggers marker.LoggerSet) (*definition.LogPack, error) {
	if !p.extractor.HasAnyMarker(m) && !p.anyParameterMarker(m) {
		return nil, nil
	}

	if p.cfg.Validate {
		report := p.validator.Method(m, loggers)
		for _, w := range report.Warnings {
			p.warn(w)
		}
		if !report.OK() {
			return nil, report.Err()
		}
	}

	b := &builder{planner: p, method: m, loggers: loggers}
	return b.build()
}

func (p *planner) anyParameterMarker(m *typeinfo.Method) bool {
	for _, param := range m.Params {
		if p.extractor.HasAnyParameterMarker(param) {
			return true
		}
	}
	return false
}

func (p *planner) warn(w validate.Warning) {
	p.logger.Warn(w.Message, clog.String("target", w.Target), clog.String("code", w.Code))
	p.stats.warned(context.Background(), w.Code)
	if p.reporter != nil {
		p.reporter(w)
	}
}

// builder 单个方法的一次解析
type builder struct {
	planner *planner
	method  *typeinfo.Method
	loggers marker.LoggerSet
}

func (b *builder) build() (*definition.LogPack, error) {
	e := b.planner.extractor
	m := b.method
	id := m.ID()

	if !b.planner.cfg.Validate {
		b.reportDuplicates()
	}

	log, hasLog, err := e.FindLog(m, b.loggers)
	if err != nil {
		return nil, xerrors.Wrap(err, id)
	}

	in, hasIn, err := e.FindIn(m, b.loggers)
	if err != nil {
		return nil, xerrors.Wrap(err, id)
	}
	inFromLog := !hasIn && hasLog
	if inFromLog {
		in, hasIn = annotation.SynthesizeIn(log), true
	}

	out, hasOut, err := e.FindOut(m, b.loggers)
	if err != nil {
		return nil, xerrors.Wrap(err, id)
	}
	if !hasOut && hasLog {
		out, hasOut = annotation.SynthesizeOut(log), true
	}

	args := e.FindArgs(m, b.loggers)
	hasArg := false
	for i, arg := range args {
		switch {
		case arg != nil:
			hasArg = true
		case inFromLog:
			derived := annotation.SynthesizeArg(log)
			args[i] = &derived
		case hasIn:
			derived := annotation.ArgFromIn(in)
			args[i] = &derived
		}
	}
	// 只有参数标记时入口使用默认属性
	if !hasIn && hasArg {
		in, hasIn = marker.NewIn(), true
	}

	errs, err := e.FindErrors(m, b.loggers)
	if err != nil {
		return nil, xerrors.Wrap(err, id)
	}

	var (
		inLog  *definition.InLog
		outLog *definition.OutLog
	)
	if hasIn {
		pr, err := b.resolvePrinter(in.Printer, "in")
		if err != nil {
			return nil, err
		}
		inLog = definition.NewInLog(in, pr)
	}
	if hasOut {
		pr, err := b.resolvePrinter(out.Printer, "out")
		if err != nil {
			return nil, err
		}
		outLog = definition.NewOutLog(out, pr)
	}

	argLogs := make([]*definition.ArgLog, len(args))
	for i, arg := range args {
		if arg == nil {
			continue
		}
		pr, err := b.resolvePrinter(arg.Printer, m.Params[i].Name)
		if err != nil {
			return nil, err
		}
		argLogs[i] = definition.NewArgLog(*arg, pr)
	}

	errorLogs := make([]*definition.ErrorLog, 0, len(errs))
	for i, mk := range errs {
		filter, warnings, err := errorset.Check(mk.OfType, mk.Exclude)
		if err != nil {
			return nil, xerrors.Wrapf(err, "%s @error[%d]", id, i)
		}
		if !b.planner.cfg.Validate {
			for _, w := range warnings {
				b.planner.warn(validate.Warning{Target: fmt.Sprintf("%s @error[%d]", id, i), Code: w.Code, Message: w.Message})
			}
		}
		errorLogs = append(errorLogs, definition.NewErrorLog(mk, filter))
	}

	return definition.NewLogPack(m, m.ParamNames(), inLog, argLogs, outLog, errorLogs), nil
}

func (b *builder) resolvePrinter(name, target string) (printer.Printer, error) {
	pr, err := b.planner.printers.Resolve(name)
	if err != nil {
		return nil, xerrors.Wrapf(err, "%s %s", b.method.ID(), target)
	}
	return pr, nil
}

// reportDuplicates 同一日志器上的重复标记按声明顺序取第一个，并产生警告
func (b *builder) reportDuplicates() {
	e := b.planner.extractor
	m := b.method
	id := m.ID()
	report := func(kind marker.Kind, names []string) {
		for _, name := range names {
			b.planner.warn(validate.Warning{
				Target:  id,
				Code:    validate.CodeDuplicateLogger,
				Message: fmt.Sprintf("more than one @%s marker targets logger %q, the first declared one is used", kind, name),
			})
		}
	}
	if logs, err := e.Logs(m); err == nil {
		report(marker.KindLog, annotation.DuplicateLoggers(logs, b.loggers))
	}
	if ins, err := e.Ins(m); err == nil {
		report(marker.KindIn, annotation.DuplicateLoggers(ins, b.loggers))
	}
	if outs, err := e.Outs(m); err == nil {
		report(marker.KindOut, annotation.DuplicateLoggers(outs, b.loggers))
	}
	for _, args := range e.Args(m) {
		report(marker.KindArg, annotation.DuplicateLoggers(args, b.loggers))
	}
}
