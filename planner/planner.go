// Package planner 是日志计划解析的入口。
//
// 对每个方法依次完成：标记发现（必要时回退到桥接方法）→ 按激活的日志器筛选 →
// 用通用标记合成入口/出口标记 → 化简错误类型集合 → 解析打印器 → 组装不可变的 LogPack。
// 没有任何需要记录的内容时返回 nil，调用方据此跳过织入。
//
// 基本使用：
//
//	reg := marker.NewRegistry()
//	_ = reg.Declare(method, marker.NewIn(marker.WithLevel(clog.InfoLevel)))
//
//	p, _ := planner.New(planner.NewDefaultConfig(), reg, planner.WithLogger(logger))
//	pack, err := p.Resolve(method, nil)
package planner

import (
	"context"

	"github.com/ceyewan/logplan/annotation"
	"github.com/ceyewan/logplan/clog"
	"github.com/ceyewan/logplan/definition"
	"github.com/ceyewan/logplan/marker"
	"github.com/ceyewan/logplan/metrics"
	"github.com/ceyewan/logplan/printer"
	"github.com/ceyewan/logplan/typeinfo"
	"github.com/ceyewan/logplan/validate"
	"github.com/ceyewan/logplan/xerrors"
)

// Planner 日志计划解析器，可以并发使用
type Planner interface {
	// Resolve 解析方法在 loggers 下的日志计划，loggers 为 nil 时使用配置中的日志器
	//
	// 没有需要记录的内容时返回 nil, nil。配置错误在这里返回，不会延迟到运行时。
	Resolve(m *typeinfo.Method, loggers marker.LoggerSet) (*definition.LogPack, error)

	// ResolveMdc 解析方法的 MDC 计划，没有 MDC 标记时返回 nil
	ResolveMdc(m *typeinfo.Method) (*definition.MethodMdc, error)

	// ResolveClass 解析类型上全部候选方法的日志计划，跳过没有计划的方法
	ResolveClass(class *typeinfo.Type, loggers marker.LoggerSet) ([]*definition.LogPack, error)

	// HasAnyMarker 方法上是否有任何日志标记
	HasAnyMarker(m *typeinfo.Method) bool

	// HasAnyParameterMarker 参数上是否有任何日志标记
	HasAnyParameterMarker(p *typeinfo.Parameter) bool

	// Candidates 返回类型上需要解析的候选方法
	Candidates(class *typeinfo.Type) []*typeinfo.Method

	// Validate 对方法做完整的配置校验
	Validate(m *typeinfo.Method, loggers marker.LoggerSet) validate.Report

	// Invalidate 清空计划缓存，标记声明变化后调用
	Invalidate()
}

type planner struct {
	cfg       *Config
	loggers   marker.LoggerSet
	extractor *annotation.Extractor
	printers  *printer.Resolver
	validator *validate.Validator
	cache     *planCache
	logger    clog.Logger
	reporter  func(validate.Warning)
	stats     *stats
}

// New 创建解析器
//
// src 是标记来源，通常是 *marker.Registry。cfg 为 nil 时使用 NewDefaultConfig。
func New(cfg *Config, src marker.Source, opts ...Option) (Planner, error) {
	if src == nil {
		return nil, xerrors.Wrap(ErrInvalidConfig, "marker source is required")
	}
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	o := &options{
		logger: clog.Discard(),
		meter:  metrics.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}

	def := o.defaultPrinter
	if def == nil {
		// 名称已在 cfg.validate 中校验
		def = xerrors.Must(printer.New(cfg.DefaultPrinter))
	}
	printers := printer.NewResolver(append(o.printers, printer.WithDefault(def))...)

	cache, err := newPlanCache(cfg.Cache)
	if err != nil {
		return nil, err
	}
	st, err := newStats(o.meter)
	if err != nil {
		return nil, err
	}

	var validatorOpts []validate.Option
	if len(cfg.KnownLoggers) > 0 {
		validatorOpts = append(validatorOpts, validate.WithKnownLoggers(cfg.KnownLoggers...))
	}
	extractor := annotation.NewExtractor(src)

	o.logger.Debug("planner created",
		clog.Strings("loggers", cfg.Loggers),
		clog.Strings("printers", printers.Names()),
		clog.Bool("cache", cfg.Cache.Enabled),
		clog.Bool("validate", cfg.Validate),
	)

	return &planner{
		cfg:       cfg,
		loggers:   marker.NewLoggerSet(cfg.Loggers...),
		extractor: extractor,
		printers:  printers,
		validator: validate.New(extractor, printers, validatorOpts...),
		cache:     cache,
		logger:    o.logger,
		reporter:  o.reporter,
		stats:     st,
	}, nil
}

// Must 类似 New，但出错时 panic，仅用于初始化阶段
func Must(cfg *Config, src marker.Source, opts ...Option) Planner {
	return xerrors.Must(New(cfg, src, opts...))
}

func (p *planner) activeLoggers(loggers marker.LoggerSet) marker.LoggerSet {
	if loggers == nil {
		return p.loggers
	}
	return loggers
}

func (p *planner) HasAnyMarker(m *typeinfo.Method) bool {
	return m != nil && p.extractor.HasAnyMarker(m)
}

func (p *planner) HasAnyParameterMarker(param *typeinfo.Parameter) bool {
	return param != nil && p.extractor.HasAnyParameterMarker(param)
}

func (p *planner) Candidates(class *typeinfo.Type) []*typeinfo.Method {
	if class == nil {
		return nil
	}
	return p.extractor.CandidateMethods(class)
}

func (p *planner) Validate(m *typeinfo.Method, loggers marker.LoggerSet) validate.Report {
	if m == nil {
		return validate.Report{Errors: []error{ErrNilMethod}}
	}
	return p.validator.Method(m, p.activeLoggers(loggers))
}

func (p *planner) Invalidate() {
	p.cache.invalidateAll()
	p.stats.cachedPlans(context.Background(), p.cache.size())
	p.logger.Info("plan cache invalidated")
}

func (p *planner) ResolveMdc(m *typeinfo.Method) (*definition.MethodMdc, error) {
	if m == nil {
		return nil, ErrNilMethod
	}
	mdcs, err := p.extractor.Mdcs(m)
	if err != nil {
		return nil, xerrors.Wrap(err, m.ID())
	}
	return definition.NewMethodMdc(m, m.ParamNames(), mdcs, p.extractor.ParameterMdcs(m)), nil
}

func (p *planner) ResolveClass(class *typeinfo.Type, loggers marker.LoggerSet) ([]*definition.LogPack, error) {
	var (
		packs []*definition.LogPack
		errs  []error
	)
	for _, m := range p.Candidates(class) {
		pack, err := p.Resolve(m, loggers)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if pack != nil {
			packs = append(packs, pack)
		}
	}
	return packs, xerrors.Combine(errs...)
}
