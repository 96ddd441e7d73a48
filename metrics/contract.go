package metrics

// 指标名称
const (
	MetricResolutions    = "logplan_resolutions_total"
	MetricWarnings       = "logplan_warnings_total"
	MetricResolveSeconds = "logplan_resolve_duration_seconds"
	MetricCachedPlans    = "logplan_cached_plans"
)

// 常见的标签
const (
	LabelOutcome = "outcome"
	LabelCode    = "code"
	LabelCache   = "cache"
)

// 解析结果
const (
	OutcomePlanned = "planned" // 生成了日志计划
	OutcomeAbsent  = "absent"  // 没有需要记录的内容
	OutcomeError   = "error"   // 配置错误
)

// 缓存命中情况
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)
