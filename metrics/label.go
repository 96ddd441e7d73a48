package metrics

// Label 指标标签
//
// 标签值应保持低基数，例如解析结果、错误码，不要使用方法 ID 这类无界取值。
//
//	counter.Inc(ctx, metrics.L(metrics.LabelOutcome, metrics.OutcomePlanned))
type Label struct {
	Key   string
	Value string
}

// L 便捷构造函数
func L(key, value string) Label {
	return Label{
		Key:   key,
		Value: value,
	}
}
