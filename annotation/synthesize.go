package annotation

import (
	"slices"

	"github.com/ceyewan/logplan/marker"
)

// SynthesizeIn 用通用标记的属性合成入口标记
//
// 专用标记优先，通用标记只在专用标记缺失时提供默认值。
func SynthesizeIn(log marker.Log) marker.In {
	return marker.In{Attributes: cloneAttributes(log.Attributes)}
}

// SynthesizeOut 用通用标记的属性合成出口标记
func SynthesizeOut(log marker.Log) marker.Out {
	return marker.Out{Attributes: cloneAttributes(log.Attributes)}
}

// SynthesizeArg 用通用标记的属性合成参数标记
func SynthesizeArg(log marker.Log) marker.Arg {
	return marker.Arg{Attributes: cloneAttributes(log.Attributes)}
}

func cloneAttributes(a marker.Attributes) marker.Attributes {
	a.Mask = slices.Clone(a.Mask)
	return a
}

// ArgFromIn 参数没有专用标记时沿用入口标记的属性
func ArgFromIn(in marker.In) marker.Arg {
	return marker.Arg{Attributes: cloneAttributes(in.Attributes)}
}
