package planner

import (
	"strconv"
	"strings"

	"github.com/maypok86/otter/v2"

	"github.com/ceyewan/logplan/definition"
	"github.com/ceyewan/logplan/marker"
	"github.com/ceyewan/logplan/typeinfo"
	"github.com/ceyewan/logplan/xerrors"
)

// planCache 按方法和日志器集合缓存解析结果，没有计划（nil）也会被缓存
type planCache struct {
	cache *otter.Cache[string, *definition.LogPack]
}

func newPlanCache(cfg CacheConfig) (*planCache, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	c, err := otter.New(&otter.Options[string, *definition.LogPack]{
		MaximumSize: cfg.Capacity,
	})
	if err != nil {
		return nil, xerrors.Wrap(err, "planner: failed to build otter cache")
	}
	return &planCache{cache: c}, nil
}

// cacheKey 方法 ID 加排序后的日志器名称
//
// 名称逐个加引号，空集合与只含 "" 的集合得到不同的 key。
func cacheKey(m *typeinfo.Method, loggers marker.LoggerSet) string {
	var sb strings.Builder
	sb.WriteString(m.ID())
	for _, name := range loggers.Names() {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(name))
	}
	return sb.String()
}

func (c *planCache) get(key string) (*definition.LogPack, bool) {
	if c == nil {
		return nil, false
	}
	return c.cache.GetIfPresent(key)
}

func (c *planCache) set(key string, pack *definition.LogPack) {
	if c == nil {
		return
	}
	c.cache.Set(key, pack)
}

func (c *planCache) invalidateAll() {
	if c == nil {
		return
	}
	c.cache.InvalidateAll()
}

func (c *planCache) size() int {
	if c == nil {
		return 0
	}
	return c.cache.EstimatedSize()
}
