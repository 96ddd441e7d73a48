package planner

import (
	"github.com/ceyewan/logplan/printer"
	"github.com/ceyewan/logplan/xerrors"
)

// Config 解析器配置
//
// 典型配置示例（YAML）：
//
//	planner:
//	  default_printer: string
//	  loggers: [""]
//	  validate: true
//	  cache:
//	    enabled: true
//	    capacity: 10000
type Config struct {
	// DefaultPrinter 标记未指定打印器时使用的内置打印器名称，空值为 "string"
	DefaultPrinter string `mapstructure:"default_printer"`

	// Loggers Resolve 未指定日志器集合时激活的日志器名称，默认 [""]
	Loggers []string `mapstructure:"loggers"`

	// KnownLoggers 标记可以引用的日志器名称，为空时不检查
	KnownLoggers []string `mapstructure:"known_loggers"`

	// Validate 为 true 时解析前先做完整的配置校验
	Validate bool `mapstructure:"validate"`

	// Cache 计划缓存
	Cache CacheConfig `mapstructure:"cache"`
}

// CacheConfig 计划缓存配置
type CacheConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	Capacity int  `mapstructure:"capacity"` // 最大条目数，默认 10000
}

// NewDefaultConfig 默认配置：默认日志器、开启缓存
func NewDefaultConfig() *Config {
	return &Config{
		DefaultPrinter: printer.NameString,
		Loggers:        []string{""},
		Cache: CacheConfig{
			Enabled:  true,
			Capacity: defaultCacheCapacity,
		},
	}
}

const defaultCacheCapacity = 10000

// validate 设置默认值并验证配置
func (c *Config) validate() error {
	if c.Loggers == nil {
		c.Loggers = []string{""}
	}
	if c.Cache.Capacity <= 0 {
		c.Cache.Capacity = defaultCacheCapacity
	}
	if _, err := printer.New(c.DefaultPrinter); err != nil {
		return xerrors.Wrapf(ErrInvalidConfig, "default_printer %q: %v", c.DefaultPrinter, err)
	}
	return nil
}
