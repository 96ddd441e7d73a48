package config

import (
	"context"
	"strings"

	"github.com/ceyewan/logplan/xerrors"
)

// DefaultEnvPrefix 默认环境变量前缀
const DefaultEnvPrefix = "LOGPLAN"

// Config 配置加载器自身的配置
type Config struct {
	Name      string   `mapstructure:"name"`       // 配置文件名称（不含扩展名），默认 "logplan"
	Paths     []string `mapstructure:"paths"`      // 配置文件搜索路径，默认 [".", "./config"]
	FileType  string   `mapstructure:"file_type"`  // 配置文件类型 (yaml, json, etc.)
	EnvPrefix string   `mapstructure:"env_prefix"` // 环境变量前缀，默认 "LOGPLAN"
}

// validate 设置默认值并验证配置
func (c *Config) validate() error {
	if c.Name == "" {
		c.Name = "logplan"
	}
	if c.Paths == nil {
		c.Paths = []string{".", "./config"}
	}
	if c.FileType == "" {
		c.FileType = "yaml"
	}
	if c.EnvPrefix == "" {
		c.EnvPrefix = DefaultEnvPrefix
	}
	c.EnvPrefix = strings.ToUpper(c.EnvPrefix)
	if strings.ContainsAny(c.Name, `/\`) {
		return xerrors.Wrapf(xerrors.ErrInvalidInput, "config: name %q must not contain a path", c.Name)
	}
	return nil
}

// New 创建配置加载器，cfg 为 nil 时使用默认配置
func New(cfg *Config, opts ...Option) (Loader, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newLoader(cfg, opts...), nil
}

// MustLoad 创建并加载配置，出错时 panic，仅用于初始化阶段
func MustLoad(cfg *Config, opts ...Option) Loader {
	l := xerrors.Must(New(cfg, opts...))
	if err := l.Load(context.Background()); err != nil {
		panic(err)
	}
	return l
}
