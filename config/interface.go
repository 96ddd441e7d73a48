// Package config 提供基于 Viper 的配置加载能力。
//
// 特性：
//   - 多源配置加载：YAML/JSON 文件、环境变量、.env 文件
//   - 配置优先级：环境变量 > .env > 环境特定配置 > 基础配置
//   - 热更新：监听配置文件变化并按 key 通知
//
// 基本使用：
//
//	loader := config.MustLoad(&config.Config{Name: "logplan", Paths: []string{"./config"}})
//
//	var cfg planner.Config
//	if err := loader.UnmarshalKey("planner", &cfg); err != nil {
//		panic(err)
//	}
//
//	ch, _ := loader.Watch(ctx, "declarations")
//	for event := range ch {
//		// 重新加载标记声明
//	}
package config

import (
	"context"
	"time"
)

// Loader 配置加载器
type Loader interface {
	// Load 加载配置并开始监听文件变化
	Load(ctx context.Context) error

	// Get 获取原始配置值
	Get(key string) any

	// Unmarshal 将整个配置反序列化到结构体
	Unmarshal(v any) error

	// UnmarshalKey 将指定 key 的配置反序列化到结构体
	UnmarshalKey(key string, v any) error

	// Watch 监听 key 的变化，ctx 取消后通道关闭
	Watch(ctx context.Context, key string) (<-chan Event, error)

	// Validate 验证当前配置的有效性
	Validate() error
}

// Event 配置变更事件
type Event struct {
	Key       string
	Value     any
	OldValue  any
	Source    string // "file"
	Timestamp time.Time
}
