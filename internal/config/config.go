// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - --config 或 .macroctx.yaml 等默认路径
//  3. 环境变量 - MACROCTX_ 前缀
//  4. CLI flags
package config

import (
	"log/slog"
	"strings"

	"github.com/lwmacct/260119-go-pkg-macroctx/pkg/macros"
)

// Config 应用配置。
type Config struct {
	Acronyms AcronymsConfig `json:"acronyms" desc:"缩写表配置"`
	Page     PageConfig     `json:"page" desc:"页面上下文配置"`
	Log      LogConfig      `json:"log" desc:"日志配置"`
}

// AcronymsConfig 缩写表配置。
type AcronymsConfig struct {
	Table map[string]string `json:"table" desc:"追加的缩写条目，覆盖同名默认条目"`
}

// PageConfig 页面上下文配置。
type PageConfig struct {
	Namespace  string `json:"namespace" desc:"namespace 映射文件 (YAML/JSON/TOML)"`
	Uservalues string `json:"uservalues" desc:"uservalues 映射文件 (YAML/JSON/TOML)"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level string `json:"level" desc:"日志级别: debug, info, warn, error"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Acronyms: AcronymsConfig{
			Table: map[string]string{},
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// AcronymTable 返回默认缩写表叠加配置条目后的结果。
func (c *Config) AcronymTable() macros.Acronyms {
	return macros.DefaultAcronyms().Merge(c.Acronyms.Table)
}

// SlogLevel 解析日志级别，无法识别时返回 slog.LevelWarn。
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
