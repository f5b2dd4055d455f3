// Package command 提供各子命令共享的配置加载与 flags。
package command

import (
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260119-go-pkg-macroctx/internal/config"
	"github.com/lwmacct/260119-go-pkg-macroctx/pkg/cfgload"
	"github.com/lwmacct/260119-go-pkg-macroctx/pkg/macros"
)

const (
	// AppName 应用名称，决定默认配置路径 (.macroctx.yaml 等)。
	AppName = "macroctx"

	// EnvPrefix 环境变量前缀。
	EnvPrefix = "MACROCTX_"

	// Version 当前版本。
	Version = "0.1.0"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// ConfigFlagName 指定配置文件的 flag，未设置时按默认路径搜索。
const ConfigFlagName = "config"

// GlobalFlags 根命令上的共享 flags，子命令通过祖先查找读取。
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    ConfigFlagName,
			Aliases: []string{"c"},
			Usage:   "配置文件路径 (YAML/JSON/TOML)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: Defaults.Log.Level,
			Usage: "日志级别: debug, info, warn, error",
		},
		&cli.StringMapFlag{
			Name:    "acronyms-table",
			Aliases: []string{"A"},
			Usage:   "追加缩写条目 (key=value，可重复)",
		},
	}
}

// Load 加载配置，配置 slog 并注入进程级缩写表。
//
// 相对路径以当前工作目录为基准。
func Load(cmd *cli.Command) (*config.Config, error) {
	opts := []cfgload.Option{
		cfgload.WithConfigPaths(cmd.String(ConfigFlagName)),
		cfgload.WithBaseDir(""),
		cfgload.WithEnvPrefix(EnvPrefix),
	}
	// 显式指定的配置文件必须存在
	if cmd.IsSet(ConfigFlagName) {
		opts = append(opts, cfgload.WithRequiredFile())
	}

	cfg, err := cfgload.LoadCmd(cmd, config.DefaultConfig(), AppName, opts...)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(errWriter(cmd), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	table := cfg.AcronymTable()
	macros.SetAcronyms(table)
	slog.Debug("Acronym table configured", "entries", len(table))

	return cfg, nil
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}

	return os.Stderr
}
