// Package confcmd 提供配置查看与生成命令。
package confcmd

import "github.com/urfave/cli/v3"

// Command 配置命令
var Command = NewCommand()

// NewCommand 构造新的配置命令，每次调用返回独立的命令树。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "查看或生成配置文件",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "输出合并后的有效配置 (YAML)",
				Action: showAction,
			},
			{
				Name:      "init",
				Usage:     "将有效配置写入文件 (按扩展名选择 YAML/JSON)",
				ArgsUsage: "<path>",
				Action:    initAction,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "覆盖已存在的文件",
					},
				},
			},
		},
	}
}
