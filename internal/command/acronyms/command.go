// Package acronyms 提供缩写表的查询命令。
package acronyms

import "github.com/urfave/cli/v3"

// Command 缩写表命令
var Command = NewCommand()

// NewCommand 构造新的缩写表命令，每次调用返回独立的命令树。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "acronyms",
		Usage: "查看与查询缩写表",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "输出当前缩写表 (YAML)",
				Action: listAction,
			},
			{
				Name:      "lookup",
				Usage:     "查询缩写的全称，未命中时以状态码 1 退出",
				ArgsUsage: "<term>",
				Action:    lookupAction,
			},
		},
	}
}
