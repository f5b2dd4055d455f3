// Package page 提供页面上下文的预览命令。
package page

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260119-go-pkg-macroctx/internal/command"
)

// Command 页面上下文命令
var Command = NewCommand()

// NewCommand 构造新的页面上下文命令，每次调用返回独立的命令树。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "page",
		Usage: "预览宏可见的页面上下文",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "加载 namespace / uservalues 并输出宏读取到的内容 (YAML)",
				Action: showAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "page-namespace",
						Aliases: []string{"n"},
						Value:   command.Defaults.Page.Namespace,
						Usage:   "namespace 映射文件",
					},
					&cli.StringFlag{
						Name:    "page-uservalues",
						Aliases: []string{"u"},
						Value:   command.Defaults.Page.Uservalues,
						Usage:   "uservalues 映射文件",
					},
					&cli.BoolFlag{
						Name:  "expand",
						Usage: "以 namespace 展开 uservalues 中的 ${...} 引用",
					},
				},
			},
		},
	}
}
