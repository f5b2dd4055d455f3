package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260119-go-pkg-macroctx/internal/command"
	"github.com/lwmacct/260119-go-pkg-macroctx/internal/command/acronyms"
	"github.com/lwmacct/260119-go-pkg-macroctx/internal/command/confcmd"
	"github.com/lwmacct/260119-go-pkg-macroctx/internal/command/page"
)

func main() {
	app := &cli.Command{
		Name:    command.AppName,
		Usage:   "站点宏上下文工具",
		Version: command.Version,
		Flags:   command.GlobalFlags(),
		Commands: []*cli.Command{
			acronyms.Command,
			page.Command,
			confcmd.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
