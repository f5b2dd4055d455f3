package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260119-go-pkg-macroctx/internal/command"
	app "github.com/lwmacct/260119-go-pkg-macroctx/internal/command/acronyms"
)

func main() {
	root := &cli.Command{
		Name:     app.Command.Name,
		Usage:    app.Command.Usage,
		Version:  command.Version,
		Flags:    command.GlobalFlags(),
		Commands: app.Command.Commands,
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		slog.Error("应用程序运行失败", "error", err)
		os.Exit(1)
	}
}
