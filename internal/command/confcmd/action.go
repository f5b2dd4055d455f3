package confcmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260119-go-pkg-macroctx/internal/command"
	"github.com/lwmacct/260119-go-pkg-macroctx/pkg/cfgload"
)

var (
	errMissingPath = errors.New("missing <path> argument")
	errFileExists  = errors.New("file already exists (use --force to overwrite)")
)

func showAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.Load(cmd)
	if err != nil {
		return err
	}

	out, err := cfgload.MarshalYAML(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.Root().Writer.Write(out)

	return err
}

func initAction(_ context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return errMissingPath
	}
	if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("%s: %w", path, errFileExists)
	}

	cfg, err := command.Load(cmd)
	if err != nil {
		return err
	}
	if err := cfgload.WriteFile(path, cfg); err != nil {
		return err
	}

	slog.Info("Config written", "path", path)

	return nil
}
