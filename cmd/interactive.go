package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	cmdcommon "github.com/warpdl/unduh/cmd/common"
	"github.com/warpdl/unduh/internal/config"
	"github.com/warpdl/unduh/internal/session"
	"github.com/warpdl/unduh/pkg/logger"
)

// interactive is the root action: the read, download, repeat loop.
func interactive(ctx *cli.Context) error {
	if arg := ctx.Args().First(); arg != "" {
		if arg == "help" {
			return cmdcommon.Help(ctx)
		}
		return cmdcommon.PrintErrWithHelp(ctx, fmt.Errorf("unknown command %q", arg))
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cmdcommon.Fatal(ctx, "unduh", "load_config", err)
	}
	l := newLogger(cfg)
	defer l.Close()

	sctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := session.New(session.NewConsole(stdin), stdout, newDelegate(cfg, l), sessionSettings(cfg, l))
	return s.Run(sctx)
}

func sessionSettings(cfg *config.Config, l logger.Logger) session.Settings {
	return session.Settings{
		OutputDir:     cfg.OutputDir,
		CookieFile:    cfg.CookieFile,
		CookieMode:    cfg.BrowserCookies,
		CookieDomains: cfg.CookieDomains,
		Sources:       newSources(cfg, l),
		Confirm:       cfg.ShouldConfirm(),
		Fs:            appFs,
		Log:           l,
		Progress:      progressFactory(stdout),
	}
}
