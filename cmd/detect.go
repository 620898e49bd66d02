package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"

	cmdcommon "github.com/warpdl/unduh/cmd/common"
	"github.com/warpdl/unduh/internal/platform"
	"github.com/warpdl/unduh/internal/ytdl"
)

// detect prints the platform of a link and the yt-dlp settings built for it.
func detect(ctx *cli.Context) error {
	url := strings.TrimSpace(ctx.Args().First())
	if url == "" {
		return cmdcommon.PrintErrWithCmdHelp(ctx, errors.New("no url provided"))
	} else if url == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cmdcommon.Fatal(ctx, "detect", "load_config", err)
	}

	p := platform.Detect(url)
	opts := ytdl.Build(p, cfg.OutputDir)
	cookieFile := ""
	if ok, _ := afero.Exists(appFs, cfg.CookieFile); ok {
		cookieFile = cfg.CookieFile
	}
	opts = opts.WithCookieFile(cookieFile)

	data, err := yaml.Marshal(opts.Map())
	if err != nil {
		return cmdcommon.Fatal(ctx, "detect", "marshal", err)
	}
	fmt.Fprintf(stdout, "Detected platform: %s\n\n", p)
	_, _ = stdout.Write(data)
	return nil
}
