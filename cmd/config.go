package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"

	cmdcommon "github.com/warpdl/unduh/cmd/common"
	"github.com/warpdl/unduh/internal/config"
)

var configFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "init, i",
		Usage: "write a config file with the defaults if none exists",
	},
}

// showConfig prints the effective configuration, or writes the defaults
// with --init.
func showConfig(ctx *cli.Context) error {
	if ctx.Bool("init") {
		return initConfig(ctx)
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cmdcommon.Fatal(ctx, "config", "load", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return cmdcommon.Fatal(ctx, "config", "marshal", err)
	}
	if path := configPath(ctx); path != "" {
		fmt.Fprintf(stdout, "# %s\n", path)
	}
	_, _ = stdout.Write(data)
	return nil
}

func initConfig(ctx *cli.Context) error {
	path := configPath(ctx)
	if path == "" {
		return cmdcommon.Fatal(ctx, "config", "init", errors.New("cannot determine the config location"))
	}
	if ok, _ := afero.Exists(appFs, path); ok {
		return cmdcommon.Fatal(ctx, "config", "init", fmt.Errorf("%s already exists", path))
	}
	if err := config.Save(appFs, path, config.Default()); err != nil {
		return cmdcommon.Fatal(ctx, "config", "init", err)
	}
	fmt.Fprintf(stdout, "Wrote %s\n", path)
	return nil
}
