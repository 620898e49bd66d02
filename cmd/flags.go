package cmd

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/warpdl/unduh/common"
	"github.com/warpdl/unduh/internal/config"
	"github.com/warpdl/unduh/internal/cookies"
	"github.com/warpdl/unduh/internal/ytdl"
	"github.com/warpdl/unduh/pkg/logger"
)

const (
	flagDownloadPath   = "download-path"
	flagCookieFile     = "cookie-file"
	flagBrowserCookies = "browser-cookies"
	flagCookiesFrom    = "cookies-from"
	flagNoConfirm      = "no-confirm"
	flagConfig         = "config"
	flagYTDLPPath      = "ytdlp-path"
	flagAutoInstall    = "auto-install"
	flagDebug          = "debug"
)

var globalFlags = []cli.Flag{
	cli.StringFlag{
		Name:   flagDownloadPath + ", l",
		Usage:  "folder used when the output prompt is left empty (default: downloads)",
		EnvVar: common.DownloadPathEnv,
	},
	cli.StringFlag{
		Name:   flagCookieFile + ", c",
		Usage:  "cookie file handed to yt-dlp (default: cookies.txt)",
		EnvVar: common.CookieFileEnv,
	},
	cli.StringFlag{
		Name:   flagBrowserCookies + ", b",
		Usage:  "read browser cookies: ask, always or never (default: ask)",
		EnvVar: common.BrowserCookiesEnv,
	},
	cli.StringSliceFlag{
		Name:   flagCookiesFrom,
		Usage:  "cookie file or database to read before the browsers (repeatable)",
		EnvVar: common.CookiesFromEnv,
	},
	cli.BoolFlag{
		Name:   flagNoConfirm,
		Usage:  "download without showing media info first",
		EnvVar: common.NoConfirmEnv,
	},
	cli.StringFlag{
		Name:   flagConfig,
		Usage:  "path of the config file",
		EnvVar: common.ConfigEnv,
	},
	cli.StringFlag{
		Name:   flagYTDLPPath,
		Usage:  "yt-dlp executable to run instead of the one on PATH",
		EnvVar: common.YTDLPPathEnv,
	},
	cli.BoolFlag{
		Name:  flagAutoInstall,
		Usage: "download yt-dlp if it is not installed",
	},
	cli.BoolFlag{
		Name:   flagDebug,
		Usage:  "write diagnostic logs to stderr",
		EnvVar: common.DebugEnv,
	},
}

// Replaced in tests.
var (
	appFs  afero.Fs  = afero.NewOsFs()
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	newDelegate = func(cfg *config.Config, l logger.Logger) ytdl.Delegate {
		y := ytdl.NewYTDLP(l)
		y.Executable = cfg.YTDLPPath
		y.AutoInstall = cfg.AutoInstall
		return y
	}
	newSources = cookieSources
)

// cookieSources lists the configured cookie files ahead of the browsers.
func cookieSources(cfg *config.Config, l logger.Logger) []cookies.Source {
	return cookies.Sources(cfg.CookieSources, cfg.Browsers, l)
}

// configPath returns the --config value or the default location. An empty
// result means no file is read.
func configPath(ctx *cli.Context) string {
	if p := ctx.GlobalString(flagConfig); p != "" {
		return p
	}
	p, err := config.Path()
	if err != nil {
		return ""
	}
	return p
}

// loadConfig reads the config file and lays the environment and flags over
// it.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(appFs, configPath(ctx))
	if err != nil {
		return nil, err
	}
	if ctx.GlobalIsSet(flagDownloadPath) {
		cfg.OutputDir = ctx.GlobalString(flagDownloadPath)
	}
	if ctx.GlobalIsSet(flagCookieFile) {
		cfg.CookieFile = ctx.GlobalString(flagCookieFile)
	}
	if ctx.GlobalIsSet(flagBrowserCookies) {
		cfg.BrowserCookies = config.CookieMode(ctx.GlobalString(flagBrowserCookies))
	}
	if ctx.GlobalIsSet(flagCookiesFrom) {
		cfg.CookieSources = ctx.GlobalStringSlice(flagCookiesFrom)
	}
	if ctx.GlobalBool(flagNoConfirm) {
		cfg.SetConfirm(false)
	}
	if ctx.GlobalIsSet(flagYTDLPPath) {
		cfg.YTDLPPath = ctx.GlobalString(flagYTDLPPath)
	}
	if ctx.GlobalBool(flagAutoInstall) {
		cfg.AutoInstall = true
	}
	if ctx.GlobalBool(flagDebug) {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.New(cfg.Debug, stderr)
}
