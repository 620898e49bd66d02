package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"

	cmdcommon "github.com/warpdl/unduh/cmd/common"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

// Execute runs the unduh command line with args.
func Execute(args []string, bArgs BuildArgs) error {
	return newApp(bArgs).Run(args)
}

func newApp(bArgs BuildArgs) *cli.App {
	app := &cli.App{
		Name:                  "unduh",
		HelpName:              "unduh",
		Usage:                 "A social media downloader.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "unduh [global options] [command] [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          cmdcommon.UsageErrorCallback,
		Commands: []cli.Command{
			{
				Name:               "detect",
				Aliases:            []string{"d"},
				Usage:              "shows the platform and settings for a link",
				UsageText:          "detect <url>",
				Action:             detect,
				OnUsageError:       cmdcommon.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        DetectDescription,
			},
			{
				Name:               "cookies",
				Aliases:            []string{"c"},
				Usage:              "exports browser cookies for yt-dlp",
				UsageText:          "cookies [url...]",
				Action:             exportCookies,
				OnUsageError:       cmdcommon.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        CookiesDescription,
			},
			{
				Name:                   "config",
				Usage:                  "prints or initializes the configuration",
				UsageText:              "config [--init]",
				Action:                 showConfig,
				OnUsageError:           cmdcommon.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ConfigDescription,
				Flags:                  configFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  cmdcommon.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of unduh",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             cmdcommon.GetVersion,
			},
		},
		Action:                 interactive,
		Flags:                  globalFlags,
		UseShortOptionHandling: true,
		HideHelp:               true,
		HideVersion:            true,
	}
	cmdcommon.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app
}
