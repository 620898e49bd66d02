package cmd

const DESCRIPTION = `
unduh downloads videos and posts from YouTube, Instagram, TikTok,
Facebook and Twitter/X. Paste a link, pick a folder and unduh hands
the work to yt-dlp with settings tuned for each platform.

Run without a command to start the interactive downloader.
`

const (
	DetectDescription = `The detect command shows which platform a link belongs to
and the yt-dlp settings unduh would use for it, without
downloading anything.

Example:
        unduh detect https://youtu.be/dQw4w9WgXcQ

`
	CookiesDescription = `The cookies command exports your browser's login cookies
to the cookie file read by yt-dlp. Cookies for the
configured domains are always exported; pass links to add
the domains of their platforms.

Example:
        unduh cookies
        unduh cookies https://www.tiktok.com/@user/video/1

`
	ConfigDescription = `The config command prints the effective configuration,
after the config file, environment and flags are applied.
Use --init to write a config file with the defaults.

Example:
        unduh config
        unduh config --init

`
)

const HELP_TEMPL = `Usage: {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}{{end}}
{{.Description}}{{if .VisibleCommands}}
Commands:{{range .VisibleCategories}}{{if .Name}}

{{.Name}}:{{range .VisibleCommands}}
  {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{else}}{{range .VisibleCommands}}
{{"\t"}}{{index .Names 0}}{{"\t:\t"}}{{.Usage}}{{end}}{{end}}{{end}}{{end}}{{if .VisibleFlags}}

Global Options:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

Use "{{.HelpName}} help <command>" for more information about any command.

`

const CMD_HELP_TEMPL = `{{if .Description}}{{.Description}}{{else}}{{.HelpName}} - {{.Usage}}

{{end}}Usage:
        {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{else}}[arguments...]{{end}}{{if .VisibleFlags}}

Supported Flags:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

`
