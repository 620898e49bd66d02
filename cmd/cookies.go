package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	cmdcommon "github.com/warpdl/unduh/cmd/common"
	"github.com/warpdl/unduh/internal/cookies"
	"github.com/warpdl/unduh/internal/platform"
)

// exportCookies writes browser cookies to the cookie file once. Running the
// command is the consent, so browser_cookies is not consulted.
func exportCookies(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cmdcommon.Fatal(ctx, "cookies", "load_config", err)
	}
	l := newLogger(cfg)
	defer l.Close()

	domains := append([]string(nil), cfg.CookieDomains...)
	for _, url := range ctx.Args() {
		domains = append(domains, platform.Detect(url).CookieDomains()...)
	}

	sources := newSources(cfg, l)
	l.Info("cookies: trying %v for %v", cookies.SourceNames(sources), domains)
	res, err := cookies.Export(appFs, cfg.CookieFile, sources, domains, l)
	if err != nil {
		return cmdcommon.Fatal(ctx, "cookies", "export", err)
	}
	if !res.Found {
		fmt.Fprintln(stdout, "No browser cookie store found; wrote an empty cookie file.")
	} else {
		fmt.Fprintf(stdout, "Exported %d cookies from %s.\n", len(res.Cookies), res.Source)
	}
	fmt.Fprintf(stdout, "Cookie file: %s\n", cfg.CookieFile)
	return nil
}
