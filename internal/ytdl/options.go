// Package ytdl builds yt-dlp download configurations and runs yt-dlp on
// behalf of the interactive session.
package ytdl

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/warpdl/unduh/internal/cookies"
	"github.com/warpdl/unduh/internal/platform"
)

const (
	// DefaultFormat selects the best single-file quality.
	DefaultFormat = "best"
	// OutputTemplate names downloaded files after the media title.
	OutputTemplate = "%(title)s.%(ext)s"
	// DefaultCookieFile is the cookie file referenced by a fresh configuration.
	DefaultCookieFile = cookies.DefaultFile
)

// instagramHeaders are sent on every Instagram request.
var instagramHeaders = []string{
	"User-Agent:Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	"Accept:text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language:en-US,en;q=0.5",
	"DNT:1",
}

// ExtractorArgs holds per-extractor argument bags, such as
// {"youtube": {"player_client": ["all"]}}.
type ExtractorArgs map[string]map[string][]string

// String renders the bags the way --extractor-args expects them, one
// "extractor:key=v1,v2;key2=v3" entry per extractor, in sorted order.
func (e ExtractorArgs) String() string {
	return strings.Join(e.flags(), " ")
}

func (e ExtractorArgs) flags() []string {
	extractors := make([]string, 0, len(e))
	for name := range e {
		extractors = append(extractors, name)
	}
	sort.Strings(extractors)

	out := make([]string, 0, len(extractors))
	for _, name := range extractors {
		bag := e[name]
		keys := make([]string, 0, len(bag))
		for k := range bag {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+"="+strings.Join(bag[k], ","))
		}
		out = append(out, name+":"+strings.Join(parts, ";"))
	}
	return out
}

// Options is one download configuration. It is built fresh for every
// request and handed to a Delegate unchanged.
type Options struct {
	Format         string
	OutputTemplate string
	// CookieFile is empty when no cookie file should be passed.
	CookieFile string

	IgnoreErrors bool
	NoWarnings   bool
	Quiet        bool
	Verbose      bool
	ExtractFlat  bool

	// SocketTimeout is in seconds.
	SocketTimeout   int
	Retries         int
	FragmentRetries int
	// RetrySleepHTTP is the fixed sleep, in seconds, between HTTP retries.
	RetrySleepHTTP int

	NoCheckCertificate bool
	GeoBypass          bool
	GeoBypassCountry   string

	Headers       []string
	ExtractorArgs ExtractorArgs

	// Progress receives download progress. It is set by the caller and is
	// not part of the configuration proper.
	Progress func(Progress)
}

// Build returns the configuration for downloading a p URL into outputDir.
// It has no side effects: equal inputs always yield equal Options.
func Build(p platform.Platform, outputDir string) Options {
	opts := Options{
		Format:             DefaultFormat,
		OutputTemplate:     filepath.Join(outputDir, OutputTemplate),
		CookieFile:         DefaultCookieFile,
		IgnoreErrors:       true,
		Verbose:            true,
		SocketTimeout:      30,
		Retries:            5,
		FragmentRetries:    10,
		RetrySleepHTTP:     5,
		NoCheckCertificate: true,
	}

	switch p {
	case platform.YouTube:
		opts.GeoBypass = true
		opts.GeoBypassCountry = "US"
		opts.ExtractorArgs = ExtractorArgs{
			"youtube": {
				"player_client": {"all"},
				"player_skip":   {"js", "configs", "webpage"},
			},
		}
	case platform.Instagram:
		opts.Headers = append([]string(nil), instagramHeaders...)
		opts.ExtractFlat = true
	case platform.TikTok:
		opts.Format = "best[ext=mp4]"
	}
	return opts
}

// WithCookieFile returns a copy of o that references path, or no cookie
// file at all when path is empty.
func (o Options) WithCookieFile(path string) Options {
	o.CookieFile = path
	return o
}

// WithProgress returns a copy of o that reports progress to fn.
func (o Options) WithProgress(fn func(Progress)) Options {
	o.Progress = fn
	return o
}

// Map returns the configuration keyed by yt-dlp's option names. Unset
// optional entries are left out.
func (o Options) Map() map[string]any {
	m := map[string]any{
		"format":             o.Format,
		"outtmpl":            o.OutputTemplate,
		"ignoreerrors":       o.IgnoreErrors,
		"no_warnings":        o.NoWarnings,
		"quiet":              o.Quiet,
		"verbose":            o.Verbose,
		"extract_flat":       o.ExtractFlat,
		"socket_timeout":     o.SocketTimeout,
		"retries":            o.Retries,
		"fragment_retries":   o.FragmentRetries,
		"retry_sleep":        fmt.Sprintf("http:%d", o.RetrySleepHTTP),
		"nocheckcertificate": o.NoCheckCertificate,
	}
	if o.CookieFile != "" {
		m["cookiefile"] = o.CookieFile
	}
	if o.GeoBypass {
		m["geo_bypass"] = true
		m["geo_bypass_country"] = o.GeoBypassCountry
	}
	if len(o.Headers) > 0 {
		m["add_header"] = append([]string(nil), o.Headers...)
	}
	if len(o.ExtractorArgs) > 0 {
		m["extractor_args"] = o.ExtractorArgs
	}
	return m
}

// Equal reports whether o and other describe the same configuration. The
// Progress callback is ignored.
func (o Options) Equal(other Options) bool {
	o.Progress, other.Progress = nil, nil
	return fmt.Sprint(o.Map()) == fmt.Sprint(other.Map())
}
