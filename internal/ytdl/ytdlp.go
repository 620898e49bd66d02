package ytdl

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/warpdl/unduh/pkg/logger"
)

// progressInterval is how often yt-dlp progress is reported.
const progressInterval = 250 * time.Millisecond

// YTDLP is the Delegate backed by the yt-dlp executable.
type YTDLP struct {
	// Executable overrides the yt-dlp binary; empty means PATH lookup.
	Executable string
	// AutoInstall downloads yt-dlp on first use when it is not installed.
	AutoInstall bool
	Log         logger.Logger

	installOnce sync.Once
	installErr  error
}

// NewYTDLP returns a YTDLP logging to l.
func NewYTDLP(l logger.Logger) *YTDLP {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &YTDLP{Log: l}
}

var _ Delegate = (*YTDLP)(nil)

// Info asks yt-dlp for the metadata of url without downloading it.
func (y *YTDLP) Info(ctx context.Context, url string, opts Options) (*Info, error) {
	if err := y.ensureInstalled(ctx); err != nil {
		return nil, err
	}
	cmd := y.command(opts.WithProgress(nil)).DumpJSON()

	y.Log.Info("ytdl: extracting info for %s", url)
	res, err := cmd.Run(ctx, append(extraArgs(opts), url)...)
	if err != nil {
		return nil, y.wrap(ctx, res, err)
	}
	infos, err := res.GetExtractedInfo()
	if err != nil {
		return nil, NewError("", fmt.Errorf("parse yt-dlp output: %w", err))
	}
	if len(infos) == 0 || infos[0] == nil {
		return nil, ErrNoInfo
	}
	return infoFrom(infos[0]), nil
}

// Download runs yt-dlp for url with opts.
func (y *YTDLP) Download(ctx context.Context, url string, opts Options) error {
	if err := y.ensureInstalled(ctx); err != nil {
		return err
	}
	cmd := y.command(opts)
	if opts.Progress != nil {
		report := opts.Progress
		cmd.ProgressFunc(progressInterval, func(u ytdlp.ProgressUpdate) {
			report(progressFrom(u))
		})
	}

	y.Log.Info("ytdl: downloading %s", url)
	res, err := cmd.Run(ctx, append(extraArgs(opts), url)...)
	if err != nil {
		return y.wrap(ctx, res, err)
	}
	y.Log.Info("ytdl: finished %s", url)
	return nil
}

// command translates the single-valued parts of opts into a yt-dlp
// invocation. Repeatable flags come from extraArgs.
func (y *YTDLP) command(opts Options) *ytdlp.Command {
	cmd := ytdlp.New().
		Format(opts.Format).
		Output(opts.OutputTemplate).
		SocketTimeout(float64(opts.SocketTimeout)).
		Retries(strconv.Itoa(opts.Retries)).
		FragmentRetries(strconv.Itoa(opts.FragmentRetries)).
		RetrySleep(fmt.Sprintf("http:%d", opts.RetrySleepHTTP))

	if y.Executable != "" {
		cmd.SetExecutable(y.Executable)
	}
	if opts.CookieFile != "" {
		cmd.Cookies(opts.CookieFile)
	}
	if opts.IgnoreErrors {
		cmd.IgnoreErrors()
	}
	if opts.NoWarnings {
		cmd.NoWarnings()
	}
	if opts.Quiet {
		cmd.Quiet()
	}
	if opts.Verbose {
		cmd.Verbose()
	}
	if opts.ExtractFlat {
		cmd.FlatPlaylist()
	}
	if opts.NoCheckCertificate {
		cmd.NoCheckCertificates()
	}
	if opts.GeoBypass && opts.GeoBypassCountry != "" {
		cmd.XFF(opts.GeoBypassCountry)
	}
	return cmd
}

// extraArgs renders the repeatable flags of opts. The builder keeps only
// the last value of --add-headers and --extractor-args, so these are
// passed as raw arguments ahead of the URL.
func extraArgs(opts Options) []string {
	bags := opts.ExtractorArgs.flags()
	args := make([]string, 0, 2*(len(opts.Headers)+len(bags)))
	for _, h := range opts.Headers {
		args = append(args, "--add-headers", h)
	}
	for _, bag := range bags {
		args = append(args, "--extractor-args", bag)
	}
	return args
}

func (y *YTDLP) ensureInstalled(ctx context.Context) error {
	if !y.AutoInstall || y.Executable != "" {
		return nil
	}
	y.installOnce.Do(func() {
		y.Log.Info("ytdl: making sure yt-dlp is installed")
		if _, err := ytdlp.Install(ctx, nil); err != nil {
			y.installErr = fmt.Errorf("install yt-dlp: %w", err)
		}
	})
	return y.installErr
}

// wrap turns a failed run into an *Error carrying yt-dlp's stderr.
// A cancelled ctx is returned as is.
func (y *YTDLP) wrap(ctx context.Context, res *ytdlp.Result, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	var stderr string
	if res != nil {
		stderr = res.Stderr
	}
	e := NewError(stderr, err)
	y.Log.Error("ytdl: %s failure: %s", e.Kind, e.Message)
	return e
}

func infoFrom(ei *ytdlp.ExtractedInfo) *Info {
	info := &Info{Type: string(ei.Type)}
	if ei.Title != nil {
		info.Title = *ei.Title
	}
	if ei.Duration != nil && *ei.Duration > 0 {
		info.Duration = time.Duration(*ei.Duration * float64(time.Second))
	}
	return info
}

func progressFrom(u ytdlp.ProgressUpdate) Progress {
	p := Progress{
		Filename:   u.Filename,
		Downloaded: int64(u.DownloadedBytes),
		Total:      int64(u.TotalBytes),
		ETA:        u.ETA(),
		Started:    u.Started,
		Finished:   !u.Finished.IsZero(),
	}
	if u.Info != nil && u.Info.Title != nil {
		p.Title = *u.Info.Title
	}
	return p
}
