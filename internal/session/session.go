// Package session runs the interactive read, download, repeat loop.
//
// The loop is a small state machine. Every transition goes through Step,
// which takes the current State and returns the next one, so the machine can
// be driven one phase at a time without a terminal.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/warpdl/unduh/internal/config"
	"github.com/warpdl/unduh/internal/cookies"
	"github.com/warpdl/unduh/internal/platform"
	"github.com/warpdl/unduh/internal/ytdl"
	"github.com/warpdl/unduh/pkg/logger"
)

// Settings configures a Session. Zero values fall back to defaults.
type Settings struct {
	// OutputDir is used when the user leaves the folder prompt empty.
	OutputDir string
	// CookieFile is where browser cookies are exported and read by yt-dlp.
	CookieFile string
	// CookieMode controls whether the browser may be read.
	CookieMode config.CookieMode
	// CookieDomains are always exported, on top of the first URL's platform.
	CookieDomains []string
	// Sources are tried in order when exporting browser cookies.
	Sources []cookies.Source
	// Confirm shows media info and asks before each download.
	Confirm bool

	Fs       afero.Fs
	Log      logger.Logger
	Progress ProgressFactory
}

// Session is one interactive run.
type Session struct {
	in       Prompter
	out      io.Writer
	delegate ytdl.Delegate
	set      Settings

	// cookiesHandled is set after the once-per-session cookie step.
	cookiesHandled bool
	// cookiesAborted is set when the user interrupted the consent prompt.
	cookiesAborted bool

	ok   *color.Color
	fail *color.Color
}

// New returns a Session reading answers from in, writing to out and
// downloading through d.
func New(in Prompter, out io.Writer, d ytdl.Delegate, set Settings) *Session {
	if set.OutputDir == "" {
		set.OutputDir = config.DefaultOutputDir
	}
	if set.CookieFile == "" {
		set.CookieFile = config.DefaultCookieFile
	}
	if set.CookieMode == "" {
		set.CookieMode = config.ModeAsk
	}
	if set.Fs == nil {
		set.Fs = afero.NewOsFs()
	}
	if set.Log == nil {
		set.Log = logger.NewNopLogger()
	}
	if set.Progress == nil {
		set.Progress = func(string) ProgressSink { return nopSink{} }
	}
	return &Session{
		in:       in,
		out:      out,
		delegate: d,
		set:      set,
		ok:       color.New(color.FgGreen),
		fail:     color.New(color.FgRed),
	}
}

// Run prints the banner and steps through the loop until Exiting.
func (s *Session) Run(ctx context.Context) error {
	s.banner()
	st := prompting()
	for st.Phase != Exiting {
		st = s.Step(ctx, st)
	}
	s.println(msgTerminated)
	return nil
}

// Step performs the transition out of st.Phase and returns the next state.
func (s *Session) Step(ctx context.Context, st State) State {
	if ctx.Err() != nil {
		return exiting(st)
	}
	switch st.Phase {
	case Prompting:
		return s.prompt(ctx, st)
	case Confirming:
		return s.confirm(ctx, st)
	case Downloading:
		return s.download(ctx, st)
	case Reporting:
		return s.report(ctx, st)
	}
	return exiting(st)
}

func (s *Session) banner() {
	s.println(bannerTitle)
	s.printf("Supported platforms: %s\n", platform.SupportedNames())
	s.println(bannerExit)
	s.println(bannerRule)
}

func (s *Session) prompt(ctx context.Context, st State) State {
	raw, err := s.ask(ctx, promptURL)
	if err != nil {
		return exiting(st)
	}
	url := strings.TrimSpace(raw)
	if strings.EqualFold(url, "exit") {
		return exiting(st)
	}
	if url == "" {
		s.println(msgEmptyURL)
		return prompting()
	}

	dir, err := s.ask(ctx, promptDir)
	if err != nil {
		return exiting(st)
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = s.set.OutputDir
	}

	p := platform.Detect(url)
	s.printf(msgPlatform+"\n", p)
	s.set.Log.Info("session: %s detected as %s, output %s", url, p, dir)

	next := State{
		Phase:     Downloading,
		URL:       url,
		Platform:  p,
		OutputDir: dir,
		Options:   ytdl.Build(p, dir),
	}
	if s.set.Confirm {
		next.Phase = Confirming
	}
	return next
}

func (s *Session) confirm(ctx context.Context, st State) State {
	st = s.prepareCookies(ctx, st)
	if s.cookiesAborted {
		return exiting(st)
	}

	s.printf(msgFromURL+"\n", st.URL)
	info, err := s.delegate.Info(ctx, st.URL, st.Options)
	if ctx.Err() != nil {
		return exiting(st)
	}
	if err != nil {
		st.Phase, st.Err = Reporting, err
		return st
	}

	s.printf("\nTitle: %s\n", orUnknown(info.Title))
	if info.Duration > 0 {
		s.printf("Duration: %s seconds\n", formatSeconds(info.Duration.Seconds()))
	}
	s.printf("Type: %s\n", orUnknown(info.Type))

	answer, err := s.ask(ctx, promptConfirm)
	if err != nil {
		return exiting(st)
	}
	if !yes(answer) {
		return prompting()
	}
	st.Info = info
	st.Phase = Downloading
	return st
}

func (s *Session) download(ctx context.Context, st State) State {
	if created, err := EnsureDir(s.set.Fs, st.OutputDir); err != nil {
		st.Phase, st.Err = Reporting, errOutputDir{err}
		return st
	} else if created {
		s.set.Log.Info("session: created %s", st.OutputDir)
	}

	st = s.prepareCookies(ctx, st)
	if s.cookiesAborted {
		return exiting(st)
	}
	if st.Info == nil {
		s.printf(msgFromURL+"\n", st.URL)
	}

	sink := s.set.Progress(st.URL)
	err := s.delegate.Download(ctx, st.URL, st.Options.WithProgress(sink.Update))
	sink.Done(err)
	if ctx.Err() != nil {
		return exiting(st)
	}
	st.Phase, st.Err = Reporting, err
	return st
}

func (s *Session) report(ctx context.Context, st State) State {
	question := promptAgain
	if st.Err == nil {
		s.ok.Fprintf(s.out, msgDone+"\n", st.OutputDir)
	} else {
		s.set.Log.Error("session: %s failed: %v", st.URL, st.Err)
		s.fail.Fprintln(s.out, "\n"+Explain(st.Err))
		question = promptRetry
	}

	s.println(question)
	answer, err := s.ask(ctx, "")
	if err != nil || !yes(answer) {
		return exiting(st)
	}
	return prompting()
}

// prepareCookies runs the cookie step once per session and points st's
// configuration at the cookie file only if that file exists.
func (s *Session) prepareCookies(ctx context.Context, st State) State {
	if !s.cookiesHandled {
		s.cookiesHandled = true
		s.exportCookies(ctx, st.Platform)
	}
	path := ""
	if fileExists(s.set.Fs, s.set.CookieFile) {
		path = s.set.CookieFile
	}
	st.Options = st.Options.WithCookieFile(path)
	return st
}

func (s *Session) exportCookies(ctx context.Context, p platform.Platform) {
	switch s.set.CookieMode {
	case config.ModeNever:
		s.set.Log.Info("session: browser cookies disabled")
		return
	case config.ModeAsk:
		answer, err := s.ask(ctx, promptCookies)
		if err != nil {
			s.cookiesAborted = true
			return
		}
		if !yes(answer) {
			s.set.Log.Info("session: browser cookies declined")
			return
		}
	}

	s.println(msgCookies)
	domains := append(append([]string(nil), s.set.CookieDomains...), p.CookieDomains()...)
	res, err := cookies.Export(s.set.Fs, s.set.CookieFile, s.set.Sources, domains, s.set.Log)
	switch {
	case err != nil:
		s.set.Log.Warning("session: %v", err)
	case !res.Found:
		s.println(msgNoCookies)
	default:
		s.printf(msgCookiesFrom+"\n", res.Source)
	}
}

// ask prints question, if any, and reads one line.
func (s *Session) ask(ctx context.Context, question string) (string, error) {
	if question != "" {
		fmt.Fprint(s.out, question)
	}
	answer, err := s.in.ReadLine(ctx)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, ErrInterrupted) {
		s.set.Log.Error("session: reading input: %v", err)
	}
	return answer, err
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func yes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

func orUnknown(v string) string {
	if v == "" {
		return "Unknown"
	}
	return v
}

// formatSeconds prints whole seconds without a fraction.
func formatSeconds(sec float64) string {
	if sec == float64(int64(sec)) {
		return fmt.Sprintf("%d", int64(sec))
	}
	return fmt.Sprintf("%.1f", sec)
}
