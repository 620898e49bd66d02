package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/vbauerster/mpb/v8"
	"golang.org/x/term"

	cmdcommon "github.com/warpdl/unduh/cmd/common"
	"github.com/warpdl/unduh/internal/session"
	"github.com/warpdl/unduh/internal/ytdl"
)

// progressFactory draws bars when out is a terminal and prints plain lines
// otherwise.
func progressFactory(out io.Writer) session.ProgressFactory {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return func(string) session.ProgressSink { return newBarSink(out) }
	}
	return func(string) session.ProgressSink { return newTextSink(out) }
}

// barSink shows one mpb bar per file yt-dlp writes.
type barSink struct {
	p    *mpb.Progress
	bars []*mpb.Bar
	file string
	last time.Time
}

func newBarSink(out io.Writer) *barSink {
	return &barSink{p: mpb.New(mpb.WithOutput(out), mpb.WithWidth(40))}
}

func (b *barSink) current() *mpb.Bar {
	if len(b.bars) == 0 {
		return nil
	}
	return b.bars[len(b.bars)-1]
}

func (b *barSink) Update(pr ytdl.Progress) {
	name := displayName(pr)
	bar := b.current()
	if bar == nil || name != b.file {
		finishBar(bar)
		bar = cmdcommon.InitBar(b.p, name, pr.Total)
		b.bars = append(b.bars, bar)
		b.file = name
		b.last = time.Now()
	} else if pr.Total > 0 {
		bar.SetTotal(pr.Total, false)
	}
	now := time.Now()
	bar.EwmaSetCurrent(pr.Downloaded, now.Sub(b.last))
	b.last = now
	if pr.Finished {
		finishBar(bar)
	}
}

// Done settles every bar so that Wait returns: bars are aborted when the
// download failed and completed at their current size otherwise.
func (b *barSink) Done(err error) {
	for _, bar := range b.bars {
		if err != nil {
			bar.Abort(false)
		} else {
			finishBar(bar)
		}
	}
	b.p.Wait()
}

func finishBar(bar *mpb.Bar) {
	if bar != nil && !bar.Completed() {
		bar.SetTotal(-1, true)
	}
}

// textSink prints a line every ten percent and when a file is finished.
type textSink struct {
	out      io.Writer
	file     string
	bucket   int
	finished bool
}

func newTextSink(out io.Writer) *textSink {
	return &textSink{out: out, bucket: -1}
}

func (t *textSink) Update(pr ytdl.Progress) {
	name := displayName(pr)
	if name != t.file {
		t.file, t.bucket, t.finished = name, -1, false
	}
	if t.finished {
		return
	}
	if pr.Finished {
		fmt.Fprintf(t.out, "Finished: %s (%s)\n", name, humanize.IBytes(uint64(pr.Downloaded)))
		t.finished = true
		return
	}
	pct := pr.Percent()
	if pct < 0 {
		return
	}
	bucket := int(pct / 10)
	if bucket <= t.bucket {
		return
	}
	t.bucket = bucket
	fmt.Fprintln(t.out, progressLine(pr, time.Now()))
}

func (t *textSink) Done(error) {}

// progressLine renders percent, size, speed and ETA.
func progressLine(pr ytdl.Progress, now time.Time) string {
	line := fmt.Sprintf("%5.1f%% of %s", pr.Percent(), humanize.IBytes(uint64(pr.Total)))
	if speed := pr.Speed(now); speed > 0 {
		line += fmt.Sprintf(" at %s/s", humanize.IBytes(uint64(speed)))
	}
	if pr.ETA > 0 {
		line += fmt.Sprintf(" ETA %s", pr.ETA.Round(time.Second))
	}
	return line
}

func displayName(pr ytdl.Progress) string {
	switch {
	case pr.Filename != "":
		return filepath.Base(pr.Filename)
	case pr.Title != "":
		return pr.Title
	}
	return "media"
}
