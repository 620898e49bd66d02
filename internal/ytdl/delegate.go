package ytdl

import (
	"context"
	"time"
)

// Delegate extracts and downloads media. The session talks to yt-dlp only
// through this interface.
type Delegate interface {
	// Info fetches metadata for url without downloading anything.
	Info(ctx context.Context, url string, opts Options) (*Info, error)
	// Download fetches the media at url as configured by opts.
	Download(ctx context.Context, url string, opts Options) error
}

// Info is the metadata shown before a download is confirmed.
type Info struct {
	Title string
	// Duration is zero when the extractor did not report one.
	Duration time.Duration
	// Type is yt-dlp's _type, e.g. "video" or "playlist".
	Type string
}

// Progress is one progress report for the file being downloaded.
type Progress struct {
	Filename   string
	Title      string
	Downloaded int64
	// Total is zero while the size is unknown.
	Total    int64
	ETA      time.Duration
	Started  time.Time
	Finished bool
}

// Percent returns the completed share in [0, 100], or -1 if the total size
// is unknown.
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return -1
	}
	pct := float64(p.Downloaded) / float64(p.Total) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Speed returns the average transfer rate in bytes per second since Started.
func (p Progress) Speed(now time.Time) float64 {
	if p.Started.IsZero() {
		return 0
	}
	elapsed := now.Sub(p.Started).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(p.Downloaded) / elapsed
}
