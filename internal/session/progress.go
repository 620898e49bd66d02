package session

import "github.com/warpdl/unduh/internal/ytdl"

// ProgressSink displays the progress of one download.
type ProgressSink interface {
	Update(p ytdl.Progress)
	// Done is called once after the download returns, successful or not.
	Done(err error)
}

// ProgressFactory creates the sink for a download of url.
type ProgressFactory func(url string) ProgressSink

type nopSink struct{}

func (nopSink) Update(ytdl.Progress) {}
func (nopSink) Done(error)           {}
