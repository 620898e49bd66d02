package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/warpdl/unduh/internal/ytdl"
)

func TestProgressFactoryWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	sink := progressFactory(&buf)("https://youtu.be/abc")
	if _, ok := sink.(*textSink); !ok {
		t.Fatalf("expected text sink for a non-terminal writer, got %T", sink)
	}
}

func TestTextSink(t *testing.T) {
	var buf bytes.Buffer
	sink := newTextSink(&buf)
	for _, p := range []ytdl.Progress{
		{Filename: "/tmp/a.mp4", Downloaded: 0, Total: 1000},
		{Filename: "/tmp/a.mp4", Downloaded: 50, Total: 1000},
		{Filename: "/tmp/a.mp4", Downloaded: 150, Total: 1000},
		{Filename: "/tmp/a.mp4", Downloaded: 160, Total: 1000},
		{Filename: "/tmp/a.mp4", Downloaded: 1000, Total: 1000, Finished: true},
		{Filename: "/tmp/a.mp4", Downloaded: 1000, Total: 1000, Finished: true},
		{Filename: "/tmp/b.m4a", Downloaded: 10, Total: 0},
	} {
		sink.Update(p)
	}
	sink.Done(nil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"  0.0% of 1000 B",
		" 15.0% of 1000 B",
		"Finished: a.mp4 (1000 B)",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestProgressLine(t *testing.T) {
	now := time.Now()
	p := ytdl.Progress{
		Downloaded: 2048,
		Total:      4096,
		ETA:        1500 * time.Millisecond,
		Started:    now.Add(-2 * time.Second),
	}
	got := progressLine(p, now)
	if got != " 50.0% of 4.0 KiB at 1.0 KiB/s ETA 2s" {
		t.Errorf("progressLine() = %q", got)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		p    ytdl.Progress
		want string
	}{
		{ytdl.Progress{Filename: "downloads/clip.mp4", Title: "Clip"}, "clip.mp4"},
		{ytdl.Progress{Title: "Clip"}, "Clip"},
		{ytdl.Progress{}, "media"},
	}
	for _, tc := range tests {
		if got := displayName(tc.p); got != tc.want {
			t.Errorf("displayName(%+v) = %q, want %q", tc.p, got, tc.want)
		}
	}
}

// waitDone fails t when sink.Done(err) blocks.
func waitDone(t *testing.T, sink *barSink, err error) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		sink.Done(err)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Done did not return")
	}
}

func TestBarSink(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		updates []ytdl.Progress
	}{
		{"success", nil, []ytdl.Progress{
			{Filename: "a.mp4", Downloaded: 10, Total: 100},
			{Filename: "a.mp4", Downloaded: 60, Total: 100},
			{Filename: "b.m4a", Downloaded: 5},
		}},
		{"failure", errors.New("boom"), []ytdl.Progress{
			{Filename: "a.mp4", Downloaded: 10, Total: 100},
			{Filename: "b.m4a", Downloaded: 5},
		}},
		{"partial known size", nil, []ytdl.Progress{
			{Filename: "a.mp4", Downloaded: 40, Total: 100},
		}},
		{"partial known size failure", errors.New("boom"), []ytdl.Progress{
			{Filename: "a.mp4", Downloaded: 40, Total: 100},
		}},
		{"total grows", nil, []ytdl.Progress{
			{Filename: "a.mp4", Downloaded: 100, Total: 100},
			{Filename: "a.mp4", Downloaded: 150, Total: 300},
		}},
		{"finished then more files", nil, []ytdl.Progress{
			{Filename: "a.mp4", Downloaded: 100, Total: 100, Finished: true},
			{Filename: "a.mp4", Downloaded: 100, Total: 100, Finished: true},
			{Filename: "b.mp4", Downloaded: 20, Total: 200},
			{Filename: "c.m4a", Downloaded: 30, Total: 300},
		}},
		{"error after several files", errors.New("boom"), []ytdl.Progress{
			{Filename: "a.mp4", Downloaded: 100, Total: 100, Finished: true},
			{Filename: "b.mp4", Downloaded: 20, Total: 200},
			{Filename: "c.m4a", Downloaded: 30, Total: 300},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			sink := newBarSink(&buf)
			for _, p := range tc.updates {
				sink.Update(p)
			}
			waitDone(t, sink, tc.err)

			for i, bar := range sink.bars {
				if tc.err == nil && !bar.Completed() {
					t.Errorf("bar %d not completed", i)
				}
				if !bar.Completed() && !bar.Aborted() {
					t.Errorf("bar %d left running", i)
				}
			}
		})
	}
}

func TestBarSinkOneBarPerFile(t *testing.T) {
	var buf bytes.Buffer
	sink := newBarSink(&buf)
	sink.Update(ytdl.Progress{Filename: "a.mp4", Downloaded: 10, Total: 100})
	sink.Update(ytdl.Progress{Filename: "a.mp4", Downloaded: 50, Total: 100})
	sink.Update(ytdl.Progress{Filename: "b.mp4", Downloaded: 10, Total: 100})
	if len(sink.bars) != 2 {
		t.Fatalf("got %d bars, want 2", len(sink.bars))
	}
	waitDone(t, sink, nil)
}

func TestBarSinkNoUpdates(t *testing.T) {
	var buf bytes.Buffer
	waitDone(t, newBarSink(&buf), nil)
}
