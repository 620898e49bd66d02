package cookies

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/warpdl/unduh/pkg/logger"
)

// fakeSource is a Source with canned results.
type fakeSource struct {
	name    string
	cookies []Cookie
	err     error
	calls   int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Cookies(domains []string) ([]Cookie, error) {
	f.calls++
	return f.cookies, f.err
}

func TestCollect(t *testing.T) {
	sid := Cookie{Name: "SID", Value: "secret-value", Domain: ".youtube.com", Path: "/"}

	tests := []struct {
		name       string
		sources    []*fakeSource
		wantFound  bool
		wantSource string
		wantCount  int
		wantCalls  []int
	}{
		{
			name: "first source wins",
			sources: []*fakeSource{
				{name: "Chrome", cookies: []Cookie{sid}},
				{name: "Firefox", cookies: []Cookie{sid, sid}},
			},
			wantFound:  true,
			wantSource: "Chrome",
			wantCount:  1,
			wantCalls:  []int{1, 0},
		},
		{
			name: "missing store falls through",
			sources: []*fakeSource{
				{name: "Chrome", err: fmt.Errorf("Chrome: %w", ErrNoStore)},
				{name: "Firefox", cookies: []Cookie{sid}},
			},
			wantFound:  true,
			wantSource: "Firefox",
			wantCount:  1,
			wantCalls:  []int{1, 1},
		},
		{
			name: "unreadable store falls through",
			sources: []*fakeSource{
				{name: "Chrome", err: errors.New("database is locked")},
				{name: "Firefox", cookies: []Cookie{sid}},
			},
			wantFound:  true,
			wantSource: "Firefox",
			wantCount:  1,
			wantCalls:  []int{1, 1},
		},
		{
			name: "empty store still wins",
			sources: []*fakeSource{
				{name: "Chrome"},
				{name: "Firefox", cookies: []Cookie{sid}},
			},
			wantFound:  true,
			wantSource: "Chrome",
			wantCount:  0,
			wantCalls:  []int{1, 0},
		},
		{
			name: "no store anywhere",
			sources: []*fakeSource{
				{name: "Chrome", err: ErrNoStore},
				{name: "Firefox", err: ErrNoStore},
			},
			wantCalls: []int{1, 1},
		},
		{
			name: "no sources",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sources := make([]Source, len(tc.sources))
			for i, s := range tc.sources {
				sources[i] = s
			}
			log := logger.NewMockLogger()

			res := Collect(sources, []string{".youtube.com"}, log)

			if res.Found != tc.wantFound {
				t.Errorf("Found = %v, want %v", res.Found, tc.wantFound)
			}
			if res.Source != tc.wantSource {
				t.Errorf("Source = %q, want %q", res.Source, tc.wantSource)
			}
			if len(res.Cookies) != tc.wantCount {
				t.Errorf("expected %d cookies, got %d", tc.wantCount, len(res.Cookies))
			}
			for i, want := range tc.wantCalls {
				if tc.sources[i].calls != want {
					t.Errorf("source %s called %d times, want %d", tc.sources[i].name, tc.sources[i].calls, want)
				}
			}
			for _, msg := range append(append(log.InfoCalls, log.WarningCalls...), log.ErrorCalls...) {
				if strings.Contains(msg, "secret-value") {
					t.Errorf("cookie value leaked into log: %q", msg)
				}
			}
		})
	}
}

func TestCollect_NilLogger(t *testing.T) {
	res := Collect([]Source{&fakeSource{name: "Chrome", err: ErrNoStore}}, []string{".youtube.com"}, nil)
	if res.Found {
		t.Error("expected Found=false")
	}
}

func TestCollect_LogsUnreadableStoreAsWarning(t *testing.T) {
	log := logger.NewMockLogger()
	Collect([]Source{&fakeSource{name: "Edge", err: errors.New("locked")}}, nil, log)
	if len(log.WarningCalls) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(log.WarningCalls))
	}
	if !strings.Contains(log.WarningCalls[0], "Edge") {
		t.Errorf("warning should name the source, got %q", log.WarningCalls[0])
	}
}

func TestBrowserSource(t *testing.T) {
	dir := t.TempDir()
	spec := chromiumSpec("Chrome", filepath.Join(dir, "Default"))
	src := BrowserSource{spec: spec}

	if src.Name() != "Chrome" {
		t.Errorf("Name() = %q", src.Name())
	}
	if _, err := src.Cookies([]string{".youtube.com"}); !errors.Is(err, ErrNoStore) {
		t.Fatalf("expected ErrNoStore, got %v", err)
	}

	future := unixToChrome(time.Now().Add(time.Hour).Unix())
	if err := os.MkdirAll(filepath.Join(dir, "Default", "Network"), 0o755); err != nil {
		t.Fatal(err)
	}
	createChromeFixture(t, filepath.Join(dir, "Default", "Network"), []chromeRow{
		{"SID", "abc", nil, ".youtube.com", "/", future, 1, 1},
		{"ig", "def", nil, ".instagram.com", "/", future, 0, 0},
	})

	cookies, err := src.Cookies([]string{".youtube.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCookieNames(t, cookies, []string{"SID"})
}

func TestFileSource(t *testing.T) {
	missing := FileSource{Path: filepath.Join(t.TempDir(), "cookies.txt")}
	if _, err := missing.Cookies([]string{".youtube.com"}); !errors.Is(err, ErrNoStore) {
		t.Fatalf("expected ErrNoStore, got %v", err)
	}

	path := writeNetscapeFile(t, t.TempDir(), NetscapeHeader+"\n.youtube.com\tTRUE\t/\tFALSE\t0\tSID\tabc\n")
	src := FileSource{Path: path}
	if src.Name() != path {
		t.Errorf("Name() = %q, want %q", src.Name(), path)
	}
	cookies, err := src.Cookies([]string{".youtube.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCookieNames(t, cookies, []string{"SID"})
}

func TestSources_FilesFirst(t *testing.T) {
	got := Sources([]string{"/a/cookies.txt", "", "/b/cookies.sqlite"}, []string{"firefox"}, nil)
	names := SourceNames(got)
	if len(names) < 2 || names[0] != "/a/cookies.txt" || names[1] != "/b/cookies.sqlite" {
		t.Fatalf("expected the files first, got %v", names)
	}
	if len(names) > 3 || (len(names) == 3 && names[2] != "Firefox") {
		t.Errorf("expected only Firefox after the files, got %v", names)
	}
	if _, ok := got[0].(FileSource); !ok {
		t.Errorf("expected a FileSource, got %T", got[0])
	}
}

func TestSources_FileWinsOverBrowsers(t *testing.T) {
	path := writeNetscapeFile(t, t.TempDir(),
		NetscapeHeader+"\n.youtube.com\tTRUE\t/\tFALSE\t0\tSID\tabc\nbroken line\n")
	log := logger.NewMockLogger()
	res := Collect(Sources([]string{path}, nil, log), []string{".youtube.com"}, log)
	if !res.Found || res.Source != path {
		t.Fatalf("expected cookies from %s, got %+v", path, res)
	}
	assertCookieNames(t, res.Cookies, []string{"SID"})
	if len(log.WarningCalls) != 1 || !strings.Contains(log.WarningCalls[0], "line 3") {
		t.Errorf("expected the malformed line to be logged, got %v", log.WarningCalls)
	}
}

func TestDefaultSources_Filter(t *testing.T) {
	all := SourceNames(DefaultSources(nil))
	if len(all) == 0 {
		t.Skip("no home directory available")
	}
	if all[0] != "Chrome" || all[1] != "Firefox" {
		t.Errorf("expected Chrome then Firefox first, got %v", all)
	}

	got := SourceNames(DefaultSources([]string{"firefox"}))
	if len(got) != 1 || got[0] != "Firefox" {
		t.Errorf("expected [Firefox], got %v", got)
	}
}
