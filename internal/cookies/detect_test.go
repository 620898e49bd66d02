package cookies

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func TestDetectFormat(t *testing.T) {
	writeFile := func(t *testing.T, name, content string) string {
		t.Helper()
		p := filepath.Join(t.TempDir(), name)
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		return p
	}

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		want    CookieFormat
		wantErr bool
	}{
		{
			name: "firefox sqlite",
			path: func(t *testing.T) string { return createFirefoxFixture(t, t.TempDir(), nil) },
			want: FormatFirefox,
		},
		{
			name: "chrome sqlite",
			path: func(t *testing.T) string { return createChromeFixture(t, t.TempDir(), nil) },
			want: FormatChrome,
		},
		{
			name: "netscape header",
			path: func(t *testing.T) string {
				return writeFile(t, "cookies.txt", "# Netscape HTTP Cookie File\n.youtube.com\tTRUE\t/\tFALSE\t0\tsid\tabc\n")
			},
			want: FormatNetscape,
		},
		{
			name: "alternate netscape header with CRLF",
			path: func(t *testing.T) string {
				return writeFile(t, "cookies.txt", "# HTTP Cookie File\r\n")
			},
			want: FormatNetscape,
		},
		{
			name:    "empty file",
			path:    func(t *testing.T) string { return writeFile(t, "empty", "") },
			wantErr: true,
		},
		{
			name:    "unknown text",
			path:    func(t *testing.T) string { return writeFile(t, "random.bin", "this is not a cookie file at all") },
			wantErr: true,
		},
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing") },
			wantErr: true,
		},
		{
			name:    "directory",
			path:    func(t *testing.T) string { return t.TempDir() },
			wantErr: true,
		},
		{
			name: "sqlite with unknown schema",
			path: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "unknown.sqlite")
				db, err := sql.Open("sqlite", p)
				if err != nil {
					t.Fatalf("failed to open sqlite: %v", err)
				}
				defer db.Close()
				if _, err := db.Exec(`CREATE TABLE some_other_table (id INTEGER PRIMARY KEY, data TEXT)`); err != nil {
					t.Fatalf("failed to create table: %v", err)
				}
				return p
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DetectFormat(tc.path(t))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got format %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestCookieFormat_String(t *testing.T) {
	tests := map[CookieFormat]string{
		FormatFirefox:  "firefox",
		FormatChrome:   "chrome",
		FormatNetscape: "netscape",
		FormatUnknown:  "unknown",
	}
	for f, want := range tests {
		if got := f.String(); got != want {
			t.Errorf("CookieFormat(%d).String() = %q, want %q", int(f), got, want)
		}
	}
}

func TestReadStore_AllFormats(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	domains := []string{".youtube.com", ".instagram.com"}

	ff := createFirefoxFixture(t, t.TempDir(), []firefoxRow{
		{"SID", "a", ".youtube.com", "/", future.Unix(), 0, 0},
		{"sessionid", "b", ".instagram.com", "/", future.Unix(), 1, 1},
		{"other", "c", ".example.com", "/", future.Unix(), 0, 0},
	})
	ch := createChromeFixture(t, t.TempDir(), []chromeRow{
		{"SID", "a", nil, ".youtube.com", "/", unixToChrome(future.Unix()), 0, 0},
	})
	ns := writeNetscapeFile(t, t.TempDir(), NetscapeHeader+"\n"+
		FormatNetscapeLine(Cookie{Name: "SID", Value: "a", Domain: ".youtube.com", Path: "/", Expiry: future})+"\n"+
		FormatNetscapeLine(Cookie{Name: "SID", Value: "a", Domain: ".youtube.com", Path: "/", Expiry: future})+"\n")

	tests := []struct {
		path       string
		wantFormat CookieFormat
		wantCount  int
	}{
		{ff, FormatFirefox, 2},
		{ch, FormatChrome, 1},
		{ns, FormatNetscape, 1},
	}
	for _, tc := range tests {
		t.Run(tc.wantFormat.String(), func(t *testing.T) {
			cookies, format, err := ReadStore(tc.path, domains, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if format != tc.wantFormat {
				t.Errorf("expected format %s, got %s", tc.wantFormat, format)
			}
			if len(cookies) != tc.wantCount {
				t.Errorf("expected %d cookies, got %d", tc.wantCount, len(cookies))
			}
		})
	}
}

func TestNormalizeDomains(t *testing.T) {
	got := normalizeDomains([]string{".YouTube.com", "youtube.com", " ", "", ".instagram.com "})
	want := []string{"youtube.com", "instagram.com"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestMatchesAny(t *testing.T) {
	domains := normalizeDomains([]string{".youtube.com"})
	tests := map[string]bool{
		"youtube.com":        true,
		".youtube.com":       true,
		"www.youtube.com":    true,
		"WWW.YOUTUBE.COM":    true,
		"notyoutube.com":     false,
		"youtube.com.evil":   false,
		".music.youtube.com": true,
	}
	for domain, want := range tests {
		if got := matchesAny(domain, domains); got != want {
			t.Errorf("matchesAny(%q) = %v, want %v", domain, got, want)
		}
	}
}
