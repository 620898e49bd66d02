package cmd

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/urfave/cli"

	cmdcommon "github.com/warpdl/unduh/cmd/common"
	"github.com/warpdl/unduh/internal/config"
	"github.com/warpdl/unduh/internal/cookies"
	"github.com/warpdl/unduh/internal/ytdl"
	"github.com/warpdl/unduh/pkg/logger"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	cli.OsExiter = func(int) {}
	os.Exit(m.Run())
}

const testConfig = "/home/user/.config/unduh/config.yml"

type fakeDelegate struct {
	cfg       *config.Config
	progress  []ytdl.Progress
	err       error
	downloads []ytdl.Options
}

func (f *fakeDelegate) Info(ctx context.Context, url string, opts ytdl.Options) (*ytdl.Info, error) {
	return &ytdl.Info{Title: "clip", Type: "video"}, nil
}

func (f *fakeDelegate) Download(ctx context.Context, url string, opts ytdl.Options) error {
	f.downloads = append(f.downloads, opts)
	for _, p := range f.progress {
		if opts.Progress != nil {
			opts.Progress(p)
		}
	}
	return f.err
}

type fakeSource struct {
	cookies []cookies.Cookie
	domains []string
}

func (f *fakeSource) Name() string { return "Fake" }

func (f *fakeSource) Cookies(domains []string) ([]cookies.Cookie, error) {
	f.domains = domains
	if f.cookies == nil {
		return nil, cookies.ErrNoStore
	}
	return f.cookies, nil
}

// testEnv swaps the command's filesystem, streams, delegate and cookie
// sources for the duration of a test.
type testEnv struct {
	fs       afero.Fs
	out      *bytes.Buffer
	errOut   *bytes.Buffer
	msgs     *bytes.Buffer
	delegate *fakeDelegate
	source   *fakeSource
}

func newTestEnv(t *testing.T, input string) *testEnv {
	t.Helper()
	env := &testEnv{
		fs:       afero.NewMemMapFs(),
		out:      &bytes.Buffer{},
		errOut:   &bytes.Buffer{},
		msgs:     &bytes.Buffer{},
		delegate: &fakeDelegate{},
		source:   &fakeSource{},
	}

	oldFs, oldIn, oldOut, oldErr := appFs, stdin, stdout, stderr
	oldDelegate, oldSources, oldMsgs := newDelegate, newSources, cmdcommon.Out
	t.Cleanup(func() {
		appFs, stdin, stdout, stderr = oldFs, oldIn, oldOut, oldErr
		newDelegate, newSources, cmdcommon.Out = oldDelegate, oldSources, oldMsgs
	})

	appFs = env.fs
	stdin = bytes.NewBufferString(input)
	stdout = env.out
	stderr = env.errOut
	cmdcommon.Out = env.msgs
	newDelegate = func(cfg *config.Config, _ logger.Logger) ytdl.Delegate {
		env.delegate.cfg = cfg
		return env.delegate
	}
	newSources = func(*config.Config, logger.Logger) []cookies.Source { return []cookies.Source{env.source} }
	return env
}

func (e *testEnv) run(t *testing.T, args ...string) error {
	t.Helper()
	return newApp(BuildArgs{Version: "1.0.0", BuildType: "test"}).Run(append([]string{"unduh", "--config", testConfig}, args...))
}

func (e *testEnv) writeConfig(t *testing.T, body string) {
	t.Helper()
	if err := afero.WriteFile(e.fs, testConfig, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}
