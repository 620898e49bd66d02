package cookies

import (
	"errors"
	"fmt"

	"github.com/warpdl/unduh/pkg/logger"
)

// BrowserSource reads cookies from one installed browser's default profile.
type BrowserSource struct {
	spec browserSpec
	log  logger.Logger
}

// Name returns the browser name.
func (b BrowserSource) Name() string { return b.spec.Name }

// Cookies reads the cookies for domains from the browser's store. It returns
// ErrNoStore when the browser has no cookie database on this machine.
func (b BrowserSource) Cookies(domains []string) ([]Cookie, error) {
	path, ok := b.spec.storePath()
	if !ok {
		return nil, fmt.Errorf("%s: %w", b.spec.Name, ErrNoStore)
	}
	cookies, _, err := ReadStore(path, domains, b.log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.spec.Name, err)
	}
	return cookies, nil
}

// FileSource reads cookies from an existing cookie file or database, in any
// format DetectFormat recognises.
type FileSource struct {
	Path string
	Log  logger.Logger
}

// Name returns the file path.
func (f FileSource) Name() string { return f.Path }

// Cookies reads the cookies for domains from the file. A missing file is
// reported as ErrNoStore.
func (f FileSource) Cookies(domains []string) ([]Cookie, error) {
	if err := checkStoreFile(f.Path); err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, ErrNoStore)
	}
	cookies, _, err := ReadStore(f.Path, domains, f.Log)
	return cookies, err
}

// DefaultSources returns one BrowserSource per known browser. With no names
// the order is Chrome, Firefox, Chromium, Edge, Brave, LibreWolf; otherwise
// only the named browsers are returned, in the order given.
func DefaultSources(names []string) []Source {
	return Sources(nil, names, nil)
}

// Sources returns one FileSource per entry of files, in order, followed by
// the browser sources DefaultSources would return for browsers. Every
// source logs parse warnings to l.
func Sources(files, browsers []string, l logger.Logger) []Source {
	specs := specsByName(getBrowserCookiePaths(), browsers)
	sources := make([]Source, 0, len(files)+len(specs))
	for _, f := range files {
		if f == "" {
			continue
		}
		sources = append(sources, FileSource{Path: f, Log: l})
	}
	for _, spec := range specs {
		sources = append(sources, BrowserSource{spec: spec, log: l})
	}
	return sources
}

// SourceNames lists the names of sources, for messages.
func SourceNames(sources []Source) []string {
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.Name()
	}
	return names
}

// Collect tries sources in order and returns the cookies of the first one
// whose store could be read, even when it holds no matching cookies.
// Sources without a store are skipped quietly; unreadable stores are logged
// as warnings and skipped. When no source succeeds the Result has Found false.
func Collect(sources []Source, domains []string, log logger.Logger) Result {
	if log == nil {
		log = logger.NewNopLogger()
	}
	for _, src := range sources {
		cookies, err := src.Cookies(domains)
		switch {
		case errors.Is(err, ErrNoStore):
			log.Info("cookies: no store for %s", src.Name())
			continue
		case err != nil:
			log.Warning("cookies: skipping %s: %v", src.Name(), err)
			continue
		}
		log.Info("cookies: read %d cookie(s) from %s", len(cookies), src.Name())
		return Result{Cookies: cookies, Source: src.Name(), Found: true}
	}
	log.Info("cookies: no browser cookie store available")
	return Result{}
}
