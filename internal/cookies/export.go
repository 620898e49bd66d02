package cookies

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/warpdl/unduh/pkg/logger"
)

// DefaultFile is the cookie file yt-dlp is pointed at.
const DefaultFile = "cookies.txt"

// Export collects cookies for domains from sources and writes them to path
// on fs in Netscape format, replacing any previous file. The file is written
// even when no source had a store, in which case it holds only the header.
// Errors are returned only when the file itself cannot be written.
func Export(fs afero.Fs, path string, sources []Source, domains []string, log logger.Logger) (Result, error) {
	res := Collect(sources, domains, log)

	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return res, fmt.Errorf("error: cannot create cookie file %s: %w", path, err)
	}
	if err := WriteNetscape(f, res.Cookies); err != nil {
		f.Close()
		return res, fmt.Errorf("error: cannot write cookie file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return res, fmt.Errorf("error: cannot write cookie file %s: %w", path, err)
	}
	return res, nil
}
