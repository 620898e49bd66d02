package cookies

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/warpdl/unduh/pkg/logger"
)

// NetscapeHeader is the first line yt-dlp expects in a cookie file.
const NetscapeHeader = "# Netscape HTTP Cookie File"

const httpOnlyPrefix = "#HttpOnly_"

// ParseNetscape reads cookies for domains from a Netscape-format cookie file.
// Lines starting with # are skipped, except #HttpOnly_ which sets HttpOnly.
// Malformed lines are skipped with a warning to l naming only the line
// number. A nil l discards the warnings.
func ParseNetscape(filePath string, domains []string, l logger.Logger) ([]Cookie, error) {
	if l == nil {
		l = logger.NewNopLogger()
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error: cannot open Netscape cookie file: %w", err)
	}
	defer f.Close()

	want := normalizeDomains(domains)
	now := time.Now()
	var cookies []Cookie

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		httpOnly := false
		if strings.HasPrefix(line, httpOnlyPrefix) {
			httpOnly = true
			line = line[len(httpOnlyPrefix):]
		} else if strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 7 {
			l.Warning("cookies: skipping malformed cookie line %d in %s", lineNo, filePath)
			continue
		}
		expiry, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			l.Warning("cookies: skipping cookie with invalid expiry on line %d in %s", lineNo, filePath)
			continue
		}
		if !matchesAny(fields[0], want) {
			continue
		}

		c := Cookie{
			Name:     fields[5],
			Value:    fields[6],
			Domain:   fields[0],
			Path:     fields[2],
			Secure:   strings.EqualFold(fields[3], "TRUE"),
			HttpOnly: httpOnly,
		}
		if expiry > 0 {
			c.Expiry = time.Unix(expiry, 0)
			if c.Expiry.Before(now) {
				continue
			}
		}
		cookies = append(cookies, c)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error: failed to read Netscape cookie file: %w", err)
	}

	return cookies, nil
}

// WriteNetscape writes the header line followed by one line per cookie:
// domain, include-subdomains flag, path, secure flag, expiry epoch, name, value.
// Session cookies are written with expiry 0.
func WriteNetscape(w io.Writer, cookies []Cookie) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, NetscapeHeader); err != nil {
		return err
	}
	for _, c := range cookies {
		if _, err := bw.WriteString(FormatNetscapeLine(c)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FormatNetscapeLine renders c as a single cookie-file line without newline.
func FormatNetscapeLine(c Cookie) string {
	var expiry int64
	if !c.Expiry.IsZero() {
		expiry = c.Expiry.Unix()
	}
	domain := c.Domain
	if c.HttpOnly {
		domain = httpOnlyPrefix + domain
	}
	path := c.Path
	if path == "" {
		path = "/"
	}
	return strings.Join([]string{
		domain,
		netscapeBool(strings.HasPrefix(c.Domain, ".")),
		path,
		netscapeBool(c.Secure),
		strconv.FormatInt(expiry, 10),
		c.Name,
		c.Value,
	}, "\t")
}

func netscapeBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
