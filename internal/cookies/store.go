package cookies

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/warpdl/unduh/pkg/logger"
)

// ReadStore reads the cookies for domains from the cookie store at path,
// whatever its format. SQLite stores are copied first so a running browser
// does not block the read.
func ReadStore(path string, domains []string, l logger.Logger) ([]Cookie, CookieFormat, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, FormatUnknown, err
	}

	var cookies []Cookie
	switch format {
	case FormatFirefox:
		cookies, err = readSQLite(path, domains, ParseFirefox)
	case FormatChrome:
		cookies, err = readSQLite(path, domains, ParseChrome)
	case FormatNetscape:
		cookies, err = ParseNetscape(path, domains, l)
	default:
		return nil, format, fmt.Errorf("error: unsupported cookie database schema at %s", path)
	}
	if err != nil {
		return nil, format, err
	}
	return dedupe(cookies), format, nil
}

// readSQLite copies a SQLite cookie file and parses the copy with parser.
func readSQLite(sourcePath string, domains []string, parser func(string, []string) ([]Cookie, error)) ([]Cookie, error) {
	tempDir, cleanup, err := SafeCopy(sourcePath)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return parser(filepath.Join(tempDir, filepath.Base(sourcePath)), domains)
}

// normalizeDomains lower-cases domains and strips their leading dot,
// dropping blanks and duplicates.
func normalizeDomains(domains []string) []string {
	seen := make(map[string]bool, len(domains))
	out := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(d)), ".")
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

// domainClause builds an SQL condition selecting rows whose column is one of
// domains, its dotted form, or any subdomain of it.
func domainClause(column string, domains []string) (string, []any) {
	var (
		parts []string
		args  []any
	)
	for _, d := range normalizeDomains(domains) {
		parts = append(parts, fmt.Sprintf("%[1]s = ? OR %[1]s = ? OR %[1]s LIKE ?", column))
		args = append(args, d, "."+d, "%."+d)
	}
	return strings.Join(parts, " OR "), args
}

// matchesAny reports whether cookieDomain is one of domains or a subdomain
// of one. domains must already be normalized.
func matchesAny(cookieDomain string, domains []string) bool {
	cookieDomain = strings.ToLower(cookieDomain)
	for _, d := range domains {
		if cookieDomain == d || cookieDomain == "."+d || strings.HasSuffix(cookieDomain, "."+d) {
			return true
		}
	}
	return false
}

// dedupe drops later cookies that repeat an earlier domain, path and name.
func dedupe(cookies []Cookie) []Cookie {
	if len(cookies) < 2 {
		return cookies
	}
	seen := make(map[string]bool, len(cookies))
	out := cookies[:0]
	for _, c := range cookies {
		key := c.Domain + "\t" + c.Path + "\t" + c.Name
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}
