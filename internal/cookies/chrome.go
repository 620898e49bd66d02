package cookies

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// chromeEpochOffsetSeconds is the number of seconds between the Windows NT epoch
// (1601-01-01 00:00:00 UTC) and the Unix epoch (1970-01-01 00:00:00 UTC).
const chromeEpochOffsetSeconds int64 = 11_644_473_600

// chromeToUnix converts a Chrome timestamp (microseconds since 1601-01-01)
// to a Unix timestamp (seconds since 1970-01-01).
func chromeToUnix(chromeUSec int64) int64 {
	return (chromeUSec / 1_000_000) - chromeEpochOffsetSeconds
}

// ParseChrome reads cookies for domains from a Chromium-family Cookies SQLite
// file. Encrypted cookies (empty value column) and expired cookies are
// skipped; session cookies (expires_utc = 0) are kept.
// The dbPath should point at a copy, not the database the browser holds open.
func ParseChrome(dbPath string, domains []string) ([]Cookie, error) {
	where, args := domainClause("host_key", domains)
	if where == "" {
		return nil, nil
	}

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?immutable=1", dbPath))
	if err != nil {
		return nil, fmt.Errorf("error: cannot open Chrome cookie database: %w", err)
	}
	defer db.Close()

	nowChrome := (time.Now().Unix() + chromeEpochOffsetSeconds) * 1_000_000
	args = append(args, nowChrome)

	rows, err := db.Query(`
        SELECT name, value, host_key, path, expires_utc, is_secure, is_httponly
        FROM cookies
        WHERE (`+where+`)
          AND value != ''
          AND (expires_utc = 0 OR expires_utc > ?)
        ORDER BY host_key ASC, path DESC, name ASC
    `, args...)
	if err != nil {
		return nil, fmt.Errorf("error: failed to query Chrome cookies: %w", err)
	}
	defer rows.Close()

	var cookies []Cookie
	for rows.Next() {
		var (
			name, value, hostKey, path string
			expiresUTC                 int64
			isSecure, isHttpOnly       int
		)
		if err := rows.Scan(&name, &value, &hostKey, &path, &expiresUTC, &isSecure, &isHttpOnly); err != nil {
			return nil, fmt.Errorf("error: failed to scan Chrome cookie row: %w", err)
		}
		var expiry time.Time
		if expiresUTC != 0 {
			expiry = time.Unix(chromeToUnix(expiresUTC), 0)
		}
		cookies = append(cookies, Cookie{
			Name:     name,
			Value:    value,
			Domain:   hostKey,
			Path:     path,
			Expiry:   expiry,
			Secure:   isSecure != 0,
			HttpOnly: isHttpOnly != 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error: failed to iterate Chrome cookie rows: %w", err)
	}

	return cookies, nil
}
