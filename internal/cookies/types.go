package cookies

import (
	"errors"
	"time"
)

// ErrNoStore is returned by a Source whose browser cookie store does not exist
// on this machine.
var ErrNoStore = errors.New("cookie store not found")

// CookieFormat identifies the format of a cookie store file.
type CookieFormat int

const (
	// FormatUnknown means the cookie store format could not be detected.
	FormatUnknown CookieFormat = 0
	// FormatFirefox means the store uses the Firefox moz_cookies SQLite schema.
	FormatFirefox CookieFormat = 1
	// FormatChrome means the store uses the Chromium cookies SQLite schema.
	// Only unencrypted cookies (value != '') are usable.
	FormatChrome CookieFormat = 2
	// FormatNetscape means the store uses the Netscape tab-separated text format.
	FormatNetscape CookieFormat = 3
)

func (f CookieFormat) String() string {
	switch f {
	case FormatFirefox:
		return "firefox"
	case FormatChrome:
		return "chrome"
	case FormatNetscape:
		return "netscape"
	}
	return "unknown"
}

// Cookie represents a single HTTP cookie read from a cookie store.
// Value is SENSITIVE and must never be logged or put into error messages.
type Cookie struct {
	Name  string
	Value string
	// Domain may have a leading dot for subdomain-inclusive cookies.
	Domain string
	Path   string
	// Expiry is the zero time for session cookies.
	Expiry   time.Time
	Secure   bool
	HttpOnly bool
}

// Source is one place cookies can be read from, such as a browser profile.
type Source interface {
	// Name is the display name of the source (e.g., "Chrome").
	Name() string
	// Cookies returns the cookies belonging to any of domains. It returns
	// ErrNoStore (possibly wrapped) when the store does not exist.
	Cookies(domains []string) ([]Cookie, error)
}

// Result is the outcome of trying an ordered list of sources.
type Result struct {
	Cookies []Cookie
	// Source names the source that supplied the cookies; empty when none did.
	Source string
	// Found reports whether any source had a readable store. A store without
	// matching cookies still counts as found.
	Found bool
}
