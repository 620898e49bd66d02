// Package platform infers which social-media site a URL belongs to.
//
// Detection is a plain substring match on the lower-cased host. It never
// fails: anything that cannot be parsed or matched is reported as Unknown and
// left for yt-dlp to reject at extraction time.
package platform

import (
	"net/url"
	"strings"
)

// Platform identifies a supported social-media site.
type Platform int

const (
	Unknown Platform = iota
	YouTube
	Instagram
	Twitter
	Facebook
	TikTok
)

var names = map[Platform]string{
	Unknown:   "Unknown",
	YouTube:   "YouTube",
	Instagram: "Instagram",
	Twitter:   "Twitter",
	Facebook:  "Facebook",
	TikTok:    "TikTok",
}

func (p Platform) String() string {
	if n, ok := names[p]; ok {
		return n
	}
	return names[Unknown]
}

// hostRule maps a domain fragment to the platform it identifies.
type hostRule struct {
	fragment string
	platform Platform
}

// rules are checked in order; the first fragment contained in the host wins.
var rules = []hostRule{
	{"youtube.com", YouTube},
	{"youtu.be", YouTube},
	{"instagram.com", Instagram},
	{"twitter.com", Twitter},
	{"x.com", Twitter},
	{"facebook.com", Facebook},
	{"fb.com", Facebook},
	{"tiktok.com", TikTok},
}

// Detect returns the platform for rawURL, or Unknown.
func Detect(rawURL string) Platform {
	host := hostOf(rawURL)
	if host == "" {
		return Unknown
	}
	for _, r := range rules {
		if strings.Contains(host, r.fragment) {
			return r.platform
		}
	}
	return Unknown
}

// hostOf returns the lower-cased network location of rawURL (host and port).
// A URL typed without a scheme, such as "youtu.be/abc", is read as https.
func hostOf(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err == nil && u.Host == "" && !strings.Contains(rawURL, "://") {
		u, err = url.Parse("https://" + rawURL)
	}
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

// Supported lists the platforms that get dedicated handling, in banner order.
func Supported() []Platform {
	return []Platform{YouTube, Instagram, Twitter, Facebook, TikTok}
}

// SupportedNames joins the supported platform names for display.
func SupportedNames() string {
	list := Supported()
	parts := make([]string, len(list))
	for i, p := range list {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// CookieDomains returns the cookie domains that carry a login session for p.
// Platforms without one return nil.
func (p Platform) CookieDomains() []string {
	switch p {
	case YouTube:
		return []string{".youtube.com"}
	case Instagram:
		return []string{".instagram.com"}
	case Twitter:
		return []string{".twitter.com", ".x.com"}
	case Facebook:
		return []string{".facebook.com"}
	case TikTok:
		return []string{".tiktok.com"}
	}
	return nil
}
