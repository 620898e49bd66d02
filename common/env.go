// Package common holds names shared by the unduh command and its packages.
package common

// Environment variable names for configuration.
const (
	// DebugEnv enables diagnostic logging to stderr.
	DebugEnv = "UNDUH_DEBUG"

	// ConfigEnv overrides the config file location.
	ConfigEnv = "UNDUH_CONFIG"

	// DownloadPathEnv sets the default output directory.
	DownloadPathEnv = "UNDUH_DOWNLOAD_PATH"

	// CookieFileEnv sets the cookie file handed to yt-dlp.
	CookieFileEnv = "UNDUH_COOKIE_FILE"

	// BrowserCookiesEnv sets the browser cookie mode (ask, always, never).
	BrowserCookiesEnv = "UNDUH_BROWSER_COOKIES"

	// NoConfirmEnv skips the media info confirmation.
	NoConfirmEnv = "UNDUH_NO_CONFIRM"

	// CookiesFromEnv lists cookie files tried before the browsers,
	// separated by commas.
	CookiesFromEnv = "UNDUH_COOKIES_FROM"

	// YTDLPPathEnv points at a specific yt-dlp binary.
	YTDLPPathEnv = "UNDUH_YTDLP_PATH"
)
