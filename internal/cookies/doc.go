// Package cookies exports login cookies from a local browser into the
// Netscape cookie file that yt-dlp reads.
//
// Browser stores are tried through an ordered list of Sources. A Source whose
// store is missing reports ErrNoStore and the next one is tried; running out
// of sources is not an error but an explicit Result with Found set to false.
// Chromium-family stores are read from their SQLite "cookies" table
// (unencrypted values only), Firefox-family stores from moz_cookies.
//
// Cookie values are never logged. Only names, domains and the source browser
// may appear in diagnostics.
package cookies
