//go:build windows

package cookies

import (
	"os"
	"path/filepath"
)

// getBrowserCookiePathsForEnv returns browser specs for the given
// LOCALAPPDATA and APPDATA values, in default lookup order.
func getBrowserCookiePathsForEnv(localAppData, appData string) []browserSpec {
	return []browserSpec{
		chromiumSpec("Chrome", filepath.Join(localAppData, "Google", "Chrome", "User Data", "Default")),
		{Name: "Firefox", ProfilesIniPaths: []string{
			filepath.Join(appData, "Mozilla", "Firefox", "profiles.ini"),
		}},
		chromiumSpec("Chromium", filepath.Join(localAppData, "Chromium", "User Data", "Default")),
		chromiumSpec("Edge", filepath.Join(localAppData, "Microsoft", "Edge", "User Data", "Default")),
		chromiumSpec("Brave", filepath.Join(localAppData, "BraveSoftware", "Brave-Browser", "User Data", "Default")),
		{Name: "LibreWolf", ProfilesIniPaths: []string{
			filepath.Join(appData, "LibreWolf", "profiles.ini"),
		}},
	}
}

// getBrowserCookiePaths returns browser specs from the real environment.
func getBrowserCookiePaths() []browserSpec {
	return getBrowserCookiePathsForEnv(os.Getenv("LOCALAPPDATA"), os.Getenv("APPDATA"))
}
