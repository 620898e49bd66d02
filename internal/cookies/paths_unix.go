//go:build unix

package cookies

import (
	"os"
	"path/filepath"
	"runtime"
)

// getBrowserCookiePathsForHome returns browser specs rooted at homeDir, in
// default lookup order: Chrome, Firefox, Chromium, Edge, Brave, LibreWolf.
func getBrowserCookiePathsForHome(homeDir string) []browserSpec {
	if runtime.GOOS == "darwin" {
		support := filepath.Join(homeDir, "Library", "Application Support")
		return []browserSpec{
			chromiumSpec("Chrome", filepath.Join(support, "Google", "Chrome", "Default")),
			{Name: "Firefox", ProfilesIniPaths: []string{
				filepath.Join(support, "Firefox", "profiles.ini"),
			}},
			chromiumSpec("Chromium", filepath.Join(support, "Chromium", "Default")),
			chromiumSpec("Edge", filepath.Join(support, "Microsoft Edge", "Default")),
			chromiumSpec("Brave", filepath.Join(support, "BraveSoftware", "Brave-Browser", "Default")),
			{Name: "LibreWolf", ProfilesIniPaths: []string{
				filepath.Join(support, "librewolf", "profiles.ini"),
			}},
		}
	}

	config := filepath.Join(homeDir, ".config")
	return []browserSpec{
		chromiumSpec("Chrome", filepath.Join(config, "google-chrome", "Default")),
		{Name: "Firefox", ProfilesIniPaths: []string{
			filepath.Join(homeDir, ".mozilla", "firefox", "profiles.ini"),
			filepath.Join(homeDir, "snap", "firefox", "common", ".mozilla", "firefox", "profiles.ini"),
		}},
		chromiumSpec("Chromium", filepath.Join(config, "chromium", "Default")),
		chromiumSpec("Edge", filepath.Join(config, "microsoft-edge", "Default")),
		chromiumSpec("Brave", filepath.Join(config, "BraveSoftware", "Brave-Browser", "Default")),
		{Name: "LibreWolf", ProfilesIniPaths: []string{
			filepath.Join(homeDir, ".librewolf", "profiles.ini"),
		}},
	}
}

// getBrowserCookiePaths returns browser specs rooted at the real home directory.
func getBrowserCookiePaths() []browserSpec {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return getBrowserCookiePathsForHome(homeDir)
}
