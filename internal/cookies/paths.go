package cookies

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// browserSpec lists where one browser keeps its cookie database.
type browserSpec struct {
	Name string
	// CookiePaths are direct database candidates (Chromium family).
	CookiePaths []string
	// ProfilesIniPaths locate the default profile (Firefox family).
	ProfilesIniPaths []string
}

// parseProfilesIni parses a Firefox-style profiles.ini file and returns the
// absolute path to the default profile directory.
//
// Priority:
//  1. [Install*] section Default= key — used by modern Firefox
//  2. [Profile*] section with Default=1 — fallback for older profiles
//
// Returns an empty string (no error) if the file does not exist, cannot be
// read, or contains no identifiable default profile.
func parseProfilesIni(iniPath string) string {
	f, err := os.Open(iniPath)
	if err != nil {
		return ""
	}
	defer f.Close()

	iniDir := filepath.Dir(iniPath)

	var installDefault string
	var profileDefault string
	var inInstallSection bool
	var inProfileSection bool
	var currentPath string
	var currentIsDefault bool

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			// Flush previous Profile section if it had Default=1.
			if inProfileSection && currentIsDefault && profileDefault == "" {
				profileDefault = currentPath
			}
			sectionName := strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			inInstallSection = strings.HasPrefix(sectionName, "Install")
			inProfileSection = strings.HasPrefix(sectionName, "Profile")
			currentPath = ""
			currentIsDefault = false
			continue
		}
		k, v, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key := strings.TrimSpace(k)
		val := strings.TrimSpace(v)
		if inInstallSection && key == "Default" && installDefault == "" {
			installDefault = filepath.Join(iniDir, filepath.FromSlash(val))
		}
		if inProfileSection {
			if key == "Path" {
				currentPath = filepath.Join(iniDir, filepath.FromSlash(val))
			}
			if key == "Default" && val == "1" {
				currentIsDefault = true
			}
		}
	}
	// Flush the last section.
	if inProfileSection && currentIsDefault && profileDefault == "" {
		profileDefault = currentPath
	}

	if installDefault != "" {
		return installDefault
	}
	return profileDefault
}

// storePath returns the first cookie database of spec that exists on disk.
// Firefox-family specs resolve the default profile through profiles.ini.
func (spec browserSpec) storePath() (string, bool) {
	candidates := append([]string(nil), spec.CookiePaths...)
	for _, iniPath := range spec.ProfilesIniPaths {
		if profileDir := parseProfilesIni(iniPath); profileDir != "" {
			candidates = append(candidates, filepath.Join(profileDir, "cookies.sqlite"))
		}
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// specsByName picks specs by browser name, case-insensitively, in the order
// of names. Unknown names are skipped. An empty names list returns specs.
func specsByName(specs []browserSpec, names []string) []browserSpec {
	if len(names) == 0 {
		return specs
	}
	var out []browserSpec
	for _, n := range names {
		for _, spec := range specs {
			if strings.EqualFold(spec.Name, strings.TrimSpace(n)) {
				out = append(out, spec)
				break
			}
		}
	}
	return out
}

// chromiumSpec builds a Chromium-family spec for a profile directory. Newer
// releases keep the database under Network/.
func chromiumSpec(name, profileDir string) browserSpec {
	return browserSpec{
		Name: name,
		CookiePaths: []string{
			filepath.Join(profileDir, "Network", "Cookies"),
			filepath.Join(profileDir, "Cookies"),
		},
	}
}
