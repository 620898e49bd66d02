// Package config loads the optional unduh configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/warpdl/unduh/common"
	"github.com/warpdl/unduh/internal/cookies"
)

const (
	FileName   = "config.yml"
	AppDirName = "unduh"

	// DefaultOutputDir is used when neither the user nor the config names one.
	DefaultOutputDir = "downloads"
	// DefaultCookieFile is the cookie file handed to yt-dlp.
	DefaultCookieFile = cookies.DefaultFile
)

// ErrInvalidMode is returned for an unknown browser_cookies value.
var ErrInvalidMode = errors.New("invalid browser cookie mode")

// CookieMode says whether browser cookies may be read.
type CookieMode string

const (
	// ModeAsk asks once per session before the first browser read.
	ModeAsk CookieMode = "ask"
	// ModeAlways reads browser cookies without asking.
	ModeAlways CookieMode = "always"
	// ModeNever never touches the browser; an existing cookie file is still used.
	ModeNever CookieMode = "never"
)

// ParseMode parses s case-insensitively. An empty s means ModeAsk.
func ParseMode(s string) (CookieMode, error) {
	switch m := CookieMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAsk, nil
	case ModeAsk, ModeAlways, ModeNever:
		return m, nil
	}
	return "", fmt.Errorf("%w %q (want ask, always or never)", ErrInvalidMode, s)
}

// Config is the content of config.yml. Zero fields fall back to defaults.
type Config struct {
	// OutputDir is where media is saved when the user leaves the prompt empty.
	OutputDir string `yaml:"output_dir,omitempty"`

	// CookieFile is the Netscape cookie file passed to yt-dlp.
	CookieFile string `yaml:"cookie_file,omitempty"`

	// BrowserCookies is one of ask, always or never.
	BrowserCookies CookieMode `yaml:"browser_cookies,omitempty"`

	// ConfirmInfo shows media info and asks before downloading. Defaults to true.
	ConfirmInfo *bool `yaml:"confirm_info,omitempty"`

	// Browsers overrides the browser lookup order, e.g. [firefox, chrome].
	Browsers []string `yaml:"browsers,omitempty"`

	// CookieSources are cookie files or databases tried before any browser.
	CookieSources []string `yaml:"cookie_sources,omitempty"`

	// CookieDomains limits which cookies are exported.
	CookieDomains []string `yaml:"cookie_domains,omitempty"`

	// YTDLPPath points at a specific yt-dlp binary.
	YTDLPPath string `yaml:"ytdlp_path,omitempty"`

	// AutoInstall downloads yt-dlp when it cannot be found.
	AutoInstall bool `yaml:"auto_install,omitempty"`

	Debug bool `yaml:"debug,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		OutputDir:      DefaultOutputDir,
		CookieFile:     DefaultCookieFile,
		BrowserCookies: ModeAsk,
		CookieDomains:  []string{".youtube.com", ".instagram.com"},
	}
}

// Dir returns the config directory.
// Windows: %APPDATA%\unduh\
// macOS/Linux: ~/.config/unduh/
func Dir() (string, error) {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppDirName), nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppDirName), nil
}

// Path returns $UNDUH_CONFIG if set, else config.yml inside Dir.
func Path() (string, error) {
	if p := os.Getenv(common.ConfigEnv); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the config at path on fsys. A missing file is not an error: the
// defaults are returned. Values in the file override the defaults.
func Load(fsys afero.Fs, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.OutputDir = expandPath(cfg.OutputDir)
	cfg.CookieFile = expandPath(cfg.CookieFile)
	for i, src := range cfg.CookieSources {
		cfg.CookieSources[i] = expandPath(src)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate normalizes BrowserCookies and rejects unknown modes.
func (c *Config) Validate() error {
	m, err := ParseMode(string(c.BrowserCookies))
	if err != nil {
		return err
	}
	c.BrowserCookies = m
	return nil
}

// ShouldConfirm reports whether media info is confirmed before downloading.
func (c *Config) ShouldConfirm() bool {
	return c.ConfirmInfo == nil || *c.ConfirmInfo
}

// SetConfirm sets ConfirmInfo.
func (c *Config) SetConfirm(v bool) {
	c.ConfirmInfo = &v
}

// Save writes cfg to path on fsys, creating the directory if needed.
func Save(fsys afero.Fs, path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	header := "# unduh configuration file\n# Run 'unduh config --init' to regenerate with defaults\n\n"
	return afero.WriteFile(fsys, path, append([]byte(header), data...), 0o644)
}

// expandPath expands a leading ~ to the home directory.
func expandPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) > 1 && path[1] != '/' && path[1] != '\\' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimLeft(path[1:], `/\`))
}
