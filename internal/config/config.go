// Package config reads the optional settings.jsonc file. The file is never written;
// without it the application runs on built-in defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/muhammadmuzzammil1998/jsonc"

	"warp-manager/internal/constants"
)

// Settings holds user overrides. Zero values mean "use the default".
type Settings struct {
	// ToolPath is the warp-cli executable, a name on PATH or an absolute path.
	ToolPath string `json:"tool_path"`
	// CommandTimeoutSeconds bounds every warp-cli invocation.
	CommandTimeoutSeconds int `json:"command_timeout_seconds"`
	// STUNServer is used by the external IP check.
	STUNServer string `json:"stun_server"`
	// ProxyAddr is WARP's local SOCKS5 listener in proxy mode.
	ProxyAddr string `json:"proxy_addr"`
	// TraceURL is the Cloudflare trace endpoint.
	TraceURL string `json:"trace_url"`
	// Theme is the initial theme: System, Light or Dark.
	Theme string `json:"theme"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		ToolPath:              constants.WarpCLIName,
		CommandTimeoutSeconds: int(constants.DefaultCommandTimeout / time.Second),
		STUNServer:            constants.DefaultSTUNServer,
		ProxyAddr:             constants.DefaultProxyAddr,
		TraceURL:              constants.DefaultTraceURL,
		Theme:                 constants.ThemeSystem,
	}
}

// CommandTimeout returns the per-invocation timeout.
func (s Settings) CommandTimeout() time.Duration {
	return time.Duration(s.CommandTimeoutSeconds) * time.Second
}

// Load reads path and merges it over Default. A missing file is not an error.
// On a parse or validation error the defaults are returned together with the error.
func Load(path string) (Settings, error) {
	defaults := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults, nil
		}
		return defaults, fmt.Errorf("failed to read settings: %w", err)
	}
	return Parse(data)
}

// Parse decodes JSONC settings and merges them over Default.
func Parse(data []byte) (Settings, error) {
	defaults := Default()

	var raw Settings
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := json.Unmarshal(toJSON(data), &raw); err != nil {
			return defaults, fmt.Errorf("failed to parse settings: %w", err)
		}
	}

	merged := defaults.merge(raw)
	if err := merged.Validate(); err != nil {
		return defaults, err
	}
	return merged, nil
}

// Validate checks value ranges.
func (s Settings) Validate() error {
	if s.CommandTimeoutSeconds <= 0 || s.CommandTimeoutSeconds > 300 {
		return fmt.Errorf("command_timeout_seconds must be between 1 and 300, got %d", s.CommandTimeoutSeconds)
	}
	switch s.Theme {
	case constants.ThemeSystem, constants.ThemeLight, constants.ThemeDark:
	default:
		return fmt.Errorf("theme must be one of %s, got %q", strings.Join(constants.ThemeOptions, ", "), s.Theme)
	}
	if !strings.Contains(s.ProxyAddr, ":") {
		return fmt.Errorf("proxy_addr must be host:port, got %q", s.ProxyAddr)
	}
	if !strings.Contains(s.STUNServer, ":") {
		return fmt.Errorf("stun_server must be host:port, got %q", s.STUNServer)
	}
	return nil
}

func (s Settings) merge(o Settings) Settings {
	if o.ToolPath != "" {
		s.ToolPath = o.ToolPath
	}
	if o.CommandTimeoutSeconds != 0 {
		s.CommandTimeoutSeconds = o.CommandTimeoutSeconds
	}
	if o.STUNServer != "" {
		s.STUNServer = o.STUNServer
	}
	if o.ProxyAddr != "" {
		s.ProxyAddr = o.ProxyAddr
	}
	if o.TraceURL != "" {
		s.TraceURL = o.TraceURL
	}
	if o.Theme != "" {
		s.Theme = normalizeTheme(o.Theme)
	}
	return s
}

func normalizeTheme(theme string) string {
	for _, opt := range constants.ThemeOptions {
		if strings.EqualFold(opt, strings.TrimSpace(theme)) {
			return opt
		}
	}
	return theme
}

var reTrailingCommas = regexp.MustCompile(`,(\s*[\]\}])`)

// toJSON strips comments and trailing commas. Commas are removed before and after
// jsonc so a comma followed by a comment and a closing bracket is handled too.
func toJSON(data []byte) []byte {
	data = reTrailingCommas.ReplaceAll(data, []byte("$1"))
	clean := jsonc.ToJSON(data)
	return reTrailingCommas.ReplaceAll(clean, []byte("$1"))
}
