package constants

import "time"

// Application identity
const (
	AppName  = "Cloudflare WARP Manager"
	AppID    = "com.warp.manager"
	AppTitle = "Cloudflare WARP Manager"
	Footer   = "By Srinivas - Modern Windows Edition"
)

// External tool
const (
	WarpCLIName     = "warp-cli"
	ConnectedMarker = "Connected"
)

// File names
const (
	SettingsFileName = "settings.jsonc"
	LogsDirName      = "logs"
	MainLogFileName  = "warp-manager.log"
)

// URLs
const (
	WarpInstallURL  = "https://1.1.1.1/"
	DNSLeakTestURL  = "https://www.dnsleaktest.com/"
	DefaultTraceURL = "https://www.cloudflare.com/cdn-cgi/trace"
)

// Process name fragments for the auxiliary checks
const (
	SteamProcessFragment = "steam"
	EpicProcessFragment  = "epicgameslauncher"
)

// Network constants
const (
	DefaultSTUNServer = "stun.l.google.com:19302"
	// WARP proxy mode listens here unless changed with `warp-cli proxy port`.
	DefaultProxyAddr = "127.0.0.1:40000"
)

// Timeouts
const (
	DefaultCommandTimeout = 15 * time.Second
	STUNTimeout           = 5 * time.Second
	TraceTimeout          = 10 * time.Second
)

// Application version
// Can be overridden at build time using -ldflags="-X warp-manager/internal/constants.AppVersion=..."
var (
	AppVersion = "v1.0.0"
)

// UI Theme settings
const (
	ThemeSystem = "System"
	ThemeLight  = "Light"
	ThemeDark   = "Dark"
)

// ThemeOptions lists the values offered by the theme selector, in display order.
var ThemeOptions = []string{ThemeSystem, ThemeLight, ThemeDark}
