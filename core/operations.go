package core

import (
	"context"
	"fmt"
	"log"

	"warp-manager/internal/constants"
	"warp-manager/internal/netcheck"
	"warp-manager/internal/platform"
	"warp-manager/internal/warpcli"
)

// ProcessTarget describes one of the launcher checks in Network Tools.
type ProcessTarget struct {
	Fragment       string
	FoundTitle     string
	FoundMessage   string
	FoundSeverity  Severity
	MissingTitle   string
	MissingMessage string
}

var (
	SteamTarget = ProcessTarget{
		Fragment:       constants.SteamProcessFragment,
		FoundTitle:     "Steam Detected",
		FoundMessage:   "Steam is running. Consider enabling WARP or a Proxy.",
		FoundSeverity:  SeverityWarning,
		MissingTitle:   "Steam Status",
		MissingMessage: "Steam is not currently running.",
	}
	EpicTarget = ProcessTarget{
		Fragment:       constants.EpicProcessFragment,
		FoundTitle:     "Epic Games Detected",
		FoundMessage:   "Epic Games Launcher is running.",
		FoundSeverity:  SeverityInfo,
		MissingTitle:   "Epic Games Status",
		MissingMessage: "Epic Games is not currently running.",
	}
)

// Startup performs the one-time availability check. A missing tool yields a
// ToolMissing event and no status query; otherwise the status is read silently.
func (ac *AppController) Startup() {
	if ac.SettingsErr != nil {
		ac.emit(settingsErrorEvent(ac.SettingsErr))
	}
	ac.dispatchTunnel("Startup", func(ctx context.Context) (Event, bool) {
		if !ac.Warp.IsInstalled(ctx) {
			log.Printf("Startup: %s not found, disabling tunnel controls", ac.Warp.ToolPath())
			return Event{
				Kind:        EventStartup,
				Severity:    SeverityQuestion,
				ToolMissing: true,
				Title:       "WARP CLI Required",
				Message: "Cloudflare WARP CLI is not installed.\n\nThis app needs 'warp-cli' to work.\n" +
					platform.GetInstallHint() + "\n\nDo you want to open the download page?",
			}, true
		}

		version, err := ac.Warp.Version(ctx)
		if err != nil {
			log.Printf("Startup: failed to read warp-cli version: %v", err)
		}
		ev := Event{Kind: EventStartup, ToolVersion: version}
		state, err := ac.Warp.Status(ctx)
		if err != nil {
			log.Printf("Startup: initial status query failed: %v", err)
			ev.Err = err
			return ev, true
		}
		log.Printf("Startup: %s, initial status %s", version, state)
		ev.State = state
		ev.StateChanged = true
		return ev, true
	})
}

// Connect enables WARP.
func (ac *AppController) Connect() bool {
	return ac.dispatchTunnel("Connect", func(ctx context.Context) (Event, bool) {
		if err := ac.Warp.Connect(ctx); err != nil {
			return tunnelErrorEvent(EventConnect, "Failed to enable WARP.", err)
		}
		return Event{
			Kind:         EventConnect,
			Severity:     SeveritySuccess,
			Title:        "Success",
			Message:      "WARP is enabled!",
			State:        warpcli.StateConnected,
			StateChanged: true,
		}, true
	})
}

// Disconnect disables WARP.
func (ac *AppController) Disconnect() bool {
	return ac.dispatchTunnel("Disconnect", func(ctx context.Context) (Event, bool) {
		if err := ac.Warp.Disconnect(ctx); err != nil {
			return tunnelErrorEvent(EventDisconnect, "Failed to disable WARP.", err)
		}
		return Event{
			Kind:         EventDisconnect,
			Severity:     SeveritySuccess,
			Title:        "Success",
			Message:      "WARP is disabled!",
			State:        warpcli.StateDisconnected,
			StateChanged: true,
		}, true
	})
}

// CheckStatus queries WARP and reports the result.
func (ac *AppController) CheckStatus() bool {
	return ac.dispatchTunnel("CheckStatus", func(ctx context.Context) (Event, bool) {
		state, err := ac.Warp.Status(ctx)
		if err != nil {
			return tunnelErrorEvent(EventStatus, "Failed to check WARP status.", err)
		}
		msg := "WARP is not active."
		if state == warpcli.StateConnected {
			msg = "WARP is currently active."
		}
		return Event{
			Kind:         EventStatus,
			Severity:     SeverityInfo,
			Title:        "WARP Status",
			Message:      msg,
			State:        state,
			StateChanged: true,
		}, true
	})
}

// Toggle disconnects when connected and connects otherwise.
func (ac *AppController) Toggle() bool {
	return ac.dispatchTunnel("Toggle", func(ctx context.Context) (Event, bool) {
		res, err := ac.Warp.Toggle(ctx)
		if err != nil {
			summary := "Failed to toggle WARP."
			switch res.Action {
			case warpcli.ActionConnect:
				summary = "Failed to enable WARP."
			case warpcli.ActionDisconnect:
				summary = "Failed to disable WARP."
			}
			return tunnelErrorEvent(EventToggle, summary, err)
		}
		msg := "WARP is enabled!"
		if res.Action == warpcli.ActionDisconnect {
			msg = "WARP is disabled!"
		}
		return Event{
			Kind:         EventToggle,
			Severity:     SeveritySuccess,
			Title:        "Success",
			Message:      msg,
			State:        res.State,
			StateChanged: true,
		}, true
	})
}

// CheckProcess reports whether target is running.
func (ac *AppController) CheckProcess(target ProcessTarget) {
	ac.dispatch("CheckProcess", func(ctx context.Context) (Event, bool) {
		if ac.Processes.IsRunning(target.Fragment) {
			return Event{
				Kind:     EventProcessCheck,
				Severity: target.FoundSeverity,
				Title:    target.FoundTitle,
				Message:  target.FoundMessage,
			}, true
		}
		return Event{
			Kind:     EventProcessCheck,
			Severity: SeverityInfo,
			Title:    target.MissingTitle,
			Message:  target.MissingMessage,
		}, true
	})
}

// CheckTrace asks Cloudflare whether traffic arrives through WARP. With viaProxy
// the request goes through WARP's local SOCKS5 listener (proxy mode).
func (ac *AppController) CheckTrace(viaProxy bool) {
	ac.dispatch("CheckTrace", func(ctx context.Context) (Event, bool) {
		tc := netcheck.TraceClient{URL: ac.Settings.TraceURL, Timeout: constants.TraceTimeout}
		title := "WARP Trace"
		if viaProxy {
			tc.ProxyAddr = ac.Settings.ProxyAddr
			title = "WARP Proxy Trace"
		}
		res, err := ac.trace(ctx, tc)
		if err != nil {
			return networkErrorEvent(EventTrace, title, err), true
		}
		severity := SeverityWarning
		verdict := "Traffic is NOT going through WARP."
		if res.WarpActive() {
			severity = SeveritySuccess
			verdict = "Traffic is going through WARP."
		}
		return Event{
			Kind:     EventTrace,
			Severity: severity,
			Title:    title,
			Message: fmt.Sprintf("%s\n\nwarp=%s\nIP: %s\nData center: %s\nLocation: %s",
				verdict, res.Warp, res.IP, res.Colo, res.Location),
			Detail: res.IP,
		}, true
	})
}

// CheckExternalIP determines the public address with a STUN request.
func (ac *AppController) CheckExternalIP() {
	ac.dispatch("CheckExternalIP", func(ctx context.Context) (Event, bool) {
		server := ac.Settings.STUNServer
		ip, err := ac.externalIP(ctx, server, constants.STUNTimeout)
		if err != nil {
			return networkErrorEvent(EventExternalIP, "STUN Check", err), true
		}
		log.Printf("CheckExternalIP: STUN check successful, IP: %s", ip)
		return Event{
			Kind:     EventExternalIP,
			Severity: SeverityInfo,
			Title:    "STUN Check Result",
			Message:  fmt.Sprintf("Your External IP: %s\n(determined via [UDP]%s)", ip, server),
			Detail:   ip,
		}, true
	})
}
