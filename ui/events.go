package ui

import (
	"fyne.io/fyne/v2"

	"warp-manager/core"
	"warp-manager/internal/debuglog"
	"warp-manager/internal/dialogs"
)

// StartEventPump forwards controller events to the UI goroutine until the
// channel is closed by Shutdown.
func (a *App) StartEventPump() {
	events := a.core.Events()
	go func() {
		for ev := range events {
			ev := ev
			fyne.Do(func() { a.handleEvent(ev) })
		}
		debuglog.DebugLog("StartEventPump: event channel closed")
	}()
}

// handleEvent applies one event to the window. It runs on the UI goroutine.
func (a *App) handleEvent(ev core.Event) {
	debuglog.DebugLog("handleEvent: %s (severity %d)", ev.Kind, ev.Severity)
	a.refresh()

	switch {
	case ev.Kind == core.EventBusy:
		return
	case ev.Kind == core.EventStartup && ev.ToolMissing:
		a.showInstallOffer(ev.Title, ev.Message)
		return
	case ev.Kind == core.EventInstallOffer:
		a.showInstallOffer(ev.Title, ev.Message)
		return
	}
	a.showResult(ev)
}

// showResult shows the modal matching the event severity.
func (a *App) showResult(ev core.Event) {
	switch ev.Severity {
	case core.SeverityNone:
	case core.SeverityError:
		dialogs.ShowErrorText(a.window, ev.Title, ev.Message)
	case core.SeverityQuestion:
		dialogs.ShowConfirm(a.window, ev.Title, ev.Message, nil)
	default:
		if ev.Kind == core.EventExternalIP && ev.Detail != "" {
			dialogs.ShowCopyable(a.window, ev.Title, ev.Message, "Copy IP", ev.Detail)
			return
		}
		dialogs.ShowInfo(a.window, ev.Title, ev.Message)
	}
}

// showInstallOffer asks whether to open the WARP download page.
func (a *App) showInstallOffer(title, message string) {
	dialogs.ShowConfirm(a.window, title, message, a.openInstallPage)
}

func showError(window fyne.Window, err error) {
	dialogs.ShowError(window, err)
}
