package ui

import (
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"warp-manager/core"
	"warp-manager/internal/warpcli"
)

// trayMenuDelay debounces menu rebuilds; the systray fails with
// "Invalid menu handle" when menus are replaced in quick succession.
const trayMenuDelay = 150 * time.Millisecond

// trayIcon keeps the system tray icon and menu in line with the app state.
type trayIcon struct {
	desk  desktop.App
	build func() *fyne.Menu

	mu      sync.Mutex
	timer   *time.Timer
	last    core.AppState
	started bool
}

// EnableTray installs the system tray. It is a no-op on drivers without one.
func (a *App) EnableTray(fyneApp fyne.App, quit func()) {
	desk, ok := fyneApp.(desktop.App)
	if !ok {
		log.Println("EnableTray: driver has no system tray")
		return
	}
	showWindow := func() {
		a.window.Show()
		a.window.RequestFocus()
	}
	a.tray = &trayIcon{
		desk: desk,
		build: func() *fyne.Menu {
			return a.core.CreateTrayMenu(showWindow, quit)
		},
	}
	a.tray.update(a.core.Snapshot())
}

// trayIconName names the icon for st.
func trayIconName(st core.AppState) string {
	switch {
	case st.ToolChecked && !st.ToolAvailable:
		return "missing"
	case st.Connection == warpcli.StateConnected:
		return "connected"
	case st.Connection == warpcli.StateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

func trayResource(name string) fyne.Resource {
	switch name {
	case "missing":
		return theme.NewErrorThemedResource(theme.WarningIcon())
	case "connected":
		return theme.NewSuccessThemedResource(theme.ConfirmIcon())
	case "disconnected":
		return theme.NewErrorThemedResource(theme.CancelIcon())
	default:
		return theme.QuestionIcon()
	}
}

// update sets the icon right away and rebuilds the menu after a short delay.
// It must run on the UI goroutine.
func (t *trayIcon) update(st core.AppState) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started && st == t.last {
		return
	}
	iconChanged := !t.started || trayIconName(st) != trayIconName(t.last)
	t.started = true
	t.last = st

	if iconChanged {
		t.desk.SetSystemTrayIcon(trayResource(trayIconName(st)))
	}

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(trayMenuDelay, func() {
		fyne.Do(func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("updateTrayMenu: Recovered from panic: %v", r)
				}
			}()
			t.desk.SetSystemTrayMenu(t.build())
		})
	})
}
