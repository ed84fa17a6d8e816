package core

import (
	"runtime"

	"fyne.io/fyne/v2"

	"warp-manager/internal/constants"
	"warp-manager/internal/debuglog"
	"warp-manager/internal/warpcli"
)

// CreateTrayMenu builds the system tray menu for the current state.
// Call it again after state changes to refresh labels.
func (ac *AppController) CreateTrayMenu(showWindow, quit func()) *fyne.Menu {
	st := ac.Snapshot()
	menuItems := []*fyne.MenuItem{}

	// macOS: separator at top to fix menu positioning
	if runtime.GOOS == "darwin" {
		menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	}

	statusItem := fyne.NewMenuItem("WARP: "+st.Connection.String(), nil)
	statusItem.Disabled = true

	toggleLabel := "Enable WARP"
	if st.Connection == warpcli.StateConnected {
		toggleLabel = "Disable WARP"
	}
	toggleItem := fyne.NewMenuItem(toggleLabel, func() {
		debuglog.InfoLog("Tray: toggle requested")
		ac.Toggle()
	})
	toggleItem.Disabled = st.Busy

	statusCheck := fyne.NewMenuItem("Check Status", func() { ac.CheckStatus() })
	statusCheck.Disabled = st.Busy

	quitItem := fyne.NewMenuItem("Quit", quit)
	quitItem.IsQuit = true

	menuItems = append(menuItems,
		fyne.NewMenuItem("Open", showWindow),
		fyne.NewMenuItemSeparator(),
		statusItem,
		toggleItem,
		statusCheck,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)
	return fyne.NewMenu(constants.AppName, menuItems...)
}
