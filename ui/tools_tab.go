package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"warp-manager/internal/constants"
	"warp-manager/internal/platform"
)

// createSettingsSection creates the "Settings" block: theme selector and logs folder.
func (a *App) createSettingsSection() fyne.CanvasObject {
	a.themeSelect = widget.NewSelect(constants.ThemeOptions, applyTheme)
	a.themeSelect.SetSelected(a.core.Settings.Theme)

	logsButton := widget.NewButton("Open Logs Folder", func() {
		logsDir := platform.GetLogsDir(a.execDir)
		if err := a.openFolder(logsDir); err != nil {
			log.Printf("settings: Failed to open logs folder: %v", err)
			showError(a.window, err)
		}
	})

	return section("Settings",
		container.NewBorder(nil, nil, widget.NewLabel("Theme Mode:"), nil, a.themeSelect),
		logsButton,
	)
}

// themeFor maps a theme option to a fyne theme. Unknown names follow the system.
func themeFor(mode string) fyne.Theme {
	switch mode {
	case constants.ThemeDark:
		return theme.DarkTheme()
	case constants.ThemeLight:
		return theme.LightTheme()
	default:
		return theme.DefaultTheme()
	}
}

// applyTheme switches the theme of the running application immediately.
func applyTheme(mode string) {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	log.Printf("settings: theme mode set to %s", mode)
	app.Settings().SetTheme(themeFor(mode))
}
