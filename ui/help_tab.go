package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"warp-manager/internal/constants"
)

// createFooter creates the author line, versions and the shortcut hint.
func (a *App) createFooter() fyne.CanvasObject {
	footer := widget.NewLabel(constants.Footer)
	footer.Alignment = fyne.TextAlignCenter
	footer.Importance = widget.LowImportance

	a.versionLabel = widget.NewLabel(versionText(""))
	a.versionLabel.Alignment = fyne.TextAlignCenter
	a.versionLabel.Importance = widget.LowImportance

	hint := widget.NewLabel("Press Ctrl+Shift+Q to toggle WARP")
	hint.Alignment = fyne.TextAlignCenter
	hint.Importance = widget.LowImportance

	return container.NewVBox(widget.NewSeparator(), footer, a.versionLabel, hint)
}

func versionText(toolVersion string) string {
	text := "Version: " + constants.AppVersion
	if toolVersion != "" {
		text += " | " + toolVersion
	}
	return text
}
