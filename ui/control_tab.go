package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// createControlsSection creates the "WARP Controls" block.
// The buttons start disabled and are enabled once startup finds warp-cli.
func (a *App) createControlsSection() fyne.CanvasObject {
	a.enableButton = widget.NewButton("Enable WARP", func() {
		if !a.core.Connect() {
			log.Println("controls: Enable WARP ignored, an operation is already running")
		}
	})
	a.enableButton.Importance = widget.HighImportance

	a.disableButton = widget.NewButton("Disable WARP", func() {
		if !a.core.Disconnect() {
			log.Println("controls: Disable WARP ignored, an operation is already running")
		}
	})
	a.disableButton.Importance = widget.DangerImportance

	a.statusButton = widget.NewButton("Check WARP Status", func() {
		if !a.core.CheckStatus() {
			log.Println("controls: Check WARP Status ignored, an operation is already running")
		}
	})

	for _, b := range []*widget.Button{a.enableButton, a.disableButton, a.statusButton} {
		b.Disable()
	}

	return section("WARP Controls", a.enableButton, a.disableButton, a.statusButton)
}
