package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"warp-manager/core"
	"warp-manager/internal/constants"
	"warp-manager/internal/platform"
)

// WindowSize is the fixed size of the main window.
var WindowSize = fyne.NewSize(480, 620)

// ToggleShortcut toggles WARP from anywhere in the main window.
var ToggleShortcut = &desktop.CustomShortcut{
	KeyName:  fyne.KeyQ,
	Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift,
}

// App manages the main window content and keeps it in sync with the controller.
type App struct {
	window fyne.Window
	core   *core.AppController

	content fyne.CanvasObject
	status  *StatusIndicator
	banner  *ErrorBanner

	enableButton  *widget.Button
	disableButton *widget.Button
	statusButton  *widget.Button
	themeSelect   *widget.Select
	versionLabel  *widget.Label

	openFolder func(path string) error
	execDir    string
	tray       *trayIcon
}

// NewApp creates a new App instance and builds the window content.
// execDir is the directory logs are written under.
func NewApp(window fyne.Window, controller *core.AppController, execDir string) *App {
	a := &App{
		window:     window,
		core:       controller,
		execDir:    execDir,
		openFolder: platform.OpenFolder,
	}

	header := widget.NewLabelWithStyle(constants.AppTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.status = NewStatusIndicator()
	a.banner = NewErrorBanner(
		"warp-cli was not found. WARP controls are disabled until it is installed.",
		"Download",
		a.openInstallPage,
	)

	body := container.NewVBox(
		a.banner.GetContainer(),
		a.createControlsSection(),
		a.createNetworkToolsSection(),
		a.createSettingsSection(),
	)

	a.content = container.NewBorder(
		container.NewVBox(header, a.status.GetContainer(), widget.NewSeparator()),
		a.createFooter(),
		nil, nil,
		container.NewVScroll(body),
	)

	a.refresh()
	return a
}

// Content returns the root canvas object of the main window.
func (a *App) Content() fyne.CanvasObject {
	return a.content
}

// GetWindow returns the main window
func (a *App) GetWindow() fyne.Window {
	return a.window
}

// GetController returns the core controller
func (a *App) GetController() *core.AppController {
	return a.core
}

// Setup puts the content into the window, sizes it and registers the toggle shortcut.
func (a *App) Setup() {
	a.window.SetContent(a.content)
	a.window.Resize(WindowSize)
	a.window.SetFixedSize(true)
	a.window.Canvas().AddShortcut(ToggleShortcut, func(fyne.Shortcut) {
		log.Println("Shortcut: toggle requested")
		a.toggle()
	})
}

// section wraps rows under a bold title, like the blocks of the main window.
func section(title string, rows ...fyne.CanvasObject) fyne.CanvasObject {
	label := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	return widget.NewCard("", "", container.NewVBox(append([]fyne.CanvasObject{label}, rows...)...))
}

// refresh redraws everything derived from the controller state.
func (a *App) refresh() {
	st := a.core.Snapshot()

	a.status.SetState(st.Connection, st.ToolChecked)
	a.banner.SetVisible(st.ToolChecked && !st.ToolAvailable)

	enabled := st.TunnelControlsEnabled()
	for _, b := range []*widget.Button{a.enableButton, a.disableButton, a.statusButton} {
		if enabled && b.Disabled() {
			b.Enable()
		} else if !enabled && !b.Disabled() {
			b.Disable()
		}
	}

	a.versionLabel.SetText(versionText(st.ToolVersion))
	if a.tray != nil {
		a.tray.update(st)
	}
}

func (a *App) openInstallPage() {
	if err := a.core.OpenInstallPage(); err != nil {
		showError(a.window, err)
	}
}

func (a *App) toggle() {
	if !a.core.Toggle() {
		log.Println("toggle: ignored, an operation is already running")
	}
}
