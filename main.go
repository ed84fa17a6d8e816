package main

import (
	"log"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"warp-manager/core"
	"warp-manager/internal/config"
	"warp-manager/internal/constants"
	"warp-manager/internal/debuglog"
	"warp-manager/internal/platform"
	"warp-manager/ui"
)

func main() {
	execDir := platform.GetExecDir()
	if logFile := core.SetupLogging(execDir); logFile != nil {
		defer debuglog.CloseWithLog("main log file", logFile)
	}

	log.Printf("Starting %s %s (log level %s)", constants.AppName, constants.AppVersion, debuglog.GlobalLevel)

	settings, settingsErr := config.Load(platform.GetSettingsPath(execDir))
	if settingsErr != nil {
		log.Printf("main: settings ignored: %v", settingsErr)
	}

	controller := core.NewAppController(settings, settingsErr, core.Dependencies{})

	application := app.NewWithID(constants.AppID)
	window := application.NewWindow(constants.AppTitle)

	mainApp := ui.NewApp(window, controller, execDir)
	mainApp.Setup()
	window.CenterOnScreen()

	// With a tray the close button hides the window; Quit lives in the tray menu.
	if _, ok := application.(desktop.App); ok {
		mainApp.EnableTray(application, application.Quit)
		window.SetCloseIntercept(window.Hide)
	}

	mainApp.StartEventPump()
	controller.Startup()

	window.ShowAndRun()

	log.Println("Application shutting down.")
	controller.Shutdown()
}
